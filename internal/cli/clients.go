package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/query"
	"github.com/tidyhome/dashboard-api/internal/service"
)

const maxListSize = 200

// ClientsCmd lists clients through the same filter chain as GET /clients
func ClientsCmd(env *Env) *cobra.Command {
	var (
		clientType string
		search     string
		tags       []string
		zips       []string
		sortBy     string
	)

	cmd := &cobra.Command{
		Use:   "clients",
		Short: "List clients matching a type, search and facets",
		Example: `  dashctl clients --type commercial
  dashctl clients --search "tag:vip"
  dashctl clients --tag weekly --zip 62701,62704 --sort name_asc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := service.ClientListParams{
				Query: domain.ClientQuery{
					Type:   clientType,
					Search: search,
					Advanced: domain.ClientAdvancedFilters{
						Tags:     tags,
						ZipCodes: zips,
					},
				},
				SortBy:   query.ClientSortOption(sortBy),
				PageSize: maxListSize,
			}

			var clients []domain.ClientDTO
			for params.Page = 1; ; params.Page++ {
				resp, err := env.Clients.List(params)
				if err != nil {
					return fmt.Errorf("failed to list clients: %w", err)
				}
				batch, _ := resp.Data.([]domain.ClientDTO)
				clients = append(clients, batch...)
				if params.Page >= resp.TotalPages {
					break
				}
			}

			locale := env.locale()
			out := cmd.OutOrStdout()
			if len(clients) == 0 {
				fmt.Fprintln(out, label(locale, "none"))
				return nil
			}

			fmt.Fprintln(out, heading(
				pad(label(locale, "id"), 14), pad(label(locale, "name"), 20), pad(label(locale, "type"), 11),
				pad(label(locale, "status"), 9), pad(label(locale, "city"), 12), pad(label(locale, "next"), 13),
				label(locale, "balance"),
			))
			for _, c := range clients {
				fmt.Fprintln(out,
					pad(c.ID, 14),
					pad(c.Name, 20),
					pad(string(c.Type), 11),
					clientStatusColor(c.Status).Sprint(pad(string(c.Status), 9)),
					pad(cityOf(c.Addresses), 12),
					pad(dash(c.NextService), 13),
					balanceColor(c.BalanceStatus).Sprintf("%s (%s)", c.Balance.StringFixed(2), c.BalanceStatus),
				)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, plural(locale, "clients", len(clients)))
			return nil
		},
	}

	cmd.Flags().StringVar(&clientType, "type", domain.FilterAll, "client type: all, residential or commercial")
	cmd.Flags().StringVarP(&search, "search", "s", "", `free text, or "tag:<name>" for tags containing <name>`)
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "any of these tags (repeat or comma separate)")
	cmd.Flags().StringSliceVar(&zips, "zip", nil, "any address in these zip codes")
	cmd.Flags().StringVar(&sortBy, "sort", "", "name_asc, name_desc, created_asc, created_desc, city_asc or city_desc")
	return cmd
}
