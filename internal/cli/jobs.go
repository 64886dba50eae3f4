package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/query"
	"github.com/tidyhome/dashboard-api/internal/service"
)

// JobsCmd lists jobs through the job filter composer
func JobsCmd(env *Env) *cobra.Command {
	var (
		filters domain.JobFilters
		sortBy  string
	)

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List jobs matching status, date range, staff and flags",
		Example: `  dashctl jobs --status scheduled --from 2025-05-07 --to 2025-05-14
  dashctl jobs --unassigned --follow-up
  dashctl jobs --staff 2,5 --sort date_desc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := env.Jobs.List(service.JobListParams{
				Filters: filters,
				SortBy:  query.JobSortOption(sortBy),
			})
			if err != nil {
				return fmt.Errorf("failed to list jobs: %w", err)
			}

			locale := env.locale()
			out := cmd.OutOrStdout()
			if len(jobs) == 0 {
				fmt.Fprintln(out, label(locale, "none"))
				return nil
			}

			fmt.Fprintln(out, heading(
				pad(label(locale, "id"), 6), pad(label(locale, "date"), 11), pad(label(locale, "time"), 12),
				pad(label(locale, "client"), 18), pad(label(locale, "status"), 12), pad(label(locale, "staff"), 9),
				label(locale, "flags"),
			))
			for _, j := range jobs {
				fmt.Fprintln(out,
					pad(j.ID, 6),
					pad(dateOnly(j.Date), 11),
					pad(j.StartTime+"-"+j.EndTime, 12),
					pad(j.ClientName, 18),
					jobStatusColor(j.Status).Sprint(pad(string(j.Status), 12)),
					pad(dash(strings.Join(j.AssignedStaffIDs, ",")), 9),
					jobFlags(locale, &j),
				)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, plural(locale, "jobs", len(jobs)))
			return nil
		},
	}

	cmd.Flags().StringVar(&filters.Status, "status", domain.FilterAll, "scheduled, in-progress, completed, cancelled or all")
	cmd.Flags().StringVar(&filters.DateRange.Start, "from", "", "earliest job date, YYYY-MM-DD")
	cmd.Flags().StringVar(&filters.DateRange.End, "to", "", "latest job date, YYYY-MM-DD")
	cmd.Flags().StringSliceVar(&filters.StaffIDs, "staff", nil, "jobs assigned to any of these staff IDs")
	cmd.Flags().StringSliceVar(&filters.ServiceIDs, "service", nil, "jobs for any of these service IDs")
	cmd.Flags().StringVar(&filters.ClientName, "client", "", "client name contains")
	cmd.Flags().StringVar(&filters.ZipCode, "zip", "", "job address zip code")
	cmd.Flags().BoolVar(&filters.Unassigned, "unassigned", false, "only jobs with nobody assigned")
	cmd.Flags().BoolVar(&filters.HasNotes, "notes", false, "only jobs with notes")
	cmd.Flags().BoolVar(&filters.NeedsFollowUp, "follow-up", false, "only jobs flagged for follow-up")
	cmd.Flags().StringVar(&sortBy, "sort", "", "date_asc, date_desc or client_asc")
	return cmd
}

func dateOnly(date string) string {
	if i := strings.IndexByte(date, 'T'); i >= 0 {
		return date[:i]
	}
	return date
}

func jobFlags(locale string, j *domain.Job) string {
	var flags []string
	if j.IsUnassigned() {
		flags = append(flags, color.New(color.FgRed).Sprint(label(locale, "unassigned")))
	}
	if j.NeedsFollowUp {
		flags = append(flags, color.New(color.FgHiMagenta).Sprint(label(locale, "followUp")))
	}
	if strings.TrimSpace(j.Notes) != "" {
		flags = append(flags, label(locale, "notes"))
	}
	return strings.Join(flags, " ")
}
