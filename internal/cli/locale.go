package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tidyhome/dashboard-api/internal/prefs"
)

// LocaleCmd reads and saves the dashboard language
func LocaleCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locale",
		Short: "Show or change the dashboard language",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the saved language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := env.Prefs.Load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.Locale)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <locale>",
		Short:     "Save the language (" + strings.Join(prefs.SupportedLocales, ", ") + ")",
		Args:      cobra.ExactArgs(1),
		ValidArgs: prefs.SupportedLocales,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := env.Prefs.SetLocale(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Locale set to %s\n", color.New(color.FgHiGreen).Sprint("✓"), p.Locale)
			return nil
		},
	})

	return cmd
}
