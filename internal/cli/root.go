package cli

import "github.com/spf13/cobra"

// NewRootCmd assembles dashctl
func NewRootCmd(env *Env) *cobra.Command {
	root := &cobra.Command{
		Use:   "dashctl",
		Short: "Query the cleaning dashboard from the terminal",
		Long: `dashctl runs the dashboard's client and job filters against the seed data
and manages the saved language preference.`,
		SilenceUsage: true,
	}

	root.AddCommand(ClientsCmd(env))
	root.AddCommand(JobsCmd(env))
	root.AddCommand(LocaleCmd(env))
	return root
}
