package cli

import (
	"github.com/spf13/cobra"
)

func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective pipeline configuration as YAML",
		Long: "config prints the built-in defaults overlaid with the --config file and\n" +
			"the command line flags. The output is a valid --config file.",
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			data, err := a.pipeline.Marshal()
			if err != nil {
				return err
			}
			_, err = a.out.Write(data)
			return err
		},
	}
}
