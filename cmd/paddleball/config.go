package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it to ~/.paddleball/paddleball.yaml or ./configs/paddleball.yaml
and edit it to change sizes, speeds and the tick rate.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
			fail("%v", err)
		}
	},
}
