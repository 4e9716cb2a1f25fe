package main

import (
	"os"

	"github.com/citykit/citygen/internal/server"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "citygen",
		Short: "Deterministic procedural city generator",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a city and write its OBJ model and JSON summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cfg)
		},
	}
	flags.register(cmd)
	return cmd
}

func previewCmd() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the zoning grid in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return runPreview(cfg)
		},
	}
	flags.register(cmd)
	return cmd
}

func serveCmd() *cobra.Command {
	var flags configFlags
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Generate a city and serve it over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			srv := server.New(cfg, port)
			return srv.Start()
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
