// Command gallery runs the toolkit sample pages from a terminal.
// Pages execute their scripted interaction headlessly and print a
// transcript, which is handy for trying the controls without a window
// system attached.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucidui/lucid/gallery"
	"github.com/lucidui/lucid/theme"
)

var themePath string

var rootCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Sample gallery for the lucid component toolkit",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available sample pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry()
		if err != nil {
			return err
		}
		for _, p := range reg.Pages() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s — %s\n", p.Name, p.Title, p.Description)
		}
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run <page>",
	Short: "Run a sample page and print its transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry()
		if err != nil {
			return err
		}
		return reg.Run(cmd.Context(), args[0], cmd.OutOrStdout())
	},
}

func registry() (*gallery.Registry, error) {
	th := theme.Default()
	if themePath != "" {
		loaded, err := theme.Load(themePath)
		if err != nil {
			return nil, err
		}
		th = loaded
	}
	return gallery.Default(th), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&themePath, "theme", "", "path to a TOML theme file")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
