package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <owner/name>",
	Short: "Look up a repository and add it to the catalog",
	Long: `Look up a repository on GitHub and append it to the stored catalog.
The identifier has the form owner/name, for example facebook/react.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		repo, repos, err := app.service.Add(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printRepository(out, repo)
		_, _ = fmt.Fprintf(out, "Catalog now has %d repositories\n", len(repos))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
