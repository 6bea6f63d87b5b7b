package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/johanforsgren/gitcollection/internal/domain"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the stored catalog",
	Long:  `Print every repository in the stored catalog in the order it was added, with its detail route.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		repos, err := app.service.Load()
		if err != nil {
			if !errors.Is(err, domain.ErrCorruptCatalog) {
				return err
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}

		out := cmd.OutOrStdout()
		if len(repos) == 0 {
			_, _ = fmt.Fprintln(out, "No repositories in the catalog.")
			return nil
		}

		for _, repo := range repos {
			printRepository(out, repo)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func printRepository(w io.Writer, repo domain.Repository) {
	_, _ = fmt.Fprintf(w, "%s\t%s\n", repo.FullName, repo.Route())
	if repo.Description != "" {
		_, _ = fmt.Fprintf(w, "  %s\n", repo.Description)
	}
	_, _ = fmt.Fprintf(w, "  owner: %s (%s)\n", repo.Owner.Login, repo.Owner.AvatarURL)
}
