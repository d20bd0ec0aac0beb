package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"scholar-catalog/controllers"
)

var citeCmd = &cobra.Command{
	Use:   "cite <id>",
	Short: "Add a citation to an article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newStore(cmd, controllers.NewMemoryLocation(""))

		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := store.Detail.Load(ctx, args[0]); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), renderer().Detail(store.Detail.State()))
			return err
		}

		title, _ := cmd.Flags().GetString("title")
		authors, _ := cmd.Flags().GetString("authors")
		year, _ := cmd.Flags().GetString("year")
		doi, _ := cmd.Flags().GetString("doi")
		store.CitationForm.SetDraft(controllers.CitationDraft{
			Title:   title,
			Authors: authors,
			Year:    year,
			DOI:     doi,
		})

		article, err := store.CitationForm.Submit(ctx, args[0])
		if err != nil {
			state := store.CitationForm.State()
			fmt.Fprintln(cmd.ErrOrStderr(), renderer().FormErrors(state.Error, state.FieldErrors))
			if errors.Is(err, controllers.ErrInvalidDraft) {
				return errors.New(state.Error)
			}
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderer().CitationList(article.Citations))
		return nil
	},
}

func init() {
	citeCmd.Flags().String("title", "", "cited work title")
	citeCmd.Flags().String("authors", "", "comma separated author names")
	citeCmd.Flags().String("year", "", "publication year")
	citeCmd.Flags().String("doi", "", "digital object identifier")

	rootCmd.AddCommand(citeCmd)
}
