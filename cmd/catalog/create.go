package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"scholar-catalog/controllers"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an article",
	Long: `Create validates the article locally before sending it. Title, authors
and abstract are required; the publication date defaults to today.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newStore(cmd, controllers.NewMemoryLocation(""))

		ctx, cancel := commandContext(cmd)
		defer cancel()

		store.Form.InitCreate()
		store.Form.SetDraft(draftFlags(cmd, store.Form.State().Draft))

		saved, err := store.Form.Submit(ctx)
		if err != nil {
			return reportFormError(cmd, store.Form.State(), err)
		}

		fmt.Fprintln(cmd.ErrOrStderr(), "Created article "+saved.ID)
		fmt.Fprintln(cmd.OutOrStdout(), renderer().ArticleDetail(*saved))
		return nil
	},
}

func init() {
	addDraftFlags(createCmd)

	rootCmd.AddCommand(createCmd)
}

func addDraftFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "article title")
	cmd.Flags().String("authors", "", "comma separated author names")
	cmd.Flags().String("abstract", "", "article abstract")
	cmd.Flags().String("date", "", "publication date (YYYY-MM-DD)")
	cmd.Flags().String("doi", "", "digital object identifier")
}

// draftFlags overlays the draft flags the user set on d.
func draftFlags(cmd *cobra.Command, d controllers.Draft) controllers.Draft {
	set := func(name string, dst *string) {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	set("title", &d.Title)
	set("authors", &d.Authors)
	set("abstract", &d.Abstract)
	set("date", &d.PublicationDate)
	set("doi", &d.DOI)
	return d
}

func reportFormError(cmd *cobra.Command, state controllers.FormState, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), renderer().FormErrors(state.Error, state.FieldErrors))
	if errors.Is(err, controllers.ErrInvalidDraft) {
		return errors.New(state.Error)
	}
	return err
}
