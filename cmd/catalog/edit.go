package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scholar-catalog/controllers"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an article",
	Long:  `Edit loads the article, applies the flags that were given and saves it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newStore(cmd, controllers.NewMemoryLocation(""))

		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := store.Detail.Load(ctx, args[0]); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), renderer().Detail(store.Detail.State()))
			return err
		}

		store.Form.InitEdit(*store.Detail.State().Article)
		store.Form.SetDraft(draftFlags(cmd, store.Form.State().Draft))

		if _, err := store.Form.Submit(ctx); err != nil {
			return reportFormError(cmd, store.Form.State(), err)
		}

		fmt.Fprintln(cmd.ErrOrStderr(), "Updated article "+args[0])
		fmt.Fprintln(cmd.OutOrStdout(), renderer().Detail(store.Detail.State()))
		return nil
	},
}

func init() {
	addDraftFlags(editCmd)

	rootCmd.AddCommand(editCmd)
}
