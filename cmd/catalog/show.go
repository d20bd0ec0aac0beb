package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scholar-catalog/controllers"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an article with its citations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newStore(cmd, controllers.NewMemoryLocation(""))

		ctx, cancel := commandContext(cmd)
		defer cancel()

		err := store.Detail.Load(ctx, args[0])
		state := store.Detail.State()
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), renderer().Detail(state))
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd.OutOrStdout(), state.Article)
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderer().Detail(state))
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("json", false, "output the article as JSON")

	rootCmd.AddCommand(showCmd)
}
