package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scholar-catalog/controllers"
	"scholar-catalog/filter"
	"scholar-catalog/models"
)

var listCmd = &cobra.Command{
	Use:   "list [query-string]",
	Short: "List articles matching a filter",
	Long: `List fetches one page of articles. The optional query string is decoded
first; filter flags then override individual fields. Changing any field other
than --page starts again from page 1.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().String("query", "", "match title or abstract")
	listCmd.Flags().String("author", "", "match any author name")
	listCmd.Flags().String("from", "", "earliest publication date (YYYY-MM-DD)")
	listCmd.Flags().String("to", "", "latest publication date (YYYY-MM-DD)")
	listCmd.Flags().String("sort", "", "sort field: date or title")
	listCmd.Flags().String("order", "", "sort order: asc or desc")
	listCmd.Flags().Int("page", 0, "page number")
	listCmd.Flags().Int("page-size", 0, "items per page")
	listCmd.Flags().Bool("json", false, "output the page as JSON")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	raw := ""
	if len(args) == 1 {
		raw = args[0]
	}
	if _, err := filter.DecodeString(raw); err != nil {
		return fmt.Errorf("parsing query string: %w", err)
	}

	loc := controllers.NewMemoryLocation(raw)
	store := newStore(cmd, loc)

	ctx, cancel := commandContext(cmd)
	defer cancel()

	f, narrowed := applyFilterFlags(cmd, store.Collection.Filter())
	if narrowed {
		f.Page = models.DefaultPage
	}
	if cmd.Flags().Changed("page") {
		f.Page, _ = cmd.Flags().GetInt("page")
	}

	err := store.Collection.SetFilter(ctx, f)
	state := store.Collection.State()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer().Error(state.Error))
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(cmd.OutOrStdout(), models.ArticlePage{Items: state.Items, PaginationMeta: state.Meta})
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer().Collection(state))
	if q := loc.String(); q != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "filter: "+q)
	}
	return nil
}

// applyFilterFlags overlays the filter flags the user set on f and reports
// whether any non-page field changed.
func applyFilterFlags(cmd *cobra.Command, f models.Filter) (models.Filter, bool) {
	flags := cmd.Flags()
	narrowed := false

	strField := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
			narrowed = true
		}
	}
	strField("query", &f.Query)
	strField("author", &f.Author)
	strField("from", &f.FromDate)
	strField("to", &f.ToDate)

	if flags.Changed("sort") {
		s, _ := flags.GetString("sort")
		f.Sort = models.SortField(s)
		narrowed = true
	}
	if flags.Changed("order") {
		o, _ := flags.GetString("order")
		f.Order = models.SortOrder(o)
		narrowed = true
	}
	if flags.Changed("page-size") {
		f.PageSize, _ = flags.GetInt("page-size")
		narrowed = true
	}
	return f, narrowed
}
