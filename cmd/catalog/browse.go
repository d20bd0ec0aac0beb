package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"scholar-catalog/controllers"
	"scholar-catalog/models"
)

var browseCmd = &cobra.Command{
	Use:   "browse [query-string]",
	Short: "Page and search through articles interactively",
	Long: `Browse reads commands from stdin, one per line:

  n          next page
  p          previous page
  /text      search title and abstract (typing pauses are debounced)
  a text     filter by author
  s field    sort by date or title; "s -" clears sorting
  o order    order asc or desc
  q          quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	raw := ""
	if len(args) == 1 {
		raw = args[0]
	}
	store := newStore(cmd, controllers.NewMemoryLocation(raw))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	b := &browser{
		store:    store,
		out:      cmd.OutOrStdout(),
		debounce: controllers.NewDebouncer(controllers.DefaultDebounceDelay),
	}
	defer b.debounce.Stop()

	b.run(ctx, func(ctx context.Context) error { return store.Collection.Refresh(ctx) })
	return b.loop(ctx, cmd.InOrStdin())
}

type browser struct {
	store    *controllers.Store
	debounce *controllers.Debouncer

	mu  sync.Mutex
	out io.Writer
}

func (b *browser) loop(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		coll := b.store.Collection

		switch {
		case line == "q":
			b.debounce.Flush()
			return nil
		case line == "n":
			page := coll.State().Meta
			if page.HasNext() {
				b.run(ctx, func(ctx context.Context) error { return coll.SetPage(ctx, page.Page+1) })
			}
		case line == "p":
			page := coll.State().Meta
			if page.HasPrev() {
				b.run(ctx, func(ctx context.Context) error { return coll.SetPage(ctx, page.Page-1) })
			}
		case strings.HasPrefix(line, "/"):
			query := strings.TrimPrefix(line, "/")
			b.debounce.Trigger(func() {
				b.run(ctx, func(ctx context.Context) error {
					return coll.Narrow(ctx, func(f *models.Filter) { f.Query = query })
				})
			})
		case strings.HasPrefix(line, "a "):
			author := strings.TrimSpace(strings.TrimPrefix(line, "a "))
			b.run(ctx, func(ctx context.Context) error {
				return coll.Narrow(ctx, func(f *models.Filter) { f.Author = author })
			})
		case strings.HasPrefix(line, "s "):
			field := strings.TrimSpace(strings.TrimPrefix(line, "s "))
			b.run(ctx, func(ctx context.Context) error {
				return coll.Narrow(ctx, func(f *models.Filter) { f.Sort = models.SortField(field) })
			})
		case strings.HasPrefix(line, "o "):
			order := strings.TrimSpace(strings.TrimPrefix(line, "o "))
			b.run(ctx, func(ctx context.Context) error {
				return coll.Narrow(ctx, func(f *models.Filter) { f.Order = models.SortOrder(order) })
			})
		case line == "":
		default:
			b.print("unknown command: " + line)
		}
	}
	b.debounce.Flush()
	return scanner.Err()
}

// run executes one collection change under the command timeout and renders
// the resulting state.
func (b *browser) run(ctx context.Context, change func(context.Context) error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_ = change(ctx)
	b.print(renderer().Collection(b.store.Collection.State()))
}

func (b *browser) print(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintln(b.out, s)
}
