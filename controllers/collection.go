package controllers

import (
	"context"
	"log/slog"
	"sync"

	"scholar-catalog/filter"
	"scholar-catalog/models"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// CollectionState is a snapshot of the collection controller.
type CollectionState struct {
	Status  Status
	Filter  models.Filter
	Items   []models.Article
	Meta    models.PaginationMeta
	Error   string
	Loading bool
}

// Collection owns one page of articles selected by the filter stored in a
// Location. Every fetch carries a sequence number; a response older than the
// newest applied one is dropped, so out-of-order responses cannot overwrite
// fresher data.
type Collection struct {
	api    ArticleAPI
	loc    Location
	logger *slog.Logger

	mu      sync.Mutex
	issued  uint64
	applied uint64
	status  Status
	items   []models.Article
	meta    models.PaginationMeta
	err     string
}

func NewCollection(api ArticleAPI, loc Location, logger *slog.Logger) *Collection {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collection{
		api:    api,
		loc:    loc,
		logger: logger,
		status: StatusIdle,
	}
}

// Filter decodes the current filter from the location.
func (c *Collection) Filter() models.Filter {
	return filter.Decode(c.loc.Query())
}

// SetFilter persists f to the location and fetches the matching page.
func (c *Collection) SetFilter(ctx context.Context, f models.Filter) error {
	f = f.Normalize()
	c.loc.Replace(filter.Encode(f))
	return c.fetch(ctx, f)
}

// Narrow edits the current filter and goes back to page 1. Search inputs
// change the filter through here.
func (c *Collection) Narrow(ctx context.Context, edit func(*models.Filter)) error {
	f := c.Filter()
	edit(&f)
	f.Page = models.DefaultPage
	return c.SetFilter(ctx, f)
}

// SetPage keeps every field of the current filter but the page.
func (c *Collection) SetPage(ctx context.Context, page int) error {
	return c.SetFilter(ctx, c.Filter().WithPage(page))
}

// Refresh re-fetches the current filter without changing it.
func (c *Collection) Refresh(ctx context.Context) error {
	return c.fetch(ctx, c.Filter())
}

func (c *Collection) State() CollectionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.Article, len(c.items))
	for i, a := range c.items {
		items[i] = a.Clone()
	}
	return CollectionState{
		Status:  c.status,
		Filter:  c.Filter(),
		Items:   items,
		Meta:    c.meta,
		Error:   c.err,
		Loading: c.issued > c.applied,
	}
}

func (c *Collection) fetch(ctx context.Context, f models.Filter) error {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.status = StatusLoading
	c.mu.Unlock()

	page, err := c.api.ListArticles(ctx, f)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq <= c.applied {
		c.logger.Debug("dropping stale article page", "seq", seq, "applied", c.applied)
		return err
	}
	c.applied = seq

	if err != nil {
		c.logger.Error("fetching articles", "error", err, "filter", filter.EncodeString(f))
		c.err = MsgFetchFailed
		c.settle(StatusError)
		return err
	}

	c.items = page.Items
	if c.items == nil {
		c.items = []models.Article{}
	}
	c.meta = page.PaginationMeta
	c.err = ""
	c.settle(StatusReady)
	return nil
}

// settle sets the final status unless a newer fetch is still running.
func (c *Collection) settle(status Status) {
	if c.issued > c.applied {
		c.status = StatusLoading
		return
	}
	c.status = status
}
