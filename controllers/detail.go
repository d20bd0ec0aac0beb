package controllers

import (
	"context"
	"log/slog"
	"sync"

	"scholar-catalog/models"
)

type DetailState struct {
	Article *models.Article
	Loading bool
	Error   string
}

// Detail owns the article currently being viewed, citations included.
type Detail struct {
	api    ArticleAPI
	logger *slog.Logger

	mu      sync.Mutex
	issued  uint64
	applied uint64
	article *models.Article
	err     string
}

func NewDetail(api ArticleAPI, logger *slog.Logger) *Detail {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detail{api: api, logger: logger}
}

// Load fetches id and makes it the current article. On failure the current
// article is cleared and an error message is set.
func (d *Detail) Load(ctx context.Context, id string) error {
	d.mu.Lock()
	d.issued++
	seq := d.issued
	d.err = ""
	d.mu.Unlock()

	article, err := d.api.GetArticle(ctx, id)

	d.mu.Lock()
	defer d.mu.Unlock()

	if seq <= d.applied {
		d.logger.Debug("dropping stale article", "id", id, "seq", seq)
		return err
	}
	d.applied = seq

	if err != nil {
		d.article = nil
		if isNotFound(err) {
			d.err = MsgNotFound
		} else {
			d.logger.Error("loading article", "id", id, "error", err)
			d.err = MsgLoadFailed
		}
		return err
	}

	d.article = article
	return nil
}

// Clear drops the current article and error. Loads still in flight are
// discarded when they resolve.
func (d *Detail) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.applied = d.issued
	d.article = nil
	d.err = ""
}

// AddCitation attaches in to articleID. The returned article replaces the
// current one when it is still being viewed; on failure the current article
// is kept and an error message is set.
func (d *Detail) AddCitation(ctx context.Context, articleID string, in models.CitationInput) (*models.Article, error) {
	article, err := d.api.AddCitation(ctx, articleID, in)
	if err != nil {
		d.logger.Error("adding citation", "id", articleID, "error", err)
		d.mu.Lock()
		d.err = MsgAddCitationFailed
		d.mu.Unlock()
		return nil, err
	}

	d.Replace(article)
	return article, nil
}

// Replace overwrites the current article when a has the same id.
func (d *Detail) Replace(a *models.Article) {
	if a == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.article != nil && d.article.ID == a.ID {
		clone := a.Clone()
		d.article = &clone
		d.err = ""
	}
}

func (d *Detail) State() DetailState {
	d.mu.Lock()
	defer d.mu.Unlock()

	state := DetailState{
		Loading: d.issued > d.applied,
		Error:   d.err,
	}
	if d.article != nil {
		clone := d.article.Clone()
		state.Article = &clone
	}
	return state
}
