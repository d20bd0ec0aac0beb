package controllers

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"scholar-catalog/helper"
	"scholar-catalog/models"
)

// Draft is the editable form projection of an article. Authors is a single
// comma separated string.
type Draft struct {
	Title           string
	Authors         string
	Abstract        string
	PublicationDate string
	DOI             string
}

// DraftFromArticle fills a draft from a stored article.
func DraftFromArticle(a models.Article) Draft {
	return Draft{
		Title:           a.Title,
		Authors:         models.JoinAuthors(a.Authors),
		Abstract:        a.Abstract,
		PublicationDate: a.PublicationDate,
		DOI:             a.DOI,
	}
}

// ToInput trims the draft and converts it to the canonical article shape.
func (d Draft) ToInput() models.ArticleInput {
	return models.ArticleInput{
		Title:           strings.TrimSpace(d.Title),
		Authors:         models.SplitAuthors(d.Authors),
		Abstract:        strings.TrimSpace(d.Abstract),
		PublicationDate: strings.TrimSpace(d.PublicationDate),
		DOI:             strings.TrimSpace(d.DOI),
	}
}

// Saver persists drafts. Store implements it.
type Saver interface {
	CreateArticle(ctx context.Context, in models.ArticleInput) (*models.Article, error)
	UpdateArticle(ctx context.Context, id string, upd models.ArticleUpdate) (*models.Article, error)
}

type FormState struct {
	Draft       Draft
	EditingID   string
	Submitting  bool
	Error       string
	FieldErrors map[string][]string
}

// Form edits one article draft, either new or bound to an existing id.
type Form struct {
	saver     Saver
	validator *helper.Validator
	logger    *slog.Logger
	now       func() time.Time

	mu          sync.Mutex
	draft       Draft
	editingID   string
	submitting  bool
	err         string
	fieldErrors map[string][]string
}

func NewForm(saver Saver, validator *helper.Validator, logger *slog.Logger, now func() time.Time) *Form {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	f := &Form{
		saver:     saver,
		validator: validator,
		logger:    logger,
		now:       now,
	}
	f.InitCreate()
	return f
}

// InitCreate resets the draft to an empty article dated today.
func (f *Form) InitCreate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

// InitEdit loads a into the draft and binds the form to its id.
func (f *Form) InitEdit(a models.Article) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.draft = DraftFromArticle(a)
	f.editingID = a.ID
	f.err = ""
	f.fieldErrors = nil
}

func (f *Form) SetDraft(d Draft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
}

// Submit validates the draft and saves it. Invalid drafts return
// ErrInvalidDraft without touching the network. On success the form is reset
// and the saved article returned.
func (f *Form) Submit(ctx context.Context) (*models.Article, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	input := f.draft.ToInput()
	id := f.editingID
	if err := f.validator.Struct(input); err != nil {
		f.err = MsgRequiredFields
		f.fieldErrors = f.validator.FieldErrors(err)
		f.mu.Unlock()
		return nil, ErrInvalidDraft
	}
	f.submitting = true
	f.err = ""
	f.fieldErrors = nil
	f.mu.Unlock()

	var (
		saved *models.Article
		err   error
	)
	if id == "" {
		saved, err = f.saver.CreateArticle(ctx, input)
	} else {
		saved, err = f.saver.UpdateArticle(ctx, id, input.Update())
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		f.logger.Error("saving article", "id", id, "error", err)
		f.err = MsgSaveFailed
		return nil, err
	}

	f.resetLocked()
	return saved, nil
}

func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	var fields map[string][]string
	if f.fieldErrors != nil {
		fields = make(map[string][]string, len(f.fieldErrors))
		for k, v := range f.fieldErrors {
			fields[k] = append([]string(nil), v...)
		}
	}
	return FormState{
		Draft:       f.draft,
		EditingID:   f.editingID,
		Submitting:  f.submitting,
		Error:       f.err,
		FieldErrors: fields,
	}
}

func (f *Form) resetLocked() {
	f.draft = Draft{PublicationDate: f.now().Format(models.DateLayout)}
	f.editingID = ""
	f.err = ""
	f.fieldErrors = nil
}
