package controllers

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"scholar-catalog/helper"
	"scholar-catalog/models"
)

// CitationDraft holds the raw citation inputs; Year is parsed on submit.
type CitationDraft struct {
	Title   string
	Authors string
	Year    string
	DOI     string
}

type CitationFormState struct {
	Draft       CitationDraft
	Submitting  bool
	Error       string
	FieldErrors map[string][]string
}

// CitationForm collects a citation and submits it through Detail.
type CitationForm struct {
	detail    *Detail
	validator *helper.Validator

	mu          sync.Mutex
	draft       CitationDraft
	submitting  bool
	err         string
	fieldErrors map[string][]string
}

func NewCitationForm(detail *Detail, validator *helper.Validator) *CitationForm {
	return &CitationForm{detail: detail, validator: validator}
}

func (f *CitationForm) SetDraft(d CitationDraft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
}

func (f *CitationForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = CitationDraft{}
	f.err = ""
	f.fieldErrors = nil
}

// Submit validates the draft and adds the citation to articleID.
func (f *CitationForm) Submit(ctx context.Context, articleID string) (*models.Article, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	input, msg, fields := f.validateLocked()
	if msg != "" {
		f.err = msg
		f.fieldErrors = fields
		f.mu.Unlock()
		return nil, ErrInvalidDraft
	}
	f.submitting = true
	f.err = ""
	f.fieldErrors = nil
	f.mu.Unlock()

	article, err := f.detail.AddCitation(ctx, articleID, input)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.err = MsgAddCitationFailed
		return nil, err
	}
	f.draft = CitationDraft{}
	return article, nil
}

func (f *CitationForm) State() CitationFormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return CitationFormState{
		Draft:       f.draft,
		Submitting:  f.submitting,
		Error:       f.err,
		FieldErrors: f.fieldErrors,
	}
}

func (f *CitationForm) validateLocked() (models.CitationInput, string, map[string][]string) {
	d := f.draft
	input := models.CitationInput{
		Title:   strings.TrimSpace(d.Title),
		Authors: models.SplitAuthors(d.Authors),
		DOI:     strings.TrimSpace(d.DOI),
	}

	rawYear := strings.TrimSpace(d.Year)
	if rawYear != "" {
		year, err := strconv.Atoi(rawYear)
		if err != nil {
			return input, MsgInvalidYear, map[string][]string{"year": {MsgInvalidYear}}
		}
		input.Year = year
	}

	if err := f.validator.Struct(input); err != nil {
		return input, MsgRequiredFields, f.validator.FieldErrors(err)
	}
	return input, "", nil
}
