package models

import "strings"

type ArticleInput struct {
	Title           string   `json:"title" validate:"required,max=500"`
	Authors         []string `json:"authors" validate:"required,min=1,dive,required"`
	Abstract        string   `json:"abstract" validate:"required"`
	PublicationDate string   `json:"publicationDate" validate:"required,isodate"`
	DOI             string   `json:"doi,omitempty" validate:"max=255"`
}

// Normalize trims every text field and cleans the author list.
func (in ArticleInput) Normalize() ArticleInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Authors = CleanAuthors(in.Authors)
	in.Abstract = strings.TrimSpace(in.Abstract)
	in.PublicationDate = strings.TrimSpace(in.PublicationDate)
	in.DOI = strings.TrimSpace(in.DOI)
	return in
}

// ArticleUpdate is a partial article: nil fields are left untouched.
type ArticleUpdate struct {
	Title           *string  `json:"title,omitempty"`
	Authors         []string `json:"authors,omitempty"`
	Abstract        *string  `json:"abstract,omitempty"`
	PublicationDate *string  `json:"publicationDate,omitempty"`
	DOI             *string  `json:"doi,omitempty"`
}

// Apply merges the update into a.
func (u ArticleUpdate) Apply(a *Article) {
	if u.Title != nil {
		a.Title = *u.Title
	}
	if u.Authors != nil {
		a.Authors = append([]string(nil), u.Authors...)
	}
	if u.Abstract != nil {
		a.Abstract = *u.Abstract
	}
	if u.PublicationDate != nil {
		a.PublicationDate = *u.PublicationDate
	}
	if u.DOI != nil {
		a.DOI = *u.DOI
	}
}

// Update converts a full input into an update touching every field.
func (in ArticleInput) Update() ArticleUpdate {
	return ArticleUpdate{
		Title:           &in.Title,
		Authors:         append([]string(nil), in.Authors...),
		Abstract:        &in.Abstract,
		PublicationDate: &in.PublicationDate,
		DOI:             &in.DOI,
	}
}

type CitationInput struct {
	Title   string   `json:"title" validate:"required,max=500"`
	Authors []string `json:"authors" validate:"required,min=1,dive,required"`
	Year    int      `json:"year" validate:"required,min=1,max=9999"`
	DOI     string   `json:"doi,omitempty" validate:"max=255"`
}

func (in CitationInput) Normalize() CitationInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Authors = CleanAuthors(in.Authors)
	in.DOI = strings.TrimSpace(in.DOI)
	return in
}
