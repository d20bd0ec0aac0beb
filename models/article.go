package models

import (
	"strings"
	"time"
)

// DateLayout is the wire format of publication dates. Lexicographic order of
// dates in this layout equals chronological order.
const DateLayout = "2006-01-02"

type Article struct {
	ID              string     `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Title           string     `json:"title" gorm:"not null"`
	Authors         []string   `json:"authors" gorm:"serializer:json;type:text"`
	Abstract        string     `json:"abstract" gorm:"type:text"`
	PublicationDate string     `json:"publicationDate" gorm:"type:varchar(10);index"`
	DOI             string     `json:"doi,omitempty"`
	Citations       []Citation `json:"citations" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time  `json:"-" gorm:"index"`
	UpdatedAt       time.Time  `json:"-"`
}

type Citation struct {
	ID        string    `json:"id,omitempty" gorm:"primaryKey;type:varchar(64)"`
	ArticleID string    `json:"-" gorm:"type:varchar(64);index;not null"`
	Title     string    `json:"title" gorm:"not null"`
	Authors   []string  `json:"authors" gorm:"serializer:json;type:text"`
	Year      int       `json:"year"`
	DOI       string    `json:"doi,omitempty"`
	CreatedAt time.Time `json:"-"`
}

// Clone returns a deep copy so callers can mutate the result freely.
func (a Article) Clone() Article {
	out := a
	out.Authors = append([]string(nil), a.Authors...)
	if a.Citations != nil {
		out.Citations = make([]Citation, len(a.Citations))
		for i, c := range a.Citations {
			c.Authors = append([]string(nil), c.Authors...)
			out.Citations[i] = c
		}
	}
	return out
}

// Input projects the editable fields of a stored article.
func (a Article) Input() ArticleInput {
	return ArticleInput{
		Title:           a.Title,
		Authors:         append([]string(nil), a.Authors...),
		Abstract:        a.Abstract,
		PublicationDate: a.PublicationDate,
		DOI:             a.DOI,
	}
}

// SplitAuthors turns a comma separated author string into an ordered list,
// trimming whitespace and dropping empty entries. It returns nil when no
// author remains.
func SplitAuthors(s string) []string {
	var authors []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}

// JoinAuthors is the inverse projection used to fill form drafts.
func JoinAuthors(authors []string) string {
	return strings.Join(authors, ", ")
}

// CleanAuthors trims every name and drops blanks, preserving order.
func CleanAuthors(authors []string) []string {
	var out []string
	for _, a := range authors {
		if name := strings.TrimSpace(a); name != "" {
			out = append(out, name)
		}
	}
	return out
}
