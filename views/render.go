package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"scholar-catalog/controllers"
	"scholar-catalog/models"
)

// Renderer draws catalog screens within a fixed width.
type Renderer struct {
	width int
}

func NewRenderer(width int) Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	return Renderer{width: width}
}

// ArticleRow renders one list entry: id and title, a clipped abstract, then
// date, authors and DOI.
func (r Renderer) ArticleRow(a models.Article) string {
	inner := r.width - 4

	header := idStyle.Render(a.ID) + "  " + titleStyle.Render(a.Title)
	abstract := bodyStyle.Render(truncate(a.Abstract, inner*2))

	meta := []string{a.PublicationDate, models.JoinAuthors(a.Authors)}
	if a.DOI != "" {
		meta = append(meta, doiStyle.Render("DOI: "+a.DOI))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		abstract,
		metaStyle.Render(strings.Join(meta, " · ")),
	)
	return cardStyle.Width(r.width - 2).Render(content)
}

// ArticleList renders every row, or an empty-state hint.
func (r Renderer) ArticleList(items []models.Article) string {
	if len(items) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			headingStyle.Render("No articles found"),
			mutedStyle.Render("Try adjusting your filters or search terms."),
		)
	}
	rows := make([]string, 0, len(items))
	for _, a := range items {
		rows = append(rows, r.ArticleRow(a))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Pagination renders "Showing X to Y of Z results" plus the page position.
func (r Renderer) Pagination(meta models.PaginationMeta) string {
	first, last := meta.Range()
	summary := fmt.Sprintf("Showing %d to %d of %d results", first, last, meta.TotalItems)

	var nav []string
	if meta.HasPrev() {
		nav = append(nav, "< Previous")
	}
	nav = append(nav, fmt.Sprintf("Page %d of %d", meta.Page, max(meta.TotalPages, 1)))
	if meta.HasNext() {
		nav = append(nav, "Next >")
	}

	return metaStyle.Render(summary + "   " + strings.Join(nav, "  "))
}

// Collection renders a whole collection state: loading, error, list and
// pagination.
func (r Renderer) Collection(state controllers.CollectionState) string {
	var parts []string
	if state.Error != "" {
		parts = append(parts, r.Error(state.Error))
	}
	if state.Loading && len(state.Items) == 0 {
		parts = append(parts, mutedStyle.Render("Loading articles..."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	parts = append(parts, r.ArticleList(state.Items))
	if len(state.Items) > 0 {
		parts = append(parts, r.Pagination(state.Meta))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// ArticleDetail renders the full article with its citations.
func (r Renderer) ArticleDetail(a models.Article) string {
	wrap := lipgloss.NewStyle().Width(r.width)

	lines := []string{
		wrap.Inherit(titleStyle).Render(a.Title),
		metaStyle.Render("Published on " + a.PublicationDate),
		metaStyle.Render("By " + models.JoinAuthors(a.Authors)),
	}
	if a.DOI != "" {
		lines = append(lines, doiStyle.Render("DOI: "+a.DOI))
	}
	lines = append(lines,
		"",
		headingStyle.Render("Abstract"),
		wrap.Inherit(bodyStyle).Render(a.Abstract),
		"",
		headingStyle.Render(fmt.Sprintf("Citations (%d)", len(a.Citations))),
		r.CitationList(a.Citations),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Detail renders a detail controller state.
func (r Renderer) Detail(state controllers.DetailState) string {
	switch {
	case state.Loading:
		return mutedStyle.Render("Loading article...")
	case state.Article == nil && state.Error != "":
		return r.Error(state.Error)
	case state.Article == nil:
		return r.Error(controllers.MsgNotFound)
	}
	out := r.ArticleDetail(*state.Article)
	if state.Error != "" {
		out = lipgloss.JoinVertical(lipgloss.Left, r.Error(state.Error), out)
	}
	return out
}

func (r Renderer) CitationList(citations []models.Citation) string {
	if len(citations) == 0 {
		return mutedStyle.Render("No citations found.")
	}
	lines := make([]string, 0, len(citations))
	for i, c := range citations {
		line := fmt.Sprintf("%d. %s (%d)", i+1, c.Title, c.Year)
		meta := models.JoinAuthors(c.Authors)
		if c.DOI != "" {
			meta += " · DOI: " + c.DOI
		}
		lines = append(lines, bodyStyle.Render(line)+"\n   "+metaStyle.Render(meta))
	}
	return strings.Join(lines, "\n")
}

// FormErrors renders a form-level message followed by field messages sorted
// by field name.
func (r Renderer) FormErrors(message string, fields map[string][]string) string {
	if message == "" && len(fields) == 0 {
		return ""
	}
	var lines []string
	if message != "" {
		lines = append(lines, errorStyle.Render(message))
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, msg := range fields[name] {
			lines = append(lines, fieldErrorStyle.Render("  - "+msg))
		}
	}
	return strings.Join(lines, "\n")
}

func (r Renderer) Error(message string) string {
	return errorStyle.Render(message)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
