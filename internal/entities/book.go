package entities

import "strings"

// UnknownAuthor is used when a record carries no author information.
const UnknownAuthor = "Autor desconhecido"

// Book is the normalized record every data source (Google Books, the
// livraria backend, the bundled offline dataset) is converted into.
type Book struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors,omitempty"`
	Description   string   `json:"description,omitempty"`
	ThumbnailURL  string   `json:"thumbnail_url,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
	Categories    []string `json:"categories,omitempty"`
}

// AuthorLine renders the author list as a single field, the way the
// backend stores it.
func (b Book) AuthorLine() string {
	if len(b.Authors) == 0 {
		return UnknownAuthor
	}
	return strings.Join(b.Authors, ", ")
}

// MatchesQuery reports whether the query matches the title or any author,
// case-insensitively.
func (b Book) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(b.Title), q) {
		return true
	}
	for _, a := range b.Authors {
		if strings.Contains(strings.ToLower(a), q) {
			return true
		}
	}
	return false
}
