package dto

import "github.com/prathameshlakare/bookreview/data"

// CreateBookRequestBody defines a request body for the CreateBook service.
type CreateBookRequestBody struct {
	Name    string   `json:"name"`
	Details string   `json:"details"`
	Author  string   `json:"author"`
	Genre   []string `json:"genre"`
}

// QsListBooks defines the query strings used for listing books. Author and
// Genre are exact-match filters; an empty value imposes no constraint.
type QsListBooks struct {
	Author  string
	Genre   string
	Filters data.Filters
}

// QsShowBook defines the query strings used for the book detail page, which
// embeds a paginated review listing.
type QsShowBook struct {
	Filters data.Filters
}

// QsSearchBooks defines the query strings used for searching books.
type QsSearchBooks struct {
	Query string
}
