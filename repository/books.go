package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/prathameshlakare/bookreview/data"
)

type books interface {
	CreateBook(book *data.Book) error
	GetBook(bookID int64) (*data.Book, error)
	GetAllBooks(author, genre string, filters data.Filters) ([]*data.Book, data.Metadata, error)
	SearchBooks(query string) ([]*data.Book, error)
}

// CreateBook creates a new book record.
func (r *repository) CreateBook(book *data.Book) error {
	query := `
		INSERT INTO books (name, details, author, genre, posted_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version`
	args := []interface{}{book.Name, book.Details, book.Author, pq.Array(book.Genre), book.PostedBy}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&book.ID, &book.CreatedAt, &book.Version)
}

// GetBook retrieves a book record by its ID. The poster's username is
// denormalized via a LEFT JOIN so that a book whose poster no longer exists
// still resolves.
func (r *repository) GetBook(bookID int64) (*data.Book, error) {
	if bookID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT books.id, books.created_at, books.name, books.details, books.author, books.genre, books.posted_by, COALESCE(users.username, ''), books.version
		FROM books
		LEFT JOIN users ON books.posted_by = users.id
		WHERE books.id = $1`
	var book data.Book
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, bookID).Scan(
		&book.ID,
		&book.CreatedAt,
		&book.Name,
		&book.Details,
		&book.Author,
		pq.Array(&book.Genre),
		&book.PostedBy,
		&book.PostedByName,
		&book.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &book, nil
}

// GetAllBooks retrieves a paginated list of book records. The author and
// genre filters are an exact-match conjunction; an empty value imposes no
// constraint. The window count covers the full filtered set, not the page.
func (r *repository) GetAllBooks(author, genre string, filters data.Filters) ([]*data.Book, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), books.id, books.created_at, books.name, books.details, books.author, books.genre, books.posted_by, COALESCE(users.username, ''), books.version
		FROM books
		LEFT JOIN users ON books.posted_by = users.id
		WHERE (books.author = $1 OR $1 = '')
		AND ($2 = ANY(books.genre) OR $2 = '')
		ORDER BY books.%s %s, books.id ASC
		LIMIT $3 OFFSET $4`,
		filters.SortColumn(), filters.SortDirection())
	args := []interface{}{author, genre, filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	books := []*data.Book{}
	for rows.Next() {
		var book data.Book
		err := rows.Scan(
			&totalRecords,
			&book.ID,
			&book.CreatedAt,
			&book.Name,
			&book.Details,
			&book.Author,
			pq.Array(&book.Genre),
			&book.PostedBy,
			&book.PostedByName,
			&book.Version,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		books = append(books, &book)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return books, metadata, nil
}

// likeEscape quotes the LIKE/ILIKE metacharacters in s so that a pattern
// built from it matches s as a literal substring. Without it, a query like
// "50%" or "a_c" would act as a wildcard pattern instead of text.
func likeEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// SearchBooks retrieves every book whose name or author contains the query as
// a case-insensitive literal substring. The ILIKE patterns can be served by a
// trigram index, so the scan stays in the store instead of pulling the whole
// collection over the wire. No pagination is applied.
func (r *repository) SearchBooks(query string) ([]*data.Book, error) {
	stmt := `
		SELECT books.id, books.created_at, books.name, books.details, books.author, books.genre, books.posted_by, COALESCE(users.username, ''), books.version
		FROM books
		LEFT JOIN users ON books.posted_by = users.id
		WHERE books.name ILIKE '%' || $1 || '%' OR books.author ILIKE '%' || $1 || '%'
		ORDER BY books.id ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, stmt, likeEscape(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	books := []*data.Book{}
	for rows.Next() {
		var book data.Book
		err := rows.Scan(
			&book.ID,
			&book.CreatedAt,
			&book.Name,
			&book.Details,
			&book.Author,
			pq.Array(&book.Genre),
			&book.PostedBy,
			&book.PostedByName,
			&book.Version,
		)
		if err != nil {
			return nil, err
		}
		books = append(books, &book)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}
