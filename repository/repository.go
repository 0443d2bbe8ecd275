package repository

import (
	"database/sql"
)

// Repository defines the app's data access layer.
type Repository interface {
	books
	reviews
	users
	tokens
}

type repository struct {
	db *sql.DB
}

// New creates a new instance of Repository.
func New(db *sql.DB) *repository {
	return &repository{db: db}
}
