package service

import (
	"sync"

	"github.com/prathameshlakare/bookreview/config"
	"github.com/prathameshlakare/bookreview/internal/jsonlog"
	"github.com/prathameshlakare/bookreview/repository"
)

// Service defines the app's business rules layer.
type Service interface {
	books
	reviews
	users
	tokens
}

type service struct {
	config config.Config
	wg     *sync.WaitGroup
	logger *jsonlog.Logger
	repo   repository.Repository
}

// New creates a new instance of Service. The WaitGroup tracks background
// goroutines (e.g. outgoing email) so the server can drain them on shutdown.
func New(cfg config.Config, wg *sync.WaitGroup, logger *jsonlog.Logger, repo repository.Repository) *service {
	return &service{
		config: cfg,
		wg:     wg,
		logger: logger,
		repo:   repo,
	}
}
