package main

import (
	"flag"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/prathameshlakare/bookreview/config"
	_ "github.com/prathameshlakare/bookreview/docs"
	"github.com/prathameshlakare/bookreview/handler"
	"github.com/prathameshlakare/bookreview/internal/jsonlog"
	"github.com/prathameshlakare/bookreview/repository"
	"github.com/prathameshlakare/bookreview/repository/postgres"
	"github.com/prathameshlakare/bookreview/service"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	logger  *jsonlog.Logger
	repo    repository.Repository
	service service.Service
	handler *handler.Handler
}

// @title  Bookreview API
// @version 1.0.0
// @description This is an API service for a book catalog with user reviews and ratings.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email prathameshlakare001@gmail.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath /
func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// Load environment variables from a .env file if one exists
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.PrintError(err, nil)
	}

	var configPath string
	flag.StringVar(&configPath, "config", "config.yml", "Path to the YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	// Initialize database connection
	db, err := postgres.OpenDBConn(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()
	logger.PrintInfo("database connection pool established", nil)

	// The waitgroup tracks background goroutines so the server can drain them
	// on shutdown.
	var wg sync.WaitGroup

	// Application layers
	repo := repository.New(db)
	service := service.New(cfg, &wg, logger, repo)
	handler := handler.New(cfg, logger, service)

	// Instantiate application
	app := &app{
		config:  cfg,
		logger:  logger,
		repo:    repo,
		service: service,
		handler: handler,
	}

	// Start HTTP server
	err = app.serve(&wg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}
