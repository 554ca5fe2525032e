// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/thatcatcamp/lpsite/internal/config"
	"github.com/thatcatcamp/lpsite/internal/content"
	"github.com/thatcatcamp/lpsite/internal/db"
	"github.com/thatcatcamp/lpsite/internal/handlers"
	"github.com/thatcatcamp/lpsite/internal/logging"
	"go.uber.org/zap"
)

// newLogger builds the process logger from log.level and log.format
func newLogger() (*zap.Logger, error) {
	return logging.New(config.GetString("log.level"), config.GetString("log.format"))
}

// initSystemDB opens the configured copy document database
func initSystemDB() error {
	dbType := config.GetString("database.type")
	dbPath := config.GetString("database.path")

	return db.InitDB(dbType, dbPath)
}

// contentSource returns the source selected by content.source
func contentSource() (content.Source, error) {
	switch source := config.GetString("content.source"); source {
	case config.SourceEmbedded, "":
		return content.EmbeddedSource(), nil
	case config.SourceDir:
		dir := config.GetString("content.dir")
		if dir == "" {
			return nil, fmt.Errorf("content.dir is required when content.source is %s", source)
		}
		return content.DirSource(dir), nil
	case config.SourceDatabase:
		if err := initSystemDB(); err != nil {
			return nil, err
		}
		return content.DBSource{DB: db.GetDB()}, nil
	default:
		return nil, fmt.Errorf("unsupported content source: %s", source)
	}
}

// loadRepository loads and validates the configured content
func loadRepository(logger *zap.Logger) (*content.Repository, error) {
	src, err := contentSource()
	if err != nil {
		return nil, err
	}
	return content.NewRepository(src, logger)
}

// siteOptions returns the public handler settings from the site.* keys
func siteOptions() handlers.Options {
	return handlers.Options{
		DefaultTheme: config.GetString("site.default_theme"),
		DefaultPage:  config.GetString("site.default_page"),
		BaseURL:      config.GetString("site.base_url"),
	}
}
