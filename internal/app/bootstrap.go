package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"horse.fit/landing/internal/cli"
	"horse.fit/landing/internal/config"
	"horse.fit/landing/internal/locale"
	"horse.fit/landing/internal/logging"
	"horse.fit/landing/internal/templates"
)

// runtimeDeps is everything validated once at startup. Nothing in it changes
// after bootstrap returns.
type runtimeDeps struct {
	cfg     *config.Config
	logger  zerolog.Logger
	pages   *templates.Store
	catalog *locale.Catalog
}

// bootstrapStage names the startup step that failed.
type bootstrapStage string

const (
	stageConfig    bootstrapStage = "config"
	stageLogger    bootstrapStage = "logger"
	stageTemplates bootstrapStage = "templates"
	stageCatalog   bootstrapStage = "translations"
)

type bootstrapError struct {
	stage bootstrapStage
	err   error
}

func (e *bootstrapError) Error() string {
	return fmt.Sprintf("%s: %v", e.stage, e.err)
}

func (e *bootstrapError) Unwrap() error {
	return e.err
}

// bootstrap loads the .env file, then validates configuration, builds the
// logger and parses templates and translations, stopping at the first failure.
func bootstrap(envLoader *cli.EnvLoader) (*runtimeDeps, []string, error) {
	var warnings []string
	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			warnings = append(warnings, err.Error())
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, warnings, &bootstrapError{stage: stageConfig, err: err}
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return nil, warnings, &bootstrapError{stage: stageLogger, err: err}
	}

	pages, err := templates.Load(templates.Embedded())
	if err != nil {
		return nil, warnings, &bootstrapError{stage: stageTemplates, err: err}
	}

	catalog, err := locale.Load()
	if err != nil {
		return nil, warnings, &bootstrapError{stage: stageCatalog, err: err}
	}

	logger.Debug().Strs("templates", pages.Names()).Msg("templates loaded")
	return &runtimeDeps{
		cfg:     cfg,
		logger:  logger,
		pages:   pages,
		catalog: catalog,
	}, warnings, nil
}
