package cmd

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/bitbridge/application"
	"github.com/rios0rios0/bitbridge/config"
	"github.com/rios0rios0/bitbridge/domain"
	"github.com/rios0rios0/bitbridge/infrastructure/bitbucket"
)

// buildContainer wires the layers bottom-up: config -> client -> catalog ->
// dispatcher. The client is constructed once from process-start credentials
// and reused for the process lifetime.
func buildContainer() (*dig.Container, error) {
	container := dig.New()

	if err := container.Provide(func() (*config.Config, error) {
		return config.Resolve(configPath)
	}); err != nil {
		return nil, err
	}

	if err := container.Provide(func(cfg *config.Config) domain.Client {
		if cfg.Bitbucket.BaseURL != "" {
			return bitbucket.NewWithBaseURL(
				cfg.Bitbucket.BaseURL,
				cfg.Bitbucket.Username,
				cfg.Bitbucket.AppPassword,
			)
		}
		return bitbucket.New(cfg.Bitbucket.Username, cfg.Bitbucket.AppPassword)
	}); err != nil {
		return nil, err
	}

	if err := container.Provide(application.NewCatalog); err != nil {
		return nil, err
	}

	if err := container.Provide(application.NewDispatcher); err != nil {
		return nil, err
	}

	return container, nil
}

// injectDispatcher resolves a fully wired dispatcher from the container.
func injectDispatcher() (*application.Dispatcher, error) {
	container, err := buildContainer()
	if err != nil {
		return nil, err
	}

	var dispatcher *application.Dispatcher
	if invokeErr := container.Invoke(func(d *application.Dispatcher) {
		dispatcher = d
	}); invokeErr != nil {
		return nil, invokeErr
	}

	return dispatcher, nil
}
