// internal/platform/di/console_container.go
package di

import (
	"context"
	"errors"
	"fmt"
	"log"

	httpout "flyadmin/internal/adapters/out/http"
	"flyadmin/internal/adapters/out/prefs"
	"flyadmin/internal/infra/config"
)

// ConsoleContainer adds the operator-facing pieces on top of the shared
// container: password sign-in and the local preference store.
type ConsoleContainer struct {
	*Container

	Identity *httpout.IdentityClient
	Prefs    *prefs.Store
}

func (c *ConsoleContainer) Close() {
	if c.Prefs != nil {
		_ = c.Prefs.Close()
	}
	if c.Container != nil {
		c.Container.Close()
	}
}

// BuildConsole initializes the console DI container. The Identity Toolkit
// API key is required because the console signs operators in by password.
func BuildConsole(ctx context.Context, cfg *config.Config) (*ConsoleContainer, func(), error) {
	if cfg == nil {
		return nil, nil, errors.New("di: config is nil")
	}
	if cfg.FirebaseAPIKey == "" {
		return nil, nil, errors.New("di: FIREBASE_API_KEY is required for the console")
	}

	base, _, err := Build(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	c := &ConsoleContainer{
		Container: base,
		Identity:  httpout.NewIdentityClient(cfg.FirebaseAPIKey),
	}

	store, err := prefs.Open(cfg.PrefsDir)
	if err != nil {
		base.Close()
		return nil, nil, fmt.Errorf("di: open prefs store (%s): %w", cfg.PrefsDir, err)
	}
	c.Prefs = store
	log.Printf("[di] prefs store opened dir=%s", cfg.PrefsDir)

	cleanup := func() { c.Close() }
	return c, cleanup, nil
}
