// Package app wires configuration, storage, services, and the HTTP server
// into a runnable process.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/deepblocks/auth-service/internal/auth/password"
	"github.com/deepblocks/auth-service/internal/auth/token"
	"github.com/deepblocks/auth-service/internal/component"
	"github.com/deepblocks/auth-service/internal/config"
	"github.com/deepblocks/auth-service/internal/logger"
	"github.com/deepblocks/auth-service/internal/mongodb"
	"github.com/deepblocks/auth-service/internal/server"
	"github.com/deepblocks/auth-service/internal/server/endpoint"
	"github.com/deepblocks/auth-service/internal/server/handler"
	"github.com/deepblocks/auth-service/internal/users"
)

// App owns the component registry and the fully wired object graph.
type App struct {
	cfg      *config.Config
	log      *logger.Logger
	registry *component.Registry
}

// New builds the application from configuration. All wiring happens here;
// nothing talks to the network until Run.
func New(cfg *config.Config) (*App, error) {
	logger.Init(cfg.Logging)
	log := logger.New(&cfg.Logging, cfg.Name)

	registry := component.NewRegistry()

	mongoComp := mongodb.NewComponent(cfg.Mongo, log)
	repo := users.NewMongoRepository(mongoComp.Client())

	issuer, err := token.NewIssuer(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	hasher := password.NewHasher(cfg.Password)
	svc := users.NewService(repo, hasher, issuer, log)

	srv := server.New(cfg.Server, log)
	registerRoutes(srv, svc, cfg, registry)

	// Start order: store first, then indexes, then the listener. Stop
	// order is the reverse, so in-flight requests drain before the
	// store goes away.
	if err := registry.Register(mongoComp); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	if err := registry.Register(&storageInit{repo: repo, log: log}); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	if err := registry.Register(server.NewComponent(srv)); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	return &App{cfg: cfg, log: log, registry: registry}, nil
}

// registerRoutes mounts the auth endpoints and the operational endpoints.
func registerRoutes(srv *server.Server, svc *users.Service, cfg *config.Config, registry *component.Registry) {
	r := srv.GinEngine()

	handler.NewAuthHandler(svc).Register(r)

	r.GET("/health", endpoint.Health(cfg.Name, registry.HealthAll))
	r.GET("/info", endpoint.Info(cfg.Name))
	r.GET("/metrics", endpoint.Metrics())
}

// Run starts all components and blocks until SIGINT or SIGTERM, then shuts
// everything down in reverse order.
func (a *App) Run(ctx context.Context) error {
	if err := a.registry.StartAll(ctx); err != nil {
		// Roll back anything that did come up.
		_ = a.registry.StopAll(context.Background())
		return err
	}

	a.log.Info("Service started", map[string]interface{}{
		"addr":        a.cfg.Server.Addr(),
		"environment": a.cfg.Environment,
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.log.Info("Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})
	case <-ctx.Done():
		a.log.Info("Context cancelled, shutting down")
	}

	return a.registry.StopAll(context.Background())
}

// storageInit creates the collection indexes once the store is connected.
// It runs as a component so index creation is ordered after the MongoDB
// connection and before the HTTP listener accepts traffic.
type storageInit struct {
	repo *users.MongoRepository
	log  *logger.Logger
}

func (s *storageInit) Name() string { return "storage-init" }

func (s *storageInit) Start(ctx context.Context) error {
	if err := s.repo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("storage init: %w", err)
	}
	s.log.WithComponent("storage-init").Info("Collection indexes ensured")
	return nil
}

func (s *storageInit) Stop(ctx context.Context) error { return nil }

func (s *storageInit) Health(ctx context.Context) component.Health {
	return component.Health{Name: s.Name(), Status: component.StatusHealthy}
}
