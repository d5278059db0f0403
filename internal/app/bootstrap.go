package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/database/migration"
	"jobboard/internal/database/seeder"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f)
	routes.NewRegistry(c.Config, c.DB, c.Cache).Register(f)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires the container, brings the schema up to date, seeds the
// static rows, and returns the ready-to-listen app with its cleanup.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, c.DB.SQLDB()); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	seed := seeder.Runner{Seeders: seeder.Defaults()}
	if err := seed.Run(ctx, c.DB); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("run seeders: %w", err)
	}

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(log.Default()).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
