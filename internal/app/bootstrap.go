package app

import (
	"fmt"
	"strings"

	"crewcall/internal/config"
	"crewcall/internal/delivery/http/handler"
	"crewcall/internal/delivery/http/middleware"
	"crewcall/internal/delivery/http/routes"
	"crewcall/internal/notify"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger, err := newLogger(cfg.App.Environment)
	if err != nil {
		return nil, nil, err
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, logger)

	routes.Register(f, routes.Deps{
		Health:      handler.NewHealthHandler(c.DB, c.Cache),
		Auth:        handler.NewAuthHandler(c.AuthUC),
		Company:     handler.NewCompanyHandler(c.CompanyUC),
		Job:         handler.NewJobHandler(c.JobUC),
		Application: handler.NewApplicationHandler(c.ApplicationUC),
		Talent:      handler.NewTalentHandler(c.TalentUC),
		Skill:       handler.NewSkillHandler(c.SkillUC),
		Billing:     handler.NewBillingHandler(c.Payment),
		Notify:      notify.NewHandler(c.Hub, c.JWT, logger),
		AuthMW:      middleware.NewAuthMiddleware(c.JWT),
	})

	cleanup := func() error {
		err := c.Close()
		_ = logger.Sync()
		return err
	}

	return &App{Fiber: f, Container: c}, cleanup, nil
}

func registerGlobalMiddleware(f *fiber.App, logger *zap.Logger) {
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
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
