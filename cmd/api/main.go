package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/correduria-api/internal/application/access"
	"github.com/jhoicas/correduria-api/internal/application/auth"
	"github.com/jhoicas/correduria-api/internal/application/usecase"
	"github.com/jhoicas/correduria-api/internal/cron"
	"github.com/jhoicas/correduria-api/internal/db"
	"github.com/jhoicas/correduria-api/internal/infrastructure/email"
	"github.com/jhoicas/correduria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/correduria-api/internal/interfaces/http"
	"github.com/jhoicas/correduria-api/pkg/config"
	"github.com/jhoicas/correduria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.AutoMigrate {
		if err := db.RunMigrations(cfg.DB.ConnectionString(), log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	affiliateRepo := postgres.NewAffiliateRepository(pool)
	agentRepo := postgres.NewAgentRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	policyRepo := postgres.NewPolicyRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	claimRepo := postgres.NewClaimRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	invitationRepo := postgres.NewInvitationRepository(pool)
	grantRepo := postgres.NewAccessGrantRepository(pool)

	resolver := access.NewResolver(grantRepo, affiliateRepo)
	mailer := email.NewMailer(cfg.SMTP, log)

	authUC := auth.NewUseCase(userRepo, cfg.JWT)
	clientUC := usecase.NewClientUseCase(clientRepo, resolver)
	affiliateUC := usecase.NewAffiliateUseCase(affiliateRepo, clientRepo, resolver)
	agentUC := usecase.NewAgentUseCase(agentRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	policyUC := usecase.NewPolicyUseCase(policyRepo, affiliateRepo, agentRepo, resolver)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, clientRepo, policyRepo, resolver)
	claimUC := usecase.NewClaimUseCase(claimRepo, policyRepo, affiliateRepo, resolver)
	ticketUC := usecase.NewTicketUseCase(ticketRepo, clientRepo, affiliateRepo, resolver)
	userUC := usecase.NewUserUseCase(userRepo)
	invitationUC := usecase.NewInvitationUseCase(invitationRepo, userRepo, clientRepo, affiliateRepo, grantRepo, resolver, mailer)

	scheduler := cron.NewScheduler(policyRepo, invoiceRepo, invitationRepo, log)
	scheduler.Start()
	defer scheduler.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.RegisterMetrics()
	app.Use(httpRouter.MetricsMiddleware())
	app.Get("/metrics", httpRouter.MetricsHandler())

	// Swagger UI en local: http://localhost:<port>/docs. El middleware entra en
	// pánico si el archivo no existe, así que solo se monta cuando está presente.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Correduría API",
		}))
	} else {
		log.Warn().Str("path", swaggerFile).Msg("swagger.json no encontrado; UI /docs deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ClientUC:     clientUC,
		AffiliateUC:  affiliateUC,
		AgentUC:      agentUC,
		EmployeeUC:   employeeUC,
		PolicyUC:     policyUC,
		InvoiceUC:    invoiceUC,
		ClaimUC:      claimUC,
		TicketUC:     ticketUC,
		UserUC:       userUC,
		InvitationUC: invitationUC,
		JWT:          cfg.JWT,
		Auth:         cfg.Auth,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
