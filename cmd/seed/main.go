// seed crea los datos mínimos para un entorno de desarrollo: el usuario admin
// y un juego de datos de ejemplo (empresa cliente, agente, titular y póliza).
// Es idempotente: si el admin ya existe no hace nada.
//
// Uso: go run ./cmd/seed
// Variables: SEED_ADMIN_EMAIL, SEED_ADMIN_PASSWORD (defaults de desarrollo).
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/correduria-api/internal/db"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/correduria-api/pkg/config"
	"github.com/jhoicas/correduria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if err := db.RunMigrations(cfg.DB.ConnectionString(), log); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	clients := postgres.NewClientRepository(pool)
	agents := postgres.NewAgentRepository(pool)
	affiliates := postgres.NewAffiliateRepository(pool)
	policies := postgres.NewPolicyRepository(pool)

	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@correduria.local")
	adminPassword := envOr("SEED_ADMIN_PASSWORD", "cambiar-ahora")

	existing, err := users.GetByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin")
	}
	if existing != nil {
		log.Info().Str("email", adminEmail).Msg("el admin ya existe, nada que sembrar")
		return
	}

	now := time.Now()
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña")
	}

	admin := &entity.User{
		ID:           uuid.NewString(),
		Email:        adminEmail,
		PasswordHash: string(hash),
		Name:         "Administrador",
		Role:         entity.RoleAdmin,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("crear admin")
	}
	log.Info().Str("email", adminEmail).Msg("admin creado")

	if cfg.App.Env == "production" {
		return
	}

	// Datos de ejemplo solo fuera de production.
	client := &entity.Client{
		ID:        uuid.NewString(),
		Name:      "Acme S.A.S.",
		TaxID:     "900123456-7",
		Address:   "Cra 7 # 71-21, Bogotá",
		Phone:     "+57 601 555 0100",
		Email:     "contacto@acme.co",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := clients.Create(ctx, client); err != nil {
		log.Fatal().Err(err).Msg("crear empresa cliente de ejemplo")
	}

	agent := &entity.Agent{
		ID:             uuid.NewString(),
		Code:           "AG-001",
		FirstName:      "Laura",
		LastName:       "Gómez",
		Email:          "laura.gomez@correduria.local",
		Phone:          "+57 310 555 0101",
		CommissionRate: decimal.NewFromFloat(3.5),
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := agents.Create(ctx, agent); err != nil {
		log.Fatal().Err(err).Msg("crear agente de ejemplo")
	}

	titular := &entity.Affiliate{
		ID:         uuid.NewString(),
		ClientID:   client.ID,
		Kind:       entity.AffiliateKindOwner,
		FirstName:  "Carlos",
		LastName:   "Pérez",
		DocumentID: "1020304050",
		Email:      "carlos.perez@acme.co",
		Phone:      "+57 311 555 0102",
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := affiliates.Create(ctx, titular); err != nil {
		log.Fatal().Err(err).Msg("crear titular de ejemplo")
	}

	policy := &entity.Policy{
		ID:           uuid.NewString(),
		ClientID:     client.ID,
		AffiliateID:  &titular.ID,
		AgentID:      &agent.ID,
		PolicyNumber: "POL-2026-0001",
		Product:      entity.PolicyProductHealth,
		Insurer:      "Seguros Bolívar",
		Premium:      decimal.NewFromInt(1200000),
		Status:       entity.PolicyStatusActive,
		StartDate:    now,
		EndDate:      now.AddDate(1, 0, 0),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := policies.Create(ctx, policy); err != nil {
		log.Fatal().Err(err).Msg("crear póliza de ejemplo")
	}

	log.Info().Msg("datos de ejemplo creados")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
