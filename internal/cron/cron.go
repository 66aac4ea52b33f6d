// Package cron agenda las tareas periódicas de mantenimiento de estados.
package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/correduria-api/internal/domain/repository"
	"github.com/jhoicas/correduria-api/pkg/logger"
)

// Scheduler ejecuta los barridos periódicos: pólizas vencidas, facturas en
// mora e invitaciones expiradas.
type Scheduler struct {
	cron        *cron.Cron
	policies    repository.PolicyRepository
	invoices    repository.InvoiceRepository
	invitations repository.InvitationRepository
	log         *logger.Logger
}

// NewScheduler construye el scheduler con los repositorios que barre.
func NewScheduler(
	policies repository.PolicyRepository,
	invoices repository.InvoiceRepository,
	invitations repository.InvitationRepository,
	log *logger.Logger,
) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		policies:    policies,
		invoices:    invoices,
		invitations: invitations,
		log:         log,
	}
}

// Start registra los jobs y arranca el scheduler.
func (s *Scheduler) Start() {
	// Todos los días a la 1 AM: pólizas con end_date pasado.
	s.cron.AddFunc("0 1 * * *", func() {
		s.expirePolicies()
	})

	// Todos los días a la 1 AM: facturas pendientes con due_date pasado.
	s.cron.AddFunc("10 1 * * *", func() {
		s.markOverdueInvoices()
	})

	// Cada hora: invitaciones pendientes vencidas.
	s.cron.AddFunc("0 * * * *", func() {
		s.expireInvitations()
	})

	s.cron.Start()
	s.log.Info().Msg("scheduler iniciado")
}

// Stop detiene el scheduler y espera a que terminen los jobs en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("scheduler detenido")
}

// RunAll dispara todos los barridos de inmediato (útil en pruebas y seeds).
func (s *Scheduler) RunAll() {
	s.expirePolicies()
	s.markOverdueInvoices()
	s.expireInvitations()
}

func (s *Scheduler) expirePolicies() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := s.policies.MarkExpired(ctx, time.Now())
	if err != nil {
		s.log.Error().Err(err).Msg("barrido de pólizas vencidas falló")
		return
	}
	if n > 0 {
		s.log.Info().Int64("count", n).Msg("pólizas marcadas como vencidas")
	}
}

func (s *Scheduler) markOverdueInvoices() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := s.invoices.MarkOverdue(ctx, time.Now())
	if err != nil {
		s.log.Error().Err(err).Msg("barrido de facturas en mora falló")
		return
	}
	if n > 0 {
		s.log.Info().Int64("count", n).Msg("facturas marcadas como vencidas")
	}
}

func (s *Scheduler) expireInvitations() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := s.invitations.ExpirePending(ctx, time.Now())
	if err != nil {
		s.log.Error().Err(err).Msg("barrido de invitaciones vencidas falló")
		return
	}
	if n > 0 {
		s.log.Info().Int64("count", n).Msg("invitaciones marcadas como expiradas")
	}
}
