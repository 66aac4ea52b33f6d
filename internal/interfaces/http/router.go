package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/correduria-api/internal/application/auth"
	"github.com/jhoicas/correduria-api/internal/application/usecase"
	"github.com/jhoicas/correduria-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	ClientUC     *usecase.ClientUseCase
	AffiliateUC  *usecase.AffiliateUseCase
	AgentUC      *usecase.AgentUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	PolicyUC     *usecase.PolicyUseCase
	InvoiceUC    *usecase.InvoiceUseCase
	ClaimUC      *usecase.ClaimUseCase
	TicketUC     *usecase.TicketUseCase
	UserUC       *usecase.UserUseCase
	InvitationUC *usecase.InvitationUseCase
	JWT          config.JWTConfig
	Auth         config.AuthConfig
}

// Router registra las rutas de la API. El control de acceso por rol vive en
// los usecases; el middleware solo autentica.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Aceptación de invitaciones (público: el token del correo autentica)
	invitationHandler := NewInvitationHandler(deps.InvitationUC)
	api.Post("/invitations/accept", invitationHandler.Accept)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWT, deps.Auth))

	protected.Get("/auth/me", authHandler.Me)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.Get)
	clients.Patch("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Affiliates
	affiliates := protected.Group("/affiliates")
	affiliateHandler := NewAffiliateHandler(deps.AffiliateUC)
	affiliates.Get("/", affiliateHandler.List)
	affiliates.Post("/", affiliateHandler.Create)
	affiliates.Get("/:id", affiliateHandler.Get)
	affiliates.Patch("/:id", affiliateHandler.Update)
	affiliates.Delete("/:id", affiliateHandler.Delete)

	// Agents
	agents := protected.Group("/agents")
	agentHandler := NewAgentHandler(deps.AgentUC)
	agents.Get("/", agentHandler.List)
	agents.Post("/", agentHandler.Create)
	agents.Get("/:id", agentHandler.Get)
	agents.Patch("/:id", agentHandler.Update)
	agents.Delete("/:id", agentHandler.Delete)

	// Employees
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.Get)
	employees.Patch("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Policies
	policies := protected.Group("/policies")
	policyHandler := NewPolicyHandler(deps.PolicyUC)
	policies.Get("/", policyHandler.List)
	policies.Post("/", policyHandler.Create)
	policies.Get("/:id", policyHandler.Get)
	policies.Patch("/:id", policyHandler.Update)
	policies.Delete("/:id", policyHandler.Delete)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Patch("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Claims
	claims := protected.Group("/claims")
	claimHandler := NewClaimHandler(deps.ClaimUC)
	claims.Get("/", claimHandler.List)
	claims.Post("/", claimHandler.Create)
	claims.Get("/:id", claimHandler.Get)
	claims.Patch("/:id", claimHandler.Update)
	claims.Post("/:id/review", claimHandler.Review)
	claims.Delete("/:id", claimHandler.Delete)

	// Tickets
	tickets := protected.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC)
	tickets.Get("/", ticketHandler.List)
	tickets.Post("/", ticketHandler.Create)
	tickets.Get("/:id", ticketHandler.Get)
	tickets.Patch("/:id", ticketHandler.Update)
	tickets.Delete("/:id", ticketHandler.Delete)

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Patch("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Invitations
	invitations := protected.Group("/invitations")
	invitations.Get("/", invitationHandler.List)
	invitations.Post("/", invitationHandler.Create)
	invitations.Post("/:id/resend", invitationHandler.Resend)
	invitations.Post("/:id/cancel", invitationHandler.Cancel)
}
