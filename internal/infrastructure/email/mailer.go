// Package email envía los correos de invitación vía SMTP.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/jhoicas/correduria-api/internal/application/usecase"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/pkg/config"
	"github.com/jhoicas/correduria-api/pkg/logger"
)

var _ usecase.Mailer = (*Mailer)(nil)

// Mailer implementación SMTP del puerto de correo de invitaciones.
// Sin SMTP_HOST configurado, los envíos se omiten con un warning (útil en
// desarrollo local).
type Mailer struct {
	cfg config.SMTPConfig
	log *logger.Logger
	tpl *template.Template
}

// NewMailer construye el mailer con la configuración SMTP.
func NewMailer(cfg config.SMTPConfig, log *logger.Logger) *Mailer {
	return &Mailer{
		cfg: cfg,
		log: log,
		tpl: template.Must(template.New("invitation").Parse(invitationTemplate)),
	}
}

type invitationData struct {
	Role      string
	InviteURL string
	FromName  string
}

// SendInvitation envía el correo de invitación con el link de aceptación.
func (m *Mailer) SendInvitation(ctx context.Context, inv *entity.Invitation) error {
	if m.cfg.Host == "" {
		m.log.Warn().Str("email", inv.Email).Msg("SMTP sin configurar, se omite el envío")
		return nil
	}

	data := invitationData{
		Role:      string(inv.Role),
		InviteURL: fmt.Sprintf("%s/invitaciones/aceptar?token=%s", m.cfg.BaseURL, inv.Token),
		FromName:  m.cfg.FromName,
	}
	var body bytes.Buffer
	if err := m.tpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render invitación: %w", err)
	}

	var msg bytes.Buffer
	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", m.cfg.FromName, m.cfg.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", inv.Email))
	msg.WriteString(fmt.Sprintf("Subject: Invitación a %s\r\n", m.cfg.FromName))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{inv.Email}, msg.Bytes()); err != nil {
		return fmt.Errorf("enviar invitación: %w", err)
	}
	m.log.Info().Str("email", inv.Email).Str("role", string(inv.Role)).Msg("invitación enviada")
	return nil
}

const invitationTemplate = `
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1d4ed8; color: white; padding: 24px; border-radius: 8px 8px 0 0; }
        .content { background: #f9fafb; padding: 24px; border-radius: 0 0 8px 8px; }
        .btn { display: inline-block; background: #1d4ed8; color: white; padding: 12px 20px; text-decoration: none; border-radius: 6px; margin-top: 16px; }
        .footer { margin-top: 24px; font-size: 12px; color: #6b7280; text-align: center; }
    </style>
</head>
<body>
<div class="container">
    <div class="header">
        <h2>Invitación a {{.FromName}}</h2>
    </div>
    <div class="content">
        <p>Hola,</p>
        <p>Has sido invitado a crear una cuenta con el rol <strong>{{.Role}}</strong>.</p>

        <a href="{{.InviteURL}}" class="btn">Aceptar invitación</a>

        <p style="margin-top: 16px; font-size: 14px; color: #6b7280;">
            La invitación vence en 7 días. Si no esperabas este correo puedes ignorarlo.
        </p>
    </div>
    <div class="footer">
        {{.FromName}}
    </div>
</div>
</body>
</html>
`
