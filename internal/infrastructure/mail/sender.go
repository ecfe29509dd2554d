// Package mail implementa el envío de correo SMTP con gomail. Cuando SMTP no
// está configurado (desarrollo) se usa NopSender, que solo lo deja en el log.
package mail

import (
	"context"

	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
	gomail "gopkg.in/gomail.v2"
)

// SMTPSender envía correo vía SMTP.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	log    *logger.Logger
}

// NewSMTPSender construye el sender desde la configuración SMTP.
func NewSMTPSender(cfg config.SMTPConfig, log *logger.Logger) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		log:    log,
	}
}

// Send envía un correo de texto plano a los destinatarios. Respeta la
// cancelación del contexto antes de abrir la conexión.
func (s *SMTPSender) Send(ctx context.Context, to []string, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return err
	}
	s.log.Info().Strs("to", to).Str("subject", subject).Msg("correo enviado")
	return nil
}

// NopSender descarta los correos; se usa cuando SMTP no está configurado.
type NopSender struct {
	log *logger.Logger
}

// NewNopSender construye el sender nulo.
func NewNopSender(log *logger.Logger) *NopSender {
	return &NopSender{log: log}
}

// Send no envía nada; registra el correo descartado.
func (s *NopSender) Send(_ context.Context, to []string, subject, _ string) error {
	s.log.Warn().Strs("to", to).Str("subject", subject).Msg("SMTP sin configurar: correo descartado")
	return nil
}
