package email

import (
	"bytes"
	"html/template"
	"path/filepath"
	"time"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"

	"github.com/boasnovas/associacao-backend/internal/config"
)

type EmailService struct {
	client       *resend.Client
	from         string
	fromName     string
	contactTo    string
	frontendURL  string
	templatesDir string
	logger       *zap.SugaredLogger
}

func NewEmailService(cfg *config.Config, logger *zap.SugaredLogger) *EmailService {
	return &EmailService{
		client:       resend.NewClient(cfg.Email.ResendAPIKey),
		from:         cfg.Email.FromAddress,
		fromName:     cfg.Email.FromName,
		contactTo:    cfg.Email.ContactTo,
		frontendURL:  cfg.FrontendURL,
		templatesDir: "pkg/email/templates",
		logger:       logger,
	}
}

// SendPasswordResetEmail envia o link de redefinição. O token vai no
// fragmento da URL, no mesmo formato que a página de recuperação espera.
func (s *EmailService) SendPasswordResetEmail(email, resetToken string) error {
	resetLink := s.frontendURL + "/auth/reset-password#access_token=" + resetToken + "&type=recovery"

	html, err := s.parseTemplate("reset-password.html", map[string]interface{}{
		"ResetLink": resetLink,
		"Email":     email,
		"Year":      time.Now().Year(),
	})
	if err != nil {
		s.logger.Errorw("failed to parse reset password template", "email", email, "error", err)
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{email},
		Subject: "Redefinição de senha",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Errorw("failed to send reset password email", "email", email, "error", err)
		return err
	}

	s.logger.Infow("reset password email sent", "email", email, "id", resp.Id)
	return nil
}

// SendContactMessage repassa o formulário de contato para a caixa da
// associação; o reply-to aponta para quem escreveu.
func (s *EmailService) SendContactMessage(name, fromEmail, phone, subject, message string) error {
	if subject == "" {
		subject = "Contato pelo site"
	}

	html, err := s.parseTemplate("contact.html", map[string]interface{}{
		"Name":    name,
		"Email":   fromEmail,
		"Phone":   phone,
		"Message": message,
		"Year":    time.Now().Year(),
	})
	if err != nil {
		s.logger.Errorw("failed to parse contact template", "from", fromEmail, "error", err)
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{s.contactTo},
		ReplyTo: fromEmail,
		Subject: subject,
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Errorw("failed to send contact message", "from", fromEmail, "error", err)
		return err
	}

	s.logger.Infow("contact message sent", "from", fromEmail, "id", resp.Id)
	return nil
}

func (s *EmailService) parseTemplate(templateName string, data interface{}) (string, error) {
	tmpl, err := template.ParseFiles(filepath.Join(s.templatesDir, templateName))
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}

	return body.String(), nil
}
