package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/nexhr/hr-panel-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendSlipPublished(to, employeeName, periodLabel, netSalary string) error
	SendCertificateIssued(to, nameOnCertificate, courseName, certificateNumber string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type slipPublishedEmailData struct {
	EmployeeName string
	PeriodLabel  string
	NetSalary    string
}

// SendSlipPublished notifies an employee that their salary slip is available
func (s *emailServiceImpl) SendSlipPublished(to, employeeName, periodLabel, netSalary string) error {
	data := slipPublishedEmailData{
		EmployeeName: employeeName,
		PeriodLabel:  periodLabel,
		NetSalary:    netSalary,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "slip_published.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Your salary slip for %s is ready", periodLabel), body.String())
}

type certificateIssuedEmailData struct {
	NameOnCertificate string
	CourseName        string
	CertificateNumber string
}

// SendCertificateIssued notifies the recipient that their certificate has been issued
func (s *emailServiceImpl) SendCertificateIssued(to, nameOnCertificate, courseName, certificateNumber string) error {
	data := certificateIssuedEmailData{
		NameOnCertificate: nameOnCertificate,
		CourseName:        courseName,
		CertificateNumber: certificateNumber,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "certificate_issued.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Certificate issued for %s", courseName), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
