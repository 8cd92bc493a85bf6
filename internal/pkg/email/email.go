package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendActivation(to, employeeName, companyName, activationLink, expiresAt string) error
	SendOvertimeStatus(to, employeeName, requestDate, timeRange, hours, amount, status, reason string) error
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

type activationEmailData struct {
	EmployeeName   string
	CompanyName    string
	ActivationLink string
	ExpiresAt      string
}

// SendActivation sends the account-activation link to a newly registered employee
func (s *emailServiceImpl) SendActivation(to, employeeName, companyName, activationLink, expiresAt string) error {
	data := activationEmailData{
		EmployeeName:   employeeName,
		CompanyName:    companyName,
		ActivationLink: activationLink,
		ExpiresAt:      expiresAt,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "activation.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Activate your %s overtime account", companyName), body.String())
}

type overtimeStatusEmailData struct {
	EmployeeName string
	RequestDate  string
	TimeRange    string
	Hours        string
	Amount       string
	Status       string
	Reason       string
}

// SendOvertimeStatus notifies an employee that a request was approved or rejected
func (s *emailServiceImpl) SendOvertimeStatus(to, employeeName, requestDate, timeRange, hours, amount, status, reason string) error {
	data := overtimeStatusEmailData{
		EmployeeName: employeeName,
		RequestDate:  requestDate,
		TimeRange:    timeRange,
		Hours:        hours,
		Amount:       amount,
		Status:       status,
		Reason:       reason,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "overtime_status.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Overtime request %s", status), body.String())
}

// sendHTML delivers an HTML email with simple retry on transient failures
func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.cfg.From, to, subject, htmlBody,
	))

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		lastErr = smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg)
		if lastErr == nil {
			return nil
		}
		slog.Warn("Email delivery failed", "to", to, "attempt", attempt, "error", lastErr)
		time.Sleep(time.Duration(attempt) * time.Second)
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
