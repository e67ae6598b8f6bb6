package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/hromada/hromada-api/internal/config"
	"github.com/hromada/hromada-api/pkg/logger"
	"github.com/hromada/hromada-api/pkg/retry"
)

// SMTPMailer delivers mail through a plain SMTP relay. Transient relay
// failures are retried with backoff before the send is reported failed.
type SMTPMailer struct {
	dialer     *gomail.Dialer
	from       string
	adminEmail string
	appURL     string
	logger     *logger.Logger
}

var _ Mailer = (*SMTPMailer)(nil)

func NewSMTP(cfg config.MailConfig, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer:     gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		from:       cfg.From,
		adminEmail: cfg.AdminEmail,
		appURL:     cfg.AppURL,
		logger:     log,
	}
}

// templateData wraps a payload with the values every template may need.
type templateData struct {
	Data   interface{}
	AppURL string
}

func (m *SMTPMailer) send(ctx context.Context, to, subject string, tmpl *template.Template, data interface{}) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	err := retry.Do(ctx, func() error {
		return m.dialer.DialAndSend(msg)
	}, retry.WithMaxAttempts(3))
	if err != nil {
		m.logger.Error(ctx, "Failed to send email",
			"template", tmpl.Name(),
			"to", to,
			"error", err,
		)
		return err
	}

	m.logger.Info(ctx, "Email sent",
		"template", tmpl.Name(),
		"to", to,
	)
	return nil
}

func (m *SMTPMailer) SendSubmissionReceived(ctx context.Context, p SubmissionReceived) error {
	return m.send(ctx, p.ContactEmail, "Project Submission Received - Hromada", submissionReceivedTmpl, p)
}

func (m *SMTPMailer) SendNewSubmissionAlert(ctx context.Context, p NewSubmissionAlert) error {
	subject := fmt.Sprintf("New Project Submission: %s", p.FacilityName)
	return m.send(ctx, m.adminEmail, subject, newSubmissionAlertTmpl, templateData{Data: p, AppURL: m.appURL})
}

func (m *SMTPMailer) SendSubmissionApproved(ctx context.Context, p SubmissionApproved) error {
	return m.send(ctx, p.ContactEmail, "Your Project is Now Live - Hromada", submissionApprovedTmpl, templateData{Data: p, AppURL: m.appURL})
}

func (m *SMTPMailer) SendSubmissionRejected(ctx context.Context, p SubmissionRejected) error {
	return m.send(ctx, p.ContactEmail, "Project Submission Update - Hromada", submissionRejectedTmpl, p)
}

func (m *SMTPMailer) SendDonorWelcome(ctx context.Context, p DonorWelcome) error {
	return m.send(ctx, p.DonorEmail, "Welcome to Hromada - Your Donor Account", donorWelcomeTmpl, templateData{Data: p, AppURL: m.appURL})
}

func (m *SMTPMailer) SendDonationConfirmation(ctx context.Context, p DonationConfirmation) error {
	return m.send(ctx, p.DonorEmail, "Donation Confirmation Received - Hromada", donationConfirmationTmpl, templateData{Data: p, AppURL: m.appURL})
}

func (m *SMTPMailer) SendDonationAlert(ctx context.Context, p DonationAlert) error {
	subject := fmt.Sprintf("New Donation Confirmation: %s", p.ProjectName)
	return m.send(ctx, m.adminEmail, subject, donationAlertTmpl, templateData{Data: p, AppURL: m.appURL})
}

func (m *SMTPMailer) SendDonationForwarded(ctx context.Context, p DonationForwarded) error {
	return m.send(ctx, p.DonorEmail, "Your Donation Has Been Forwarded - Hromada", donationForwardedTmpl, templateData{Data: p, AppURL: m.appURL})
}

func (m *SMTPMailer) SendContactAlert(ctx context.Context, p ContactAlert) error {
	subject := fmt.Sprintf("New Donor Inquiry: %s", p.ProjectName)
	return m.send(ctx, m.adminEmail, subject, contactAlertTmpl, templateData{Data: p, AppURL: m.appURL})
}
