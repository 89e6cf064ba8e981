package service

import (
	"context"
	"fmt"
	"time"

	"dental-clinic-booking/config"
	"dental-clinic-booking/internal/domain/entity"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

const notificationTimeout = 10 * time.Second

// EmailMessage is a single outbound email
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// EmailSender delivers email
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// SMSSender delivers text messages
type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

// SendGridSender sends email through the SendGrid API
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridSender(cfg config.NotifyConfig) *SendGridSender {
	return &SendGridSender{
		client:    sendgrid.NewSendClient(cfg.SendGridAPIKey),
		fromEmail: cfg.SendGridFromEmail,
		fromName:  cfg.SendGridFromName,
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg EmailMessage) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Body, msg.Body)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// TwilioSender sends SMS through the Twilio REST API
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(cfg config.NotifyConfig) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		from: cfg.TwilioFromNumber,
	}
}

func (s *TwilioSender) Send(ctx context.Context, to, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}

// LogEmailSender only logs; used when SendGrid is not configured
type LogEmailSender struct {
	log *logrus.Logger
}

func NewLogEmailSender(log *logrus.Logger) *LogEmailSender {
	return &LogEmailSender{log: log}
}

func (s *LogEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	s.log.WithFields(logrus.Fields{"to": msg.To, "subject": msg.Subject}).Info("Email delivery skipped, no provider configured")
	return nil
}

// LogSMSSender only logs; used when Twilio is not configured
type LogSMSSender struct {
	log *logrus.Logger
}

func NewLogSMSSender(log *logrus.Logger) *LogSMSSender {
	return &LogSMSSender{log: log}
}

func (s *LogSMSSender) Send(ctx context.Context, to, body string) error {
	s.log.WithField("to", to).Info("SMS delivery skipped, no provider configured")
	return nil
}

// ConfirmationNotice is what a patient is told once their booking is confirmed
type ConfirmationNotice struct {
	Code        string
	ServiceName string
	Date        time.Time
	Time        string
	Patient     entity.PatientInfo
	ClinicPhone string
}

// NotificationService fans a confirmation out to the channels enabled in clinic settings
type NotificationService interface {
	NotifyConfirmation(ctx context.Context, notice ConfirmationNotice, channels entity.NotificationSettings) error
}

type notificationService struct {
	log   *logrus.Logger
	email EmailSender
	sms   SMSSender
}

func NewNotificationService(log *logrus.Logger, email EmailSender, sms SMSSender) NotificationService {
	return &notificationService{
		log:   log,
		email: email,
		sms:   sms,
	}
}

// NewNotificationServiceFromConfig picks real providers when credentials are present
func NewNotificationServiceFromConfig(log *logrus.Logger, cfg config.NotifyConfig) NotificationService {
	var email EmailSender = NewLogEmailSender(log)
	if cfg.SendGridAPIKey != "" {
		email = NewSendGridSender(cfg)
	}
	var sms SMSSender = NewLogSMSSender(log)
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		sms = NewTwilioSender(cfg)
	}
	return NewNotificationService(log, email, sms)
}

func confirmationText(n ConfirmationNotice) string {
	return fmt.Sprintf(
		"Hello %s,\n\nYour %s appointment is confirmed for %s at %s.\n"+
			"Confirmation code: %s\n\n"+
			"Need to reschedule? Call us at %s.",
		n.Patient.Name, n.ServiceName, n.Date.Format("Monday, January 2, 2006"), n.Time, n.Code, n.ClinicPhone,
	)
}

func (s *notificationService) NotifyConfirmation(ctx context.Context, notice ConfirmationNotice, channels entity.NotificationSettings) error {
	ctx, cancel := context.WithTimeout(ctx, notificationTimeout)
	defer cancel()

	body := confirmationText(notice)
	var firstErr error

	if channels.Email && notice.Patient.Email != "" {
		err := s.email.Send(ctx, EmailMessage{
			To:      notice.Patient.Email,
			ToName:  notice.Patient.Name,
			Subject: fmt.Sprintf("Appointment confirmed - Code: %s", notice.Code),
			Body:    body,
		})
		if err != nil {
			s.log.Warnf("Failed to send confirmation email: %+v", err)
			firstErr = err
		}
	}

	if channels.SMS && notice.Patient.Phone != "" {
		if err := s.sms.Send(ctx, notice.Patient.Phone, body); err != nil {
			s.log.Warnf("Failed to send confirmation SMS: %+v", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if channels.Push {
		s.log.WithField("code", notice.Code).Debug("Push notifications have no delivery channel")
	}

	return firstErr
}
