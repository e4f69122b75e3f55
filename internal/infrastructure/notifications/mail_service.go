package notifications

import (
	"crypto/tls"
	"fmt"
	"log"
	"strconv"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	"gopkg.in/gomail.v2"
)

// Settings keys consumed from the settings cache. SMTP configuration is
// runtime policy, so changing it only requires a cache refresh.
const (
	settingSMTPHost         = "SMTP_HOST"
	settingSMTPPort         = "SMTP_PORT"
	settingSMTPSecure       = "SMTP_SECURE"
	settingSMTPUser         = "SMTP_USER"
	settingSMTPPassword     = "SMTP_PASSWORD"
	settingSMTPFrom         = "SMTP_FROM"
	settingSMTPFromName     = "SMTP_FROM_NAME"
	settingSMTPRejectUnauth = "SMTP_REJECT_UNAUTHORIZED"
)

// MailServiceImpl implements domain.NotificationService over SMTP
type MailServiceImpl struct {
	settings domain.SettingsCache
}

// NewMailService creates a new SMTP notification service
func NewMailService(settings domain.SettingsCache) domain.NotificationService {
	return &MailServiceImpl{settings: settings}
}

func (m *MailServiceImpl) dialer() *gomail.Dialer {
	host := m.settings.Get(settingSMTPHost, "smtp.gmail.com")
	port, err := strconv.Atoi(m.settings.Get(settingSMTPPort, "587"))
	if err != nil {
		port = 587
	}
	user := m.settings.Get(settingSMTPUser, "")
	pass := m.settings.Get(settingSMTPPassword, "")

	d := gomail.NewDialer(host, port, user, pass)
	d.SSL = m.settings.Get(settingSMTPSecure, "false") == "true"
	d.TLSConfig = &tls.Config{
		ServerName:         host,
		InsecureSkipVerify: m.settings.Get(settingSMTPRejectUnauth, "false") != "true",
	}
	return d
}

// SendEmail implements domain.NotificationService. When no SMTP user is
// configured the message is logged instead of sent, so development
// environments work without a mail server.
func (m *MailServiceImpl) SendEmail(to, subject, body string) error {
	if m.settings.Get(settingSMTPUser, "") == "" {
		log.Printf("[MOCK EMAIL] To: %s, Subject: %s", to, subject)
		return nil
	}

	from := m.settings.Get(settingSMTPFrom, "noreply@talkntrade.com")
	fromName := m.settings.Get(settingSMTPFromName, "TalkNTrade")

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", from, fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer().DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// VerifyConnection implements domain.NotificationService
func (m *MailServiceImpl) VerifyConnection() error {
	closer, err := m.dialer().Dial()
	if err != nil {
		return fmt.Errorf("smtp connection failed: %w", err)
	}
	return closer.Close()
}
