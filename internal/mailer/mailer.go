package mailer

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/abhay7074/nexamind-payments/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Sender abstracts gomail's dialer so tests can capture outgoing messages.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EbookMailer delivers the purchase-confirmation email carrying the ebook
// download link. Delivery is link-based; the package itself is hosted.
type EbookMailer struct {
	From        string
	FromName    string
	DownloadURL string
	Product     string
	Sender      Sender
}

func New(cfg config.Email, product config.Product) *EbookMailer {
	return &EbookMailer{
		From:        cfg.User,
		FromName:    cfg.FromName,
		DownloadURL: cfg.DownloadURL,
		Product:     product.Name,
		Sender:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.User, cfg.Password),
	}
}

// SendEbook sends the download email. An empty name falls back to the local
// part of the address, matching what the storefront shows the customer.
func (m *EbookMailer) SendEbook(ctx context.Context, toEmail, toName, orderID string) error {
	if toEmail == "" {
		return fmt.Errorf("destination email is required")
	}
	if toName == "" {
		toName = strings.SplitN(toEmail, "@", 2)[0]
	}

	data := templateData{
		Name:        toName,
		OrderID:     orderID,
		Product:     m.Product,
		DownloadURL: m.DownloadURL,
	}

	var html bytes.Buffer
	if err := ebookHTMLTemplate.Execute(&html, data); err != nil {
		return fmt.Errorf("error rendering email body: %w", err)
	}
	var text bytes.Buffer
	if err := ebookTextTemplate.Execute(&text, data); err != nil {
		return fmt.Errorf("error rendering email text body: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.From, m.FromName)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "🎉 Your NexaMind AI Mastery Guide is Ready!")
	msg.SetBody("text/plain", text.String())
	msg.AddAlternative("text/html", html.String())

	if err := m.Sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending ebook email: %w", err)
	}

	logrus.Infof("Ebook email sent to %s for order %s", toEmail, orderID)

	return nil
}
