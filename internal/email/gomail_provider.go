package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// GomailProvider implements Provider over an authenticated SMTP relay.
type GomailProvider struct {
	cfg SMTPConfig
}

func NewGomailProvider(cfg SMTPConfig) (*GomailProvider, error) {
	if cfg.Host == "" || cfg.FromEmail == "" {
		return nil, fmt.Errorf("smtp host and from address are required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &GomailProvider{cfg: cfg}, nil
}

func (p *GomailProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.FromEmail, p.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(p.cfg.Host, p.cfg.Port, p.cfg.Username, p.cfg.Password)

	return d.DialAndSend(m)
}
