package config

import (
	"errors"
	"flag"
	"net"
	"regexp"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr              string
	DBUrl             string
	TokenSecret       string
	TokenTTL          time.Duration
	AdminPassword     string
	AdminPasswordHash string
	Debug             bool

	Mail Mail
}

// Mail holds email delivery settings. Credentials come from the environment
// so they never end up in shell history or process listings.
type Mail struct {
	From        string        `env:"EMAIL_FROM"`
	AdminTo     string        `env:"EMAIL_TO"`
	SendTimeout time.Duration `env:"EMAIL_SEND_TIMEOUT" envDefault:"15s"`

	// hosted transactional API
	APIKey string `env:"SENDGRID_API_KEY"`
	APIUrl string `env:"SENDGRID_API_URL" envDefault:"https://api.sendgrid.com/v3/mail/send"`

	// app-password SMTP relay
	SMTPHost string `env:"EMAIL_SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPUser string `env:"EMAIL_USER"`
	SMTPPass string `env:"EMAIL_PASS"`

	// OAuth2 SMTP relay
	OAuthClientID     string `env:"GMAIL_CLIENT_ID"`
	OAuthClientSecret string `env:"GMAIL_CLIENT_SECRET"`
	OAuthRefreshToken string `env:"GMAIL_REFRESH_TOKEN"`
	OAuthTokenURL     string `env:"GMAIL_TOKEN_URL" envDefault:"https://oauth2.googleapis.com/token"`

	// transactional SMTP fallback
	FallbackSMTPHost string `env:"SENDGRID_SMTP_HOST" envDefault:"smtp.sendgrid.net"`
}

func ParseFlags() (cfg Config, err error) {
	var host string
	flag.StringVar(&host, "host", "0.0.0.0", "listen host name (default 0.0.0.0)")
	var port uint
	flag.UintVar(&port, "port", 80, "listen port number (default 80)")
	flag.StringVar(&cfg.DBUrl, "db-url", "briefings.sqlite", "path to SQLite3 DB file (default briefings.sqlite)")
	flag.StringVar(&cfg.TokenSecret, "token-secret", "", "secret key for admin session tokens")
	var ttl uint
	flag.UintVar(&ttl, "token-ttl", 3600, "admin session token TTL in seconds (default 3600)")
	flag.StringVar(&cfg.AdminPassword, "admin-password", "", "shared admin password")
	flag.StringVar(&cfg.AdminPasswordHash, "admin-password-hash", "", "bcrypt hash of the admin password (takes precedence over -admin-password)")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.TokenTTL = time.Duration(ttl) * time.Second

	if cfg.TokenSecret == "" {
		err = errors.New("missing parameter -token-secret")
		return
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		err = errors.New("missing parameter -admin-password or -admin-password-hash")
		return
	}

	err = env.Parse(&cfg.Mail)
	if cfg.Mail.AdminTo == "" {
		cfg.Mail.AdminTo = cfg.Mail.From
	}
	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}
