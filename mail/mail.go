// Package mail delivers notification emails through an ordered chain of
// providers. Each provider is optional (enabled by configuration presence)
// and isolated: a provider failure is logged and the next one is tried.
package mail

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/cquiroga/briefing-wizard/config"
	"github.com/cquiroga/briefing-wizard/log"
	"github.com/cquiroga/briefing-wizard/validate"
)

const maxSubjectLen = 200

type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

type Message struct {
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Result reports the outcome of a send: which provider won, or
// provider "none" when the recipient was invalid, nothing was configured, or
// every configured provider failed.
type Result struct {
	Success  bool
	Provider string
	Err      error
}

// Provider is one concrete transport capable of sending a message.
type Provider interface {
	Name() string
	Configured() bool
	Send(ctx context.Context, from string, msg Message) error
}

type Sender struct {
	from      string
	timeout   time.Duration
	providers []Provider
}

// New builds the provider chain in priority order: hosted transactional API,
// app-password SMTP, OAuth2 SMTP, transactional SMTP fallback.
func New(cfg config.Mail) *Sender {
	return NewWithProviders(cfg.From, cfg.SendTimeout,
		&apiProvider{cfg: cfg},
		&smtpPassProvider{cfg: cfg},
		&smtpOAuthProvider{cfg: cfg},
		&smtpFallbackProvider{cfg: cfg},
	)
}

func NewWithProviders(from string, timeout time.Duration, providers ...Provider) *Sender {
	return &Sender{from: from, timeout: timeout, providers: providers}
}

var reHeaderUnsafe = regexp.MustCompile("[\r\n\t]")

// SanitizeSubject strips CR/LF/TAB (header injection) and caps the length.
func SanitizeSubject(subject string) string {
	subject = reHeaderUnsafe.ReplaceAllString(subject, "")
	if runes := []rune(subject); len(runes) > maxSubjectLen {
		subject = string(runes[:maxSubjectLen])
	}
	return subject
}

// Send tries each configured provider in order and stops at the first that
// completes. Provider errors never propagate to the caller beyond the Result,
// and never carry credential material.
func (s *Sender) Send(ctx context.Context, msg Message) Result {
	if s.from == "" {
		log.Warn("mail.send: EMAIL_FROM not configured, skipping")
		return Result{Provider: "none", Err: errors.New("sender address not configured")}
	}
	if !validate.IsEmail(msg.To) {
		log.Warnf("mail.send: invalid recipient %q", msg.To)
		return Result{Provider: "none", Err: errors.New("invalid recipient email")}
	}
	msg.Subject = SanitizeSubject(msg.Subject)

	var lastErr error
	for _, p := range s.providers {
		if !p.Configured() {
			log.Debugf("mail.provider.%s: skipped (not configured)", p.Name())
			continue
		}

		attemptCtx := ctx
		cancel := func() {}
		if s.timeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, s.timeout)
		}
		err := p.Send(attemptCtx, s.from, msg)
		cancel()

		if err == nil {
			log.Infof("mail.provider.%s: sent to %s", p.Name(), msg.To)
			return Result{Success: true, Provider: p.Name()}
		}
		log.Errorf("mail.provider.%s: %s", p.Name(), err)
		lastErr = err
	}

	if lastErr == nil {
		lastErr = errors.New("no email provider configured")
	} else {
		lastErr = errors.New("all email providers failed")
	}
	log.Warn("mail.send:", lastErr)
	return Result{Provider: "none", Err: lastErr}
}

// realCredential rejects empty values and common placeholders so a template
// .env never half-enables a provider.
func realCredential(val string) bool {
	if val == "" {
		return false
	}
	lower := strings.ToLower(val)
	for _, p := range []string{"...", "your_", "xxx", "placeholder", "change_me", "changeme", "todo"} {
		if strings.Contains(lower, p) {
			return false
		}
	}
	return true
}
