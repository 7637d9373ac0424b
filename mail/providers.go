package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	gomail "github.com/wneessen/go-mail"
	"golang.org/x/oauth2"

	"github.com/cquiroga/briefing-wizard/config"
)

// apiProvider posts through the hosted transactional HTTP API (SendGrid v3).
type apiProvider struct {
	cfg    config.Mail
	client *http.Client
}

func (p *apiProvider) Name() string { return "sendgrid-api" }

func (p *apiProvider) Configured() bool {
	return realCredential(p.cfg.APIKey) && p.cfg.APIUrl != ""
}

func (p *apiProvider) Send(ctx context.Context, from string, msg Message) error {
	type addr struct {
		Email string `json:"email"`
	}
	body := map[string]any{
		"personalizations": []map[string]any{{"to": []addr{{Email: msg.To}}}},
		"from":             map[string]string{"email": from, "name": "Briefing System"},
		"subject":          msg.Subject,
		"content":          []map[string]string{{"type": "text/html", "value": msg.HTML}},
	}
	if len(msg.Attachments) > 0 {
		var atts []map[string]string
		for _, a := range msg.Attachments {
			atts = append(atts, map[string]string{
				"content":  base64.StdEncoding.EncodeToString(a.Content),
				"type":     a.ContentType,
				"filename": a.Filename,
			})
		}
		body["attachments"] = atts
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.APIUrl, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := p.client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// response body is dropped: it can echo request content
	if resp.StatusCode >= 300 {
		return fmt.Errorf("transactional api: status %d", resp.StatusCode)
	}
	return nil
}

// smtpPassProvider relays through an app-password-authenticated SMTP host
// (implicit TLS, port 465).
type smtpPassProvider struct {
	cfg config.Mail
}

func (p *smtpPassProvider) Name() string { return "smtp-apppass" }

func (p *smtpPassProvider) Configured() bool {
	return p.cfg.SMTPUser != "" && realCredential(p.cfg.SMTPPass)
}

func (p *smtpPassProvider) Send(ctx context.Context, from string, msg Message) error {
	client, err := gomail.NewClient(p.cfg.SMTPHost,
		gomail.WithSSLPort(false),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(p.cfg.SMTPUser),
		gomail.WithPassword(p.cfg.SMTPPass),
	)
	if err != nil {
		return err
	}
	m, err := buildMsg(from, msg)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, m)
}

// smtpOAuthProvider relays through an XOAUTH2-authenticated SMTP host,
// minting access tokens from a refresh token.
type smtpOAuthProvider struct {
	cfg config.Mail
}

func (p *smtpOAuthProvider) Name() string { return "smtp-oauth2" }

func (p *smtpOAuthProvider) Configured() bool {
	return realCredential(p.cfg.OAuthClientID) &&
		realCredential(p.cfg.OAuthClientSecret) &&
		realCredential(p.cfg.OAuthRefreshToken) &&
		p.cfg.From != ""
}

func (p *smtpOAuthProvider) Send(ctx context.Context, from string, msg Message) error {
	conf := &oauth2.Config{
		ClientID:     p.cfg.OAuthClientID,
		ClientSecret: p.cfg.OAuthClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: p.cfg.OAuthTokenURL},
	}
	tok, err := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: p.cfg.OAuthRefreshToken}).Token()
	if err != nil {
		return fmt.Errorf("oauth2 token: %w", err)
	}

	client, err := gomail.NewClient(p.cfg.SMTPHost,
		gomail.WithPort(587),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithSMTPAuth(gomail.SMTPAuthXOAUTH2),
		gomail.WithUsername(from),
		gomail.WithPassword(tok.AccessToken),
	)
	if err != nil {
		return err
	}
	m, err := buildMsg(from, msg)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, m)
}

// smtpFallbackProvider is the second transactional path: the hosted service's
// SMTP relay, authenticated with the same API key.
type smtpFallbackProvider struct {
	cfg config.Mail
}

func (p *smtpFallbackProvider) Name() string { return "smtp-fallback" }

func (p *smtpFallbackProvider) Configured() bool {
	return realCredential(p.cfg.APIKey) && p.cfg.FallbackSMTPHost != ""
}

func (p *smtpFallbackProvider) Send(ctx context.Context, from string, msg Message) error {
	client, err := gomail.NewClient(p.cfg.FallbackSMTPHost,
		gomail.WithPort(587),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername("apikey"),
		gomail.WithPassword(p.cfg.APIKey),
	)
	if err != nil {
		return err
	}
	m, err := buildMsg(from, msg)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, m)
}

func buildMsg(from string, msg Message) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.FromFormat("Briefing System", from); err != nil {
		return nil, err
	}
	if err := m.To(msg.To); err != nil {
		return nil, err
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	for _, a := range msg.Attachments {
		m.AttachReader(a.Filename, bytes.NewReader(a.Content),
			gomail.WithFileContentType(gomail.ContentType(a.ContentType)))
	}
	return m, nil
}
