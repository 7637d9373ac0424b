// Package pipeline runs a briefing submission through its stages: rate limit,
// parse, validate, sanitize, persist, document generation and email delivery.
// Persistence is the only stage allowed to fail the request; everything after
// it degrades to flags in the response.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/cquiroga/briefing-wizard/docgen"
	"github.com/cquiroga/briefing-wizard/log"
	"github.com/cquiroga/briefing-wizard/mail"
	"github.com/cquiroga/briefing-wizard/model"
	"github.com/cquiroga/briefing-wizard/ratelimit"
	"github.com/cquiroga/briefing-wizard/sanitize"
	"github.com/cquiroga/briefing-wizard/validate"
)

const maxNameLen = 500

// Recorder persists accepted submissions.
type Recorder interface {
	Create(ctx context.Context, payload model.SubmissionPayload) (model.Briefing, error)
}

// Renderer produces the attachment documents for a record.
type Renderer interface {
	Docx(data model.BriefingData) ([]byte, error)
	Xlsx(data model.BriefingData) ([]byte, error)
}

// Mailer delivers a single message, reporting the winning provider.
type Mailer interface {
	Send(ctx context.Context, msg mail.Message) mail.Result
}

// DocRenderer is the production Renderer.
type DocRenderer struct{}

func (DocRenderer) Docx(data model.BriefingData) ([]byte, error) { return docgen.RenderDocx(data) }
func (DocRenderer) Xlsx(data model.BriefingData) ([]byte, error) { return docgen.RenderXlsx(data) }

type Pipeline struct {
	Limiter    *ratelimit.Limiter
	Store      Recorder
	Docs       Renderer
	Mail       Mailer
	AdminEmail string
}

// Reject is a refused submission: nothing was persisted.
type Reject struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"error"`
}

const (
	CodeRateLimited = "RATE_LIMITED"
	CodeValidation  = "VALIDATION_ERROR"
	CodeDB          = "DB_ERROR"
	CodeUnknown     = "UNKNOWN"
)

var (
	rejectRateLimited = &Reject{
		Status:  http.StatusTooManyRequests,
		Code:    CodeRateLimited,
		Message: "Demasiadas solicitudes. Por favor espera un momento antes de intentar de nuevo.",
	}
	rejectDB = &Reject{
		Status:  http.StatusInternalServerError,
		Code:    CodeDB,
		Message: "Error al guardar el briefing. Intenta de nuevo.",
	}
)

func rejectValidation(msg string) *Reject {
	return &Reject{Status: http.StatusBadRequest, Code: CodeValidation, Message: msg}
}

// Result is an accepted submission. The record is persisted; the flags report
// how far the best-effort stages got.
type Result struct {
	ID              string `json:"id"`
	DocsGenerated   bool   `json:"docsGenerated"`
	EmailSent       bool   `json:"emailSent"`
	ClientEmailSent bool   `json:"clientEmailSent"`
}

// Submit processes one submission from the given client address. It returns
// either a Result (persisted, possibly degraded) or a Reject, never both.
func (p *Pipeline) Submit(ctx context.Context, addr string, body io.Reader) (*Result, *Reject) {
	if !p.Limiter.Allow(addr) {
		log.Warnf("pipeline.rate_limit: rejected %s", addr)
		return nil, rejectRateLimited
	}

	var payload model.SubmissionPayload
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		log.Debugf("pipeline.parse: %s", err)
		return nil, rejectValidation("Datos del briefing inválidos.")
	}

	if reject := validatePayload(payload); reject != nil {
		return nil, reject
	}

	payload = sanitizePayload(payload)

	record, err := p.Store.Create(ctx, payload)
	if err != nil {
		log.Errorf("pipeline.persist: %s", err)
		return nil, rejectDB
	}
	log.Infof("pipeline.persist: briefing %s (%s)", record.ID, record.Type)

	result := &Result{ID: record.ID}
	data := model.BriefingData{
		Type:        payload.Type,
		ClientName:  payload.ClientName,
		ClientEmail: payload.ClientEmail,
		Contact:     payload.ContactData,
		Content:     payload.ContentData,
		Design:      payload.DesignData,
		Extra:       payload.ExtraData,
	}

	docx, xlsx := p.renderDocs(data)
	result.DocsGenerated = docx != nil && xlsx != nil

	result.EmailSent = p.sendAdminMail(ctx, data, docx, xlsx)
	if validate.IsEmail(data.ClientEmail) {
		result.ClientEmailSent = p.sendClientMail(ctx, data)
	}

	return result, nil
}

func validatePayload(payload model.SubmissionPayload) *Reject {
	if !model.ValidType(payload.Type) {
		return rejectValidation("Tipo de briefing inválido.")
	}
	if strings.TrimSpace(payload.ClientName) == "" {
		return rejectValidation("El nombre del cliente es obligatorio.")
	}
	if payload.ClientEmail != "" && !validate.IsEmail(payload.ClientEmail) {
		return rejectValidation("El email del cliente no es válido.")
	}
	return nil
}

func sanitizePayload(payload model.SubmissionPayload) model.SubmissionPayload {
	payload.ClientName = sanitize.String(payload.ClientName, maxNameLen)
	if payload.ClientName == "" {
		payload.ClientName = "Sin nombre"
	}
	payload.ClientEmail = sanitize.String(payload.ClientEmail, maxNameLen)
	payload.ContactData = sanitize.DeepMap(payload.ContactData)
	payload.ContentData = sanitize.DeepMap(payload.ContentData)
	payload.DesignData = sanitize.DeepMap(payload.DesignData)
	payload.ExtraData = sanitize.DeepMap(payload.ExtraData)
	return payload
}

// renderDocs builds both attachments in parallel. Either both documents come
// back or neither does, so the response flag stays honest.
func (p *Pipeline) renderDocs(data model.BriefingData) (docx, xlsx []byte) {
	var g errgroup.Group
	g.Go(func() (err error) {
		docx, err = p.Docs.Docx(data)
		return
	})
	g.Go(func() (err error) {
		xlsx, err = p.Docs.Xlsx(data)
		return
	})
	if err := g.Wait(); err != nil {
		log.Errorf("pipeline.render_docs: %s", err)
		return nil, nil
	}
	return docx, xlsx
}

func (p *Pipeline) sendAdminMail(ctx context.Context, data model.BriefingData, docx, xlsx []byte) bool {
	html, err := docgen.AdminEmailHTML(data)
	if err != nil {
		log.Errorf("pipeline.compose_html: %s", err)
		html = docgen.FallbackAdminHTML(data)
	}

	msg := mail.Message{
		To:      p.AdminEmail,
		Subject: fmt.Sprintf("Nuevo briefing: %s (%s)", data.BusinessName(), docgen.TypeLabel(data.Type)),
		HTML:    html,
	}
	if docx != nil && xlsx != nil {
		name := fileSlug(data.BusinessName())
		msg.Attachments = []mail.Attachment{
			{
				Filename:    "briefing-" + name + ".docx",
				ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
				Content:     docx,
			},
			{
				Filename:    "briefing-" + name + ".xlsx",
				ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
				Content:     xlsx,
			},
		}
	}

	return p.Mail.Send(ctx, msg).Success
}

func (p *Pipeline) sendClientMail(ctx context.Context, data model.BriefingData) bool {
	html, err := docgen.ClientEmailHTML(data)
	if err != nil {
		log.Errorf("pipeline.compose_html: %s", err)
		html = docgen.FallbackClientHTML(data)
	}

	return p.Mail.Send(ctx, mail.Message{
		To:      data.ClientEmail,
		Subject: "Hemos recibido tu briefing",
		HTML:    html,
	}).Success
}

// fileSlug reduces a business name to something safe for an attachment name.
func fileSlug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "cliente"
	}
	if len(slug) > 60 {
		slug = slug[:60]
	}
	return slug
}
