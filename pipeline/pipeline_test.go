package pipeline

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cquiroga/briefing-wizard/mail"
	"github.com/cquiroga/briefing-wizard/model"
	"github.com/cquiroga/briefing-wizard/ratelimit"
)

type fakeRecorder struct {
	err  error
	last model.SubmissionPayload
}

func (r *fakeRecorder) Create(ctx context.Context, payload model.SubmissionPayload) (model.Briefing, error) {
	r.last = payload
	if r.err != nil {
		return model.Briefing{}, r.err
	}
	return model.Briefing{ID: "b1", Type: model.BriefingType(payload.Type)}, nil
}

type fakeRenderer struct {
	docxErr error
	xlsxErr error
}

func (r fakeRenderer) Docx(model.BriefingData) ([]byte, error) {
	return []byte("PKdocx"), r.docxErr
}

func (r fakeRenderer) Xlsx(model.BriefingData) ([]byte, error) {
	return []byte("PKxlsx"), r.xlsxErr
}

type fakeMailer struct {
	fail bool
	sent []mail.Message
}

func (m *fakeMailer) Send(ctx context.Context, msg mail.Message) mail.Result {
	m.sent = append(m.sent, msg)
	if m.fail {
		return mail.Result{Provider: "none", Err: errors.New("boom")}
	}
	return mail.Result{Success: true, Provider: "fake"}
}

func testPipeline() (*Pipeline, *fakeRecorder, *fakeMailer) {
	rec := &fakeRecorder{}
	mailer := &fakeMailer{}
	p := &Pipeline{
		Limiter:    ratelimit.New(ratelimit.DefaultMax, time.Minute),
		Store:      rec,
		Docs:       fakeRenderer{},
		Mail:       mailer,
		AdminEmail: "admin@test.cl",
	}
	return p, rec, mailer
}

const validBody = `{
	"type": "LANDING",
	"clientName": "Ana",
	"clientEmail": "ana@test.cl",
	"contactData": {"businessName": "Panadería San José"},
	"contentData": {"sections": ["hero", "faq"]},
	"designData": {"designStyle": "creativo"},
	"extraData": {"deadline": "urgente"}
}`

func TestSubmit_Success(t *testing.T) {
	p, _, mailer := testPipeline()

	res, rej := p.Submit(context.Background(), "1.2.3.4", strings.NewReader(validBody))
	if rej != nil {
		t.Fatalf("rejected: %+v", rej)
	}
	if res.ID == "" || !res.DocsGenerated || !res.EmailSent || !res.ClientEmailSent {
		t.Errorf("result = %+v", res)
	}

	if len(mailer.sent) != 2 {
		t.Fatalf("sent %d messages, want admin + client", len(mailer.sent))
	}
	admin, client := mailer.sent[0], mailer.sent[1]
	if admin.To != "admin@test.cl" || len(admin.Attachments) != 2 {
		t.Errorf("admin message = %+v", admin)
	}
	if !strings.Contains(admin.Subject, "Panadería San José") {
		t.Errorf("admin subject = %q", admin.Subject)
	}
	if client.To != "ana@test.cl" || len(client.Attachments) != 0 {
		t.Errorf("client message = %+v", client)
	}
}

func TestSubmit_RateLimited(t *testing.T) {
	p, _, _ := testPipeline()
	p.Limiter = ratelimit.New(1, time.Minute)

	if _, rej := p.Submit(context.Background(), "1.2.3.4", strings.NewReader(validBody)); rej != nil {
		t.Fatalf("first submit rejected: %+v", rej)
	}
	_, rej := p.Submit(context.Background(), "1.2.3.4", strings.NewReader(validBody))
	if rej == nil || rej.Code != CodeRateLimited || rej.Status != http.StatusTooManyRequests {
		t.Errorf("reject = %+v, want RATE_LIMITED 429", rej)
	}
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{not json`},
		{"unknown type", `{"type": "BLOG", "clientName": "Ana"}`},
		{"missing name", `{"type": "LANDING", "clientName": "  "}`},
		{"bad email", `{"type": "LANDING", "clientName": "Ana", "clientEmail": "nope"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, rec, _ := testPipeline()
			_, rej := p.Submit(context.Background(), "1.2.3.4", strings.NewReader(tt.body))
			if rej == nil || rej.Code != CodeValidation || rej.Status != http.StatusBadRequest {
				t.Errorf("reject = %+v, want VALIDATION_ERROR 400", rej)
			}
			if rec.last.Type != "" {
				t.Error("rejected submission must not reach the store")
			}
		})
	}
}

func TestSubmit_Sanitizes(t *testing.T) {
	p, rec, _ := testPipeline()

	body := `{
		"type": "LANDING",
		"clientName": "<b>Ana</b>",
		"contactData": {"businessName": "Pan <b>rico</b>"}
	}`
	_, rej := p.Submit(context.Background(), "1.2.3.4", strings.NewReader(body))
	if rej != nil {
		t.Fatalf("rejected: %+v", rej)
	}
	if rec.last.ClientName != "Ana" {
		t.Errorf("clientName = %q, want tags stripped", rec.last.ClientName)
	}
	if got := rec.last.ContactData["businessName"]; got != "Pan rico" {
		t.Errorf("businessName = %q", got)
	}
}

func TestSubmit_StoreError(t *testing.T) {
	p, rec, mailer := testPipeline()
	rec.err = errors.New("disk full")

	res, rej := p.Submit(context.Background(), "1.2.3.4", strings.NewReader(validBody))
	if res != nil {
		t.Fatalf("got result %+v, want reject", res)
	}
	if rej.Code != CodeDB || rej.Status != http.StatusInternalServerError {
		t.Errorf("reject = %+v, want DB_ERROR 500", rej)
	}
	if len(mailer.sent) != 0 {
		t.Error("no mail may be sent when persistence fails")
	}
}

func TestSubmit_RendererFailureDegrades(t *testing.T) {
	p, _, mailer := testPipeline()
	p.Docs = fakeRenderer{docxErr: errors.New("render boom")}

	res, rej := p.Submit(context.Background(), "1.2.3.4", strings.NewReader(validBody))
	if rej != nil {
		t.Fatalf("rejected: %+v", rej)
	}
	if res.DocsGenerated {
		t.Error("DocsGenerated must be false when any document fails")
	}
	if !res.EmailSent {
		t.Error("admin email still goes out without attachments")
	}
	if len(mailer.sent[0].Attachments) != 0 {
		t.Error("degraded admin message must carry no attachments")
	}
}

func TestSubmit_MailFailureDegrades(t *testing.T) {
	p, _, mailer := testPipeline()
	mailer.fail = true

	res, rej := p.Submit(context.Background(), "1.2.3.4", strings.NewReader(validBody))
	if rej != nil {
		t.Fatalf("rejected: %+v", rej)
	}
	if res.EmailSent || res.ClientEmailSent {
		t.Errorf("result = %+v, want mail flags false", res)
	}
	if res.ID == "" || !res.DocsGenerated {
		t.Error("persistence and documents must survive mail failure")
	}
}

func TestSubmit_NoClientEmail(t *testing.T) {
	p, _, mailer := testPipeline()

	body := `{"type": "LANDING", "clientName": "Ana"}`
	res, rej := p.Submit(context.Background(), "1.2.3.4", strings.NewReader(body))
	if rej != nil {
		t.Fatalf("rejected: %+v", rej)
	}
	if res.ClientEmailSent {
		t.Error("no client email on record, flag must be false")
	}
	if len(mailer.sent) != 1 {
		t.Errorf("sent %d messages, want admin only", len(mailer.sent))
	}
}
