package mail

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeProvider struct {
	name       string
	configured bool
	err        error
	calls      int
	gotSubject string
}

func (p *fakeProvider) Name() string     { return p.name }
func (p *fakeProvider) Configured() bool { return p.configured }
func (p *fakeProvider) Send(ctx context.Context, from string, msg Message) error {
	p.calls++
	p.gotSubject = msg.Subject
	return p.err
}

func TestSend_NoProviders(t *testing.T) {
	s := NewWithProviders("noreply@test.cl", time.Second)
	res := s.Send(context.Background(), Message{To: "ana@test.cl", Subject: "hola"})
	if res.Success || res.Provider != "none" {
		t.Errorf("result = %+v, want failure with provider none", res)
	}
}

func TestSend_UnconfiguredProvidersSkipped(t *testing.T) {
	p1 := &fakeProvider{name: "a"}
	p2 := &fakeProvider{name: "b", configured: true}
	s := NewWithProviders("noreply@test.cl", time.Second, p1, p2)

	res := s.Send(context.Background(), Message{To: "ana@test.cl", Subject: "hola"})
	if !res.Success || res.Provider != "b" {
		t.Errorf("result = %+v, want success via b", res)
	}
	if p1.calls != 0 {
		t.Error("unconfigured provider must not be attempted")
	}
}

func TestSend_FallbackOnError(t *testing.T) {
	p1 := &fakeProvider{name: "primary", configured: true, err: errors.New("boom")}
	p2 := &fakeProvider{name: "backup", configured: true}
	s := NewWithProviders("noreply@test.cl", time.Second, p1, p2)

	res := s.Send(context.Background(), Message{To: "ana@test.cl", Subject: "hola"})
	if !res.Success || res.Provider != "backup" {
		t.Errorf("result = %+v, want success via backup", res)
	}
	if p1.calls != 1 || p2.calls != 1 {
		t.Errorf("calls = %d/%d, want 1/1", p1.calls, p2.calls)
	}
}

func TestSend_AllFail(t *testing.T) {
	p1 := &fakeProvider{name: "a", configured: true, err: errors.New("x")}
	p2 := &fakeProvider{name: "b", configured: true, err: errors.New("y")}
	s := NewWithProviders("noreply@test.cl", time.Second, p1, p2)

	res := s.Send(context.Background(), Message{To: "ana@test.cl", Subject: "hola"})
	if res.Success || res.Provider != "none" || res.Err == nil {
		t.Errorf("result = %+v, want total failure", res)
	}
}

func TestSend_InvalidRecipient(t *testing.T) {
	p := &fakeProvider{name: "a", configured: true}
	s := NewWithProviders("noreply@test.cl", time.Second, p)

	res := s.Send(context.Background(), Message{To: "not-an-email", Subject: "hola"})
	if res.Success || res.Provider != "none" {
		t.Errorf("result = %+v, want failure with provider none", res)
	}
	if p.calls != 0 {
		t.Error("invalid recipient must short-circuit before any provider")
	}
}

func TestSend_MissingFrom(t *testing.T) {
	p := &fakeProvider{name: "a", configured: true}
	s := NewWithProviders("", time.Second, p)

	res := s.Send(context.Background(), Message{To: "ana@test.cl", Subject: "hola"})
	if res.Success || res.Provider != "none" || p.calls != 0 {
		t.Errorf("result = %+v (calls=%d), want short-circuit", res, p.calls)
	}
}

func TestSend_SubjectSanitized(t *testing.T) {
	p := &fakeProvider{name: "a", configured: true}
	s := NewWithProviders("noreply@test.cl", time.Second, p)

	s.Send(context.Background(), Message{
		To:      "ana@test.cl",
		Subject: "hola\r\nBcc: spam@evil.cl\t" + strings.Repeat("x", 300),
	})
	if strings.ContainsAny(p.gotSubject, "\r\n\t") {
		t.Errorf("subject still contains header-unsafe characters: %q", p.gotSubject)
	}
	if len([]rune(p.gotSubject)) > 200 {
		t.Errorf("subject length = %d, want <= 200", len([]rune(p.gotSubject)))
	}
}

func TestSanitizeSubject(t *testing.T) {
	got := SanitizeSubject("a\rb\nc\td")
	if got != "abcd" {
		t.Errorf("SanitizeSubject = %q, want abcd", got)
	}
}

func TestRealCredential(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"your_api_key_here", false},
		{"xxx", false},
		{"CHANGE_ME", false},
		{"...", false},
		{"SG.realkey123", true},
	}
	for _, tt := range tests {
		if got := realCredential(tt.in); got != tt.want {
			t.Errorf("realCredential(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
