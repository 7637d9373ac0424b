package docgen

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/cquiroga/briefing-wizard/model"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "No especificado"},
		{"empty string", "", "No especificado"},
		{"known value", "creativo", "Creativo y colorido"},
		{"unknown value passthrough", "algo raro", "algo raro"},
		{"bool true", true, "Sí"},
		{"bool false", false, "No"},
		{"string slice", []string{"hero", "faq"}, "Hero / Banner principal, Preguntas frecuentes (FAQ)"},
		{"any slice", []any{"seo", "desconocida_cosa"}, "Optimización SEO, desconocida cosa"},
		{"empty slice", []any{}, "No especificado"},
		{"number", float64(3), "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.in); got != tt.want {
				t.Errorf("Translate(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	if got := Label("designStyle"); got != "Estilo de diseño" {
		t.Errorf("Label(designStyle) = %q", got)
	}
	if got := Label("customField"); got != "custom Field" {
		t.Errorf("Label(customField) = %q", got)
	}
	if got := Label("snake_case"); got != "snake case" {
		t.Errorf("Label(snake_case) = %q", got)
	}
}

func sampleData() model.BriefingData {
	return model.BriefingData{
		Type:        "LANDING",
		ClientName:  "Ana Pérez",
		ClientEmail: "ana@test.cl",
		Contact:     map[string]any{"businessName": "Panadería San José"},
		Content:     map[string]any{"sections": []any{"hero", "servicios"}},
		Design:      map[string]any{"designStyle": "creativo"},
		Extra:       map[string]any{"deadline": "urgente"},
	}
}

func TestAdminEmailHTML(t *testing.T) {
	html, err := AdminEmailHTML(sampleData())
	if err != nil {
		t.Fatalf("AdminEmailHTML failed: %v", err)
	}
	for _, want := range []string{"Ana Pérez", "Landing Page", "Creativo y colorido", "Panadería San José", "Cotización estimada"} {
		if !strings.Contains(html, want) {
			t.Errorf("admin email missing %q", want)
		}
	}
}

func TestAdminEmailHTML_EscapesInput(t *testing.T) {
	data := sampleData()
	data.Contact["businessName"] = `<script>alert(1)</script>`
	html, err := AdminEmailHTML(data)
	if err != nil {
		t.Fatalf("AdminEmailHTML failed: %v", err)
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("admin email must escape HTML in values")
	}
}

func TestClientEmailHTML(t *testing.T) {
	html, err := ClientEmailHTML(sampleData())
	if err != nil {
		t.Fatalf("ClientEmailHTML failed: %v", err)
	}
	if !strings.Contains(html, "Ana Pérez") || !strings.Contains(html, "Landing Page") {
		t.Error("client email missing client name or type label")
	}
}

func TestWriteCSV(t *testing.T) {
	records := []model.Briefing{
		{
			ID:          "b1",
			CreatedAt:   time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
			Status:      model.StatusNuevo,
			Type:        model.TypeLanding,
			ClientName:  "Ana",
			ClientEmail: "ana@test.cl",
			ContactData: json.RawMessage(`{"businessName":"Panadería"}`),
			ContentData: json.RawMessage(`{"sections":["hero","faq"]}`),
			DesignData:  json.RawMessage(`{}`),
			ExtraData:   json.RawMessage(`{}`),
		},
		{
			ID:          "b2",
			CreatedAt:   time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC),
			Status:      model.StatusRevisado,
			Type:        model.TypeLanding,
			ClientName:  "Beto",
			ContactData: json.RawMessage(`{"phone":"+56912345678"}`),
			ContentData: json.RawMessage(`{}`),
			DesignData:  json.RawMessage(`{}`),
			ExtraData:   json.RawMessage(`{}`),
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows", len(lines))
	}
	header := lines[0]
	for _, col := range []string{"id", "fecha", "contacto_businessName", "contacto_phone", "contenido_sections"} {
		if !strings.Contains(header, col) {
			t.Errorf("header missing column %q: %s", col, header)
		}
	}
	if !strings.Contains(lines[1], "hero, faq") {
		t.Errorf("row 1 should flatten array values: %s", lines[1])
	}
	if !strings.Contains(lines[2], "+56912345678") {
		t.Errorf("row 2 missing phone: %s", lines[2])
	}
}

func TestRenderDocx(t *testing.T) {
	out, err := RenderDocx(sampleData())
	if err != nil {
		t.Fatalf("RenderDocx failed: %v", err)
	}
	// docx files are zip archives
	if len(out) < 4 || out[0] != 'P' || out[1] != 'K' {
		t.Error("RenderDocx output does not look like a zip archive")
	}
}

func TestRenderXlsx(t *testing.T) {
	out, err := RenderXlsx(sampleData())
	if err != nil {
		t.Fatalf("RenderXlsx failed: %v", err)
	}
	if len(out) < 4 || out[0] != 'P' || out[1] != 'K' {
		t.Error("RenderXlsx output does not look like a zip archive")
	}
}
