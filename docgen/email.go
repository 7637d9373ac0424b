package docgen

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/cquiroga/briefing-wizard/model"
	"github.com/cquiroga/briefing-wizard/pricing"
)

type emailSection struct {
	Title string
	Rows  []emailRow
}

type emailRow struct {
	Label string
	Value string
}

type emailContext struct {
	TypeLabel   string
	ClientName  string
	ClientEmail string
	Sections    []emailSection
	Estimate    string
}

var adminEmailTmpl = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html lang="es">
<body style="margin:0;padding:0;background:#f4f5fb;font-family:Arial,Helvetica,sans-serif;color:#1a1a2e">
<div style="max-width:640px;margin:0 auto;padding:24px">
  <div style="background:#1a1a2e;color:#ffffff;border-radius:12px 12px 0 0;padding:24px">
    <h1 style="margin:0;font-size:22px">Nuevo briefing recibido</h1>
    <p style="margin:8px 0 0;color:#aab">{{.TypeLabel}} — {{.ClientName}}{{if .ClientEmail}} &lt;{{.ClientEmail}}&gt;{{end}}</p>
  </div>
  <div style="background:#ffffff;border-radius:0 0 12px 12px;padding:24px">
  {{range .Sections}}
    <h2 style="font-size:16px;color:#4361ee;border-bottom:1px solid #e2e4f0;padding-bottom:6px">{{.Title}}</h2>
    <table style="width:100%;border-collapse:collapse;margin-bottom:16px">
    {{range .Rows}}
      <tr>
        <td style="padding:6px 8px;width:40%;color:#555;vertical-align:top">{{.Label}}</td>
        <td style="padding:6px 8px">{{.Value}}</td>
      </tr>
    {{end}}
    </table>
  {{end}}
  {{if .Estimate}}
    <div style="background:#f0f3ff;border-radius:8px;padding:16px;margin-top:8px">
      <strong>Cotización estimada:</strong> desde {{.Estimate}} CLP
    </div>
  {{end}}
  </div>
</div>
</body>
</html>`))

var clientEmailTmpl = template.Must(template.New("client").Parse(`<!DOCTYPE html>
<html lang="es">
<body style="margin:0;padding:0;background:#f4f5fb;font-family:Arial,Helvetica,sans-serif;color:#1a1a2e">
<div style="max-width:640px;margin:0 auto;padding:24px">
  <div style="background:#4361ee;color:#ffffff;border-radius:12px 12px 0 0;padding:24px">
    <h1 style="margin:0;font-size:22px">¡Gracias, {{.ClientName}}!</h1>
  </div>
  <div style="background:#ffffff;border-radius:0 0 12px 12px;padding:24px">
    <p>Recibimos tu briefing para <strong>{{.TypeLabel}}</strong>.</p>
    <p>Vamos a revisar tus respuestas y te contactaremos dentro de las próximas
    48 horas hábiles con una propuesta y los siguientes pasos.</p>
    <p>Si quieres agregar algo, simplemente responde este correo.</p>
    <p style="color:#888;font-size:12px;margin-top:24px">Este es un mensaje automático del sistema de briefings.</p>
  </div>
</div>
</body>
</html>`))

// AdminEmailHTML renders the internal notification with the full answer set.
func AdminEmailHTML(data model.BriefingData) (string, error) {
	ctx := emailContext{
		TypeLabel:   TypeLabel(data.Type),
		ClientName:  data.ClientName,
		ClientEmail: data.ClientEmail,
	}
	buckets := []struct {
		title string
		data  map[string]any
	}{
		{"Contacto", data.Contact},
		{"Contenido", data.Content},
		{"Diseño", data.Design},
		{"Extras", data.Extra},
	}
	for _, b := range buckets {
		if len(b.data) == 0 {
			continue
		}
		sec := emailSection{Title: b.title}
		for _, key := range sortedKeys(b.data) {
			sec.Rows = append(sec.Rows, emailRow{Label: Label(key), Value: Translate(b.data[key])})
		}
		ctx.Sections = append(ctx.Sections, sec)
	}

	values := map[string]any{}
	for _, b := range buckets {
		for k, v := range b.data {
			values[k] = v
		}
	}
	ctx.Estimate = pricing.FormatCLP(pricing.Calculate(values).TotalMin)

	var sb strings.Builder
	if err := adminEmailTmpl.Execute(&sb, ctx); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ClientEmailHTML renders the thank-you message for the submitter.
func ClientEmailHTML(data model.BriefingData) (string, error) {
	ctx := emailContext{
		TypeLabel:  TypeLabel(data.Type),
		ClientName: data.ClientName,
	}
	var sb strings.Builder
	if err := clientEmailTmpl.Execute(&sb, ctx); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FallbackAdminHTML is the minimal body used when template execution fails;
// the notification still has to go out.
func FallbackAdminHTML(data model.BriefingData) string {
	return fmt.Sprintf("<p>Nuevo briefing %s de %s (%s).</p>",
		html.EscapeString(TypeLabel(data.Type)),
		html.EscapeString(data.ClientName),
		html.EscapeString(data.ClientEmail))
}

func FallbackClientHTML(data model.BriefingData) string {
	return fmt.Sprintf("<p>¡Gracias, %s! Recibimos tu briefing y te contactaremos pronto.</p>",
		html.EscapeString(data.ClientName))
}
