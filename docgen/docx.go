package docgen

import (
	"bytes"
	"sort"

	"github.com/fumiama/go-docx"

	"github.com/cquiroga/briefing-wizard/model"
)

// RenderDocx produces the staff-facing briefing summary document.
func RenderDocx(data model.BriefingData) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph()
	title.Justification("center")
	title.AddText("BRIEFING " + TypeLabel(data.Type)).Size("40").Color("1A1A2E").Bold()

	subtitle := doc.AddParagraph()
	subtitle.Justification("center")
	subtitle.AddText(data.ClientName).Size("28").Color("4361EE").Italic()

	doc.AddParagraph()

	head := doc.AddParagraph()
	head.AddText("Cliente").Size("26").Bold()
	writeRow(doc, "Nombre", data.ClientName)
	writeRow(doc, "Email", data.ClientEmail)

	writeSection(doc, "Contacto", data.Contact)
	writeSection(doc, "Contenido", data.Content)
	writeSection(doc, "Diseño", data.Design)
	writeSection(doc, "Extras", data.Extra)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSection(doc *docx.Docx, title string, bucket map[string]any) {
	doc.AddParagraph()
	head := doc.AddParagraph()
	head.AddText(title).Size("26").Color("4361EE").Bold()

	for _, key := range sortedKeys(bucket) {
		writeRow(doc, Label(key), Translate(bucket[key]))
	}
}

func writeRow(doc *docx.Docx, label, value string) {
	if value == "" {
		value = notSpecified
	}
	p := doc.AddParagraph()
	p.AddText(label + ": ").Bold()
	p.AddText(value)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
