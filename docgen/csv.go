package docgen

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cquiroga/briefing-wizard/model"
)

// bucketPrefixes pairs each data bucket with its CSV column prefix.
var bucketPrefixes = []struct {
	prefix string
	get    func(model.Briefing) json.RawMessage
}{
	{"contacto", func(b model.Briefing) json.RawMessage { return b.ContactData }},
	{"contenido", func(b model.Briefing) json.RawMessage { return b.ContentData }},
	{"diseno", func(b model.Briefing) json.RawMessage { return b.DesignData }},
	{"extra", func(b model.Briefing) json.RawMessage { return b.ExtraData }},
}

var csvFixedHeader = []string{"id", "fecha", "tipo", "estado", "nombre_cliente", "email_cliente", "resumen"}

// WriteCSV flattens the records into one row each: fixed columns first, then
// one column per bucket key seen anywhere in the export, sorted for a stable
// layout across runs.
func WriteCSV(w io.Writer, records []model.Briefing) error {
	flat := make([]map[string]string, len(records))
	dynamic := map[string]bool{}

	for i, rec := range records {
		row := map[string]string{
			"id":             rec.ID,
			"fecha":          rec.CreatedAt.Format("2006-01-02"),
			"tipo":           string(rec.Type),
			"estado":         string(rec.Status),
			"nombre_cliente": rec.ClientName,
			"email_cliente":  rec.ClientEmail,
			"resumen":        rec.Summary,
		}
		for _, b := range bucketPrefixes {
			bucket := map[string]any{}
			if raw := b.get(rec); len(raw) > 0 {
				if err := json.Unmarshal(raw, &bucket); err != nil {
					return fmt.Errorf("record %s: bucket %s: %w", rec.ID, b.prefix, err)
				}
			}
			for key, val := range bucket {
				col := b.prefix + "_" + key
				row[col] = flattenValue(val)
				dynamic[col] = true
			}
		}
		flat[i] = row
	}

	cols := make([]string, 0, len(dynamic))
	for col := range dynamic {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	header := append(append([]string{}, csvFixedHeader...), cols...)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range flat {
		out := make([]string, len(header))
		for i, col := range header {
			out[i] = row[col]
		}
		if err := cw.Write(out); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func flattenValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, el := range t {
			parts = append(parts, flattenValue(el))
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		raw, _ := json.Marshal(t)
		return string(raw)
	default:
		return fmt.Sprintf("%v", t)
	}
}
