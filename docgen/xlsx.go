package docgen

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cquiroga/briefing-wizard/model"
)

// RenderXlsx produces a one-sheet spreadsheet with every answered field,
// grouped by data bucket.
func RenderXlsx(data model.BriefingData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Briefing"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", "A", 22); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "B", "B", 34); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "C", "C", 60); err != nil {
		return nil, err
	}

	headStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4361EE"}},
	})
	if err != nil {
		return nil, err
	}

	row := 1
	setRow := func(section, label, value string) error {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), section); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), label); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", row), value); err != nil {
			return err
		}
		row++
		return nil
	}

	if err := setRow("Sección", "Campo", "Respuesta"); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", headStyle); err != nil {
		return nil, err
	}

	if err := setRow("Cliente", "Tipo de proyecto", TypeLabel(data.Type)); err != nil {
		return nil, err
	}
	if err := setRow("Cliente", "Nombre", data.ClientName); err != nil {
		return nil, err
	}
	if err := setRow("Cliente", "Email", data.ClientEmail); err != nil {
		return nil, err
	}

	buckets := []struct {
		name string
		data map[string]any
	}{
		{"Contacto", data.Contact},
		{"Contenido", data.Content},
		{"Diseño", data.Design},
		{"Extras", data.Extra},
	}
	for _, b := range buckets {
		for _, key := range sortedKeys(b.data) {
			if err := setRow(b.name, Label(key), Translate(b.data[key])); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
