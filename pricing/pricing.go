// Package pricing estimates a project price from the wizard's selections.
// Amounts are CLP. Pure lookups: unknown keys contribute nothing.
package pricing

import (
	"fmt"
	"strconv"
)

const BasePrice = 100_000

type priced struct {
	label string
	price int
}

var sectionPrices = map[string]priced{
	"hero":         {"Hero / Banner principal", 0},
	"servicios":    {"Servicios", 5_000},
	"proceso":      {"Proceso", 3_000},
	"sobre_mi":     {"Sobre nosotros", 3_000},
	"portafolio":   {"Portafolio / Galería", 8_000},
	"testimonios":  {"Testimonios", 3_000},
	"equipo":       {"Equipo", 5_000},
	"precios":      {"Precios / Planes", 5_000},
	"faq":          {"Preguntas frecuentes", 3_000},
	"blog":         {"Blog / Noticias", 10_000},
	"contacto":     {"Formulario de contacto", 5_000},
	"ubicacion":    {"Mapa / Ubicación", 3_000},
	"estadisticas": {"Estadísticas", 3_000},
	"clientes":     {"Logos de clientes", 3_000},
}

var designPrices = map[string]priced{
	"moderno":     {"Diseño moderno", 0},
	"minimalista": {"Diseño minimalista", 0},
	"no_se":       {"Diseño a elección", 0},
	"oscuro":      {"Diseño dark mode", 3_000},
	"calido":      {"Diseño cálido", 3_000},
	"corporativo": {"Diseño corporativo", 5_000},
	"elegante":    {"Diseño elegante", 8_000},
	"creativo":    {"Diseño creativo", 12_000},
}

var featurePrices = map[string]priced{
	"whatsapp_button":     {"Botón de WhatsApp", 0},
	"google_maps":         {"Google Maps", 3_000},
	"formulario_contacto": {"Formulario de contacto", 5_000},
	"formulario_avanzado": {"Formulario avanzado", 10_000},
	"animaciones":         {"Animaciones y efectos", 8_000},
	"multiidioma":         {"Multi-idioma (ES/EN)", 25_000},
	"agenda":              {"Integración Calendly", 8_000},
	"descargables":        {"Descargables (PDF)", 3_000},
	"analytics":           {"Google Analytics", 3_000},
	"seo":                 {"Optimización SEO", 8_000},
}

var deadlinePrices = map[string]priced{
	"sin_prisa": {"Sin prisa", 0},
	"normal":    {"2-3 semanas", 0},
	"pronto":    {"1-2 semanas", 15_000},
	"urgente":   {"Esta semana", 30_000},
}

var (
	needsLogo  = priced{"Diseño de logo", 20_000}
	needsTexts = priced{"Redacción de textos", 10_000}
)

type BreakdownItem struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Amount   int    `json:"amount"`
}

type Result struct {
	BasePrice     int             `json:"basePrice"`
	TotalMin      int             `json:"totalMin"`
	Breakdown     []BreakdownItem `json:"breakdown"`
	SectionsCount int             `json:"sectionsCount"`
	FeaturesCount int             `json:"featuresCount"`
}

// Calculate derives an itemized estimate from the flat form values.
// Deterministic and order-independent; zero-amount items are omitted from the
// breakdown except the base line.
func Calculate(values map[string]any) Result {
	res := Result{BasePrice: BasePrice, TotalMin: BasePrice}
	res.Breakdown = append(res.Breakdown, BreakdownItem{
		Category: "base",
		Label:    "Landing Page base",
		Amount:   BasePrice,
	})

	sections := asStrings(values["sections"])
	res.SectionsCount = len(sections)
	sectionsTotal := 0
	for _, id := range sections {
		sectionsTotal += sectionPrices[id].price
	}
	if sectionsTotal > 0 {
		res.Breakdown = append(res.Breakdown, BreakdownItem{
			Category: "secciones",
			Label:    fmt.Sprintf("%d secciones", len(sections)),
			Amount:   sectionsTotal,
		})
		res.TotalMin += sectionsTotal
	}

	if d, ok := designPrices[asString(values["designStyle"])]; ok && d.price > 0 {
		res.Breakdown = append(res.Breakdown, BreakdownItem{
			Category: "diseño",
			Label:    d.label,
			Amount:   d.price,
		})
		res.TotalMin += d.price
	}

	if asString(values["hasLogo"]) == "no_necesito" {
		res.Breakdown = append(res.Breakdown, BreakdownItem{
			Category: "contenido",
			Label:    needsLogo.label,
			Amount:   needsLogo.price,
		})
		res.TotalMin += needsLogo.price
	}
	if asString(values["hasTexts"]) == "no" {
		res.Breakdown = append(res.Breakdown, BreakdownItem{
			Category: "contenido",
			Label:    needsTexts.label,
			Amount:   needsTexts.price,
		})
		res.TotalMin += needsTexts.price
	}

	features := asStrings(values["features"])
	res.FeaturesCount = len(features)
	featuresTotal := 0
	featuresPriced := 0
	for _, id := range features {
		if p := featurePrices[id].price; p > 0 {
			featuresTotal += p
			featuresPriced++
		}
	}
	if featuresTotal > 0 {
		res.Breakdown = append(res.Breakdown, BreakdownItem{
			Category: "extras",
			Label:    fmt.Sprintf("%d funcionalidades", featuresPriced),
			Amount:   featuresTotal,
		})
		res.TotalMin += featuresTotal
	}

	if d, ok := deadlinePrices[asString(values["deadline"])]; ok && d.price > 0 {
		res.Breakdown = append(res.Breakdown, BreakdownItem{
			Category: "urgencia",
			Label:    "Entrega: " + d.label,
			Amount:   d.price,
		})
		res.TotalMin += d.price
	}

	return res
}

// FormatCLP renders an amount as Chilean pesos with dot thousand separators.
func FormatCLP(amount int) string {
	s := strconv.Itoa(amount)
	neg := false
	if amount < 0 {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "." + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return "$" + s
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asStrings(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, el := range t {
			if s, ok := el.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
