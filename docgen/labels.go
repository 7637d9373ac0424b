// Package docgen renders briefing summaries: DOCX and XLSX documents, the
// notification email bodies, and the CSV export.
package docgen

import (
	"fmt"
	"regexp"
	"strings"
)

// fieldLabels maps field ids to human-readable headings for documents.
var fieldLabels = map[string]string{
	"clientName":        "Nombre completo",
	"businessName":      "Nombre del negocio",
	"industry":          "Rubro / Industria",
	"email":             "Correo electrónico",
	"phone":             "Teléfono / WhatsApp",
	"instagramUrl":      "Instagram",
	"facebookUrl":       "Facebook",
	"twitterUrl":        "Twitter / X",
	"mainGoal":          "Objetivo principal",
	"targetAudience":    "Público objetivo",
	"mainCTA":           "Llamada a la acción principal",
	"uniqueValue":       "Propuesta de valor única",
	"sections":          "Secciones seleccionadas",
	"sectionNotes":      "Notas sobre secciones",
	"designStyle":       "Estilo de diseño",
	"primaryColor":      "Color principal",
	"secondaryColor":    "Color secundario",
	"referenceUrls":     "URLs de referencia",
	"hasLogo":           "¿Tiene logo?",
	"hasPhotos":         "¿Tiene fotos propias?",
	"hasTexts":          "¿Tiene textos listos?",
	"additionalContent": "Contenido adicional",
	"features":          "Funcionalidades extras",
	"hasDomain":         "¿Tiene dominio?",
	"domainName":        "Nombre de dominio",
	"socialMedia":       "Redes sociales",
	"deadline":          "Plazo de entrega",
	"budget":            "Presupuesto",
	"additionalNotes":   "Notas adicionales",
}

var typeLabels = map[string]string{
	"LANDING":       "Landing Page",
	"WEB_COMERCIAL": "Web Comercial",
	"ECOMMERCE":     "E-commerce",
}

// valueLabels translates internal option values to the labels the client saw.
var valueLabels = map[string]string{
	// rubro
	"gastronomia":  "Gastronomía / Restaurante",
	"salud":        "Salud / Medicina",
	"belleza":      "Belleza / Estética",
	"educacion":    "Educación / Cursos",
	"tecnologia":   "Tecnología / Software",
	"inmobiliaria": "Inmobiliaria / Bienes raíces",
	"legal":        "Legal / Abogados",
	"fitness":      "Fitness / Deporte",
	"construccion": "Construcción / Remodelación",
	"consultoria":  "Consultoría / Asesoría",
	"marketing":    "Marketing / Publicidad",

	// objetivo
	"captar_leads":    "Captar clientes potenciales (leads)",
	"vender_servicio": "Promocionar y vender un servicio",
	"vender_producto": "Promocionar un producto",
	"informar":        "Dar a conocer mi negocio",
	"evento":          "Promocionar un evento",
	"portafolio":      "Mostrar mi portafolio / trabajo",

	// CTA
	"whatsapp":   "Contactar por WhatsApp",
	"formulario": "Llenar un formulario de contacto",
	"llamar":     "Llamar por teléfono",
	"agendar":    "Agendar una cita / reunión",
	"comprar":    "Comprar un producto / servicio",
	"descargar":  "Descargar algo (PDF, catálogo, etc.)",

	// secciones
	"hero":         "Hero / Banner principal",
	"servicios":    "Servicios / Lo que ofrezco",
	"proceso":      "Proceso / Cómo trabajamos",
	"sobre_mi":     "Sobre mí / Nosotros",
	"testimonios":  "Testimonios / Reseñas",
	"equipo":       "Equipo de trabajo",
	"precios":      "Precios / Planes",
	"faq":          "Preguntas frecuentes (FAQ)",
	"blog":         "Blog / Noticias",
	"contacto":     "Formulario de contacto",
	"ubicacion":    "Mapa / Ubicación",
	"estadisticas": "Cifras / Estadísticas",
	"clientes":     "Logos de clientes",

	// estilo
	"moderno":     "Moderno y limpio",
	"elegante":    "Elegante y sofisticado",
	"minimalista": "Minimalista",
	"corporativo": "Corporativo / Profesional",
	"creativo":    "Creativo y colorido",
	"oscuro":      "Dark mode / Oscuro",
	"calido":      "Cálido y acogedor",

	// logo / fotos / textos
	"si":             "Sí",
	"no_necesito":    "No tengo, pero lo necesito",
	"no_no_necesito": "No tengo y no lo necesito por ahora",
	"algunas":        "Tengo algunas, necesitaría más",
	"borrador":       "Tengo un borrador / ideas",

	// funcionalidades
	"whatsapp_button":     "Botón de WhatsApp flotante",
	"google_maps":         "Google Maps integrado",
	"formulario_contacto": "Formulario de contacto",
	"formulario_avanzado": "Formulario avanzado (más campos)",
	"animaciones":         "Animaciones y efectos",
	"multiidioma":         "Multi-idioma (ES/EN)",
	"agenda":              "Integración con agenda (Calendly)",
	"descargables":        "Descargables (PDF / Catálogo)",
	"analytics":           "Google Analytics",
	"seo":                 "Optimización SEO",

	// dominio
	"necesito": "No, necesito uno",
	"no_se":    "No estoy seguro / No sé",

	// plazo
	"urgente":   "Esta semana",
	"pronto":    "1-2 semanas",
	"normal":    "2-3 semanas",
	"sin_prisa": "Sin prisa, cuando esté listo",

	// presupuesto
	"basico":  "Básico",
	"medio":   "Medio",
	"premium": "Premium",

	// genéricos
	"otro": "Otro",
	"no":   "No",
}

const notSpecified = "No especificado"

var reCamel = regexp.MustCompile(`([A-Z])`)

// Label turns a field id into a heading, deriving one from the id when it is
// not in the table ("domainName" -> "domain Name").
func Label(key string) string {
	if l, ok := fieldLabels[key]; ok {
		return l
	}
	out := reCamel.ReplaceAllString(key, " $1")
	out = strings.ReplaceAll(out, "_", " ")
	return strings.TrimSpace(out)
}

func TypeLabel(briefingType string) string {
	if l, ok := typeLabels[briefingType]; ok {
		return l
	}
	return briefingType
}

// Translate renders a raw bucket value for human eyes: option values become
// their labels, arrays join with commas, booleans become Sí/No.
func Translate(value any) string {
	switch t := value.(type) {
	case nil:
		return notSpecified
	case string:
		if t == "" {
			return notSpecified
		}
		if l, ok := valueLabels[t]; ok {
			return l
		}
		return t
	case bool:
		if t {
			return "Sí"
		}
		return "No"
	case []string:
		return translateList(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, el := range t {
			if s, ok := el.(string); ok {
				parts = append(parts, s)
			}
		}
		return translateList(parts)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func translateList(values []string) string {
	if len(values) == 0 {
		return notSpecified
	}
	parts := make([]string, len(values))
	for i, v := range values {
		if l, ok := valueLabels[v]; ok {
			parts[i] = l
		} else {
			parts[i] = strings.ReplaceAll(v, "_", " ")
		}
	}
	return strings.Join(parts, ", ")
}
