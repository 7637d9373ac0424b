package briefing

import "github.com/cquiroga/briefing-wizard/model"

// landingConfig is the questionnaire for landing-page projects. Field ids are
// the keys under which values land in the submission buckets, so renaming one
// is a breaking change for stored records.
var landingConfig = &Config{
	ID:          "landing",
	Type:        model.TypeLanding,
	Label:       "Landing Page",
	Description: "Una página única enfocada en convertir visitas en clientes.",
	Enabled:     true,
	Steps: []Step{
		{
			ID:          "contacto",
			Title:       "Sobre ti y tu negocio",
			Description: "Datos de contacto y de tu empresa.",
			Fields: []Field{
				{ID: "clientName", Label: "Nombre completo", Type: "text", Required: true, Placeholder: "Ana Pérez", Group: GroupContact},
				{ID: "businessName", Label: "Nombre del negocio", Type: "text", Required: true, Placeholder: "Panadería San José", Group: GroupContact},
				{ID: "industry", Label: "Rubro / Industria", Type: "select", Group: GroupContact, Options: []Option{
					{Value: "gastronomia", Label: "Gastronomía / Restaurante"},
					{Value: "salud", Label: "Salud / Medicina"},
					{Value: "belleza", Label: "Belleza / Estética"},
					{Value: "educacion", Label: "Educación / Cursos"},
					{Value: "tecnologia", Label: "Tecnología / Software"},
					{Value: "inmobiliaria", Label: "Inmobiliaria / Bienes raíces"},
					{Value: "legal", Label: "Legal / Abogados"},
					{Value: "fitness", Label: "Fitness / Deporte"},
					{Value: "construccion", Label: "Construcción / Remodelación"},
					{Value: "consultoria", Label: "Consultoría / Asesoría"},
					{Value: "marketing", Label: "Marketing / Publicidad"},
					{Value: "otro", Label: "Otro"},
				}},
				{ID: "email", Label: "Correo electrónico", Type: "email", Required: true, Placeholder: "ana@test.cl", Group: GroupContact},
				{ID: "phone", Label: "Teléfono / WhatsApp", Type: "tel", Placeholder: "+56 9 1234 5678", Group: GroupContact},
				{ID: "instagramUrl", Label: "Instagram", Type: "url", Placeholder: "instagram.com/minegocio", Group: GroupContact},
			},
		},
		{
			ID:          "objetivos",
			Title:       "Objetivos",
			Description: "Qué quieres lograr con tu landing.",
			Fields: []Field{
				{ID: "mainGoal", Label: "Objetivo principal", Type: "radio", Required: true, Group: GroupContent, Options: []Option{
					{Value: "captar_leads", Label: "Captar clientes potenciales (leads)"},
					{Value: "vender_servicio", Label: "Promocionar y vender un servicio"},
					{Value: "vender_producto", Label: "Promocionar un producto"},
					{Value: "informar", Label: "Dar a conocer mi negocio"},
					{Value: "evento", Label: "Promocionar un evento"},
					{Value: "portafolio", Label: "Mostrar mi portafolio / trabajo"},
				}},
				{ID: "targetAudience", Label: "Público objetivo", Type: "textarea", HelperText: "¿Quién debería llegar a tu página?", Group: GroupContent},
				{ID: "mainCTA", Label: "Llamada a la acción principal", Type: "radio", Group: GroupContent, Options: []Option{
					{Value: "whatsapp", Label: "Contactar por WhatsApp"},
					{Value: "formulario", Label: "Llenar un formulario de contacto"},
					{Value: "llamar", Label: "Llamar por teléfono"},
					{Value: "agendar", Label: "Agendar una cita / reunión"},
					{Value: "comprar", Label: "Comprar un producto / servicio"},
					{Value: "descargar", Label: "Descargar algo (PDF, catálogo, etc.)"},
				}},
				{ID: "uniqueValue", Label: "Propuesta de valor única", Type: "textarea", HelperText: "¿Qué te diferencia de la competencia?", Group: GroupContent},
			},
		},
		{
			ID:          "contenido",
			Title:       "Contenido",
			Description: "Secciones y material disponible.",
			Fields: []Field{
				{ID: "sections", Label: "Secciones seleccionadas", Type: "multiselect", Required: true, Group: GroupContent, Options: []Option{
					{Value: "hero", Label: "Hero / Banner principal"},
					{Value: "servicios", Label: "Servicios / Lo que ofrezco"},
					{Value: "proceso", Label: "Proceso / Cómo trabajamos"},
					{Value: "sobre_mi", Label: "Sobre mí / Nosotros"},
					{Value: "portafolio", Label: "Portafolio / Galería"},
					{Value: "testimonios", Label: "Testimonios / Reseñas"},
					{Value: "equipo", Label: "Equipo de trabajo"},
					{Value: "precios", Label: "Precios / Planes"},
					{Value: "faq", Label: "Preguntas frecuentes (FAQ)"},
					{Value: "blog", Label: "Blog / Noticias"},
					{Value: "contacto", Label: "Formulario de contacto"},
					{Value: "ubicacion", Label: "Mapa / Ubicación"},
					{Value: "estadisticas", Label: "Cifras / Estadísticas"},
					{Value: "clientes", Label: "Logos de clientes"},
				}},
				{ID: "sectionNotes", Label: "Notas sobre secciones", Type: "textarea", Group: GroupContent},
				{ID: "hasLogo", Label: "¿Tiene logo?", Type: "radio", Group: GroupContent, Options: []Option{
					{Value: "si", Label: "Sí"},
					{Value: "no_necesito", Label: "No tengo, pero lo necesito"},
					{Value: "no_no_necesito", Label: "No tengo y no lo necesito por ahora"},
				}},
				{ID: "hasPhotos", Label: "¿Tiene fotos propias?", Type: "radio", Group: GroupContent, Options: []Option{
					{Value: "si", Label: "Sí"},
					{Value: "algunas", Label: "Tengo algunas, necesitaría más"},
					{Value: "no", Label: "No"},
				}},
				{ID: "hasTexts", Label: "¿Tiene textos listos?", Type: "radio", Group: GroupContent, Options: []Option{
					{Value: "si", Label: "Sí"},
					{Value: "borrador", Label: "Tengo un borrador / ideas"},
					{Value: "no", Label: "No"},
				}},
				{ID: "additionalContent", Label: "Contenido adicional", Type: "textarea", Group: GroupContent},
			},
		},
		{
			ID:          "diseno",
			Title:       "Diseño",
			Description: "Estilo visual y referencias.",
			Fields: []Field{
				{ID: "designStyle", Label: "Estilo de diseño", Type: "radio", Required: true, Group: GroupDesign, Options: []Option{
					{Value: "moderno", Label: "Moderno y limpio"},
					{Value: "elegante", Label: "Elegante y sofisticado"},
					{Value: "minimalista", Label: "Minimalista"},
					{Value: "corporativo", Label: "Corporativo / Profesional"},
					{Value: "creativo", Label: "Creativo y colorido"},
					{Value: "oscuro", Label: "Dark mode / Oscuro"},
					{Value: "calido", Label: "Cálido y acogedor"},
					{Value: "no_se", Label: "A criterio del diseñador"},
				}},
				{ID: "primaryColor", Label: "Color principal", Type: "color", Placeholder: "#6366f1", Group: GroupDesign},
				{ID: "secondaryColor", Label: "Color secundario", Type: "color", Group: GroupDesign},
				{ID: "referenceUrls", Label: "URLs de referencia", Type: "textarea", HelperText: "Sitios que te gusten, uno por línea.", Group: GroupDesign},
			},
		},
		{
			ID:          "extras",
			Title:       "Extras y plazos",
			Description: "Funcionalidades, dominio y entrega.",
			Fields: []Field{
				{ID: "features", Label: "Funcionalidades extras", Type: "multiselect", Group: GroupExtra, Options: []Option{
					{Value: "whatsapp_button", Label: "Botón de WhatsApp flotante"},
					{Value: "google_maps", Label: "Google Maps integrado"},
					{Value: "formulario_contacto", Label: "Formulario de contacto"},
					{Value: "formulario_avanzado", Label: "Formulario avanzado (más campos)"},
					{Value: "animaciones", Label: "Animaciones y efectos"},
					{Value: "multiidioma", Label: "Multi-idioma (ES/EN)"},
					{Value: "agenda", Label: "Integración con agenda (Calendly)"},
					{Value: "descargables", Label: "Descargables (PDF / Catálogo)"},
					{Value: "analytics", Label: "Google Analytics"},
					{Value: "seo", Label: "Optimización SEO"},
				}},
				{ID: "hasDomain", Label: "¿Tiene dominio?", Type: "radio", Group: GroupExtra, Options: []Option{
					{Value: "si", Label: "Sí"},
					{Value: "necesito", Label: "No, necesito uno"},
					{Value: "no_se", Label: "No estoy seguro / No sé"},
				}},
				{ID: "domainName", Label: "Nombre de dominio", Type: "text", Placeholder: "minegocio.cl", Group: GroupExtra},
				{ID: "deadline", Label: "Plazo de entrega", Type: "radio", Required: true, Group: GroupExtra, Options: []Option{
					{Value: "urgente", Label: "Esta semana"},
					{Value: "pronto", Label: "1-2 semanas"},
					{Value: "normal", Label: "2-3 semanas"},
					{Value: "sin_prisa", Label: "Sin prisa, cuando esté listo"},
				}},
				{ID: "budget", Label: "Presupuesto", Type: "radio", Group: GroupExtra, Options: []Option{
					{Value: "basico", Label: "Básico"},
					{Value: "medio", Label: "Medio"},
					{Value: "premium", Label: "Premium"},
				}},
				{ID: "additionalNotes", Label: "Notas adicionales", Type: "textarea", Group: GroupExtra},
			},
		},
	},
}
