package i18n

// bundles holds the message tables keyed by locale tag.
var bundles = map[string]map[string]string{
	"en-US": {
		"app.title":          "Portfolio",
		"list.heading":       "Projects",
		"list.load_more":     "Load more",
		"list.loading":       "Loading…",
		"list.remaining":     "%d more",
		"list.all_loaded":    "All projects loaded",
		"list.load_failed":   "Couldn't load more projects — press m to retry",
		"list.empty":         "No projects",
		"list.no_matches":    "No matches",
		"detail.period":      "Period",
		"detail.tags":        "Tags",
		"detail.links":       "Links",
		"detail.gallery":     "Gallery",
		"detail.videos":      "Videos",
		"detail.images":      "%d images",
		"detail.ongoing":     "ongoing",
		"lightbox.caption":   "Image %s",
		"lightbox.hint":      "←/→ navigate · esc close · drag to swipe",
		"status.theme":       "Theme: %s",
		"status.locale":      "Language: %s",
		"status.motion_on":   "Reduced motion on",
		"status.motion_off":  "Reduced motion off",
		"help.quit":          "quit",
		"help.open":          "open",
		"help.filter":        "filter",
		"help.load_more":     "load more",
		"help.theme":         "theme",
		"help.language":      "language",
		"help.motion":        "motion",
		"theme.light":        "light",
		"theme.dark":         "dark",
		"theme.highcontrast": "high contrast",
	},
	"pt-BR": {
		"app.title":          "Portfólio",
		"list.heading":       "Projetos",
		"list.load_more":     "Carregar mais",
		"list.loading":       "Carregando…",
		"list.remaining":     "mais %d",
		"list.all_loaded":    "Todos os projetos carregados",
		"list.load_failed":   "Não foi possível carregar mais projetos — pressione m para tentar novamente",
		"list.empty":         "Nenhum projeto",
		"list.no_matches":    "Nenhum resultado",
		"detail.period":      "Período",
		"detail.tags":        "Tags",
		"detail.links":       "Links",
		"detail.gallery":     "Galeria",
		"detail.videos":      "Vídeos",
		"detail.images":      "%d imagens",
		"detail.ongoing":     "em andamento",
		"lightbox.caption":   "Imagem %s",
		"lightbox.hint":      "←/→ navegar · esc fechar · arraste para deslizar",
		"status.theme":       "Tema: %s",
		"status.locale":      "Idioma: %s",
		"status.motion_on":   "Movimento reduzido ativado",
		"status.motion_off":  "Movimento reduzido desativado",
		"help.quit":          "sair",
		"help.open":          "abrir",
		"help.filter":        "filtrar",
		"help.load_more":     "carregar mais",
		"help.theme":         "tema",
		"help.language":      "idioma",
		"help.motion":        "movimento",
		"theme.light":        "claro",
		"theme.dark":         "escuro",
		"theme.highcontrast": "alto contraste",
	},
}
