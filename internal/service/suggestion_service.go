package service

import (
	"damena-assistant/internal/models"
)

// Suggestion lists are static configuration keyed by context kind.
var (
	defaultSuggestions = []string{
		"Consultar saldo",
		"Ver mis cuentas",
		"Ver mis tarjetas",
		"Historial de transferencias",
	}

	fallbackSuggestions = []string{
		"Consultar saldo",
		"Ayuda",
		"Contactar soporte",
	}

	suggestionsByKind = map[models.ContextKind][]string{
		models.KindUserInfo: {
			"Ver cuentas de este usuario",
			"Ver tarjetas de este usuario",
			"Historial de transacciones",
		},
		models.KindBalance: {
			"Ver movimientos",
			"Transferir dinero",
			"Consultar otra cuenta",
		},
		models.KindAccountDetail: {
			"Ver saldo",
			"Ver transferencias",
			"Ver moneda de la cuenta",
		},
		models.KindCardDetail: {
			"Bloquear tarjeta",
			"Ver fecha de expiración",
			"Consultar movimientos de la tarjeta",
		},
		models.KindTransfers: {
			"Filtrar por fecha",
			"Ver transferencias mayores a ₡10 000",
			"Exportar movimientos",
		},
		models.KindSecurity: {
			"Restablecer PIN en la app",
			"Ver cómo hacerlo en ATM",
			"Revisar requisitos de seguridad",
		},
	}
)

// SuggestionService picks follow-up prompts for a context kind.
type SuggestionService struct{}

func NewSuggestionService() *SuggestionService {
	return &SuggestionService{}
}

// Suggest returns the list for the context's kind; the default list for a
// nil context and the fallback list for kinds without one of their own.
// Callers get a fresh copy so the tables stay constant.
func (s *SuggestionService) Suggest(ctx models.Context) []string {
	if ctx == nil {
		return clone(defaultSuggestions)
	}
	if list, ok := suggestionsByKind[ctx.Kind()]; ok {
		return clone(list)
	}
	return clone(fallbackSuggestions)
}

// Default returns the list used before any question has been asked.
func (s *SuggestionService) Default() []string {
	return clone(defaultSuggestions)
}

func clone(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}
