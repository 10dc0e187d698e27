package service

import (
	"regexp"
	"strings"

	"damena-assistant/internal/models"
	"damena-assistant/internal/repository"

	"go.uber.org/zap"
)

// Fixed answer texts carried inside security-related contexts.
const (
	SecurityMessage = "Por motivos de seguridad, el Banco Damena no puede mostrar PIN ni CVV. " +
		"Se puede restablecer desde la app o en un cajero automático."
	CardBlockMessage = "Para bloquear tu tarjeta, podés hacerlo desde la app en el menú " +
		"Seguridad > Bloqueo de tarjeta, o llamando a la línea de soporte 24/7."
)

var lastFourDigits = regexp.MustCompile(`(\d{4})$`)

// matchRule receives the normalized question and returns a context, or nil
// when the rule does not apply.
type matchRule func(p string) models.Context

// MatcherService classifies free-text questions against the knowledge base.
// Rules run in a fixed order and the first match wins; reordering them
// changes observable behavior. Matching is plain substring containment,
// except the end-anchored four-digit card lookup.
type MatcherService struct {
	kb            *repository.KnowledgeRepository
	referenceUser string
	logger        *zap.Logger
	rules         []matchRule
}

// NewMatcherService builds the rule chain. referenceUser is the account
// owner assumed by balance questions.
func NewMatcherService(kb *repository.KnowledgeRepository, referenceUser string, logger *zap.Logger) *MatcherService {
	s := &MatcherService{
		kb:            kb,
		referenceUser: referenceUser,
		logger:        logger,
	}
	s.rules = []matchRule{
		s.matchUserByName,
		s.matchBalance,
		s.matchAccountByIBAN,
		s.matchCardByLastFour,
		s.matchTransfers,
		s.matchReferenceTables,
		s.matchSecurity,
		s.matchCardBlock,
	}
	return s
}

// Match normalizes the question and walks the rule chain. It is a pure
// function of the question and the dataset; nil means no local match.
func (s *MatcherService) Match(question string) models.Context {
	p := strings.ToLower(strings.TrimSpace(question))
	for _, rule := range s.rules {
		if ctx := rule(p); ctx != nil {
			return ctx
		}
	}
	return nil
}

func (s *MatcherService) matchUserByName(p string) models.Context {
	for _, u := range s.kb.Users() {
		nombre := strings.ToLower(u.Nombre)
		nombreCompleto := strings.ToLower(u.Nombre + " " + u.Apellido)
		if strings.Contains(p, nombre) || strings.Contains(p, nombreCompleto) {
			return models.NewUserInfoContext(u, s.kb.AccountsByUser(u.ID), s.kb.CardsByUser(u.ID))
		}
	}
	return nil
}

func (s *MatcherService) matchBalance(p string) models.Context {
	if !strings.Contains(p, "saldo") &&
		!strings.Contains(p, "cuánto tengo") &&
		!strings.Contains(p, "cuanto tengo") {
		return nil
	}
	// The account may be nil when the reference user owns none; the
	// responder handles that case.
	return models.NewBalanceContext(s.kb.FirstAccountOfUser(s.referenceUser))
}

func (s *MatcherService) matchAccountByIBAN(p string) models.Context {
	for _, c := range s.kb.Accounts() {
		if strings.Contains(p, strings.ToLower(c.IBAN)) {
			return models.NewAccountDetailContext(c)
		}
	}
	return nil
}

func (s *MatcherService) matchCardByLastFour(p string) models.Context {
	m := lastFourDigits.FindStringSubmatch(p)
	if m == nil {
		return nil
	}
	for _, t := range s.kb.Cards() {
		if strings.HasSuffix(t.NumeroEnmascarado, m[1]) {
			return models.NewCardDetailContext(t)
		}
	}
	// Trailing digits with no matching card fall through to later rules.
	return nil
}

func (s *MatcherService) matchTransfers(p string) models.Context {
	for _, kw := range []string{"transfer", "movim", "pago", "historial"} {
		if strings.Contains(p, kw) {
			return models.NewTransfersContext(s.kb.Transfers())
		}
	}
	return nil
}

func (s *MatcherService) matchReferenceTables(p string) models.Context {
	for _, tc := range s.kb.AccountTypes() {
		if strings.Contains(p, strings.ToLower(tc.Nombre)) {
			return models.NewAccountTypeContext(tc)
		}
	}
	for _, m := range s.kb.Currencies() {
		if strings.Contains(p, strings.ToLower(m.ISO)) || strings.Contains(p, strings.ToLower(m.Nombre)) {
			return models.NewCurrencyContext(m)
		}
	}
	for _, ti := range s.kb.IdentificationTypes() {
		if strings.Contains(p, strings.ToLower(ti.Nombre)) {
			return models.NewIDTypeContext(ti)
		}
	}
	for _, r := range s.kb.Roles() {
		if strings.Contains(p, strings.ToLower(r.Nombre)) {
			return models.NewRoleContext(r)
		}
	}
	return nil
}

func (s *MatcherService) matchSecurity(p string) models.Context {
	if strings.Contains(p, "pin") || strings.Contains(p, "cvv") {
		return models.NewSecurityContext(SecurityMessage)
	}
	return nil
}

func (s *MatcherService) matchCardBlock(p string) models.Context {
	for _, kw := range []string{"bloquear tarjeta", "robo", "perdí la tarjeta"} {
		if strings.Contains(p, kw) {
			return models.NewCardBlockContext(CardBlockMessage)
		}
	}
	return nil
}
