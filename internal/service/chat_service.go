package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"damena-assistant/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTurnInFlight    = errors.New("another turn is already in flight for this session")
)

// WelcomeMessage seeds every new (or reset) session's history.
const WelcomeMessage = "Hola, soy el asistente virtual del Banco Damena. ¿En qué puedo ayudarte hoy?"

// RemoteResponder is the single network boundary of a turn. Implementations
// must collapse every failure into an error instead of panicking.
type RemoteResponder interface {
	Ask(ctx context.Context, pregunta string, contexto any) (string, error)
}

// session owns a conversation's append-only history and current
// suggestions. busy enforces the single-in-flight-turn rule.
type session struct {
	mu          sync.Mutex
	busy        bool
	messages    []models.Message
	suggestions []string
}

// TurnResult is what one completed turn hands back to the transport layer.
type TurnResult struct {
	Reply       models.Message
	Suggestions []string
	Context     models.Context
	RemoteUsed  bool
}

// ChatService orchestrates conversation turns: match the question locally,
// try the remote responder, fall back to the local templates, and keep
// per-session history and suggestions.
type ChatService struct {
	matcher   *MatcherService
	responder *ResponderService
	suggester *SuggestionService
	remote    RemoteResponder // nil runs the service in local-only mode
	logger    *zap.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

func NewChatService(
	matcher *MatcherService,
	responder *ResponderService,
	suggester *SuggestionService,
	remote RemoteResponder,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		matcher:   matcher,
		responder: responder,
		suggester: suggester,
		remote:    remote,
		logger:    logger,
		sessions:  make(map[string]*session),
	}
}

// CreateSession opens a session seeded with the welcome message and the
// default suggestion list.
func (s *ChatService) CreateSession() (string, []models.Message, []string) {
	sess := &session{
		messages: []models.Message{{
			Sender:    models.SenderBot,
			Text:      WelcomeMessage,
			CreatedAt: time.Now(),
		}},
		suggestions: s.suggester.Default(),
	}

	id := uuid.New().String()
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	s.logger.Info("Session created", zap.String("session_id", id))
	return id, sess.messages, sess.suggestions
}

func (s *ChatService) lookup(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// History returns a copy of the session's messages in append order.
func (s *ChatService) History(id string) ([]models.Message, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	cp := make([]models.Message, len(sess.messages))
	copy(cp, sess.messages)
	return cp, nil
}

// Suggestions returns the session's current suggestion list.
func (s *ChatService) Suggestions(id string) ([]string, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return clone(sess.suggestions), nil
}

// Reset clears the history back to a fresh welcome seed.
func (s *ChatService) Reset(id string) error {
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.messages = []models.Message{{
		Sender:    models.SenderBot,
		Text:      WelcomeMessage,
		CreatedAt: time.Now(),
	}}
	sess.suggestions = s.suggester.Default()
	return nil
}

// Send runs one full turn. Blank input is a no-op that returns nil without
// touching the session. A turn always produces a bot message: remote
// failures fall back to the local responder and are never surfaced.
func (s *ChatService) Send(ctx context.Context, id, texto string) (*TurnResult, error) {
	pregunta := strings.TrimSpace(texto)
	if pregunta == "" {
		return nil, nil
	}

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if sess.busy {
		sess.mu.Unlock()
		return nil, ErrTurnInFlight
	}
	sess.busy = true
	sess.messages = append(sess.messages, models.Message{
		Sender:    models.SenderUser,
		Text:      pregunta,
		CreatedAt: time.Now(),
	})
	sess.mu.Unlock()

	defer func() {
		sess.mu.Lock()
		sess.busy = false
		sess.mu.Unlock()
	}()

	contexto := s.matcher.Match(pregunta)

	var respuesta string
	var remoteUsed bool
	if s.remote != nil {
		text, err := s.remote.Ask(ctx, pregunta, contexto)
		if err != nil {
			s.logger.Warn("Remote responder unavailable, falling back to local answer", zap.Error(err))
		} else {
			respuesta = text
			remoteUsed = true
		}
	}
	if !remoteUsed {
		respuesta = s.responder.Render(contexto, pregunta)
	}

	reply := models.Message{
		Sender:    models.SenderBot,
		Text:      respuesta,
		CreatedAt: time.Now(),
	}
	sugerencias := s.suggester.Suggest(contexto)

	sess.mu.Lock()
	sess.messages = append(sess.messages, reply)
	sess.suggestions = sugerencias
	sess.mu.Unlock()

	return &TurnResult{
		Reply:       reply,
		Suggestions: sugerencias,
		Context:     contexto,
		RemoteUsed:  remoteUsed,
	}, nil
}
