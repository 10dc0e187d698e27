package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"damena-assistant/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// ErrRemoteUnavailable covers every failure mode of the remote boundary:
// transport errors, non-success statuses, malformed payloads and timeouts.
// Callers fall back to the local responder; the error never reaches users.
var ErrRemoteUnavailable = errors.New("remote responder unavailable")

// LLMService answers questions through the GigaChat API, grounding the
// model on the locally matched context.
type LLMService struct {
	client  *gigago.Client
	model   *gigago.GenerativeModel
	timeout time.Duration
	logger  *zap.Logger
}

func buildSystemInstruction() string {
	return `Eres el asistente virtual del Banco Damena.
Responde de forma:
- formal
- clara
- empática
- NO inventes datos que no están en el sistema local.
- Si el sistema no tiene información, aclara que no está disponible.
- Usa el contexto local JSON enviado con la pregunta para responder al usuario.`
}

// NewLLMService builds the GigaChat-backed remote responder. It fails when
// no API key is configured; callers are expected to run local-only then.
func NewLLMService(cfg *config.GigaChatConfig, timeout time.Duration, logger *zap.Logger) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gigachat api key is not configured")
	}

	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = buildSystemInstruction()
	model.Temperature = 0.3

	return &LLMService{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Ask forwards the question plus the serialized context to the model. Any
// failure is reported as ErrRemoteUnavailable.
func (s *LLMService) Ask(ctx context.Context, pregunta string, contexto any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ctxJSON := "null"
	if b, err := json.MarshalIndent(contexto, "", "  "); err == nil {
		ctxJSON = string(b)
	}

	prompt := fmt.Sprintf("Contexto del sistema:\n%s\n\nPregunta del usuario: %s", ctxJSON, pregunta)

	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		s.logger.Warn("LLM request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		s.logger.Warn("LLM returned no choices")
		return "", ErrRemoteUnavailable
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		s.logger.Warn("LLM returned an empty answer")
		return "", ErrRemoteUnavailable
	}

	return text, nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
