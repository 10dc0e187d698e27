package dto

import (
	"encoding/json"

	"damena-assistant/internal/models"
)

// ChatRequest is the /api/chat proxy body. Contexto is kept raw: the proxy
// only serializes it into the model prompt and never interprets it.
type ChatRequest struct {
	Pregunta string          `json:"pregunta"`
	Contexto json.RawMessage `json:"contexto"`
}

type ChatResponse struct {
	Respuesta string `json:"respuesta"`
}

type SessionResponse struct {
	SessionID   string           `json:"session_id"`
	Mensajes    []models.Message `json:"mensajes"`
	Sugerencias []string         `json:"sugerencias"`
}

type SendMessageRequest struct {
	Texto string `json:"texto"`
}

type TurnResponse struct {
	Respuesta   models.Message `json:"respuesta"`
	Sugerencias []string       `json:"sugerencias"`
	Contexto    models.Context `json:"contexto,omitempty"`
}

type HistoryResponse struct {
	Mensajes []models.Message `json:"mensajes"`
}
