package handlers

import (
	"strings"

	"damena-assistant/internal/dto"
	"damena-assistant/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ChatHandler exposes the thin LLM proxy. remote may be nil when no API key
// is configured; the endpoint then reports an internal fault and clients
// are expected to fall back to their local answer.
type ChatHandler struct {
	remote service.RemoteResponder
	logger *zap.Logger
}

func NewChatHandler(remote service.RemoteResponder, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		remote: remote,
		logger: logger,
	}
}

// Ask godoc
// @Summary Forward a question to the language model
// @Description Sends the question plus the caller-supplied local context to the LLM
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Question and optional context"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/chat [post]
func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if strings.TrimSpace(req.Pregunta) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "pregunta requerida",
		})
	}

	if h.remote == nil {
		h.logger.Warn("Chat proxy called without a configured LLM")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error interno al procesar la solicitud",
		})
	}

	var contexto any
	if len(req.Contexto) > 0 {
		contexto = req.Contexto
	}

	respuesta, err := h.remote.Ask(c.Context(), req.Pregunta, contexto)
	if err != nil {
		h.logger.Error("Chat completion failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error interno al procesar la solicitud",
		})
	}

	return c.JSON(dto.ChatResponse{Respuesta: respuesta})
}
