package handlers

import (
	"errors"
	"strings"

	"damena-assistant/internal/dto"
	"damena-assistant/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SessionHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewSessionHandler(chatService *service.ChatService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Create godoc
// @Summary Open a chat session
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Router /api/sessions [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	id, mensajes, sugerencias := h.chatService.CreateSession()
	return c.Status(fiber.StatusCreated).JSON(dto.SessionResponse{
		SessionID:   id,
		Mensajes:    mensajes,
		Sugerencias: sugerencias,
	})
}

// Messages godoc
// @Summary Get a session's conversation history
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} dto.HistoryResponse
// @Failure 404 {object} map[string]string
// @Router /api/sessions/{id}/messages [get]
func (h *SessionHandler) Messages(c *fiber.Ctx) error {
	mensajes, err := h.chatService.History(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}
	return c.JSON(dto.HistoryResponse{Mensajes: mensajes})
}

// Send godoc
// @Summary Run one conversation turn
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.SendMessageRequest true "User message"
// @Success 200 {object} dto.TurnResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/sessions/{id}/messages [post]
func (h *SessionHandler) Send(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if strings.TrimSpace(req.Texto) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "texto requerido",
		})
	}

	result, err := h.chatService.Send(c.Context(), c.Params("id"), req.Texto)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Session not found",
			})
		case errors.Is(err, service.ErrTurnInFlight):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Espera la respuesta anterior antes de enviar otro mensaje",
			})
		default:
			h.logger.Error("Turn failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Error interno al procesar la solicitud",
			})
		}
	}

	return c.JSON(dto.TurnResponse{
		Respuesta:   result.Reply,
		Sugerencias: result.Suggestions,
		Contexto:    result.Context,
	})
}

// Reset godoc
// @Summary Reset a session back to the welcome message
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /api/sessions/{id}/reset [post]
func (h *SessionHandler) Reset(c *fiber.Ctx) error {
	if err := h.chatService.Reset(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}
	return c.JSON(fiber.Map{"ok": true})
}
