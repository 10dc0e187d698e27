package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"damena-assistant/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRemote struct {
	reply        string
	err          error
	lastPregunta string
	lastContexto any
}

func (s *stubRemote) Ask(ctx context.Context, pregunta string, contexto any) (string, error) {
	s.lastPregunta = pregunta
	s.lastContexto = contexto
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newChatApp(h *ChatHandler) *fiber.App {
	app := fiber.New()
	app.Post("/api/chat", h.Ask)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestChatHandler_Success(t *testing.T) {
	remote := &stubRemote{reply: "Su saldo es de ₡1 525 000,50."}
	app := newChatApp(NewChatHandler(remote, zap.NewNop()))

	resp := postJSON(t, app, "/api/chat", fiber.Map{
		"pregunta": "cual es mi saldo",
		"contexto": fiber.Map{"tipo": "saldo"},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.ChatResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Su saldo es de ₡1 525 000,50.", body.Respuesta)
	assert.Equal(t, "cual es mi saldo", remote.lastPregunta)
	assert.NotNil(t, remote.lastContexto, "the raw context must be forwarded")
}

func TestChatHandler_NullContext(t *testing.T) {
	remote := &stubRemote{reply: "respuesta"}
	app := newChatApp(NewChatHandler(remote, zap.NewNop()))

	resp := postJSON(t, app, "/api/chat", fiber.Map{"pregunta": "hola"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestChatHandler_MissingPregunta(t *testing.T) {
	remote := &stubRemote{reply: "nunca"}
	app := newChatApp(NewChatHandler(remote, zap.NewNop()))

	for _, body := range []fiber.Map{
		{},
		{"pregunta": ""},
		{"pregunta": "   "},
	} {
		resp := postJSON(t, app, "/api/chat", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
	assert.Empty(t, remote.lastPregunta, "the remote must not be called")
}

func TestChatHandler_RemoteFault(t *testing.T) {
	app := newChatApp(NewChatHandler(&stubRemote{err: errors.New("provider outage")}, zap.NewNop()))

	resp := postJSON(t, app, "/api/chat", fiber.Map{"pregunta": "hola"})

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Error interno al procesar la solicitud", body["error"])
}

func TestChatHandler_NoRemoteConfigured(t *testing.T) {
	app := newChatApp(NewChatHandler(nil, zap.NewNop()))

	resp := postJSON(t, app, "/api/chat", fiber.Map{"pregunta": "hola"})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
