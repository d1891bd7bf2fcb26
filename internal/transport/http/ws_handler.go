package http

import (
	"encoding/json"
	"log"
	"net/http"

	"codefix-quiz-service/internal/app"
	"codefix-quiz-service/internal/domain"
	"github.com/gorilla/websocket"
)

// WSHandler runs interactive play sessions over a websocket. All writes
// happen on the single read loop, so no writer goroutine is needed: the
// server only speaks in response to the client.
type WSHandler struct {
	service  *app.QuizService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type submitPayload struct {
	Code string `json:"code"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type hintPayload struct {
	Hint string `json:"hint"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and drives one session: the first challenge
// goes out immediately, then the client submits fixes, asks for hints, or
// skips until the run finishes.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	lang, err := domain.ParseLanguage(r.URL.Query().Get("language"))
	if err != nil {
		http.Error(w, "unknown or missing language", http.StatusBadRequest)
		return
	}
	playerName := r.URL.Query().Get("name")
	if playerName == "" {
		http.Error(w, "missing name", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sessionID, first, err := h.service.Start(r.Context(), lang, playerName)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	if err := conn.WriteJSON(outboundMessage[app.ChallengeView]{Type: "challenge", Payload: first}); err != nil {
		return
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}

		switch inbound.Type {
		case "hint":
			hint, err := h.service.Hint(r.Context(), sessionID)
			if err != nil {
				h.writeError(conn, err)
				continue
			}
			_ = conn.WriteJSON(outboundMessage[hintPayload]{Type: "hint", Payload: hintPayload{Hint: hint}})

		case "submit":
			var payload submitPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: "invalid submit payload"}})
				continue
			}
			result, err := h.service.Submit(r.Context(), sessionID, payload.Code)
			if err != nil {
				h.writeError(conn, err)
				continue
			}
			if h.writeResult(conn, result) {
				return
			}

		case "skip":
			result, err := h.service.Skip(r.Context(), sessionID)
			if err != nil {
				h.writeError(conn, err)
				continue
			}
			if h.writeResult(conn, result) {
				return
			}

		default:
			_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}})
		}
	}
}

// writeResult sends the submission outcome and, when the run is over, the
// final summary. It reports whether the session finished.
func (h *WSHandler) writeResult(conn *websocket.Conn, result app.SubmitResult) bool {
	_ = conn.WriteJSON(outboundMessage[app.SubmitResult]{Type: "result", Payload: result})
	if result.Summary != nil {
		_ = conn.WriteJSON(outboundMessage[domain.SessionSummary]{Type: "finished", Payload: *result.Summary})
		return true
	}
	return false
}

func (h *WSHandler) writeError(conn *websocket.Conn, err error) {
	_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
}
