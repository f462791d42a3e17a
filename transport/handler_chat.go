package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/vastu-shakti/model"
)

// ChatMessage handler
// @Summary Chatbot reply
// @Description Canned reply by keyword intent. A sessionId is generated when absent.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body model.ChatRequest true "Message"
// @Success 200 {object} model.ChatResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/chat/message [post]
func (s *RestHandler) ChatMessage(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ChatApp.SendMessage(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ChatHistory handler
// @Summary Chat transcript
// @Tags Chat
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} model.ChatHistoryResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/chat/history/{sessionId} [get]
func (s *RestHandler) ChatHistory(w http.ResponseWriter, r *http.Request) {
	res, err := s.ChatApp.History(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
