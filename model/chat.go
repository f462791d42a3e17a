package model

import (
	"strings"
	"time"

	"github.com/muhammadheryan/vastu-shakti/constant"
)

type ChatMessageEntity struct {
	ID         uint64              `db:"id"`
	SessionID  string              `db:"session_id"`
	Message    string              `db:"message"`
	IsBot      bool                `db:"is_bot"`
	Intent     constant.ChatIntent `db:"intent"`
	Confidence float64             `db:"confidence"`
	CreatedAt  time.Time           `db:"created_at"`
}

type ChatRequest struct {
	Message   string `json:"message" validate:"max=1000"`
	SessionID string `json:"sessionId" validate:"omitempty,max=64"`
	Language  string `json:"language"`
}

func (r *ChatRequest) Sanitize() {
	r.SessionID = strings.TrimSpace(r.SessionID)
}

type ChatResponse struct {
	Response  string              `json:"response"`
	Intent    constant.ChatIntent `json:"intent"`
	SessionID string              `json:"sessionId"`
}

type ChatMessage struct {
	Message    string              `json:"message"`
	IsBot      bool                `json:"isBot"`
	Intent     constant.ChatIntent `json:"intent,omitempty"`
	Confidence float64             `json:"confidence,omitempty"`
	Timestamp  time.Time           `json:"timestamp"`
}

type ChatHistoryResponse struct {
	SessionID string         `json:"sessionId"`
	Messages  []*ChatMessage `json:"messages"`
}
