package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateChatSessionResponse struct {
	Id       uuid.UUID            `json:"id"`
	Title    string               `json:"title"`
	Greeting *ChatMessageResponse `json:"greeting,omitempty"`
}

type ChatSessionResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ChatMessageResponse struct {
	Id         uuid.UUID `json:"id"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	Status     string    `json:"status"`
	Confidence *float64  `json:"confidence,omitempty"`
	Sources    []string  `json:"sources,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,max=8000"`
}

type SendMessageResponse struct {
	SessionId uuid.UUID            `json:"session_id"`
	Sent      *ChatMessageResponse `json:"sent"`
	Reply     *ChatMessageResponse `json:"reply"`
}

type AnalyzeDocumentRequest struct {
	Filename string `json:"filename" validate:"required,max=255"`
	Content  string `json:"content" validate:"required,max=200000"`
}

type AnalyzeDocumentResponse struct {
	Summary    string   `json:"summary"`
	Confidence *float64 `json:"confidence,omitempty"`
	Sources    []string `json:"sources,omitempty"`
}
