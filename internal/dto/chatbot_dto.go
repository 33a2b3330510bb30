package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	Question string `json:"question" validate:"required"`
}

type ChatMessageDTO struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	IsError   bool      `json:"is_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatResponse struct {
	SessionId uuid.UUID       `json:"session_id"`
	Sent      *ChatMessageDTO `json:"sent"`
	Reply     *ChatMessageDTO `json:"reply"`
	// ErrorDetail carries the normalized gateway error text for the
	// dismissible banner when Reply is the fixed apology message.
	ErrorDetail string `json:"error_detail,omitempty"`
	ThreadLen   int    `json:"thread_len"`
}

type GetChatHistoryResponse struct {
	SessionId          uuid.UUID        `json:"session_id"`
	VideoId            string           `json:"video_id"`
	VideoUrl           string           `json:"video_url"`
	Messages           []ChatMessageDTO `json:"messages"`
	SuggestedQuestions []string         `json:"suggested_questions,omitempty"`
}
