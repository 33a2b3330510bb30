package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session pairs a backend-assigned video identifier with its in-memory chat
// thread. Exactly one video per session; starting a new session discards the
// thread rather than archiving it.
type Session struct {
	Id        uuid.UUID     `json:"id"`
	VideoId   string        `json:"video_id"`
	VideoUrl  string        `json:"video_url"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"created_at"`
}
