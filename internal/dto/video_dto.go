package dto

import (
	"github.com/google/uuid"
)

type SubmitVideoRequest struct {
	YoutubeURL string `json:"youtube_url" validate:"required"`
}

type SubmitVideoResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	VideoId   string    `json:"video_id"`
	VideoUrl  string    `json:"video_url"`
	Status    string    `json:"status,omitempty"`
	// The page holds the chat view back this long so the success
	// acknowledgment is actually seen. UX pacing, not a technical need.
	HandoffDelayMs int `json:"handoff_delay_ms"`
}

type VideoStatusResponse struct {
	VideoId string `json:"video_id"`
	Status  string `json:"status"`
	Exists  bool   `json:"exists"`
}
