package gateway

// ProcessVideoRequest is the payload for the backend's video processing call.
type ProcessVideoRequest struct {
	YoutubeURL string `json:"youtube_url"`
}

// ProcessVideoResponse is returned once the backend has ingested a transcript.
type ProcessVideoResponse struct {
	VideoID string `json:"video_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ChatRequest is the payload for a question about a processed video.
type ChatRequest struct {
	VideoID  string `json:"video_id"`
	Question string `json:"question"`
}

// ChatResponse carries the assistant's answer.
type ChatResponse struct {
	VideoID  string `json:"video_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// VideoStatusResponse reports whether a video has been processed.
type VideoStatusResponse struct {
	VideoID string `json:"video_id"`
	Status  string `json:"status"`
	Exists  bool   `json:"exists"`
}

// HealthResponse is whatever status fields the backend liveness endpoint
// returns. Any 2xx body counts as alive.
type HealthResponse map[string]interface{}

// errorBody is the structured error payload backends are expected to send.
// FastAPI uses "detail"; others use "message".
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}
