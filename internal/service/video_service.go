package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"ytchat-web/internal/constant"
	"ytchat-web/internal/dto"
	"ytchat-web/internal/entity"
	"ytchat-web/internal/pkg/logger"
	"ytchat-web/internal/repository/memory"
	"ytchat-web/pkg/gateway"
	"ytchat-web/pkg/youtube"
)

// IVideoService turns free-form user input into a processing request and owns
// the session lifecycle around it.
type IVideoService interface {
	Submit(ctx context.Context, req *dto.SubmitVideoRequest) (*dto.SubmitVideoResponse, error)
	Discard(sessionId uuid.UUID) error
}

type videoService struct {
	gw       gateway.Gateway
	sessions *memory.SessionRepository
	logger   logger.ILogger
}

func NewVideoService(gw gateway.Gateway, sessions *memory.SessionRepository, log logger.ILogger) IVideoService {
	return &videoService{
		gw:       gw,
		sessions: sessions,
		logger:   log,
	}
}

// Submit validates the input shape, asks the backend to ingest the
// transcript and binds a fresh session to the backend-assigned identifier.
// The locally extracted id is UX validation only; the backend's video_id is
// the one the session trusts.
func (s *videoService) Submit(ctx context.Context, req *dto.SubmitVideoRequest) (*dto.SubmitVideoResponse, error) {
	input := strings.TrimSpace(req.YoutubeURL)
	if input == "" {
		return nil, dto.NewValidationError("Please enter a YouTube URL")
	}

	_, extracted := youtube.ExtractVideoID(input)
	if !extracted && !youtube.LooksLikeYouTubeURL(input) {
		// Deliberate leniency: anything mentioning a YouTube host is sent
		// through, the backend re-validates.
		return nil, dto.NewValidationError("Please enter a valid YouTube URL")
	}

	res, err := s.gw.ProcessVideo(ctx, input)
	if err != nil {
		s.logger.Error("VideoService", "Video processing failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	videoUrl := input
	if !youtube.LooksLikeYouTubeURL(input) {
		videoUrl = youtube.WatchURL(res.VideoID)
	}

	session := &entity.Session{
		Id:        uuid.New(),
		VideoId:   res.VideoID,
		VideoUrl:  videoUrl,
		Messages:  make([]entity.ChatMessage, 0),
		CreatedAt: time.Now(),
	}
	s.sessions.Save(session)

	s.logger.Info("VideoService", "Video processed, session created", map[string]interface{}{
		"session_id": session.Id,
		"video_id":   session.VideoId,
	})

	return &dto.SubmitVideoResponse{
		SessionId:      session.Id,
		VideoId:        session.VideoId,
		VideoUrl:       session.VideoUrl,
		Status:         res.Status,
		HandoffDelayMs: constant.HandoffDelayMs,
	}, nil
}

// Discard drops the session and its thread. Nothing is archived.
func (s *videoService) Discard(sessionId uuid.UUID) error {
	if _, found := s.sessions.Get(sessionId); !found {
		return &dto.SessionNotFoundError{}
	}
	s.sessions.Delete(sessionId)

	s.logger.Info("VideoService", "Session discarded", map[string]interface{}{
		"session_id": sessionId,
	})
	return nil
}
