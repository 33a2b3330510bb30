package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ytchat-web/internal/constant"
	"ytchat-web/internal/dto"
	"ytchat-web/internal/entity"
	"ytchat-web/internal/pkg/logger"
	"ytchat-web/internal/repository/memory"
	"ytchat-web/pkg/gateway"
)

// IChatService renders and extends the message thread for an active session.
type IChatService interface {
	SendChat(ctx context.Context, sessionId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	History(sessionId uuid.UUID) (*dto.GetChatHistoryResponse, error)
	VideoStatus(ctx context.Context, sessionId uuid.UUID) (*dto.VideoStatusResponse, error)
	SuggestedQuestions() []string
}

type chatService struct {
	gw       gateway.Gateway
	sessions *memory.SessionRepository
	logger   logger.ILogger

	// mu protects both the thread slices and the in-flight set. One question
	// at a time per session: later submissions are rejected, never queued.
	mu       sync.Mutex
	inflight map[uuid.UUID]bool
}

func NewChatService(gw gateway.Gateway, sessions *memory.SessionRepository, log logger.ILogger) IChatService {
	return &chatService{
		gw:       gw,
		sessions: sessions,
		logger:   log,
		inflight: make(map[uuid.UUID]bool),
	}
}

func (s *chatService) SendChat(ctx context.Context, sessionId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, dto.NewValidationError("Question must not be empty")
	}

	session, found := s.sessions.Get(sessionId)
	if !found {
		return nil, &dto.SessionNotFoundError{}
	}

	if !s.tryAcquire(sessionId) {
		return nil, &dto.ChatBusyError{}
	}
	defer s.release(sessionId)

	// The user message goes on the thread before the network call so thread
	// order reflects causal order.
	userMsg := entity.ChatMessage{
		Id:        uuid.New(),
		Role:      entity.ChatMessageRoleUser,
		Content:   question,
		CreatedAt: time.Now(),
	}
	s.appendMessage(session, userMsg)

	res, err := s.gw.SendMessage(ctx, session.VideoId, question)

	var reply entity.ChatMessage
	var errorDetail string
	if err != nil {
		s.logger.Error("ChatService", "Chat call failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		reply = entity.ChatMessage{
			Id:        uuid.New(),
			Role:      entity.ChatMessageRoleAssistant,
			Content:   constant.ChatErrorReplyText,
			IsError:   true,
			CreatedAt: time.Now(),
		}
		errorDetail = err.Error()
	} else {
		reply = entity.ChatMessage{
			Id:        uuid.New(),
			Role:      entity.ChatMessageRoleAssistant,
			Content:   res.Answer,
			CreatedAt: time.Now(),
		}
	}
	s.appendMessage(session, reply)

	return &dto.SendChatResponse{
		SessionId:   sessionId,
		Sent:        toMessageDTO(userMsg),
		Reply:       toMessageDTO(reply),
		ErrorDetail: errorDetail,
		ThreadLen:   s.threadLen(session),
	}, nil
}

func (s *chatService) History(sessionId uuid.UUID) (*dto.GetChatHistoryResponse, error) {
	session, found := s.sessions.Get(sessionId)
	if !found {
		return nil, &dto.SessionNotFoundError{}
	}

	s.mu.Lock()
	messages := make([]dto.ChatMessageDTO, 0, len(session.Messages))
	for _, m := range session.Messages {
		messages = append(messages, *toMessageDTO(m))
	}
	s.mu.Unlock()

	res := &dto.GetChatHistoryResponse{
		SessionId: session.Id,
		VideoId:   session.VideoId,
		VideoUrl:  session.VideoUrl,
		Messages:  messages,
	}
	if len(messages) == 0 {
		res.SuggestedQuestions = s.SuggestedQuestions()
	}
	return res, nil
}

func (s *chatService) VideoStatus(ctx context.Context, sessionId uuid.UUID) (*dto.VideoStatusResponse, error) {
	session, found := s.sessions.Get(sessionId)
	if !found {
		return nil, &dto.SessionNotFoundError{}
	}

	res, err := s.gw.CheckVideoStatus(ctx, session.VideoId)
	if err != nil {
		return nil, err
	}
	return &dto.VideoStatusResponse{
		VideoId: res.VideoID,
		Status:  res.Status,
		Exists:  res.Exists,
	}, nil
}

func (s *chatService) SuggestedQuestions() []string {
	return constant.SuggestedQuestions
}

func (s *chatService) tryAcquire(sessionId uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[sessionId] {
		return false
	}
	s.inflight[sessionId] = true
	return true
}

func (s *chatService) release(sessionId uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, sessionId)
}

func (s *chatService) appendMessage(session *entity.Session, msg entity.ChatMessage) {
	s.mu.Lock()
	session.Messages = append(session.Messages, msg)
	s.mu.Unlock()
	s.sessions.Save(session)
}

func (s *chatService) threadLen(session *entity.Session) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(session.Messages)
}

func toMessageDTO(m entity.ChatMessage) *dto.ChatMessageDTO {
	return &dto.ChatMessageDTO{
		Id:        m.Id,
		Role:      m.Role,
		Content:   m.Content,
		IsError:   m.IsError,
		CreatedAt: m.CreatedAt,
	}
}
