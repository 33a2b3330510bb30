package service

import (
	"context"
	"sync"

	"ytchat-web/internal/dto"
	"ytchat-web/pkg/gateway"
)

// fakeGateway is a scriptable gateway.Gateway for service tests. Calls are
// counted so tests can assert that validation failures never hit the network.
type fakeGateway struct {
	mu sync.Mutex

	processCalls int
	chatCalls    int
	statusCalls  int
	healthCalls  int

	processRes *gateway.ProcessVideoResponse
	processErr error

	chatRes *gateway.ChatResponse
	chatErr error

	statusRes *gateway.VideoStatusResponse
	statusErr error

	healthErr error

	// When set, SendMessage blocks until the channel is closed. Used to hold
	// a question in flight.
	chatBlock chan struct{}
}

func (f *fakeGateway) ProcessVideo(ctx context.Context, youtubeURL string) (*gateway.ProcessVideoResponse, error) {
	f.mu.Lock()
	f.processCalls++
	f.mu.Unlock()
	if f.processErr != nil {
		return nil, f.processErr
	}
	return f.processRes, nil
}

func (f *fakeGateway) SendMessage(ctx context.Context, videoID, question string) (*gateway.ChatResponse, error) {
	f.mu.Lock()
	f.chatCalls++
	block := f.chatBlock
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if f.chatErr != nil {
		return nil, f.chatErr
	}
	return f.chatRes, nil
}

func (f *fakeGateway) CheckVideoStatus(ctx context.Context, videoID string) (*gateway.VideoStatusResponse, error) {
	f.mu.Lock()
	f.statusCalls++
	f.mu.Unlock()
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return f.statusRes, nil
}

func (f *fakeGateway) CheckBackendHealth(ctx context.Context) (gateway.HealthResponse, error) {
	f.mu.Lock()
	f.healthCalls++
	f.mu.Unlock()
	if f.healthErr != nil {
		return nil, f.healthErr
	}
	return gateway.HealthResponse{"status": "healthy"}, nil
}

func (f *fakeGateway) calls() (process, chat, status, health int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.processCalls, f.chatCalls, f.statusCalls, f.healthCalls
}

func (f *fakeGateway) setHealthErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.healthErr = err
}

// fakePublisher records published connectivity events.
type fakePublisher struct {
	mu     sync.Mutex
	events []dto.StatusChangedEvent
}

func (f *fakePublisher) PublishStatusChanged(event *dto.StatusChangedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, *event)
	return nil
}

func (f *fakePublisher) published() []dto.StatusChangedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]dto.StatusChangedEvent, len(f.events))
	copy(out, f.events)
	return out
}
