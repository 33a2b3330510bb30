package service

import (
	"context"
	"sync"
	"time"

	"ytchat-web/internal/dto"
	"ytchat-web/internal/entity"
	"ytchat-web/internal/pkg/logger"
	"ytchat-web/pkg/gateway"
)

// IMonitorService owns the backend connectivity flag. It probes liveness
// immediately on Start and then on a fixed interval until Stop. The probe
// runs on the gateway's short-timeout transport, so it can overlap an
// in-flight chat or processing call without waiting on it.
type IMonitorService interface {
	Start(ctx context.Context)
	Stop()
	Snapshot() dto.ConnectivityStatusResponse
}

type monitorService struct {
	gw        gateway.Gateway
	publisher IPublisherService
	logger    logger.ILogger
	interval  time.Duration

	mu        sync.RWMutex
	status    entity.ConnectivityStatus
	detail    string
	checkedAt time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

func NewMonitorService(gw gateway.Gateway, publisher IPublisherService, log logger.ILogger, interval time.Duration) IMonitorService {
	return &monitorService{
		gw:        gw,
		publisher: publisher,
		logger:    log,
		interval:  interval,
		status:    entity.StatusChecking,
	}
}

func (m *monitorService) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	go m.run(runCtx)
}

// Stop cancels the polling goroutine and waits for it to exit, so no probe
// fires after Stop returns.
func (m *monitorService) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

func (m *monitorService) Snapshot() dto.ConnectivityStatusResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return dto.ConnectivityStatusResponse{
		Status:    string(m.status),
		CheckedAt: m.checkedAt,
		Detail:    m.detail,
	}
}

func (m *monitorService) run(ctx context.Context) {
	defer close(m.done)

	m.probe(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

func (m *monitorService) probe(ctx context.Context) {
	status := entity.StatusConnected
	detail := ""

	if _, err := m.gw.CheckBackendHealth(ctx); err != nil {
		// Stop racing a canceled context into a bogus "disconnected".
		if ctx.Err() != nil {
			return
		}
		status = entity.StatusDisconnected
		detail = err.Error()
	}

	m.mu.Lock()
	changed := m.status != status
	m.status = status
	m.detail = detail
	m.checkedAt = time.Now()
	m.mu.Unlock()

	if !changed {
		return
	}

	m.logger.Info("Monitor", "Backend connectivity changed", map[string]interface{}{
		"status": string(status),
		"detail": detail,
	})

	event := &dto.StatusChangedEvent{
		Status:    string(status),
		Detail:    detail,
		CheckedAt: time.Now(),
	}
	if err := m.publisher.PublishStatusChanged(event); err != nil {
		m.logger.Warn("Monitor", "Failed to publish status event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
