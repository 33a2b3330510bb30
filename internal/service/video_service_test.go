package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytchat-web/internal/dto"
	"ytchat-web/internal/pkg/logger"
	"ytchat-web/internal/repository/memory"
	"ytchat-web/pkg/gateway"
)

func newVideoService(gw *fakeGateway) (IVideoService, *memory.SessionRepository) {
	repo := memory.NewSessionRepository(time.Hour)
	return NewVideoService(gw, repo, logger.NewNopLogger()), repo
}

func TestSubmitEmptyInputNeverHitsNetwork(t *testing.T) {
	gw := &fakeGateway{}
	svc, _ := newVideoService(gw)

	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := svc.Submit(context.Background(), &dto.SubmitVideoRequest{YoutubeURL: input})

		var vErr *dto.ValidationError
		require.ErrorAs(t, err, &vErr, "input %q", input)
	}

	process, _, _, _ := gw.calls()
	assert.Equal(t, 0, process, "validation failures must not issue network calls")
}

func TestSubmitRejectsNonYouTubeInput(t *testing.T) {
	gw := &fakeGateway{}
	svc, _ := newVideoService(gw)

	_, err := svc.Submit(context.Background(), &dto.SubmitVideoRequest{YoutubeURL: "https://vimeo.com/12345"})

	var vErr *dto.ValidationError
	require.ErrorAs(t, err, &vErr)

	process, _, _, _ := gw.calls()
	assert.Equal(t, 0, process)
}

func TestSubmitLenientWhenHostMentioned(t *testing.T) {
	// Extraction fails but the input mentions a YouTube host; the backend
	// gets to decide.
	gw := &fakeGateway{
		processRes: &gateway.ProcessVideoResponse{VideoID: "Gfr50f6ZBvo", Status: "processed"},
	}
	svc, _ := newVideoService(gw)

	res, err := svc.Submit(context.Background(), &dto.SubmitVideoRequest{YoutubeURL: "https://www.youtube.com/playlist?list=PLabc"})
	require.NoError(t, err)
	assert.Equal(t, "Gfr50f6ZBvo", res.VideoId)

	process, _, _, _ := gw.calls()
	assert.Equal(t, 1, process)
}

func TestSubmitSuccessCreatesSession(t *testing.T) {
	gw := &fakeGateway{
		processRes: &gateway.ProcessVideoResponse{VideoID: "Gfr50f6ZBvo", Status: "processed"},
	}
	svc, repo := newVideoService(gw)

	res, err := svc.Submit(context.Background(), &dto.SubmitVideoRequest{YoutubeURL: "https://www.youtube.com/watch?v=Gfr50f6ZBvo"})
	require.NoError(t, err)

	assert.Equal(t, "Gfr50f6ZBvo", res.VideoId)
	assert.Equal(t, 1500, res.HandoffDelayMs)
	assert.NotEqual(t, uuid.Nil, res.SessionId)

	session, found := repo.Get(res.SessionId)
	require.True(t, found)
	assert.Equal(t, "Gfr50f6ZBvo", session.VideoId)
	assert.Empty(t, session.Messages)
}

func TestSubmitBareIDGetsCanonicalWatchURL(t *testing.T) {
	gw := &fakeGateway{
		processRes: &gateway.ProcessVideoResponse{VideoID: "Gfr50f6ZBvo"},
	}
	svc, _ := newVideoService(gw)

	res, err := svc.Submit(context.Background(), &dto.SubmitVideoRequest{YoutubeURL: "Gfr50f6ZBvo"})
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=Gfr50f6ZBvo", res.VideoUrl)
}

func TestSubmitGatewayErrorPropagates(t *testing.T) {
	wantErr := &gateway.BackendError{Kind: gateway.ErrKindBackend, StatusCode: 400, Message: "Transcript unavailable"}
	gw := &fakeGateway{processErr: wantErr}
	svc, _ := newVideoService(gw)

	_, err := svc.Submit(context.Background(), &dto.SubmitVideoRequest{YoutubeURL: "https://youtu.be/Gfr50f6ZBvo"})

	var be *gateway.BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Transcript unavailable", be.Message)
}

func TestDiscardSession(t *testing.T) {
	gw := &fakeGateway{
		processRes: &gateway.ProcessVideoResponse{VideoID: "Gfr50f6ZBvo"},
	}
	svc, repo := newVideoService(gw)

	res, err := svc.Submit(context.Background(), &dto.SubmitVideoRequest{YoutubeURL: "https://youtu.be/Gfr50f6ZBvo"})
	require.NoError(t, err)

	require.NoError(t, svc.Discard(res.SessionId))

	_, found := repo.Get(res.SessionId)
	assert.False(t, found, "thread is discarded, not archived")

	var nfErr *dto.SessionNotFoundError
	assert.ErrorAs(t, svc.Discard(res.SessionId), &nfErr)
}
