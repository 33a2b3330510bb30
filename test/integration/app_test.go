package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytchat-web/internal/bootstrap"
	"ytchat-web/internal/config"
	"ytchat-web/internal/server"
)

// stubBackend imitates the RAG API surface the app proxies to.
type stubBackend struct {
	srv *httptest.Server

	chatFails   atomic.Bool
	processCode atomic.Int32
}

func newStubBackend(t *testing.T) *stubBackend {
	t.Helper()
	b := &stubBackend{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/video/process", func(w http.ResponseWriter, r *http.Request) {
		if code := b.processCode.Load(); code != 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(int(code))
			fmt.Fprint(w, `{"detail": "Invalid YouTube URL or video unavailable"}`)
			return
		}
		var req struct {
			YoutubeURL string `json:"youtube_url"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"video_id": "Gfr50f6ZBvo", "status": "processed", "message": "Video processed successfully"}`)
	})
	mux.HandleFunc("POST /api/v1/chat", func(w http.ResponseWriter, r *http.Request) {
		if b.chatFails.Load() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"detail": "LLM generation failed"}`)
			return
		}
		var req struct {
			VideoID  string `json:"video_id"`
			Question string `json:"question"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"video_id": req.VideoID,
			"question": req.Question,
			"answer":   "The video covers " + req.Question,
		})
	})
	mux.HandleFunc("GET /api/v1/video/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"video_id": %q, "status": "processed", "exists": true}`, r.PathValue("id"))
	})
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status": "healthy"}`)
	})

	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	return b
}

func newTestApp(t *testing.T, backendURL string) *server.Server {
	t.Helper()
	tmp := t.TempDir()
	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			LogFilePath:        filepath.Join(tmp, "app.log"),
			StatusLogFilePath:  filepath.Join(tmp, "status.log"),
			CorsAllowedOrigins: "http://localhost:3000",
			StaticDir:          tmp,
		},
		Backend: config.BackendConfig{
			BaseURL:        backendURL,
			RequestTimeout: 5 * time.Second,
			HealthTimeout:  time.Second,
			HealthInterval: time.Hour,
		},
	}
	container := bootstrap.NewContainer(cfg)
	return server.New(cfg, container)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *server.Server, method, path string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := app.GetApp().Test(req, 10_000)
	require.NoError(t, err)
	defer res.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
	return res.StatusCode, env
}

func TestVideoChatFlow(t *testing.T) {
	backend := newStubBackend(t)
	app := newTestApp(t, backend.srv.URL)

	// 1. Submit a video.
	code, env := doJSON(t, app, "POST", "/api/v1/video/process", map[string]string{
		"youtube_url": "https://www.youtube.com/watch?v=Gfr50f6ZBvo",
	})
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success)

	var submitted struct {
		SessionId      string `json:"session_id"`
		VideoId        string `json:"video_id"`
		VideoUrl       string `json:"video_url"`
		HandoffDelayMs int    `json:"handoff_delay_ms"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &submitted))
	assert.NotEmpty(t, submitted.SessionId)
	assert.Equal(t, "Gfr50f6ZBvo", submitted.VideoId)
	assert.Equal(t, 1500, submitted.HandoffDelayMs)

	// 2. Fresh thread offers suggested questions.
	code, env = doJSON(t, app, "GET", "/api/v1/chat/"+submitted.SessionId+"/history", nil)
	require.Equal(t, http.StatusOK, code)
	var history struct {
		Messages           []json.RawMessage `json:"messages"`
		SuggestedQuestions []string          `json:"suggested_questions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &history))
	assert.Empty(t, history.Messages)
	assert.NotEmpty(t, history.SuggestedQuestions)

	// 3. Ask a question.
	code, env = doJSON(t, app, "POST", "/api/v1/chat/"+submitted.SessionId, map[string]string{
		"question": "goroutines",
	})
	require.Equal(t, http.StatusOK, code)
	var chat struct {
		Reply struct {
			Role    string `json:"role"`
			Content string `json:"content"`
			IsError bool   `json:"is_error"`
		} `json:"reply"`
		ErrorDetail string `json:"error_detail"`
		ThreadLen   int    `json:"thread_len"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &chat))
	assert.Equal(t, "assistant", chat.Reply.Role)
	assert.Equal(t, "The video covers goroutines", chat.Reply.Content)
	assert.False(t, chat.Reply.IsError)
	assert.Empty(t, chat.ErrorDetail)
	assert.Equal(t, 2, chat.ThreadLen)

	// 4. History now has both turns and no suggestions. Decode into a fresh
	// struct: the field is omitted from the payload, not sent as null, so a
	// reused struct would keep its step-2 value.
	code, env = doJSON(t, app, "GET", "/api/v1/chat/"+submitted.SessionId+"/history", nil)
	require.Equal(t, http.StatusOK, code)
	var historyAfterChat struct {
		Messages           []json.RawMessage `json:"messages"`
		SuggestedQuestions []string          `json:"suggested_questions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &historyAfterChat))
	assert.Len(t, historyAfterChat.Messages, 2)
	assert.Empty(t, historyAfterChat.SuggestedQuestions)

	// 5. Video status proxied through.
	code, env = doJSON(t, app, "GET", "/api/v1/chat/"+submitted.SessionId+"/video-status", nil)
	require.Equal(t, http.StatusOK, code)
	var status struct {
		Status string `json:"status"`
		Exists bool   `json:"exists"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.True(t, status.Exists)

	// 6. Discarding the session makes it unknown.
	code, _ = doJSON(t, app, "DELETE", "/api/v1/session/"+submitted.SessionId, nil)
	require.Equal(t, http.StatusOK, code)

	code, env = doJSON(t, app, "POST", "/api/v1/chat/"+submitted.SessionId, map[string]string{
		"question": "still there?",
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
}

func TestSubmitInvalidURLRejectedLocally(t *testing.T) {
	backend := newStubBackend(t)
	app := newTestApp(t, backend.srv.URL)

	code, env := doJSON(t, app, "POST", "/api/v1/video/process", map[string]string{
		"youtube_url": "https://example.com/not-a-video",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "valid YouTube URL")
}

func TestSubmitBackendRejectionSurfacesDetail(t *testing.T) {
	backend := newStubBackend(t)
	backend.processCode.Store(http.StatusBadRequest)
	app := newTestApp(t, backend.srv.URL)

	code, env := doJSON(t, app, "POST", "/api/v1/video/process", map[string]string{
		"youtube_url": "https://www.youtube.com/watch?v=Gfr50f6ZBvo",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid YouTube URL or video unavailable", env.Message)
}

func TestChatBackendFailureYieldsApologyReply(t *testing.T) {
	backend := newStubBackend(t)
	app := newTestApp(t, backend.srv.URL)

	code, env := doJSON(t, app, "POST", "/api/v1/video/process", map[string]string{
		"youtube_url": "https://youtu.be/Gfr50f6ZBvo",
	})
	require.Equal(t, http.StatusOK, code)
	var submitted struct {
		SessionId string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &submitted))

	backend.chatFails.Store(true)

	// The thread stays coherent: the call succeeds at the HTTP level and the
	// reply is the fixed apology, with the backend detail alongside.
	code, env = doJSON(t, app, "POST", "/api/v1/chat/"+submitted.SessionId, map[string]string{
		"question": "anything",
	})
	require.Equal(t, http.StatusOK, code)
	var chat struct {
		Reply struct {
			Content string `json:"content"`
			IsError bool   `json:"is_error"`
		} `json:"reply"`
		ErrorDetail string `json:"error_detail"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &chat))
	assert.True(t, chat.Reply.IsError)
	assert.Contains(t, chat.Reply.Content, "Sorry, I encountered an error")
	assert.Equal(t, "LLM generation failed", chat.ErrorDetail)
}

func TestChatUnknownSession(t *testing.T) {
	backend := newStubBackend(t)
	app := newTestApp(t, backend.srv.URL)

	code, env := doJSON(t, app, "POST", "/api/v1/chat/00000000-0000-0000-0000-000000000000", map[string]string{
		"question": "hello",
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, env.Message, "Session not found")
}

func TestStatusSnapshotBeforeMonitorStarts(t *testing.T) {
	backend := newStubBackend(t)
	app := newTestApp(t, backend.srv.URL)

	code, env := doJSON(t, app, "GET", "/api/v1/status", nil)
	require.Equal(t, http.StatusOK, code)
	var snap struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &snap))
	assert.Equal(t, "checking", snap.Status)
}

func TestOwnHealthEndpoint(t *testing.T) {
	backend := newStubBackend(t)
	app := newTestApp(t, backend.srv.URL)

	req := httptest.NewRequest("GET", "/health", nil)
	res, err := app.GetApp().Test(req, 5_000)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}
