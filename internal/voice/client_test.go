package voice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_DisabledReturnsDegraded(t *testing.T) {
	c := NewClient("", "", nil)

	if c.Enabled() {
		t.Fatal("client without base URL should be disabled")
	}
	if err := c.Ping(context.Background()); err == nil {
		t.Fatal("expected ping failure when unconfigured")
	}

	res := c.Process(context.Background(), "note.wav", []byte("audio"))
	if res.Success {
		t.Fatal("expected degraded result")
	}
	if res.ReplyText == "" {
		t.Fatal("degraded result should carry a fallback reply")
	}
}

func TestClient_PingAndProcess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			w.WriteHeader(http.StatusOK)
		case "/process":
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				http.Error(w, "bad form", http.StatusBadRequest)
				return
			}
			if _, _, err := r.FormFile("audio"); err != nil {
				http.Error(w, "missing audio", http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"transcript":"I have chest pain","intent":"heart_prediction","language":"en","reply_text":"Please seek care."}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", nil)
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected ping error: %v", err)
	}

	res := c.Process(context.Background(), "note.wav", []byte("fake-audio"))
	if !res.Success {
		t.Fatalf("expected success, got error %q", res.Error)
	}
	if res.Transcript != "I have chest pain" || res.Intent != "heart_prediction" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestClient_UpstreamErrorDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", nil)
	res := c.Process(context.Background(), "note.wav", []byte("fake-audio"))
	if res.Success {
		t.Fatal("expected degraded result on upstream error")
	}
	if res.ReplyText == "" {
		t.Fatal("degraded result should carry a fallback reply")
	}
}
