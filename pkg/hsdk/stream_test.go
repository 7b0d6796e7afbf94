package hsdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStreamChat_AssemblesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lines := []string{
			`{"type": "begin"}`,
			`{"type": "item", "content": "What experience "}`,
			``,
			`: keep-alive comment that is not JSON`,
			`{"type": "item", "content": "level is required?"}`,
		}
		w.Write([]byte(strings.Join(lines, "\n") + "\n"))
	}))
	defer srv.Close()

	session, _ := newTestSession(srv.URL)

	var chunks []string
	message, err := session.StreamChat(context.Background(), "/chat",
		ChatRequest{VacancyID: "v-1", Message: "hi"},
		func(chunk string) { chunks = append(chunks, chunk) },
	)
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if message != "What experience level is required?" {
		t.Fatalf("message = %q", message)
	}
	if len(chunks) != 2 {
		t.Fatalf("chunks = %d, want 2", len(chunks))
	}
}

func TestStreamChat_BeginResetsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(
			`{"type": "begin"}` + "\n" +
				`{"type": "item", "content": "stale"}` + "\n" +
				`{"type": "begin"}` + "\n" +
				`{"type": "item", "content": "fresh"}` + "\n"))
	}))
	defer srv.Close()

	session, _ := newTestSession(srv.URL)
	message, err := session.StreamChat(context.Background(), "/chat", ChatRequest{}, nil)
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if message != "fresh" {
		t.Fatalf("message = %q, want fresh", message)
	}
}

func TestStreamChat_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "vacancy not found"}`))
	}))
	defer srv.Close()

	session, _ := newTestSession(srv.URL)
	_, err := session.StreamChat(context.Background(), "/chat", ChatRequest{}, nil)
	if err == nil || !strings.Contains(err.Error(), "vacancy not found") {
		t.Fatalf("expected the backend message, got %v", err)
	}
}
