package hsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hireloop/hireloop/pkg/hsdk/herr"
)

func TestPostJSON_DecodesValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var v Vacancy
		if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
			t.Errorf("request body: %v", err)
		}
		v.ID = "v-1"
		v.Status = "draft"
		json.NewEncoder(w).Encode(v)
	}))
	defer srv.Close()

	session, _ := newTestSession(srv.URL)
	created, err := PostJSON[Vacancy](context.Background(), session, "/vacancies", Vacancy{Title: "Go engineer"})
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if created.ID != "v-1" || created.Title != "Go engineer" {
		t.Fatalf("unexpected vacancy: %+v", created)
	}
}

func TestGetJSON_ErrorBodyMessage(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
		want   string
	}{
		"message field": {http.StatusBadRequest, `{"message": "title is required"}`, "title is required"},
		"error field":   {http.StatusConflict, `{"error": "duplicate vacancy"}`, "duplicate vacancy"},
		"non-json body": {http.StatusBadGateway, `<html>upstream died</html>`, "HTTP 502"},
		"empty body":    {http.StatusInternalServerError, ``, "HTTP 500"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			session, _ := newTestSession(srv.URL)
			_, err := GetJSON[Vacancy](context.Background(), session, "/vacancies/v-1")
			if !herr.IsCode(err, herr.CodeHTTP) {
				t.Fatalf("expected HTTP error, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q should contain %q", err.Error(), tc.want)
			}
		})
	}
}

func TestDeleteJSON_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	session, _ := newTestSession(srv.URL)
	if _, err := DeleteJSON[struct{}](context.Background(), session, "/vacancies/v-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestPatchJSON_SendsPatchMethod(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		w.Write([]byte(`{"id": "v-1", "title": "x", "status": "closed"}`))
	}))
	defer srv.Close()

	session, _ := newTestSession(srv.URL)
	updated, err := PatchJSON[Vacancy](context.Background(), session, "/vacancies/v-1", map[string]string{"status": "closed"})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if updated.Status != "closed" {
		t.Fatalf("status = %q", updated.Status)
	}
}

func TestPostMultipart_UploadsFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if got := r.FormValue("name"); got != "Ada" {
			t.Errorf("name = %q", got)
		}
		file, header, err := r.FormFile("resume")
		if err != nil {
			t.Errorf("form file: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		if header.Filename != "resume.pdf" {
			t.Errorf("filename = %q", header.Filename)
		}
		json.NewEncoder(w).Encode(Candidate{ID: "c-1", Name: "Ada", Status: "applied"})
	}))
	defer srv.Close()

	session, _ := newTestSession(srv.URL)
	created, err := PostMultipart[Candidate](context.Background(), session, "/vacancies/v-1/candidates",
		map[string]string{"name": "Ada"}, "resume", "resume.pdf", strings.NewReader("%PDF-1.4 fake"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if created.ID != "c-1" {
		t.Fatalf("unexpected candidate: %+v", created)
	}
}
