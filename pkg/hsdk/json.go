package hsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/hireloop/hireloop/pkg/hsdk/herr"
)

// The JSON wrappers are the layer that turns "non-2xx response" into an
// error. They never hand a raw response to the caller: the result is either
// a decoded value or an error with a normalized message.

func GetJSON[T any](ctx context.Context, s *Session, endpoint string) (T, error) {
	return doJSON[T](ctx, s, http.MethodGet, endpoint, nil)
}

func PostJSON[T any](ctx context.Context, s *Session, endpoint string, payload any) (T, error) {
	return doJSON[T](ctx, s, http.MethodPost, endpoint, payload)
}

func PatchJSON[T any](ctx context.Context, s *Session, endpoint string, payload any) (T, error) {
	return doJSON[T](ctx, s, http.MethodPatch, endpoint, payload)
}

func DeleteJSON[T any](ctx context.Context, s *Session, endpoint string) (T, error) {
	return doJSON[T](ctx, s, http.MethodDelete, endpoint, nil)
}

func doJSON[T any](ctx context.Context, s *Session, method, endpoint string, payload any) (T, error) {
	var zero T

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return zero, fmt.Errorf("encoding request: %w", err)
		}
	}

	resp, err := s.Dispatch(ctx, Request{Method: method, Endpoint: endpoint, Body: body})
	if err != nil {
		return zero, err
	}
	return decodeJSONResponse[T](resp)
}

// PostMultipart uploads a file plus form fields (resume uploads). The
// multipart writer's content type is forwarded so the boundary reaches the
// backend intact.
func PostMultipart[T any](ctx context.Context, s *Session, endpoint string, fields map[string]string, fileField, filename string, file io.Reader) (T, error) {
	var zero T

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, val := range fields {
		if err := w.WriteField(key, val); err != nil {
			return zero, fmt.Errorf("building form: %w", err)
		}
	}
	part, err := w.CreateFormFile(fileField, filename)
	if err != nil {
		return zero, fmt.Errorf("building form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return zero, fmt.Errorf("reading %s: %w", filename, err)
	}
	if err := w.Close(); err != nil {
		return zero, fmt.Errorf("building form: %w", err)
	}

	resp, err := s.Dispatch(ctx, Request{
		Method:      http.MethodPost,
		Endpoint:    endpoint,
		Body:        buf.Bytes(),
		ContentType: w.FormDataContentType(),
	})
	if err != nil {
		return zero, err
	}
	return decodeJSONResponse[T](resp)
}

func decodeJSONResponse[T any](resp *http.Response) (T, error) {
	var zero T
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, herr.Newf(herr.CodeHTTP, "%s", errorMessage(resp.StatusCode, data))
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return zero, nil
	}
	if err := json.Unmarshal(data, &zero); err != nil {
		return zero, fmt.Errorf("decoding response: %w", err)
	}
	return zero, nil
}

// errorMessage extracts a human message from an error body, falling back to
// a generic HTTP status when the body is absent or not JSON.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fmt.Sprintf("HTTP %d", status)
}
