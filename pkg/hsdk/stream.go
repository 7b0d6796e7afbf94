package hsdk

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/hireloop/hireloop/pkg/hsdk/herr"
)

// ChatEvent is one line of the chat backend's newline-delimited JSON stream.
type ChatEvent struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
}

const (
	ChatEventBegin = "begin"
	ChatEventItem  = "item"
)

// StreamChat posts payload to a chat endpoint and consumes the streamed
// response: a "begin" event opens the assistant message, each "item" event
// appends content. onChunk (optional) observes chunks as they arrive; the
// assembled message is returned once the stream ends.
//
// Chat endpoints normally sit under an eager-refresh prefix, so Dispatch
// refreshes the token before the request even when it is not near expiry.
func (s *Session) StreamChat(ctx context.Context, endpoint string, payload any, onChunk func(chunk string)) (string, error) {
	resp, err := s.Dispatch(ctx, Request{
		Method:   http.MethodPost,
		Endpoint: endpoint,
		Body:     mustJSON(payload),
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		return "", herr.Newf(herr.CodeHTTP, "%s", errorMessage(resp.StatusCode, data))
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var message strings.Builder
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var event ChatEvent
		if err := json.Unmarshal(line, &event); err != nil {
			// Keep-alive noise and partial frames are skipped, not fatal.
			continue
		}
		switch event.Type {
		case ChatEventBegin:
			message.Reset()
		case ChatEventItem:
			message.WriteString(event.Content)
			if onChunk != nil {
				onChunk(event.Content)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return message.String(), err
	}
	return message.String(), nil
}
