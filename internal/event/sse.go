package event

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
)

const (
	ContentTypeEventStream = "text/event-stream"
)

// SSEWriter frames each notification as a "data:" block terminated by a blank line.
type SSEWriter struct {
	w       io.Writer
	flusher http.Flusher
}

func NewSSEWriter(w io.Writer) *SSEWriter {
	flusher, _ := w.(http.Flusher)
	return &SSEWriter{
		w:       w,
		flusher: flusher,
	}
}

// SetStreamHeaders marks the response as an event stream so it is neither buffered nor closed.
func SetStreamHeaders(header http.Header) {
	header.Set("Content-Type", ContentTypeEventStream)
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
}

func (s *SSEWriter) WriteNotification(notification db.Notification) error {
	data, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	
	if _, err = fmt.Fprintf(s.w, "data: %s\n\n", data); err != nil {
		return err
	}
	
	s.Flush()
	return nil
}

// Flush pushes buffered bytes to the client, if the writer supports it.
func (s *SSEWriter) Flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}
