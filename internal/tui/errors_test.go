package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-memo/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "connection refused", err: errors.New("Get \"http://localhost:8080/memos\": dial tcp 127.0.0.1:8080: connect: connection refused"), want: "No network or the notes server is unreachable"},
		{name: "timeout", err: errors.New("context deadline exceeded"), want: "No network or the notes server is unreachable"},
		{name: "malformed", err: fmt.Errorf("%w: bad json", service.ErrUnexpectedResponse), want: "The notes server sent an unexpected response"},
		{name: "rejected", err: fmt.Errorf("%w: http 400", service.ErrNoteRejected), want: "The notes server rejected the request"},
		{name: "unavailable", err: service.ErrNotesUnavailable, want: "The notes server failed to answer"},
		{name: "other", err: errors.New("something else"), want: "something else"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
