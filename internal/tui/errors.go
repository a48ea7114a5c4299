// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-memo/internal/app"
	"github.com/MKhiriev/go-memo/internal/service"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServerUnreachable
	}

	switch {
	case errors.Is(err, service.ErrUnexpectedResponse):
		return app.MsgUnexpectedResponse
	case errors.Is(err, service.ErrNoteRejected):
		return app.MsgRequestRejected
	case errors.Is(err, service.ErrNotesUnavailable):
		return app.MsgServerFailed
	}

	return err.Error()
}
