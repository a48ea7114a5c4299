// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-memo/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error while keeping the original in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNoteRejected, err)
	case errors.Is(err, adapter.ErrMalformedResponse):
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	default:
		return fmt.Errorf("%w: %w", ErrNotesUnavailable, err)
	}
}
