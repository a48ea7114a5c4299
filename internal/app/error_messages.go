// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the memo
// client.
//
// All Msg* constants are human-readable strings shown in the terminal view
// to describe the outcome of an operation.
package app

const (
	// MsgServerUnreachable is shown when the notes server cannot be reached
	// at the network level (refused connection, unknown host, timeout).
	MsgServerUnreachable = "No network or the notes server is unreachable"

	// MsgUnexpectedResponse is shown when the server answered with a body
	// that could not be decoded as a list of notes.
	MsgUnexpectedResponse = "The notes server sent an unexpected response"

	// MsgRequestRejected is shown when the server refused the request with a
	// client-side error status.
	MsgRequestRejected = "The notes server rejected the request"

	// MsgServerFailed is shown for server-side error statuses.
	MsgServerFailed = "The notes server failed to answer"

	MsgSaved         = "Saved"
	MsgSaveFailed    = "Save failed"
	MsgCopied        = "Copied to clipboard"
	MsgCopyFailed    = "Copy failed"
	MsgNothingToCopy = "Nothing to copy"
	MsgLoading       = "Loading notes..."
	MsgNoNotes       = "No notes yet"
)
