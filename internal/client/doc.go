// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It owns the root context of the process, runs the note list view on it and
// cancels it when the view exits so that in-flight requests are aborted.
package client
