// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app runs one bridge conversion: it reads a bundle payload, maps it
// through the typed configuration model and writes the canonical payload.
//
// All Msg* constants are the log messages the runner emits, kept in one place
// so log queries can rely on stable wording.
package app

const (
	// MsgConversionStarted is logged once the input payload has been read.
	MsgConversionStarted = "conversion started"

	// MsgConversionFinished is logged after the output has been written.
	MsgConversionFinished = "conversion finished"

	// MsgConversionFailed is logged when any stage of a conversion fails.
	MsgConversionFailed = "conversion failed"
)
