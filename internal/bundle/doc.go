// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bundle provides the generic key-value container exchanged with the
// host bridge.
//
// A [Bundle] maps string keys to either string values or nested bundles.
// Presence is explicit: a key is either in the bundle or it is not, and no
// placeholder value ever stands in for an absent key. Reads of absent keys are
// not errors; reads of present keys holding an unexpected value type return a
// [*TypeMismatchError].
package bundle
