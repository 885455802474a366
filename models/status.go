// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusKind is the presentation class of the status line.
// Only the distinction between the kinds is meaningful, not the colours
// a particular front end uses for them.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusPending
	StatusFailure
	StatusSuccess
)

// String returns a lowercase name of the kind, used in logs.
func (k StatusKind) String() string {
	switch k {
	case StatusPending:
		return "pending"
	case StatusFailure:
		return "failure"
	case StatusSuccess:
		return "success"
	default:
		return "none"
	}
}

// Status is the single advisory line shown under the upload form.
type Status struct {
	Kind StatusKind
	Text string
}

// IsZero reports whether the status is empty.
func (s Status) IsZero() bool {
	return s.Kind == StatusNone && s.Text == ""
}
