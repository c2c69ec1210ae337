// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

// Package report builds and renders payload check results.
package report

import (
	"fmt"
	"strings"

	"github.com/payloaddoc/payloaddoc/pkg/types"
)

// Mismatch is a field whose declared type contradicts the payload.
type Mismatch struct {
	Descriptor types.FieldDescriptor `yaml:"field" json:"field"`
	Actual     types.FieldType       `yaml:"actual" json:"actual"`
}

// PayloadResult holds the findings for one checked payload.
type PayloadResult struct {
	// Payload identifies the checked payload (file path or "<stdin>")
	Payload string `yaml:"payload" json:"payload"`

	// Missing lists non-optional documented fields absent from the payload
	Missing []types.FieldDescriptor `yaml:"missing,omitempty" json:"missing,omitempty"`

	// Mismatches lists fields whose declared type contradicts the payload
	Mismatches []Mismatch `yaml:"mismatches,omitempty" json:"mismatches,omitempty"`

	// Undocumented is the pretty-printed payload content left after
	// removing every documented field; empty when fully documented
	Undocumented string `yaml:"undocumented,omitempty" json:"undocumented,omitempty"`
}

// IsEmpty reports whether the payload produced no findings.
func (r *PayloadResult) IsEmpty() bool {
	return len(r.Missing) == 0 && len(r.Mismatches) == 0 && r.Undocumented == ""
}

// Result is the outcome of checking a set of payloads against one field
// specification.
type Result struct {
	Payloads []PayloadResult `yaml:"payloads" json:"payloads"`
}

// IsEmpty reports whether no payload produced findings.
func (r *Result) IsEmpty() bool {
	for i := range r.Payloads {
		if !r.Payloads[i].IsEmpty() {
			return false
		}
	}
	return true
}

// Summary returns a one-line overview of the findings.
func (r *Result) Summary() string {
	missing, mismatched, undocumented := 0, 0, 0
	for i := range r.Payloads {
		p := &r.Payloads[i]
		missing += len(p.Missing)
		mismatched += len(p.Mismatches)
		if p.Undocumented != "" {
			undocumented++
		}
	}

	if missing == 0 && mismatched == 0 && undocumented == 0 {
		return "No findings"
	}

	var parts []string
	if missing > 0 {
		parts = append(parts, fmt.Sprintf("%d missing field(s)", missing))
	}
	if mismatched > 0 {
		parts = append(parts, fmt.Sprintf("%d type mismatch(es)", mismatched))
	}
	if undocumented > 0 {
		parts = append(parts, fmt.Sprintf("%d payload(s) with undocumented content", undocumented))
	}
	return strings.Join(parts, ", ")
}

// FilterIgnored removes findings whose field path matches an ignore pattern.
func (r *Result) FilterIgnored(matches func(path string) bool) *Result {
	filtered := &Result{Payloads: make([]PayloadResult, 0, len(r.Payloads))}
	for i := range r.Payloads {
		p := r.Payloads[i]
		kept := PayloadResult{Payload: p.Payload, Undocumented: p.Undocumented}
		for _, d := range p.Missing {
			if !matches(d.Path) {
				kept.Missing = append(kept.Missing, d)
			}
		}
		for _, m := range p.Mismatches {
			if !matches(m.Descriptor.Path) {
				kept.Mismatches = append(kept.Mismatches, m)
			}
		}
		filtered.Payloads = append(filtered.Payloads, kept)
	}
	return filtered
}
