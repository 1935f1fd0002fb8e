// Package pagination reconciles the inconsistent list-response shapes of
// the legacy commerce API into one canonical page, and gives every call
// site a single 0-indexed page-request type instead of scattered ±1
// arithmetic.
package pagination

import (
	"encoding/json"
)

// Convention states which page-numbering scheme an endpoint uses. The
// convention is registered per endpoint; it is never sniffed from the
// payload, because the payload alone does not reveal it.
type Convention int

const (
	ZeroIndexed Convention = iota
	OneIndexed
)

// PageRequest is the single page-addressing type used everywhere inside
// this codebase. Index0 is always 0-indexed.
type PageRequest struct {
	Index0 int
	Size   int
}

// Offset returns the row offset for SQL queries.
func (r PageRequest) Offset() int {
	return r.Index0 * r.Size
}

// External converts Index0 into the page number a remote endpoint expects
// under its registered convention.
func (r PageRequest) External(conv Convention) int {
	if conv == OneIndexed {
		return r.Index0 + 1
	}
	return r.Index0
}

// Page is the canonical normalized list response. CurrentPage is always
// 0-indexed.
type Page struct {
	Content       []json.RawMessage `json:"content"`
	CurrentPage   int               `json:"current_page"`
	TotalPages    int               `json:"total_pages"`
	TotalElements int               `json:"total_elements"`
}

// legacyEnvelope covers every object-shaped list response the legacy API
// emits. Endpoints disagree on the total-count field name and on page
// indexing; some omit total_pages entirely.
type legacyEnvelope struct {
	Content       []json.RawMessage `json:"content"`
	TotalElements *int              `json:"totalElements"`
	TotalItems    *int              `json:"totalItems"`
	Total         *int              `json:"total"`
	TotalPages    *int              `json:"totalPages"`
	CurrentPage   *int              `json:"currentPage"`
}

// Normalize turns a raw legacy list response into the canonical Page.
//
// Shapes handled:
//  1. bare JSON array -> single page holding the whole array
//  2. object with content + one of totalElements/totalItems/total
//  3. object with a currentPage field under either indexing convention
//
// Malformed or missing fields degrade to empty-page defaults; Normalize
// never fails. Callers render an empty state instead of an error.
func Normalize(raw json.RawMessage, pageSize int, conv Convention) Page {
	empty := Page{Content: []json.RawMessage{}}
	if len(raw) == 0 {
		return empty
	}

	// Shape 1: bare array.
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		return Page{
			Content:       arr,
			CurrentPage:   0,
			TotalPages:    1,
			TotalElements: len(arr),
		}
	}

	// Shapes 2 and 3: envelope object.
	var env legacyEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return empty
	}

	content := env.Content
	if content == nil {
		content = []json.RawMessage{}
	}

	total := 0
	switch {
	case env.TotalElements != nil:
		total = *env.TotalElements
	case env.TotalItems != nil:
		total = *env.TotalItems
	case env.Total != nil:
		total = *env.Total
	}

	current := 0
	if env.CurrentPage != nil {
		current = *env.CurrentPage
		if conv == OneIndexed {
			current--
		}
		if current < 0 {
			current = 0
		}
	}

	totalPages := 0
	if env.TotalPages != nil {
		totalPages = *env.TotalPages
	} else if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	return Page{
		Content:       content,
		CurrentPage:   current,
		TotalPages:    totalPages,
		TotalElements: total,
	}
}

// Decode unmarshals every element of a page into a typed slice. Elements
// that fail to decode are skipped, matching the degrade-don't-throw
// behavior of Normalize.
func Decode[T any](p Page) []T {
	out := make([]T, 0, len(p.Content))
	for _, raw := range p.Content {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}
		out = append(out, item)
	}
	return out
}
