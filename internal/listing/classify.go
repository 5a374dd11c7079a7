// Package listing loads server-formatted collections (favorites, price
// alerts) and renders them into HTML tables.
package listing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"auction-web/internal/pageerrors"
)

// State is what the list container shows
type State string

const (
	StateRendered      State = "rendered"
	StateEmpty         State = "empty"
	StateError         State = "error"
	StateLoginRequired State = "login_required"
	StateUnexpected    State = "unexpected"
)

const (
	msgNoResponse = "서버 응답이 없습니다."
	msgBadShape   = "응답 형식이 올바르지 않습니다."
)

// Texts are the per-list fallback messages
type Texts struct {
	// Rejected is shown for success:false without a message
	Rejected string
	// LoadError is shown for a non-2xx answer other than 401/403/500
	LoadError string
}

// Result is a classified list response
type Result[T any] struct {
	State   State
	Items   []T
	Message string
}

// Count is the count label, "3건"
func (r Result[T]) Count() string {
	return fmt.Sprintf("%d건", len(r.Items))
}

// Classify decides what a list fetch shows. status 0 means no response was
// received. key names the collection field of the envelope; an array renders,
// a single object becomes a one-element list.
func Classify[T any](status int, body []byte, key string, texts Texts) Result[T] {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return Result[T]{State: StateLoginRequired, Message: pageerrors.MsgLoginRequired}
	case status == 0:
		return Result[T]{State: StateError, Message: pageerrors.MsgNoConnection}
	case status == http.StatusInternalServerError:
		return Result[T]{State: StateError, Message: pageerrors.MsgServerError}
	case status < 200 || status >= 300:
		return Result[T]{State: StateError, Message: texts.LoadError}
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Result[T]{State: StateError, Message: msgNoResponse}
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return Result[T]{State: StateUnexpected, Message: msgBadShape}
	}

	var success *bool
	if raw, ok := envelope["success"]; ok {
		_ = json.Unmarshal(raw, &success)
	}

	switch {
	case success != nil && *success:
		items, ok := normalise[T](envelope[key])
		if !ok {
			return Result[T]{State: StateUnexpected, Message: msgBadShape}
		}
		if len(items) == 0 {
			return Result[T]{State: StateEmpty, Items: []T{}}
		}
		return Result[T]{State: StateRendered, Items: items}
	case success != nil:
		msg := texts.Rejected
		var m string
		if raw, ok := envelope["message"]; ok && json.Unmarshal(raw, &m) == nil && m != "" {
			msg = m
		}
		return Result[T]{State: StateError, Message: msg}
	default:
		return Result[T]{State: StateUnexpected, Message: msgBadShape}
	}
}

// normalise accepts an array, a single object or null (empty)
func normalise[T any](raw json.RawMessage) ([]T, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, false
	}
	switch raw[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, false
		}
		return items, true
	case '{':
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, false
		}
		return []T{item}, true
	case 'n':
		return nil, true
	default:
		return nil, false
	}
}
