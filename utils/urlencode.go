package utils

import (
	"net/url"
	"strings"
)

// QueryEscape escapes more than encodeURIComponent does: a space becomes +
// and !'()* are encoded.
var uriComponentFixes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent percent-encodes s for use as a single query value, the
// way the browser's encodeURIComponent does.
func EncodeURIComponent(s string) string {
	return uriComponentFixes.Replace(url.QueryEscape(s))
}

// QueryBuilder appends key=value pairs in insertion order. url.Values sorts
// keys, which breaks the parameter order confirmation pages link with.
type QueryBuilder struct {
	b strings.Builder
}

// Add appends an encoded pair.
func (q *QueryBuilder) Add(key, value string) *QueryBuilder {
	if q.b.Len() > 0 {
		q.b.WriteByte('&')
	}
	q.b.WriteString(key)
	q.b.WriteByte('=')
	q.b.WriteString(EncodeURIComponent(value))
	return q
}

// AddIf appends the pair only when value is non-empty.
func (q *QueryBuilder) AddIf(key, value string) *QueryBuilder {
	if value == "" {
		return q
	}
	return q.Add(key, value)
}

// URL joins path and the accumulated query.
func (q *QueryBuilder) URL(path string) string {
	if q.b.Len() == 0 {
		return path
	}
	return path + "?" + q.b.String()
}
