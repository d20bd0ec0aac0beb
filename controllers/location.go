package controllers

import (
	"net/url"
	"strings"
	"sync"
)

// Location holds the address-bar state the collection filter is persisted in.
type Location interface {
	Query() url.Values
	Replace(url.Values)
}

// MemoryLocation is a Location kept in process memory.
type MemoryLocation struct {
	mu     sync.Mutex
	values url.Values
}

// NewMemoryLocation starts from a raw query string; a leading "?" is allowed.
// An unparsable string yields an empty location.
func NewMemoryLocation(raw string) *MemoryLocation {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		values = url.Values{}
	}
	return &MemoryLocation{values: values}
}

func (l *MemoryLocation) Query() url.Values {
	l.mu.Lock()
	defer l.mu.Unlock()
	return copyValues(l.values)
}

func (l *MemoryLocation) Replace(values url.Values) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values = copyValues(values)
}

// String returns the encoded query without a leading "?".
func (l *MemoryLocation) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.values.Encode()
}

func copyValues(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for k, v := range values {
		out[k] = append([]string(nil), v...)
	}
	return out
}
