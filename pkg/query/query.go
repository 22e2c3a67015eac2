// Package query assembles URL query strings for the backend API, guarding
// against unset routing parameters leaking into requests as the literal
// strings "undefined" or "null".
package query

import (
	"net/url"
	"sort"
	"strconv"
)

// Params collects filter parameters before encoding.
type Params map[string]string

// Set stores a string value. Invalid values are filtered at Encode time.
func (p Params) Set(key, value string) Params {
	p[key] = value
	return p
}

// SetInt stores an integer value. Zero is dropped, matching the behavior
// of unset numeric form fields.
func (p Params) SetInt(key string, value int) Params {
	if value != 0 {
		p[key] = strconv.Itoa(value)
	}
	return p
}

// Encode builds the query string. Keys whose value is empty, "undefined" or
// "null" are omitted. Keys are emitted in sorted order so identical parameter
// sets always produce identical strings (they double as cache keys).
func (p Params) Encode() string {
	keys := make([]string, 0, len(p))
	for k, v := range p {
		if !valid(v) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, k := range keys {
		values.Set(k, p[k])
	}
	return values.Encode()
}

// Build encodes a plain map with the same filtering rules as Params.Encode.
func Build(params map[string]string) string {
	return Params(params).Encode()
}

func valid(v string) bool {
	switch v {
	case "", "undefined", "null":
		return false
	}
	return true
}
