// Package service holds the read-only accessors for the six catalog
// resources plus the session-bound auth reads. Each accessor owns its
// endpoints, default revalidation window and cache tags; mutating
// operations live in internal/action.
package service

import (
	"github.com/delote/beauty-web/internal/apiclient"
)

// Opt tweaks a single read. The only supported option is NoStore, used by
// admin pages that must never serve a stale record into an edit form.
type Opt func(*reqOpts)

type reqOpts struct {
	fresh bool
}

// NoStore bypasses the resource's revalidation window for this call.
func NoStore() Opt {
	return func(o *reqOpts) { o.fresh = true }
}

func policyFor(def apiclient.CachePolicy, opts []Opt) apiclient.CachePolicy {
	var o reqOpts
	for _, opt := range opts {
		opt(&o)
	}
	if o.fresh {
		return apiclient.NoStore
	}
	return def
}
