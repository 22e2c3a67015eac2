package cache

import (
	"context"

	"github.com/delote/beauty-web/pkg/metrics"
)

// View keys name the rendered pages whose data may go stale after a
// mutation. Admin actions report them; the Revalidator translates them to
// the resource tags that actually live in the store.
const (
	ViewHome     = "/"
	ViewServices = "/services"
	ViewProducts = "/products"
	ViewPrices   = "/prices"
	ViewMasters  = "/masters"
	ViewWorks    = "/works"

	ViewAdminCategories = "/beauty-admin/categories-admin"
	ViewAdminServices   = "/beauty-admin/services-admin"
	ViewAdminProducts   = "/beauty-admin/products-admin"
	ViewAdminPrices     = "/beauty-admin/prices-admin"
	ViewAdminWorks      = "/beauty-admin/works-admin"
	ViewAdminMasters    = "/beauty-admin/masters-admin"
)

// viewTags lists every resource a page renders, including parents shown
// through joins (a product card displays its category title, so product
// pages depend on categories too).
var viewTags = map[string][]string{
	ViewHome:     {TagServices, TagWorks, TagMasters, TagProducts, TagPrices},
	ViewServices: {TagServices, TagCategories},
	ViewProducts: {TagProducts, TagCategories},
	ViewPrices:   {TagPrices, TagServices, TagCategories},
	ViewMasters:  {TagMasters},
	ViewWorks:    {TagWorks, TagServices},

	ViewAdminCategories: {TagCategories},
	ViewAdminServices:   {TagServices, TagCategories},
	ViewAdminProducts:   {TagProducts, TagCategories},
	ViewAdminPrices:     {TagPrices, TagServices},
	ViewAdminWorks:      {TagWorks, TagServices},
	ViewAdminMasters:    {TagMasters},
}

// Revalidator is the single component that executes cache invalidation.
// Mutating actions hand it view keys; nothing else writes to the store
// outside the read path.
type Revalidator struct {
	store   Store
	metrics *metrics.Metrics
}

func NewRevalidator(store Store, m *metrics.Metrics) *Revalidator {
	return &Revalidator{store: store, metrics: m}
}

// Invalidate drops every cached entry tagged for the given views. Unknown
// view keys are ignored rather than treated as errors.
func (r *Revalidator) Invalidate(ctx context.Context, views ...string) {
	seen := make(map[string]struct{})
	for _, view := range views {
		if r.metrics != nil {
			r.metrics.CacheInvalidations.WithLabelValues(view).Inc()
		}
		for _, tag := range viewTags[view] {
			if _, done := seen[tag]; done {
				continue
			}
			seen[tag] = struct{}{}
			r.store.DeleteByTag(ctx, tag)
		}
	}
}
