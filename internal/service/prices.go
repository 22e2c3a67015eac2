package service

import (
	"context"

	"github.com/delote/beauty-web/internal/apiclient"
	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/internal/model"
	"github.com/delote/beauty-web/pkg/query"
)

// Prices reads the tariff lines. The salon adjusts tariffs rarely, so they
// share the long window with categories.
type Prices struct {
	api *apiclient.Client
}

func NewPrices(api *apiclient.Client) *Prices {
	return &Prices{api: api}
}

func (s *Prices) defaultPolicy() apiclient.CachePolicy {
	return apiclient.Revalidate(cache.TTLConfig, cache.TagPrices)
}

// GetAll lists tariff lines. Supported filters: service, sort, page, limit.
func (s *Prices) GetAll(ctx context.Context, params query.Params, opts ...Opt) ([]model.Price, model.Meta, error) {
	endpoint := "/prices"
	if q := params.Encode(); q != "" {
		endpoint += "?" + q
	}

	env, err := s.api.Get(ctx, endpoint, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, model.Meta{}, err
	}
	items, err := apiclient.DecodeData[[]model.Price](env)
	if err != nil {
		return nil, model.Meta{}, err
	}
	return items, apiclient.ListMeta(env), nil
}

func (s *Prices) GetByID(ctx context.Context, id string, opts ...Opt) (*model.Price, error) {
	env, err := s.api.Get(ctx, "/prices/"+id, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	item, err := apiclient.DecodeData[model.Price](env)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Prices) GetByService(ctx context.Context, serviceID string, opts ...Opt) ([]model.Price, error) {
	env, err := s.api.Get(ctx, "/prices/by-service/"+serviceID, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	return apiclient.DecodeData[[]model.Price](env)
}

// GetGrouped returns tariffs pre-grouped by service, the shape the public
// price list renders directly.
func (s *Prices) GetGrouped(ctx context.Context, opts ...Opt) ([]model.PriceGroup, error) {
	env, err := s.api.Get(ctx, "/prices/grouped", policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	return apiclient.DecodeData[[]model.PriceGroup](env)
}

func (s *Prices) GetByCategory(ctx context.Context, categoryID string, opts ...Opt) ([]model.Price, error) {
	env, err := s.api.Get(ctx, "/prices/by-category/"+categoryID, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	return apiclient.DecodeData[[]model.Price](env)
}
