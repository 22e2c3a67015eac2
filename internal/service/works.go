package service

import (
	"context"
	"strconv"

	"github.com/delote/beauty-web/internal/apiclient"
	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/internal/model"
	"github.com/delote/beauty-web/pkg/query"
)

// Works reads the portfolio.
type Works struct {
	api *apiclient.Client
}

func NewWorks(api *apiclient.Client) *Works {
	return &Works{api: api}
}

func (s *Works) defaultPolicy() apiclient.CachePolicy {
	return apiclient.Revalidate(cache.TTLCatalog, cache.TagWorks)
}

// GetAll lists portfolio entries. Supported filters: service, sort, page,
// limit.
func (s *Works) GetAll(ctx context.Context, params query.Params, opts ...Opt) ([]model.Work, model.Meta, error) {
	endpoint := "/works"
	if q := params.Encode(); q != "" {
		endpoint += "?" + q
	}

	env, err := s.api.Get(ctx, endpoint, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, model.Meta{}, err
	}
	items, err := apiclient.DecodeData[[]model.Work](env)
	if err != nil {
		return nil, model.Meta{}, err
	}
	return items, apiclient.ListMeta(env), nil
}

func (s *Works) GetByID(ctx context.Context, id string, opts ...Opt) (*model.Work, error) {
	env, err := s.api.Get(ctx, "/works/"+id, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	item, err := apiclient.DecodeData[model.Work](env)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetLatest returns the newest portfolio entries for the home page strip.
func (s *Works) GetLatest(ctx context.Context, limit int, opts ...Opt) ([]model.Work, error) {
	env, err := s.api.Get(ctx, "/works/latest?limit="+strconv.Itoa(limit), policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	return apiclient.DecodeData[[]model.Work](env)
}

func (s *Works) GetByService(ctx context.Context, serviceID string, opts ...Opt) ([]model.Work, error) {
	env, err := s.api.Get(ctx, "/works/by-service/"+serviceID, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	return apiclient.DecodeData[[]model.Work](env)
}

func (s *Works) GetByCategory(ctx context.Context, categoryID string, opts ...Opt) ([]model.Work, error) {
	env, err := s.api.Get(ctx, "/works/by-category/"+categoryID, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	return apiclient.DecodeData[[]model.Work](env)
}
