package service

import (
	"context"
	"strconv"

	"github.com/delote/beauty-web/internal/apiclient"
	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/internal/model"
	"github.com/delote/beauty-web/pkg/query"
)

// Services reads the treatment catalog.
type Services struct {
	api *apiclient.Client
}

func NewServices(api *apiclient.Client) *Services {
	return &Services{api: api}
}

func (s *Services) defaultPolicy() apiclient.CachePolicy {
	return apiclient.Revalidate(cache.TTLCatalog, cache.TagServices)
}

// GetAll lists services. Supported filters: category, search, sort, page,
// limit.
func (s *Services) GetAll(ctx context.Context, params query.Params, opts ...Opt) ([]model.Service, model.Meta, error) {
	endpoint := "/services"
	if q := params.Encode(); q != "" {
		endpoint += "?" + q
	}

	env, err := s.api.Get(ctx, endpoint, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, model.Meta{}, err
	}
	items, err := apiclient.DecodeData[[]model.Service](env)
	if err != nil {
		return nil, model.Meta{}, err
	}
	return items, apiclient.ListMeta(env), nil
}

// GetBySlug resolves a service by its public URL slug.
func (s *Services) GetBySlug(ctx context.Context, slug string, opts ...Opt) (*model.Service, error) {
	env, err := s.api.Get(ctx, "/services/"+slug, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	item, err := apiclient.DecodeData[model.Service](env)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByID fetches one service for the admin edit form, always fresh.
func (s *Services) GetByID(ctx context.Context, id string) (*model.Service, error) {
	env, err := s.api.Get(ctx, "/services/id/"+id, apiclient.NoStore)
	if err != nil {
		return nil, err
	}
	item, err := apiclient.DecodeData[model.Service](env)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Services) GetByCategory(ctx context.Context, categoryID string, opts ...Opt) ([]model.Service, error) {
	env, err := s.api.Get(ctx, "/services/by-category/"+categoryID, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	return apiclient.DecodeData[[]model.Service](env)
}

// GetFeatured returns the services promoted on the home page.
func (s *Services) GetFeatured(ctx context.Context, limit int, opts ...Opt) ([]model.Service, error) {
	env, err := s.api.Get(ctx, "/services/featured?limit="+strconv.Itoa(limit), policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	return apiclient.DecodeData[[]model.Service](env)
}

// GetForSelect returns services as value/label pairs for the admin form
// dropdowns (prices and works both attach to a service).
func (s *Services) GetForSelect(ctx context.Context, opts ...Opt) ([]model.Option, error) {
	items, _, err := s.GetAll(ctx, query.Params{}.SetInt("limit", 100), opts...)
	if err != nil {
		return nil, err
	}

	options := make([]model.Option, 0, len(items))
	for _, item := range items {
		options = append(options, model.Option{Value: item.ID, Label: item.Title})
	}
	return options, nil
}
