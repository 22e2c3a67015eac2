package service

import (
	"context"

	"github.com/delote/beauty-web/internal/apiclient"
	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/internal/model"
	"github.com/delote/beauty-web/pkg/query"
)

// Categories reads the category catalog. Categories change rarely, so the
// long revalidation window applies.
type Categories struct {
	api *apiclient.Client
}

func NewCategories(api *apiclient.Client) *Categories {
	return &Categories{api: api}
}

func (s *Categories) defaultPolicy() apiclient.CachePolicy {
	return apiclient.Revalidate(cache.TTLConfig, cache.TagCategories)
}

// GetAll lists categories. Supported filters: section, sort, page, limit.
func (s *Categories) GetAll(ctx context.Context, params query.Params, opts ...Opt) ([]model.Category, model.Meta, error) {
	endpoint := "/categories"
	if q := params.Encode(); q != "" {
		endpoint += "?" + q
	}

	env, err := s.api.Get(ctx, endpoint, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, model.Meta{}, err
	}
	items, err := apiclient.DecodeData[[]model.Category](env)
	if err != nil {
		return nil, model.Meta{}, err
	}
	return items, apiclient.ListMeta(env), nil
}

func (s *Categories) GetByID(ctx context.Context, id string, opts ...Opt) (*model.Category, error) {
	env, err := s.api.Get(ctx, "/categories/"+id, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	item, err := apiclient.DecodeData[model.Category](env)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Categories) GetBySlug(ctx context.Context, slug string, opts ...Opt) (*model.Category, error) {
	env, err := s.api.Get(ctx, "/categories/slug/"+slug, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	item, err := apiclient.DecodeData[model.Category](env)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetGrouped buckets categories by section. Sections unknown to this
// build of the site are dropped.
func (s *Categories) GetGrouped(ctx context.Context, opts ...Opt) (map[string][]model.Category, error) {
	items, _, err := s.GetAll(ctx, query.Params{}.SetInt("limit", 100), opts...)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]model.Category, len(model.Sections))
	for _, section := range model.Sections {
		grouped[section] = []model.Category{}
	}
	for _, c := range items {
		if _, ok := grouped[c.Section]; ok {
			grouped[c.Section] = append(grouped[c.Section], c)
		}
	}
	return grouped, nil
}

// GetForSelect returns one section's categories as value/label pairs for
// the admin form dropdowns.
func (s *Categories) GetForSelect(ctx context.Context, section string, opts ...Opt) ([]model.Option, error) {
	items, _, err := s.GetAll(ctx, query.Params{}.Set("section", section).SetInt("limit", 100), opts...)
	if err != nil {
		return nil, err
	}

	options := make([]model.Option, 0, len(items))
	for _, c := range items {
		options = append(options, model.Option{Value: c.ID, Label: c.Title})
	}
	return options, nil
}
