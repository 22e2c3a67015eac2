package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/delote/beauty-web/internal/apiclient"
	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/internal/model"
	"github.com/delote/beauty-web/pkg/query"
)

// Masters reads the staff directory.
type Masters struct {
	api *apiclient.Client
}

func NewMasters(api *apiclient.Client) *Masters {
	return &Masters{api: api}
}

func (s *Masters) defaultPolicy() apiclient.CachePolicy {
	return apiclient.Revalidate(cache.TTLCatalog, cache.TagMasters)
}

// GetAll lists staff members. Supported filters: speciality, sort, page,
// limit.
func (s *Masters) GetAll(ctx context.Context, params query.Params, opts ...Opt) ([]model.Master, model.Meta, error) {
	endpoint := "/masters"
	if q := params.Encode(); q != "" {
		endpoint += "?" + q
	}

	env, err := s.api.Get(ctx, endpoint, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, model.Meta{}, err
	}
	items, err := apiclient.DecodeData[[]model.Master](env)
	if err != nil {
		return nil, model.Meta{}, err
	}
	return items, apiclient.ListMeta(env), nil
}

func (s *Masters) GetByID(ctx context.Context, id string, opts ...Opt) (*model.Master, error) {
	env, err := s.api.Get(ctx, "/masters/"+id, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	item, err := apiclient.DecodeData[model.Master](env)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetFeatured returns the staff members shown on the home page.
func (s *Masters) GetFeatured(ctx context.Context, limit int, opts ...Opt) ([]model.Master, error) {
	env, err := s.api.Get(ctx, "/masters/featured?limit="+strconv.Itoa(limit), policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	return apiclient.DecodeData[[]model.Master](env)
}

func (s *Masters) GetBySpeciality(ctx context.Context, speciality string, opts ...Opt) ([]model.Master, error) {
	endpoint := "/masters/by-speciality?speciality=" + url.QueryEscape(speciality)
	env, err := s.api.Get(ctx, endpoint, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	return apiclient.DecodeData[[]model.Master](env)
}
