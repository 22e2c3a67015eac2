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

// Products reads the retail catalog. It carries the widest filter surface:
// the public shop page combines category, brand, search, sort and paging.
type Products struct {
	api *apiclient.Client
}

func NewProducts(api *apiclient.Client) *Products {
	return &Products{api: api}
}

func (s *Products) defaultPolicy() apiclient.CachePolicy {
	return apiclient.Revalidate(cache.TTLCatalog, cache.TagProducts)
}

// GetAll lists products. Filter values arriving from the URL bar may be
// the literal "undefined"; query.Params drops those before encoding.
func (s *Products) GetAll(ctx context.Context, params query.Params, opts ...Opt) ([]model.Product, model.Meta, error) {
	endpoint := "/products"
	if q := params.Encode(); q != "" {
		endpoint += "?" + q
	}

	env, err := s.api.Get(ctx, endpoint, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, model.Meta{}, err
	}
	items, err := apiclient.DecodeData[[]model.Product](env)
	if err != nil {
		return nil, model.Meta{}, err
	}
	return items, apiclient.ListMeta(env), nil
}

// GetBySlug resolves a product by its public URL slug.
func (s *Products) GetBySlug(ctx context.Context, slug string, opts ...Opt) (*model.Product, error) {
	env, err := s.api.Get(ctx, "/products/"+slug, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	item, err := apiclient.DecodeData[model.Product](env)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByID fetches one product for the admin edit form, always fresh.
func (s *Products) GetByID(ctx context.Context, id string) (*model.Product, error) {
	env, err := s.api.Get(ctx, "/products/id/"+id, apiclient.NoStore)
	if err != nil {
		return nil, err
	}
	item, err := apiclient.DecodeData[model.Product](env)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByCode resolves a product by its unique article code.
func (s *Products) GetByCode(ctx context.Context, code string, opts ...Opt) (*model.Product, error) {
	env, err := s.api.Get(ctx, "/products/code/"+code, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	item, err := apiclient.DecodeData[model.Product](env)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Search runs the title search endpoint.
func (s *Products) Search(ctx context.Context, q string, page, limit int, opts ...Opt) ([]model.Product, model.Meta, error) {
	endpoint := "/products/search?query=" + url.QueryEscape(q) +
		"&page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)

	env, err := s.api.Get(ctx, endpoint, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, model.Meta{}, err
	}
	items, err := apiclient.DecodeData[[]model.Product](env)
	if err != nil {
		return nil, model.Meta{}, err
	}
	return items, apiclient.ListMeta(env), nil
}

// GetFeatured returns the products promoted on the home page.
func (s *Products) GetFeatured(ctx context.Context, limit int, opts ...Opt) ([]model.Product, error) {
	env, err := s.api.Get(ctx, "/products/featured?limit="+strconv.Itoa(limit), policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, err
	}
	return apiclient.DecodeData[[]model.Product](env)
}

func (s *Products) GetByCategory(ctx context.Context, categoryID string, page, limit int, opts ...Opt) ([]model.Product, model.Meta, error) {
	endpoint := "/products/by-category/" + categoryID +
		"?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)

	env, err := s.api.Get(ctx, endpoint, policyFor(s.defaultPolicy(), opts))
	if err != nil {
		return nil, model.Meta{}, err
	}
	items, err := apiclient.DecodeData[[]model.Product](env)
	if err != nil {
		return nil, model.Meta{}, err
	}
	return items, apiclient.ListMeta(env), nil
}

// GetBrands lists the distinct brand names, on the long window.
func (s *Products) GetBrands(ctx context.Context, opts ...Opt) ([]string, error) {
	env, err := s.api.Get(ctx, "/products/brands", policyFor(apiclient.Revalidate(cache.TTLConfig, cache.TagProducts), opts))
	if err != nil {
		return nil, err
	}
	return apiclient.DecodeData[[]string](env)
}

// GetBrandsForSelect returns brands as value/label pairs for the shop
// filter dropdown.
func (s *Products) GetBrandsForSelect(ctx context.Context, opts ...Opt) ([]model.Option, error) {
	brands, err := s.GetBrands(ctx, opts...)
	if err != nil {
		return nil, err
	}
	options := make([]model.Option, 0, len(brands))
	for _, b := range brands {
		options = append(options, model.Option{Value: b, Label: b})
	}
	return options, nil
}
