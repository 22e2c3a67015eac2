package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delote/beauty-web/internal/apiclient"
	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/internal/model"
	"github.com/delote/beauty-web/pkg/logger"
	"github.com/delote/beauty-web/pkg/query"
)

func newRegistry(t *testing.T, handler http.Handler, store cache.Store) *Registry {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	api := apiclient.New(srv.URL, 5*time.Second, store, nil, logger.NewLogger(nil))
	return NewRegistry(api)
}

func writeOK(w http.ResponseWriter, data any, meta *model.Meta) {
	resp := map[string]any{"ok": true, "data": data}
	if meta != nil {
		resp["meta"] = meta
	}
	json.NewEncoder(w).Encode(resp)
}

func TestCategoriesGetAllPassesFilters(t *testing.T) {
	reg := newRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories", r.URL.Path)
		assert.Equal(t, "service", r.URL.Query().Get("section"))
		// Empty filter values never reach the API.
		assert.False(t, r.URL.Query().Has("page"))
		writeOK(w, []model.Category{{ID: "c1", Title: "Soins", Section: "service"}}, nil)
	}), nil)

	params := query.Params{}.Set("section", "service").Set("page", "")
	items, meta, err := reg.Categories.GetAll(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Soins", items[0].Title)
	// Absent meta still yields a zero value, not a nil dereference.
	assert.Equal(t, model.Meta{}, meta)
}

func TestCategoriesGetGroupedDropsUnknownSections(t *testing.T) {
	reg := newRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, []model.Category{
			{ID: "c1", Title: "Soins", Section: model.SectionService},
			{ID: "c2", Title: "Crèmes", Section: model.SectionProduct},
			{ID: "c3", Title: "Mystère", Section: "legacy"},
		}, nil)
	}), nil)

	grouped, err := reg.Categories.GetGrouped(context.Background())
	require.NoError(t, err)

	assert.Len(t, grouped[model.SectionService], 1)
	assert.Len(t, grouped[model.SectionProduct], 1)
	assert.Empty(t, grouped[model.SectionPrice])
	assert.NotContains(t, grouped, "legacy")
}

func TestCategoriesGetForSelect(t *testing.T) {
	reg := newRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "product", r.URL.Query().Get("section"))
		writeOK(w, []model.Category{{ID: "c2", Title: "Crèmes", Section: "product"}}, nil)
	}), nil)

	options, err := reg.Categories.GetForSelect(context.Background(), "product")
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, model.Option{Value: "c2", Label: "Crèmes"}, options[0])
}

func TestServicesGetFeatured(t *testing.T) {
	reg := newRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/featured", r.URL.Path)
		assert.Equal(t, "6", r.URL.Query().Get("limit"))
		writeOK(w, []model.Service{{ID: "s1"}, {ID: "s2"}}, nil)
	}), nil)

	items, err := reg.Services.GetFeatured(context.Background(), 6)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestNoStoreBypassesCache(t *testing.T) {
	var calls int32
	store := cache.NewMemoryStore()
	reg := newRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeOK(w, []model.Service{}, nil)
	}), store)

	ctx := context.Background()
	_, _, err := reg.Services.GetAll(ctx, query.Params{}, NoStore())
	require.NoError(t, err)
	_, _, err = reg.Services.GetAll(ctx, query.Params{}, NoStore())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	// The default policy shares one upstream request within the window.
	_, _, err = reg.Services.GetAll(ctx, query.Params{})
	require.NoError(t, err)
	_, _, err = reg.Services.GetAll(ctx, query.Params{})
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestPricesGetGrouped(t *testing.T) {
	reg := newRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/prices/grouped", r.URL.Path)
		writeOK(w, []model.PriceGroup{
			{
				Service: model.Service{ID: "s1", Title: "Coiffure"},
				Prices:  []model.Price{{ID: "p1", Title: "Coupe", Price: 35}},
			},
		}, nil)
	}), nil)

	groups, err := reg.Prices.GetGrouped(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Coiffure", groups[0].Service.Title)
	require.Len(t, groups[0].Prices, 1)
	assert.Equal(t, 35.0, groups[0].Prices[0].Price)
}

func TestProductsSearch(t *testing.T) {
	reg := newRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/search", r.URL.Path)
		assert.Equal(t, "crème", r.URL.Query().Get("query"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		writeOK(w, []model.Product{{ID: "p1", Title: "Crème mains"}}, &model.Meta{Page: 2, Limit: 12, Total: 13, Pages: 2})
	}), nil)

	items, meta, err := reg.Products.Search(context.Background(), "crème", 2, 12)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 13, meta.Total)
}

func TestProductsGetBrands(t *testing.T) {
	reg := newRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/brands", r.URL.Path)
		writeOK(w, []string{"Delote", "Nuxa"}, nil)
	}), nil)

	brands, err := reg.Products.GetBrands(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Delote", "Nuxa"}, brands)
}

func TestMastersGetBySpecialityEscapes(t *testing.T) {
	reg := newRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/masters/by-speciality", r.URL.Path)
		assert.Equal(t, "coiffure & couleur", r.URL.Query().Get("speciality"))
		writeOK(w, []model.Master{{ID: "m1"}}, nil)
	}), nil)

	items, err := reg.Masters.GetBySpeciality(context.Background(), "coiffure & couleur")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestAuthVerifyTokenEmptyIsLocal(t *testing.T) {
	reg := newRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an empty token")
	}), nil)

	ok, user := reg.Auth.VerifyToken(context.Background(), "")
	assert.False(t, ok)
	assert.Nil(t, user)
}

func TestAuthCurrentUser(t *testing.T) {
	reg := newRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/me", r.URL.Path)
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		writeOK(w, model.User{ID: "u1", Email: "admin@example.com", Role: "admin"}, nil)
	}), nil)

	user, err := reg.Auth.CurrentUser(context.Background(), "tok123")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
}
