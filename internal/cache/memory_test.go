package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	s.Set(ctx, "/services", []byte("payload"), time.Minute, TagServices)

	got, ok := s.Get(ctx, "/services")
	assert.True(t, ok)
	assert.Equal(t, []byte("payload"), got)

	_, ok = s.Get(ctx, "/unknown")
	assert.False(t, ok)
}

func TestMemoryStoreDeleteByTag(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	s.Set(ctx, "/services", []byte("a"), time.Minute, TagServices, TagCategories)
	s.Set(ctx, "/prices/grouped", []byte("b"), time.Minute, TagPrices, TagServices)
	s.Set(ctx, "/masters", []byte("c"), time.Minute, TagMasters)

	s.DeleteByTag(ctx, TagServices)

	_, ok := s.Get(ctx, "/services")
	assert.False(t, ok)
	_, ok = s.Get(ctx, "/prices/grouped")
	assert.False(t, ok)

	// Untagged resources survive.
	_, ok = s.Get(ctx, "/masters")
	assert.True(t, ok)
}

func TestMemoryStoreDeleteByTagUnknown(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.Set(ctx, "/works", []byte("a"), time.Minute, TagWorks)

	s.DeleteByTag(ctx, "nope")

	_, ok := s.Get(ctx, "/works")
	assert.True(t, ok)
}

func TestMemoryStoreFlush(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.Set(ctx, "/works", []byte("a"), time.Minute, TagWorks)

	s.Flush(ctx)

	_, ok := s.Get(ctx, "/works")
	assert.False(t, ok)
}

func TestRevalidatorInvalidatesViewTags(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	r := NewRevalidator(s, nil)

	s.Set(ctx, "/prices/grouped", []byte("a"), time.Minute, TagPrices)
	s.Set(ctx, "/services", []byte("b"), time.Minute, TagServices)
	s.Set(ctx, "/masters", []byte("c"), time.Minute, TagMasters)

	// The public prices page joins services and categories, so its view key
	// covers those tags too.
	r.Invalidate(ctx, ViewPrices)

	_, ok := s.Get(ctx, "/prices/grouped")
	assert.False(t, ok)
	_, ok = s.Get(ctx, "/services")
	assert.False(t, ok)
	_, ok = s.Get(ctx, "/masters")
	assert.True(t, ok)
}

func TestRevalidatorIgnoresUnknownView(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	r := NewRevalidator(s, nil)

	s.Set(ctx, "/works", []byte("a"), time.Minute, TagWorks)
	r.Invalidate(ctx, "/no-such-view")

	_, ok := s.Get(ctx, "/works")
	assert.True(t, ok)
}
