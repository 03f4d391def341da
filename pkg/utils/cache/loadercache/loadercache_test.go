package loadercache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f1board/f1board/pkg/utils/cache"
)

func TestGetLoadsOnce(t *testing.T) {
	calls := 0
	c := New[string, int](
		WithLoader[string, int](func(k string) (*int, error) {
			calls++
			v := len(k)
			return &v, nil
		}),
	)
	ctx := context.Background()
	for range 3 {
		v, err := c.Get(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, 3, *v)
	}
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, c.Len())

	c.Invalidate(ctx, "abc")
	assert.Equal(t, 0, c.Len())
	_, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetExpires(t *testing.T) {
	now := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	calls := 0
	c := New[string, int](
		WithExpiration[string, int](time.Minute),
		withClock[string, int](func() time.Time { return now }),
		WithLoader[string, int](func(k string) (*int, error) {
			calls++
			return &calls, nil
		}),
	)
	ctx := context.Background()
	_, err := c.Get(ctx, "k")
	require.NoError(t, err)
	now = now.Add(30 * time.Second)
	_, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	now = now.Add(time.Minute)
	_, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetErrorsNotCached(t *testing.T) {
	errBoom := errors.New("boom")
	c := New[string, int](
		WithLoader[string, int](func(k string) (*int, error) {
			return nil, errBoom
		}),
	)
	_, err := c.Get(context.Background(), "k")
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 0, c.Len())
}

func TestGetWithoutLoader(t *testing.T) {
	c := New[string, int]()
	_, err := c.Get(context.Background(), "k")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}
