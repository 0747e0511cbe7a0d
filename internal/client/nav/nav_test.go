package nav

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterStartsAtHome(t *testing.T) {
	r := NewRouter(context.Background())
	assert.IsType(t, Home{}, r.Current())
	require.NoError(t, r.Context().Err())
}

func TestGoCancelsPreviousContext(t *testing.T) {
	r := NewRouter(context.Background())
	first := r.Context()

	r.Go(Product{ID: 7})

	assert.ErrorIs(t, first.Err(), context.Canceled,
		"fetches of the exited screen must be abandoned")
	require.NoError(t, r.Context().Err())
	p, ok := r.Current().(Product)
	require.True(t, ok)
	assert.Equal(t, 7, p.ID)
}

func TestRouterInheritsParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRouter(ctx)
	cancel()
	assert.ErrorIs(t, r.Context().Err(), context.Canceled)
}

func TestGated(t *testing.T) {
	gated := []Screen{Post{}, Profile{}, Chat{}, ChatDirect{}, Edit{}}
	for _, s := range gated {
		assert.True(t, Gated(s), s.Name())
	}
	open := []Screen{Home{}, Product{}, Favorites{}, Orders{}, Cart{}, Login{}, Register{}, NotFound{}}
	for _, s := range open {
		assert.False(t, Gated(s), s.Name())
	}
}
