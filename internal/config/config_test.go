package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboard/internal/catalog"
)

func TestNormalizedDropsUnknownAndDuplicates(t *testing.T) {
	t.Parallel()

	cfg := StepConfig{
		Page2Components: []string{"birthdate", "aboutMe", "aboutMe", "favoriteColor"},
		Page3Components: []string{"address", "address"},
	}

	got := cfg.Normalized()
	assert.Equal(t, []string{"aboutMe", "birthdate"}, got.Page2Components)
	assert.Equal(t, []string{"address"}, got.Page3Components)
}

func TestComponentsOutsideConfigurableRange(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Nil(t, cfg.Components(1))
	assert.Nil(t, cfg.Components(4))
	assert.Equal(t, []string{"aboutMe", "birthdate"}, cfg.Components(2))
	assert.Equal(t, []string{"address"}, cfg.Components(3))
}

func TestVisibleFollowsCatalogOrder(t *testing.T) {
	t.Parallel()

	cfg := StepConfig{Page2Components: []string{"birthdate", "address", "aboutMe"}}
	assert.Equal(t, []catalog.Group{catalog.AboutMe, catalog.Address, catalog.Birthdate}, cfg.Visible(2))
	assert.Empty(t, cfg.Visible(3))
}

func TestMemoryStoreSeedsDefault(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	cfg, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestMemoryStoreReplaceNormalizes(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	stored, err := store.Replace(context.Background(), StepConfig{
		Page2Components: []string{"address", "bogus"},
		Page3Components: []string{"birthdate", "birthdate"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"address"}, stored.Page2Components)
	assert.Equal(t, []string{"birthdate"}, stored.Page3Components)

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, loaded)
}
