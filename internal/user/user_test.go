package user

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                      string
		street, city, state, zip  string
		want                      string
	}{
		{name: "full", street: "1 Main St", city: "Springfield", state: "IL", zip: "62704", want: "1 Main St, Springfield, IL 62704"},
		{name: "all empty", want: ""},
		{name: "street only", street: "1 Main St", want: "1 Main St"},
		{name: "no street", city: "Springfield", state: "IL", zip: "62704", want: "Springfield, IL 62704"},
		{name: "state without zip", street: "1 Main St", state: "IL", want: "1 Main St, IL"},
		{name: "zip without state", city: "Springfield", zip: "62704", want: "Springfield, 62704"},
		{name: "whitespace only parts", street: "  ", city: " ", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatAddress(tt.street, tt.city, tt.state, tt.zip))
		})
	}
}

func TestRecordJSONOmitsPassword(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	rec, err := store.Create(context.Background(), Submission{
		Email:    "a@b.com",
		Password: "hunter2",
	})
	require.NoError(t, err)

	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hunter2")
	assert.NotContains(t, string(raw), "password")
}

func TestMemoryStoreAssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.Create(ctx, Submission{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	second, err := store.Create(ctx, Submission{Email: "c@d.com", Password: "y"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestMemoryStoreListInsertionOrder(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	for _, email := range []string{"z@z.com", "a@a.com", "m@m.com"} {
		_, err := store.Create(ctx, Submission{Email: email, Password: "x"})
		require.NoError(t, err)
	}

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "z@z.com", records[0].Email)
	assert.Equal(t, "a@a.com", records[1].Email)
	assert.Equal(t, "m@m.com", records[2].Email)
}

func TestSubmissionAddressFlattens(t *testing.T) {
	t.Parallel()

	sub := Submission{Street: "1 Main St", City: "Springfield", State: "IL", Zip: "62704"}
	assert.Equal(t, "1 Main St, Springfield, IL 62704", sub.Address())

	store := NewMemoryStore()
	rec, err := store.Create(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, "1 Main St, Springfield, IL 62704", rec.Address)
}
