package client

import (
	"context"
	"testing"

	"net/http/httptest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboard/internal/config"
	serverHTTP "onboard/internal/server/http"
	"onboard/internal/user"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	router := serverHTTP.NewRouter(config.NewMemoryStore(), user.NewMemoryStore(), nil)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestClientConfigRoundTrip(t *testing.T) {
	t.Parallel()

	c := newTestClient(t)
	ctx := context.Background()

	cfg, err := c.FetchConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	stored, err := c.SaveConfig(ctx, config.StepConfig{
		Page2Components: []string{"address"},
		Page3Components: []string{"aboutMe", "birthdate"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"address"}, stored.Page2Components)
	assert.Equal(t, []string{"aboutMe", "birthdate"}, stored.Page3Components)

	again, err := c.FetchConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, again)
}

func TestClientCreateAndListUsers(t *testing.T) {
	t.Parallel()

	c := newTestClient(t)
	ctx := context.Background()

	rec, err := c.CreateUser(ctx, user.Submission{
		Email:    "a@b.com",
		Password: "x",
		AboutMe:  "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID)
	assert.Equal(t, "a@b.com", rec.Email)

	records, err := c.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "hello", records[0].AboutMe)
}

func TestClientSurfacesServerErrors(t *testing.T) {
	t.Parallel()

	c := newTestClient(t)

	_, err := c.CreateUser(context.Background(), user.Submission{AboutMe: "no identity"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "validation failed")
}

func TestClientTransportFailure(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listens here

	_, err := c.FetchConfig(context.Background())
	require.Error(t, err)

	_, err = c.ListUsers(context.Background())
	require.Error(t, err)
}

func TestClientDefaultBaseURL(t *testing.T) {
	t.Parallel()

	c := New("  ")
	assert.Equal(t, DefaultBaseURL, c.baseURL)

	c = New("http://example.com/")
	assert.Equal(t, "http://example.com", c.baseURL)
}
