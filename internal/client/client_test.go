package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codeberg.org/randseq/server/api/rest/generate"
	"codeberg.org/randseq/server/internal/sequence"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, maxCount int64) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	generate.RegisterRoutes(router.Group("/api/v1"), sequence.Local{}, maxCount, 0)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

func TestGenerate_RoundTrip(t *testing.T) {
	srv := newServer(t, 100)
	c := New(srv.URL + "/")

	result, err := c.Generate(context.Background(), sequence.NewRequest(10, 0, 9, false))

	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, result.Values)
	assert.Len(t, result.Display, 10)
}

func TestGenerate_ValidationErrorIsTyped(t *testing.T) {
	srv := newServer(t, 100)
	c := New(srv.URL)

	_, err := c.Generate(context.Background(), sequence.NewRequest(20, 0, 5, false))

	require.Error(t, err)
	assert.True(t, errors.Is(err, sequence.ErrRangeTooSmall))
	assert.Contains(t, err.Error(), "0-5")

	// remote and local agree on the kind
	_, localErr := sequence.Local{}.Generate(context.Background(), sequence.NewRequest(20, 0, 5, false))
	assert.Equal(t, sequence.KindOf(localErr), sequence.KindOf(err))
}

func TestGenerate_ServerLimitIsTyped(t *testing.T) {
	srv := newServer(t, 5)
	c := New(srv.URL)

	_, err := c.Generate(context.Background(), sequence.NewRequest(6, 0, 9, true))

	require.Error(t, err)
	assert.True(t, errors.Is(err, sequence.ErrCountTooLarge))
	assert.Contains(t, err.Error(), "5")
}

func TestGenerate_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Generate(context.Background(), sequence.NewRequest(1, 0, 9, true))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestGenerate_CanceledContext(t *testing.T) {
	srv := newServer(t, 100)
	c := New(srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	<-ctx.Done()

	_, err := c.Generate(ctx, sequence.NewRequest(1, 0, 9, true))
	assert.Error(t, err)
}
