package xem

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, srv.Client(), nil)
}

func TestMappings(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/map/all", r.URL.Path)
		assert.Equal(t, "79335", r.URL.Query().Get("id"))
		assert.Equal(t, "tvdb", r.URL.Query().Get("origin"))
		_, _ = w.Write([]byte(`{"result":"success","message":"","data":[
			{"tvdb":{"season":1,"episode":1,"absolute":1},"scene":{"season":1,"episode":1,"absolute":1}},
			{"tvdb":{"season":2,"episode":1,"absolute":13},"scene":{"season":1,"episode":13,"absolute":13}}
		]}`))
	})

	got, err := c.Mappings(context.Background(), 79335)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, Numbering{Season: 2, Episode: 1, Absolute: 13}, got[1].TVDB)
	assert.Equal(t, Numbering{Season: 1, Episode: 13, Absolute: 13}, got[1].Scene)
}

func TestMappings_NoShow(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result":"failure","data":[],"message":"no show with the tvdb_id 1 found"}`))
	})

	_, err := c.Mappings(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoMapping)
}

func TestMappings_Failures(t *testing.T) {
	t.Run("other failure", func(t *testing.T) {
		c := serve(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"result":"failure","data":[],"message":"database busy"}`))
		})
		_, err := c.Mappings(context.Background(), 1)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoMapping)
		assert.Contains(t, err.Error(), "database busy")
	})

	t.Run("status", func(t *testing.T) {
		c := serve(t, func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusBadGateway) })
		_, err := c.Mappings(context.Background(), 1)
		assert.ErrorContains(t, err, "502")
	})

	t.Run("garbage", func(t *testing.T) {
		c := serve(t, func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`<html>`)) })
		_, err := c.Mappings(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestMappedShows(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/map/havemap", r.URL.Path)
		_, _ = w.Write([]byte(`{"result":"success","message":"","data":["79335","x","73739"]}`))
	})

	ids, err := c.MappedShows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{79335, 73739}, ids)
}
