package http

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGet(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	resp, err := client.Get(context.Background(), server.URL+"/resource")

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestClientGetJSON(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte(`{"name":"lagos","count":3}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	var result struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	err := client.GetJSON(context.Background(), server.URL+"/resource", &result)

	require.NoError(t, err)
	assert.Equal(t, "lagos", result.Name)
	assert.Equal(t, 3, result.Count)
}

func TestClientGetJSON_HTTPError(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	err := client.GetJSON(context.Background(), server.URL+"/resource", nil)

	assert.Error(t, err)
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	client := NewClient("http://service.local", 0)

	assert.Equal(t, DefaultTimeout, client.HTTPClient.Timeout)
}
