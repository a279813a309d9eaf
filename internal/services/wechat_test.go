package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWechatExchangeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sns/jscode2session", r.URL.Path)
		assert.Equal(t, "one-time-code", r.URL.Query().Get("js_code"))
		assert.Equal(t, "authorization_code", r.URL.Query().Get("grant_type"))
		w.Write([]byte(`{"openid":"oX7_abc","session_key":"sk"}`))
	}))
	defer srv.Close()

	client := NewWechatClientWithBase(srv.URL)
	openid, err := client.Exchange(context.Background(), "one-time-code")
	require.NoError(t, err)
	assert.Equal(t, "oX7_abc", openid)
}

func TestWechatExchangeProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// wechat reports failures with HTTP 200 and a non-zero errcode
		w.Write([]byte(`{"errcode":40029,"errmsg":"invalid code"}`))
	}))
	defer srv.Close()

	client := NewWechatClientWithBase(srv.URL)
	_, err := client.Exchange(context.Background(), "stale-code")
	assert.ErrorIs(t, err, ErrExternalService)
}

func TestWechatExchangeHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewWechatClientWithBase(srv.URL)
	_, err := client.Exchange(context.Background(), "any")
	assert.ErrorIs(t, err, ErrExternalService)
}

func TestWechatExchangeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewWechatClientWithBase(srv.URL)
	_, err := client.Exchange(context.Background(), "any")
	assert.ErrorIs(t, err, ErrExternalService)
}
