package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImageClient_Fetch(t *testing.T) {
	ctx := context.Background()

	// JPEG SOI marker followed by junk is enough for a download test.
	payload := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 0x4a, 0x46, 0x49, 0x46}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	client := NewImageClient(ctx)
	body, err := client.Fetch(ctx, srv.URL+"/cat.jpg")
	require.NoError(t, err)
	require.Equal(t, payload, body)
}

func TestImageClient_FetchNonSuccessStatus(t *testing.T) {
	ctx := context.Background()

	// A non-2xx status is not an error here; the body flows downstream
	// and the detection call rejects it.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no such image"))
	}))
	defer srv.Close()

	client := NewImageClient(ctx)
	body, err := client.Fetch(ctx, srv.URL+"/missing.jpg")
	require.NoError(t, err)
	require.Equal(t, []byte("no such image"), body)
}

func TestImageClient_FetchConnectionError(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewImageClient(ctx)
	_, err := client.Fetch(ctx, srv.URL+"/cat.jpg")
	require.Error(t, err)
	require.Contains(t, err.Error(), "couldn't download image")
}
