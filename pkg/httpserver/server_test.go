package httpserver_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelov/authkit/pkg/httpserver"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestServerRun(t *testing.T) {
	t.Parallel()

	t.Run("serves until context cancelled", func(t *testing.T) {
		t.Parallel()

		addr := freeAddr(t)
		srv := httpserver.New(httpserver.WithAddr(addr))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "hello")
			}))
		}()

		var resp *http.Response
		require.Eventually(t, func() bool {
			var err error
			resp, err = http.Get("http://" + addr + "/")
			return err == nil
		}, 2*time.Second, 20*time.Millisecond)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("server did not shut down")
		}
	})

	t.Run("reports listen failure", func(t *testing.T) {
		t.Parallel()

		l, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer l.Close()

		srv := httpserver.New(httpserver.WithAddr(l.Addr().String()))
		err = srv.Run(context.Background(), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, httpserver.ErrServerFailed)
	})
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	t.Run("liveness with no checks", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		httpserver.Healthcheck(nil)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("readiness passes when all checks succeed", func(t *testing.T) {
		t.Parallel()

		ok := func(context.Context) error { return nil }
		rec := httptest.NewRecorder()
		httpserver.Healthcheck(nil, ok, ok)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("readiness fails on first broken dependency", func(t *testing.T) {
		t.Parallel()

		ok := func(context.Context) error { return nil }
		broken := func(context.Context) error { return errors.New("connection refused") }
		rec := httptest.NewRecorder()
		httpserver.Healthcheck(nil, ok, broken)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
