package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelov/authkit/pkg/cookie"
)

func testPayload() Payload {
	return Payload{UserID: "u-1", Email: "a@x.com", Role: RoleUser}
}

// requestWith returns a request carrying the cookies previously written to w.
func requestWith(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestManager_CreateAndRead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()
	mgr := New(store, cookie.New())

	w := httptest.NewRecorder()
	require.NoError(t, mgr.Create(ctx, w, testPayload()))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Len(t, cookies[0].Value, 64) // 32 random bytes, hex-encoded
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.InDelta(t, (7 * 24 * time.Hour).Seconds(), float64(cookies[0].MaxAge), 5)

	payload, err := mgr.Read(ctx, requestWith(t, w))
	require.NoError(t, err)
	assert.Equal(t, testPayload(), *payload)
}

func TestManager_Read(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns not found without cookie", func(t *testing.T) {
		t.Parallel()

		mgr := New(NewMemoryStore(), cookie.New())
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := mgr.Read(ctx, r)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("returns not found after ttl elapses", func(t *testing.T) {
		t.Parallel()

		store := NewMemoryStore()
		mgr := New(store, cookie.New())

		w := httptest.NewRecorder()
		require.NoError(t, mgr.Create(ctx, w, testPayload()))

		store.now = func() time.Time { return time.Now().Add(8 * 24 * time.Hour) }

		_, err := mgr.Read(ctx, requestWith(t, w))
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		t.Parallel()

		mgr := New(NewMemoryStore(), cookie.New())
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "session", Value: "deadbeef"})

		_, err := mgr.Read(ctx, r)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestManager_Renew(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("extends expiry and keeps payload", func(t *testing.T) {
		t.Parallel()

		store := NewMemoryStore()
		mgr := New(store, cookie.New(), WithTTL(time.Hour))

		w := httptest.NewRecorder()
		require.NoError(t, mgr.Create(ctx, w, testPayload()))
		r := requestWith(t, w)
		id := r.Cookies()[0].Value

		// Session is 50 minutes old; renewal must push expiry a full TTL out.
		store.now = func() time.Time { return time.Now().Add(50 * time.Minute) }

		w2 := httptest.NewRecorder()
		payload, err := mgr.Renew(ctx, w2, r)
		require.NoError(t, err)
		assert.Equal(t, testPayload(), *payload)

		cookies := w2.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, id, cookies[0].Value) // same identifier, extended expiry

		// 40 more minutes pass: past the original deadline, within the renewed one.
		store.now = func() time.Time { return time.Now().Add(90 * time.Minute) }
		got, err := mgr.Read(ctx, r)
		require.NoError(t, err)
		assert.Equal(t, testPayload(), *got)
	})

	t.Run("absent session sets no cookie", func(t *testing.T) {
		t.Parallel()

		mgr := New(NewMemoryStore(), cookie.New())

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := mgr.Renew(ctx, w, r)
		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.Empty(t, w.Result().Cookies())
	})
}

func TestManager_Destroy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()
	mgr := New(store, cookie.New())

	w := httptest.NewRecorder()
	require.NoError(t, mgr.Create(ctx, w, testPayload()))
	r := requestWith(t, w)

	w2 := httptest.NewRecorder()
	require.NoError(t, mgr.Destroy(ctx, w2, r))

	cookies := w2.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)

	_, err := mgr.Read(ctx, r)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Destroy is idempotent.
	require.NoError(t, mgr.Destroy(ctx, httptest.NewRecorder(), r))

	// Without any session cookie it is a no-op as well.
	require.NoError(t, mgr.Destroy(ctx, httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)))
}
