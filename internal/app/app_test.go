package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/newsdesk/internal/datasources"
	"github.com/jbeshir/newsdesk/internal/datasources/redis"
)

func TestSetupCache(t *testing.T) {
	cases := []struct {
		name       string
		driver     string
		wantType   datasources.Cache
		wantCloser bool
		wantErr    bool
	}{
		{name: "null", driver: "null", wantType: datasources.NullCache{}},
		{name: "memory", driver: "memory", wantType: datasources.FailSafeCache{}},
		{name: "default_is_memory", driver: "", wantType: datasources.FailSafeCache{}},
		{name: "unknown", driver: "memcached", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("CACHE_DRIVER", tc.driver)

			cache, closer, err := setupCache(testContext())
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tc.wantType, cache)
			assert.Equal(t, tc.wantCloser, closer != nil)
		})
	}
}

func TestSetupCache_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("CACHE_DRIVER", "redis")
	t.Setenv("REDIS_URL", "redis://"+mr.Addr())
	ctx := testContext()

	cache, closer, err := setupCache(ctx)
	require.NoError(t, err)
	require.NotNil(t, closer)
	t.Cleanup(func() { _ = closer() })

	require.NoError(t, cache.Set(ctx, "article:id:a1", []byte("{}"), 0))
	assert.True(t, mr.Exists("article:id:a1"))
}

func TestSetupSharedCache(t *testing.T) {
	cases := []struct {
		name      string
		driver    string
		wantLocal bool
	}{
		{name: "null", driver: "null", wantLocal: true},
		{name: "memory", driver: "memory", wantLocal: true},
		{name: "default_is_memory", driver: "", wantLocal: true},
		{name: "unknown", driver: "memcached"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("CACHE_DRIVER", tc.driver)

			_, closer, err := setupSharedCache(testContext())
			require.Error(t, err)
			assert.Nil(t, closer)
			assert.Equal(t, tc.wantLocal, errors.Is(err, ErrProcessLocalCache))
		})
	}

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		t.Setenv("CACHE_DRIVER", "redis")
		t.Setenv("REDIS_URL", "redis://"+mr.Addr())

		cache, closer, err := setupSharedCache(testContext())
		require.NoError(t, err)
		t.Cleanup(func() { _ = closer() })
		assert.IsType(t, &redis.Cache{}, cache)
	})
}

func TestSetupAdmin_RequiresSharedCacheBeforeConnecting(t *testing.T) {
	t.Setenv("CACHE_DRIVER", "memory")

	_, err := SetupAdmin(testContext(), true)
	require.ErrorIs(t, err, ErrProcessLocalCache)
}

func TestSetupAuthMiddleware(t *testing.T) {
	t.Run("gateway", func(t *testing.T) {
		t.Setenv("AUTH_DRIVERS", "gateway")
		t.Setenv("GATEWAY_TRUSTED_PROXIES", "192.0.2.0/24")
		middleware, err := setupAuthMiddleware(testContext())
		require.NoError(t, err)

		handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Authenticated-User", " ")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("gateway_without_valid_proxies", func(t *testing.T) {
		t.Setenv("AUTH_DRIVERS", "gateway")
		t.Setenv("GATEWAY_TRUSTED_PROXIES", "not-an-address")
		_, err := setupAuthMiddleware(testContext())
		assert.Error(t, err)
	})

	t.Run("unknown_driver", func(t *testing.T) {
		t.Setenv("AUTH_DRIVERS", "api_token")
		_, err := setupAuthMiddleware(testContext())
		assert.Error(t, err)
	})
}
