package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/biz365/admin-api/internal/config"
	"github.com/biz365/admin-api/internal/mockdata"
	"github.com/biz365/admin-api/internal/query"
	"github.com/stretchr/testify/assert"
)

func newMockClient(t *testing.T) *Client {
	store, err := mockdata.Open(t.TempDir())
	assert.NoError(t, err)

	client, err := New(&config.Config{
		APIBaseURL:  "http://localhost:9", // never dialed in mock mode
		UseMockData: true,
	}, store)
	assert.NoError(t, err)
	return client
}

func TestMockUsers(t *testing.T) {
	client := newMockClient(t)
	ctx := context.Background()

	t.Run("list returns seeded users with pagination", func(t *testing.T) {
		page, err := client.GetUsers(ctx, ListOptions{})
		assert.NoError(t, err)
		assert.Len(t, page.Data, 5)
		assert.Equal(t, 5, page.Pagination.Total)
		assert.Equal(t, 1, page.Pagination.Pages)
	})

	t.Run("list filters by status", func(t *testing.T) {
		page, err := client.GetUsers(ctx, ListOptions{Filters: query.Filters{Status: "suspended"}})
		assert.NoError(t, err)
		assert.Len(t, page.Data, 1)
		assert.Equal(t, "bob.wilson@example.com", page.Data[0]["email"])
	})

	t.Run("create then read roundtrip", func(t *testing.T) {
		created, err := client.CreateUser(ctx, Record{
			"email":      "new.user@example.com",
			"first_name": "New",
			"last_name":  "User",
			"role":       "customer",
			"status":     "active",
		})
		assert.NoError(t, err)
		assert.Equal(t, 6, recordID(created))
		assert.NotEmpty(t, created["created_at"])

		fetched, err := client.GetUser(ctx, 6)
		assert.NoError(t, err)
		assert.Equal(t, "new.user@example.com", fetched["email"])
	})

	t.Run("create rejects invalid payload with field details", func(t *testing.T) {
		_, err := client.CreateUser(ctx, Record{"email": "nope", "role": "overlord"})

		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
		assert.Equal(t, 422, apiErr.Status)

		details, ok := apiErr.Details.(map[string]string)
		assert.True(t, ok)
		assert.Contains(t, details, "email")
		assert.Contains(t, details, "role")
	})

	t.Run("update merges partially and refreshes updated_at", func(t *testing.T) {
		before, err := client.GetUser(ctx, 1)
		assert.NoError(t, err)

		updated, err := client.UpdateUser(ctx, 1, Record{"first_name": "Johnny", "updated_at": "1999-01-01T00:00:00Z"})
		assert.NoError(t, err)
		assert.Equal(t, "Johnny", updated["first_name"])
		assert.Equal(t, before["email"], updated["email"])
		assert.NotEqual(t, "1999-01-01T00:00:00Z", updated["updated_at"])
		assert.Equal(t, before["created_at"], updated["created_at"])
	})

	t.Run("delete removes exactly one", func(t *testing.T) {
		assert.NoError(t, client.DeleteUser(ctx, 4))

		page, err := client.GetUsers(ctx, ListOptions{Limit: 100})
		assert.NoError(t, err)
		for _, rec := range page.Data {
			assert.NotEqual(t, 4, recordID(rec))
		}
	})

	t.Run("missing id maps to ErrNotFound", func(t *testing.T) {
		_, err := client.GetUser(ctx, 999)
		assert.ErrorIs(t, err, ErrNotFound)

		err = client.DeleteUser(ctx, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown endpoint is a 404, not a guess", func(t *testing.T) {
		_, err := client.Get(ctx, "/no/such/endpoint")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMockRolePermissions(t *testing.T) {
	client := newMockClient(t)
	ctx := context.Background()

	t.Run("seeded grants are readable", func(t *testing.T) {
		perms, err := client.GetRolePermissions(ctx, 3)
		assert.NoError(t, err)
		assert.Len(t, perms, 3)
	})

	t.Run("grant is idempotent", func(t *testing.T) {
		assert.NoError(t, client.GrantPermission(ctx, 3, 1))
		assert.NoError(t, client.GrantPermission(ctx, 3, 1))

		perms, err := client.GetRolePermissions(ctx, 3)
		assert.NoError(t, err)
		assert.Len(t, perms, 4)
	})

	t.Run("revoke of ungranted is a no-op", func(t *testing.T) {
		assert.NoError(t, client.RevokePermission(ctx, 3, 16))

		perms, err := client.GetRolePermissions(ctx, 3)
		assert.NoError(t, err)
		assert.Len(t, perms, 4)
	})

	t.Run("revoke removes the grant", func(t *testing.T) {
		assert.NoError(t, client.RevokePermission(ctx, 3, 1))

		perms, err := client.GetRolePermissions(ctx, 3)
		assert.NoError(t, err)
		assert.Len(t, perms, 3)
	})

	t.Run("unknown role or permission is a 404", func(t *testing.T) {
		assert.ErrorIs(t, client.GrantPermission(ctx, 99, 1), ErrNotFound)
		assert.ErrorIs(t, client.GrantPermission(ctx, 3, 99), ErrNotFound)
	})
}

func TestMockLogs(t *testing.T) {
	client := newMockClient(t)
	ctx := context.Background()

	t.Run("filters by level and action", func(t *testing.T) {
		page, err := client.GetLogs(ctx, ListOptions{Filters: query.Filters{Level: "info", Action: "login"}})
		assert.NoError(t, err)
		assert.Len(t, page.Data, 1)
		assert.Equal(t, "user.login", page.Data[0]["action"])
	})

	t.Run("bulk delete reports the removed count", func(t *testing.T) {
		deleted, err := client.BulkDeleteLogs(ctx, []int{1, 3, 999})
		assert.NoError(t, err)
		assert.Equal(t, 2, deleted)

		page, err := client.GetLogs(ctx, ListOptions{})
		assert.NoError(t, err)
		assert.Equal(t, 3, page.Pagination.Total)
	})

	t.Run("bulk delete without ids is a bad request", func(t *testing.T) {
		_, err := client.BulkDeleteLogs(ctx, nil)
		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Status)
	})
}

func TestMockGlobalSearch(t *testing.T) {
	client := newMockClient(t)
	ctx := context.Background()

	t.Run("matches fan out across entities", func(t *testing.T) {
		results, err := client.GlobalSearch(ctx, "store")
		assert.NoError(t, err)
		assert.NotEmpty(t, results.Users)
		assert.NotEmpty(t, results.NfcTags)
		assert.NotEmpty(t, results.Stores)
		assert.Positive(t, results.Total)
	})

	t.Run("each entity is capped at five", func(t *testing.T) {
		results, err := client.GlobalSearch(ctx, "a")
		assert.NoError(t, err)
		assert.LessOrEqual(t, len(results.Users), 5)
		assert.LessOrEqual(t, len(results.NfcTags), 5)
		assert.LessOrEqual(t, len(results.Stores), 5)
		assert.LessOrEqual(t, len(results.Roles), 5)
	})

	t.Run("empty term is rejected", func(t *testing.T) {
		_, err := client.GlobalSearch(ctx, "")
		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Status)
	})
}

func TestMockSettings(t *testing.T) {
	client := newMockClient(t)
	ctx := context.Background()

	t.Run("seeded settings are readable", func(t *testing.T) {
		settings, err := client.GetSettings(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "Biz365 Platform", settings["app_name"])
	})

	t.Run("update replaces the document wholesale", func(t *testing.T) {
		_, err := client.UpdateSettings(ctx, Record{"app_name": "Renamed"})
		assert.NoError(t, err)

		settings, err := client.GetSettings(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "Renamed", settings["app_name"])
		assert.NotContains(t, settings, "maintenance_mode")
	})
}

func TestMockApiKeys(t *testing.T) {
	client := newMockClient(t)
	ctx := context.Background()

	t.Run("create shows the raw key once and stores only the hash", func(t *testing.T) {
		created, err := client.CreateApiKey(ctx, Record{"name": "CI Pipeline", "status": "active"})
		assert.NoError(t, err)

		raw, _ := created["key"].(string)
		assert.Contains(t, raw, "bz_")
		assert.NotContains(t, created, "key_hash")

		page, err := client.GetApiKeys(ctx, ListOptions{})
		assert.NoError(t, err)
		for _, rec := range page.Data {
			assert.NotContains(t, rec, "key")
		}
	})
}

func TestMockAuth(t *testing.T) {
	store, err := mockdata.Open(t.TempDir())
	assert.NoError(t, err)
	cfg := &config.Config{UseMockData: true}

	client, err := New(cfg, store)
	assert.NoError(t, err)
	ctx := context.Background()

	t.Run("starts unauthenticated", func(t *testing.T) {
		assert.False(t, client.IsAuthenticated())
	})

	t.Run("login issues a token and stamps last_login", func(t *testing.T) {
		user, err := client.Login(ctx, "admin@biz365.ai", "any-password")
		assert.NoError(t, err)
		assert.Equal(t, "admin", user["role"])
		assert.True(t, client.IsAuthenticated())
	})

	t.Run("token survives reconstruction", func(t *testing.T) {
		fresh, err := New(cfg, store)
		assert.NoError(t, err)
		assert.True(t, fresh.IsAuthenticated())
		assert.Equal(t, client.Token(), fresh.Token())
	})

	t.Run("unknown email is rejected", func(t *testing.T) {
		_, err := client.Login(ctx, "ghost@example.com", "pw")
		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 401, apiErr.Status)
	})

	t.Run("inactive account cannot sign in", func(t *testing.T) {
		_, err := client.Login(ctx, "bob.wilson@example.com", "pw")
		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 401, apiErr.Status)
	})

	t.Run("logout clears the persisted token", func(t *testing.T) {
		assert.NoError(t, client.SetToken("tok"))
		assert.NoError(t, client.Logout(ctx))
		assert.False(t, client.IsAuthenticated())

		fresh, err := New(cfg, store)
		assert.NoError(t, err)
		assert.False(t, fresh.IsAuthenticated())
	})
}

func TestNetworkMode(t *testing.T) {
	newNetworkClient := func(t *testing.T, baseURL string) *Client {
		store, err := mockdata.Open(t.TempDir())
		assert.NoError(t, err)
		client, err := New(&config.Config{APIBaseURL: baseURL, UseMockData: false}, store)
		assert.NoError(t, err)
		return client
	}

	t.Run("list decodes envelope data and meta", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":true,"data":[{"id":1,"email":"a@b.c"}],"meta":{"page":1,"limit":20,"total":1,"pages":1}}`))
		}))
		defer srv.Close()

		page, err := newNetworkClient(t, srv.URL).GetUsers(context.Background(), ListOptions{})
		assert.NoError(t, err)
		assert.Len(t, page.Data, 1)
		assert.Equal(t, 1, page.Pagination.Total)
	})

	t.Run("bearer token rides along", func(t *testing.T) {
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Authorization")
			w.Write([]byte(`{"success":true,"data":{}}`))
		}))
		defer srv.Close()

		client := newNetworkClient(t, srv.URL)
		assert.NoError(t, client.SetToken("tok123"))
		_, err := client.GetSettings(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "Bearer tok123", got)
	})

	t.Run("envelope error normalizes into APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"error":{"code":"NOT_FOUND","message":"user not found"}}`))
		}))
		defer srv.Close()

		_, err := newNetworkClient(t, srv.URL).GetUser(context.Background(), 42)
		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "NOT_FOUND", apiErr.Code)
		assert.Equal(t, 404, apiErr.Status)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("non-envelope error body still yields an APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream exploded"))
		}))
		defer srv.Close()

		_, err := newNetworkClient(t, srv.URL).GetUser(context.Background(), 1)
		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 502, apiErr.Status)
	})

	t.Run("transport failure mentions the backend", func(t *testing.T) {
		client := newNetworkClient(t, "http://127.0.0.1:1")
		_, err := client.GetUser(context.Background(), 1)
		assert.Error(t, err)
		var apiErr *APIError
		assert.False(t, errors.As(err, &apiErr))
		assert.Contains(t, err.Error(), "backend")
	})
}
