package auth_test

import (
	"testing"

	"github.com/biz365/admin-api/internal/database"
	"github.com/biz365/admin-api/internal/models"
	"github.com/biz365/admin-api/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	testutils.CreateTestUser(t, db, "admin@test.com", "correct-horse", "admin")

	t.Run("Success - Valid credentials", func(t *testing.T) {
		body := map[string]interface{}{
			"email":    "admin@test.com",
			"password": "correct-horse",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/auth/login", body, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		assert.True(t, result.Success)

		data := result.Data.(map[string]interface{})
		assert.NotEmpty(t, data["token"])
		user := data["user"].(map[string]interface{})
		assert.Equal(t, "admin@test.com", user["email"])
		assert.NotContains(t, user, "password")
	})

	t.Run("Success - Login stamps last_login and audit log", func(t *testing.T) {
		var u models.User
		db.Where("email = ?", "admin@test.com").First(&u)
		assert.NotNil(t, u.LastLogin)

		var count int64
		db.Model(&models.LogEntry{}).Where("action = ? AND user_email = ?", "user.login", "admin@test.com").Count(&count)
		assert.Positive(t, count)
	})

	t.Run("Fail - Wrong password", func(t *testing.T) {
		body := map[string]interface{}{
			"email":    "admin@test.com",
			"password": "wrong",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/auth/login", body, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
		testutils.AssertError(t, resp, "UNAUTHORIZED")

		var count int64
		db.Model(&models.LogEntry{}).Where("action = ?", "user.failed_login").Count(&count)
		assert.Positive(t, count)
	})

	t.Run("Fail - Unknown email", func(t *testing.T) {
		body := map[string]interface{}{
			"email":    "ghost@test.com",
			"password": "whatever",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/auth/login", body, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
	})

	t.Run("Fail - Inactive account", func(t *testing.T) {
		suspended := testutils.CreateTestUser(t, db, "frozen@test.com", "password", "customer")
		db.Model(suspended).Update("status", "suspended")

		body := map[string]interface{}{
			"email":    "frozen@test.com",
			"password": "password",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/auth/login", body, "")
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)
		testutils.AssertError(t, resp, "FORBIDDEN")
	})

	t.Run("Fail - Missing fields", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", "/auth/login", map[string]interface{}{}, "")
		assert.NoError(t, err)
		assert.Equal(t, 422, resp.Code)
		testutils.AssertError(t, resp, "VALIDATION_ERROR")
	})
}

func TestLoginValidation(t *testing.T) {
	app := testutils.SetupTestApp(t)

	t.Run("Only the missing field is reported", func(t *testing.T) {
		body := map[string]interface{}{"email": "admin@test.com"}

		resp, err := testutils.MakeRequest(app, "POST", "/auth/login", body, "")
		assert.NoError(t, err)
		assert.Equal(t, 422, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		details := result.Error.Details.(map[string]interface{})
		assert.Contains(t, details, "password")
		assert.NotContains(t, details, "email")
	})

	t.Run("Both missing fields are reported", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", "/auth/login", map[string]interface{}{}, "")
		assert.NoError(t, err)
		assert.Equal(t, 422, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		details := result.Error.Details.(map[string]interface{})
		assert.Contains(t, details, "email")
		assert.Contains(t, details, "password")
	})
}

func TestProtectedRoutes(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	admin := testutils.CreateTestUser(t, db, "admin@test.com", "password", "admin")

	t.Run("Fail - Missing token", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/auth/me", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
		testutils.AssertError(t, resp, "UNAUTHORIZED")
	})

	t.Run("Fail - Garbage token", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/auth/me", nil, "not-a-jwt")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
		testutils.AssertError(t, resp, "INVALID_TOKEN")
	})

	t.Run("Success - Me returns the token owner", func(t *testing.T) {
		token := testutils.GetAuthToken(t, admin.ID, admin.Role)

		resp, err := testutils.MakeRequest(app, "GET", "/auth/me", nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		user := result.Data.(map[string]interface{})
		assert.Equal(t, "admin@test.com", user["email"])
	})

	t.Run("Success - Logout is a no-op for stateless tokens", func(t *testing.T) {
		token := testutils.GetAuthToken(t, admin.ID, admin.Role)

		resp, err := testutils.MakeRequest(app, "POST", "/auth/logout", nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)
		testutils.AssertSuccess(t, resp)
	})
}
