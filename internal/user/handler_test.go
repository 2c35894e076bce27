package user_test

import (
	"fmt"
	"testing"

	"github.com/biz365/admin-api/internal/database"
	"github.com/biz365/admin-api/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestCreateUserHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	admin := testutils.CreateTestUser(t, db, "admin@test.com", "password", "admin")
	token := testutils.GetAuthToken(t, admin.ID, admin.Role)

	t.Run("Success - Create user", func(t *testing.T) {
		body := map[string]interface{}{
			"email":      "newuser@test.com",
			"first_name": "New",
			"last_name":  "User",
			"password":   "password123",
			"role":       "customer",
			"status":     "active",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/users/", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)
		testutils.AssertSuccess(t, resp)
	})

	t.Run("Fail - Invalid payload", func(t *testing.T) {
		body := map[string]interface{}{
			"email": "not-an-email",
			"role":  "overlord",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/users/", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 422, resp.Code)
		testutils.AssertError(t, resp, "VALIDATION_ERROR")
	})

	t.Run("Fail - Duplicate email", func(t *testing.T) {
		body := map[string]interface{}{
			"email":      "newuser@test.com",
			"first_name": "Dup",
			"last_name":  "User",
			"role":       "customer",
			"status":     "active",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/users/", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.Code)
		testutils.AssertError(t, resp, "CONFLICT")
	})

	t.Run("Fail - No token", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", "/users/", map[string]interface{}{}, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
	})
}

func TestListUsersHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	admin := testutils.CreateTestUser(t, db, "admin@test.com", "password", "admin")
	token := testutils.GetAuthToken(t, admin.ID, admin.Role)

	for i := 0; i < 25; i++ {
		testutils.CreateTestUser(t, db, fmt.Sprintf("user%02d@test.com", i), "password", "customer")
	}

	t.Run("Success - Default pagination", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/users/", nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		assert.True(t, result.Success)
		assert.NotNil(t, result.Meta)
		assert.Equal(t, int64(26), result.Meta.Total)
		assert.Equal(t, 20, result.Meta.Limit)
		assert.Equal(t, int64(2), result.Meta.Pages)
	})

	t.Run("Success - Second page", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/users/?page=2&limit=20", nil, token)
		assert.NoError(t, err)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		data, ok := result.Data.([]interface{})
		assert.True(t, ok)
		assert.Len(t, data, 6)
	})

	t.Run("Success - Filter by role", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/users/?role=admin", nil, token)
		assert.NoError(t, err)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		assert.Equal(t, int64(1), result.Meta.Total)
	})

	t.Run("Success - Search by email", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/users/?search=user07", nil, token)
		assert.NoError(t, err)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		assert.Equal(t, int64(1), result.Meta.Total)
	})

	t.Run("Fail - Customer cannot create users", func(t *testing.T) {
		customer := testutils.CreateTestUser(t, db, "plain@test.com", "password", "customer")
		customerToken := testutils.GetAuthToken(t, customer.ID, customer.Role)

		resp, err := testutils.MakeRequest(app, "POST", "/users/", map[string]interface{}{}, customerToken)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)
		testutils.AssertError(t, resp, "FORBIDDEN")
	})
}

func TestUpdateUserHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	admin := testutils.CreateTestUser(t, db, "admin@test.com", "password", "admin")
	token := testutils.GetAuthToken(t, admin.ID, admin.Role)
	target := testutils.CreateTestUser(t, db, "target@test.com", "password", "customer")

	t.Run("Success - Partial update keeps other fields", func(t *testing.T) {
		body := map[string]interface{}{"first_name": "Renamed"}

		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/users/%d", target.ID), body, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		data := result.Data.(map[string]interface{})
		assert.Equal(t, "Renamed", data["first_name"])
		assert.Equal(t, "target@test.com", data["email"])
	})

	t.Run("Fail - Invalid enum", func(t *testing.T) {
		body := map[string]interface{}{"status": "frozen"}

		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/users/%d", target.ID), body, token)
		assert.NoError(t, err)
		assert.Equal(t, 422, resp.Code)
		testutils.AssertError(t, resp, "VALIDATION_ERROR")
	})

	t.Run("Fail - Unknown user", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "PUT", "/users/9999", map[string]interface{}{"first_name": "X"}, token)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
		testutils.AssertError(t, resp, "NOT_FOUND")
	})
}

func TestDeleteUserHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	admin := testutils.CreateTestUser(t, db, "admin@test.com", "password", "admin")
	token := testutils.GetAuthToken(t, admin.ID, admin.Role)
	target := testutils.CreateTestUser(t, db, "target@test.com", "password", "customer")

	t.Run("Success - Delete user", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/users/%d", target.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		resp, err = testutils.MakeRequest(app, "GET", fmt.Sprintf("/users/%d", target.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
	})

	t.Run("Fail - Already deleted", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/users/%d", target.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
	})
}
