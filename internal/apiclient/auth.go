package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/biz365/admin-api/internal/mockdata"
	"github.com/google/uuid"
)

// Login authenticates and persists the bearer token so the next client
// construction picks it up. The returned record is the signed-in user.
func (c *Client) Login(ctx context.Context, email, password string) (Record, error) {
	if c.mock {
		return c.mockSignIn(email, password)
	}

	res, err := c.Post(ctx, "/auth/login", Record{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Token string `json:"token"`
		User  Record `json:"user"`
	}
	if err := decode(res.Data, &payload); err != nil {
		return nil, err
	}
	if payload.Token == "" {
		return nil, fmt.Errorf("login response carried no token")
	}

	if err := c.persistToken(payload.Token); err != nil {
		return nil, err
	}
	return payload.User, nil
}

// Logout clears the persisted token. In network mode the server is told
// first, but a failed call still clears local state.
func (c *Client) Logout(ctx context.Context) error {
	if !c.mock {
		_, _ = c.Post(ctx, "/auth/logout", nil)
	}
	c.token = ""
	return c.store.Remove(mockdata.KeyAuthToken)
}

// IsAuthenticated checks token presence only; expiry is the server's
// problem.
func (c *Client) IsAuthenticated() bool {
	return c.token != ""
}

func (c *Client) Token() string {
	return c.token
}

func (c *Client) SetToken(token string) error {
	return c.persistToken(token)
}

// mockSignIn matches by email only. The fixture users carry no password
// hashes, so any non-empty password signs in an active account; real
// credential checks belong to the network backend.
func (c *Client) mockSignIn(email, password string) (Record, error) {
	if email == "" || password == "" {
		return nil, badRequestError("email and password are required")
	}

	users, err := c.store.Get(mockdata.KeyUsers)
	if err != nil {
		return nil, err
	}

	var user Record
	var idx int
	for i, rec := range users {
		if stored, _ := rec["email"].(string); strings.EqualFold(stored, email) {
			user = rec
			idx = i
			break
		}
	}
	if user == nil {
		return nil, unauthorizedError("invalid email or password")
	}
	if status, _ := user["status"].(string); status != "active" {
		return nil, unauthorizedError("account is not active")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	user["last_login"] = now
	user["updated_at"] = now
	users[idx] = user
	if err := c.store.Set(mockdata.KeyUsers, users); err != nil {
		return nil, err
	}

	token := "mock-" + strings.ReplaceAll(uuid.New().String(), "-", "")
	if err := c.persistToken(token); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) mockLogin(_ context.Context, _ map[string]string, _ url.Values, body Record) (*Result, error) {
	email, _ := body["email"].(string)
	password, _ := body["password"].(string)

	user, err := c.mockSignIn(email, password)
	if err != nil {
		return nil, err
	}
	return makeResult(Record{"token": c.token, "user": user}, nil)
}

func (c *Client) mockLogout(_ context.Context, _ map[string]string, _ url.Values, _ Record) (*Result, error) {
	c.token = ""
	if err := c.store.Remove(mockdata.KeyAuthToken); err != nil {
		return nil, err
	}
	return makeResult(Record{"message": "Logged out successfully"}, nil)
}

func (c *Client) persistToken(token string) error {
	c.token = token
	return c.store.SetValue(mockdata.KeyAuthToken, token)
}
