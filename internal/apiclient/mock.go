package apiclient

import (
	"context"
	"net/url"
	"strings"

	"github.com/biz365/admin-api/internal/query"
)

// mockHandler serves one endpoint against the local store. params holds
// matched path variables, values the parsed query string.
type mockHandler func(ctx context.Context, params map[string]string, values url.Values, body Record) (*Result, error)

type route struct {
	method   string
	segments []string
	handler  mockHandler
}

// buildRoutes is the explicit endpoint table for mock mode. Every
// supported path is listed here; anything else is a 404, never a guess
// based on path shape.
func buildRoutes(c *Client) []route {
	table := []route{
		{"POST", split("/auth/login"), c.mockLogin},
		{"POST", split("/auth/logout"), c.mockLogout},

		{"GET", split("/settings"), c.mockGetSettings},
		{"PUT", split("/settings"), c.mockReplaceSettings},

		{"GET", split("/admin/search"), c.mockGlobalSearch},
		{"POST", split("/admin/logs/bulk-delete"), c.mockBulkDeleteLogs},
		{"GET", split("/admin/roles/:id/permissions"), c.mockGetRolePermissions},
		{"POST", split("/admin/roles/:id/permissions"), c.mockUpdateRolePermissions},
		{"POST", split("/admin/api-keys"), c.mockCreateApiKey},
	}

	collections := []struct {
		path   string
		key    string
		entity string
	}{
		{"/users", "users", "users"},
		{"/nfc-tags", "nfc_tags", "nfc_tags"},
		{"/stores", "stores", "stores"},
		{"/admin/roles", "roles", "roles"},
		{"/admin/permissions", "permissions", "permissions"},
		{"/admin/logs", "logs", "logs"},
		{"/admin/api-keys", "api_keys", "api_keys"},
		{"/admin/backups", "backups", "backups"},
		{"/admin/email-templates", "email_templates", "email_templates"},
	}

	for _, col := range collections {
		key, entity := col.key, col.entity
		table = append(table,
			route{"GET", split(col.path), c.mockList(key)},
			route{"GET", split(col.path + "/:id"), c.mockGetOne(key)},
			route{"POST", split(col.path), c.mockCreate(key, entity)},
			route{"PUT", split(col.path + "/:id"), c.mockUpdate(key, entity)},
			route{"DELETE", split(col.path + "/:id"), c.mockDelete(key)},
		)
	}

	return table
}

func (c *Client) dispatch(ctx context.Context, method, rawPath string, body Record) (*Result, error) {
	parsed, err := url.Parse(rawPath)
	if err != nil {
		return nil, badRequestError("malformed path: " + rawPath)
	}
	segments := split(parsed.Path)

	for _, r := range c.routes {
		if r.method != method {
			continue
		}
		params, ok := match(r.segments, segments)
		if !ok {
			continue
		}
		return r.handler(ctx, params, parsed.Query(), body)
	}

	return nil, notFoundError("endpoint " + method + " " + parsed.Path)
}

func split(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}

func match(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}
	params := map[string]string{}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			params[p[1:]] = segments[i]
			continue
		}
		if p != segments[i] {
			return nil, false
		}
	}
	return params, true
}

func filtersFrom(values url.Values) query.Filters {
	return query.Filters{
		Search:   values.Get("search"),
		Status:   values.Get("status"),
		Role:     values.Get("role"),
		Level:    values.Get("level"),
		Action:   values.Get("action"),
		DateFrom: values.Get("date_from"),
		DateTo:   values.Get("date_to"),
	}
}
