package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/biz365/admin-api/internal/query"
)

// ListOptions maps onto the query string every list endpoint accepts.
type ListOptions struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Filters   query.Filters
}

func (o ListOptions) queryString() string {
	values := url.Values{}
	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.SortBy != "" {
		values.Set("sort_by", o.SortBy)
	}
	if o.SortOrder != "" {
		values.Set("sort_order", o.SortOrder)
	}

	pairs := map[string]string{
		"search":    o.Filters.Search,
		"status":    o.Filters.Status,
		"role":      o.Filters.Role,
		"level":     o.Filters.Level,
		"action":    o.Filters.Action,
		"date_from": o.Filters.DateFrom,
		"date_to":   o.Filters.DateTo,
	}
	for k, v := range pairs {
		if v != "" {
			values.Set(k, v)
		}
	}

	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

func (c *Client) listPage(ctx context.Context, path string, opts ListOptions) (*query.Page, error) {
	res, err := c.Get(ctx, path+opts.queryString())
	if err != nil {
		return nil, err
	}

	page := &query.Page{Data: []query.Record{}}
	if err := decode(res.Data, &page.Data); err != nil {
		return nil, err
	}
	if res.Meta != nil {
		page.Pagination = *res.Meta
	}
	return page, nil
}

func (c *Client) getRecord(ctx context.Context, path string) (Record, error) {
	res, err := c.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := decode(res.Data, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (c *Client) postRecord(ctx context.Context, path string, body Record) (Record, error) {
	res, err := c.Post(ctx, path, body)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := decode(res.Data, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (c *Client) putRecord(ctx context.Context, path string, body Record) (Record, error) {
	res, err := c.Put(ctx, path, body)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := decode(res.Data, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Users

func (c *Client) GetUsers(ctx context.Context, opts ListOptions) (*query.Page, error) {
	return c.listPage(ctx, "/users", opts)
}

func (c *Client) GetUser(ctx context.Context, id int) (Record, error) {
	return c.getRecord(ctx, fmt.Sprintf("/users/%d", id))
}

func (c *Client) CreateUser(ctx context.Context, user Record) (Record, error) {
	return c.postRecord(ctx, "/users", user)
}

func (c *Client) UpdateUser(ctx context.Context, id int, changes Record) (Record, error) {
	return c.putRecord(ctx, fmt.Sprintf("/users/%d", id), changes)
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	_, err := c.Delete(ctx, fmt.Sprintf("/users/%d", id))
	return err
}

// NFC tags

func (c *Client) GetNfcTags(ctx context.Context, opts ListOptions) (*query.Page, error) {
	return c.listPage(ctx, "/nfc-tags", opts)
}

func (c *Client) GetNfcTag(ctx context.Context, id int) (Record, error) {
	return c.getRecord(ctx, fmt.Sprintf("/nfc-tags/%d", id))
}

func (c *Client) CreateNfcTag(ctx context.Context, tag Record) (Record, error) {
	return c.postRecord(ctx, "/nfc-tags", tag)
}

func (c *Client) UpdateNfcTag(ctx context.Context, id int, changes Record) (Record, error) {
	return c.putRecord(ctx, fmt.Sprintf("/nfc-tags/%d", id), changes)
}

func (c *Client) DeleteNfcTag(ctx context.Context, id int) error {
	_, err := c.Delete(ctx, fmt.Sprintf("/nfc-tags/%d", id))
	return err
}

// Stores

func (c *Client) GetStores(ctx context.Context, opts ListOptions) (*query.Page, error) {
	return c.listPage(ctx, "/stores", opts)
}

func (c *Client) GetStore(ctx context.Context, id int) (Record, error) {
	return c.getRecord(ctx, fmt.Sprintf("/stores/%d", id))
}

func (c *Client) CreateStore(ctx context.Context, store Record) (Record, error) {
	return c.postRecord(ctx, "/stores", store)
}

func (c *Client) UpdateStore(ctx context.Context, id int, changes Record) (Record, error) {
	return c.putRecord(ctx, fmt.Sprintf("/stores/%d", id), changes)
}

func (c *Client) DeleteStore(ctx context.Context, id int) error {
	_, err := c.Delete(ctx, fmt.Sprintf("/stores/%d", id))
	return err
}

// Roles and permissions

func (c *Client) GetRoles(ctx context.Context, opts ListOptions) (*query.Page, error) {
	return c.listPage(ctx, "/admin/roles", opts)
}

func (c *Client) GetRole(ctx context.Context, id int) (Record, error) {
	return c.getRecord(ctx, fmt.Sprintf("/admin/roles/%d", id))
}

func (c *Client) CreateRole(ctx context.Context, role Record) (Record, error) {
	return c.postRecord(ctx, "/admin/roles", role)
}

func (c *Client) UpdateRole(ctx context.Context, id int, changes Record) (Record, error) {
	return c.putRecord(ctx, fmt.Sprintf("/admin/roles/%d", id), changes)
}

func (c *Client) DeleteRole(ctx context.Context, id int) error {
	_, err := c.Delete(ctx, fmt.Sprintf("/admin/roles/%d", id))
	return err
}

func (c *Client) GetPermissions(ctx context.Context, opts ListOptions) (*query.Page, error) {
	return c.listPage(ctx, "/admin/permissions", opts)
}

func (c *Client) GetRolePermissions(ctx context.Context, roleID int) ([]Record, error) {
	res, err := c.Get(ctx, fmt.Sprintf("/admin/roles/%d/permissions", roleID))
	if err != nil {
		return nil, err
	}
	perms := []Record{}
	if err := decode(res.Data, &perms); err != nil {
		return nil, err
	}
	return perms, nil
}

func (c *Client) GrantPermission(ctx context.Context, roleID, permissionID int) error {
	_, err := c.Post(ctx, fmt.Sprintf("/admin/roles/%d/permissions", roleID), Record{
		"permission_id": permissionID,
		"action":        "grant",
	})
	return err
}

func (c *Client) RevokePermission(ctx context.Context, roleID, permissionID int) error {
	_, err := c.Post(ctx, fmt.Sprintf("/admin/roles/%d/permissions", roleID), Record{
		"permission_id": permissionID,
		"action":        "revoke",
	})
	return err
}

// Logs

func (c *Client) GetLogs(ctx context.Context, opts ListOptions) (*query.Page, error) {
	return c.listPage(ctx, "/admin/logs", opts)
}

func (c *Client) GetLog(ctx context.Context, id int) (Record, error) {
	return c.getRecord(ctx, fmt.Sprintf("/admin/logs/%d", id))
}

func (c *Client) DeleteLog(ctx context.Context, id int) error {
	_, err := c.Delete(ctx, fmt.Sprintf("/admin/logs/%d", id))
	return err
}

// BulkDeleteLogs removes all logs with matching ids and returns how
// many were actually deleted.
func (c *Client) BulkDeleteLogs(ctx context.Context, ids []int) (int, error) {
	payload := make([]any, len(ids))
	for i, id := range ids {
		payload[i] = id
	}

	res, err := c.Post(ctx, "/admin/logs/bulk-delete", Record{"ids": payload})
	if err != nil {
		return 0, err
	}
	var out struct {
		Deleted int `json:"deleted"`
	}
	if err := decode(res.Data, &out); err != nil {
		return 0, err
	}
	return out.Deleted, nil
}

// Settings

func (c *Client) GetSettings(ctx context.Context) (Record, error) {
	return c.getRecord(ctx, "/settings")
}

func (c *Client) UpdateSettings(ctx context.Context, settings Record) (Record, error) {
	return c.putRecord(ctx, "/settings", settings)
}

// API keys

func (c *Client) GetApiKeys(ctx context.Context, opts ListOptions) (*query.Page, error) {
	return c.listPage(ctx, "/admin/api-keys", opts)
}

// CreateApiKey returns the record including the raw key, which is never
// retrievable again.
func (c *Client) CreateApiKey(ctx context.Context, key Record) (Record, error) {
	return c.postRecord(ctx, "/admin/api-keys", key)
}

func (c *Client) RevokeApiKey(ctx context.Context, id int) error {
	_, err := c.Delete(ctx, fmt.Sprintf("/admin/api-keys/%d", id))
	return err
}

// Backups

func (c *Client) GetBackups(ctx context.Context, opts ListOptions) (*query.Page, error) {
	return c.listPage(ctx, "/admin/backups", opts)
}

func (c *Client) CreateBackup(ctx context.Context) (Record, error) {
	return c.postRecord(ctx, "/admin/backups", Record{"status": "in_progress"})
}

func (c *Client) DeleteBackup(ctx context.Context, id int) error {
	_, err := c.Delete(ctx, fmt.Sprintf("/admin/backups/%d", id))
	return err
}

// Email templates

func (c *Client) GetEmailTemplates(ctx context.Context, opts ListOptions) (*query.Page, error) {
	return c.listPage(ctx, "/admin/email-templates", opts)
}

func (c *Client) GetEmailTemplate(ctx context.Context, id int) (Record, error) {
	return c.getRecord(ctx, fmt.Sprintf("/admin/email-templates/%d", id))
}

func (c *Client) CreateEmailTemplate(ctx context.Context, tpl Record) (Record, error) {
	return c.postRecord(ctx, "/admin/email-templates", tpl)
}

func (c *Client) UpdateEmailTemplate(ctx context.Context, id int, changes Record) (Record, error) {
	return c.putRecord(ctx, fmt.Sprintf("/admin/email-templates/%d", id), changes)
}

func (c *Client) DeleteEmailTemplate(ctx context.Context, id int) error {
	_, err := c.Delete(ctx, fmt.Sprintf("/admin/email-templates/%d", id))
	return err
}

// SearchResults groups global search hits per entity, each capped at
// five records.
type SearchResults struct {
	Users   []Record `json:"users"`
	NfcTags []Record `json:"nfc_tags"`
	Stores  []Record `json:"stores"`
	Roles   []Record `json:"roles"`
	Total   int      `json:"total"`
}

func (c *Client) GlobalSearch(ctx context.Context, term string) (*SearchResults, error) {
	res, err := c.Get(ctx, "/admin/search?q="+url.QueryEscape(term))
	if err != nil {
		return nil, err
	}
	results := &SearchResults{}
	if err := decode(res.Data, results); err != nil {
		return nil, err
	}
	return results, nil
}
