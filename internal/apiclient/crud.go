package apiclient

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/biz365/admin-api/internal/mockdata"
	"github.com/biz365/admin-api/internal/query"
	"github.com/biz365/admin-api/internal/schema"
	"github.com/biz365/admin-api/internal/utils"
)

const globalSearchCap = 5

func (c *Client) mockList(key string) mockHandler {
	return func(_ context.Context, _ map[string]string, values url.Values, _ Record) (*Result, error) {
		records, err := c.store.Get(key)
		if err != nil {
			return nil, err
		}

		records = query.Filter(records, filtersFrom(values))
		records = query.Sort(records, values.Get("sort_by"), values.Get("sort_order"))

		page, _ := strconv.Atoi(values.Get("page"))
		limit, _ := strconv.Atoi(values.Get("limit"))
		result := query.Paginate(records, page, limit)

		return makeResult(result.Data, &result.Pagination)
	}
}

func (c *Client) mockGetOne(key string) mockHandler {
	return func(_ context.Context, params map[string]string, _ url.Values, _ Record) (*Result, error) {
		records, err := c.store.Get(key)
		if err != nil {
			return nil, err
		}
		rec, _, err := findByID(records, params["id"], key)
		if err != nil {
			return nil, err
		}
		return makeResult(rec, nil)
	}
}

func (c *Client) mockCreate(key, entity string) mockHandler {
	return func(_ context.Context, _ map[string]string, _ url.Values, body Record) (*Result, error) {
		if body == nil {
			return nil, badRequestError("request body is required")
		}
		if problems := schema.Validate(entity, body); len(problems) > 0 {
			return nil, validationError(problems)
		}

		records, err := c.store.Get(key)
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC().Format(time.RFC3339)
		rec := Record{}
		for k, v := range body {
			rec[k] = v
		}
		rec["id"] = query.NextID(records)
		rec["created_at"] = now
		rec["updated_at"] = now

		if err := c.store.Set(key, append(records, rec)); err != nil {
			return nil, err
		}
		return makeResult(rec, nil)
	}
}

// mockUpdate merges the body into the stored record. id and timestamps
// are never overwritten from the outside; updated_at always refreshes.
func (c *Client) mockUpdate(key, entity string) mockHandler {
	return func(_ context.Context, params map[string]string, _ url.Values, body Record) (*Result, error) {
		if body == nil {
			return nil, badRequestError("request body is required")
		}

		records, err := c.store.Get(key)
		if err != nil {
			return nil, err
		}
		rec, idx, err := findByID(records, params["id"], key)
		if err != nil {
			return nil, err
		}

		merged := Record{}
		for k, v := range rec {
			merged[k] = v
		}
		for k, v := range body {
			if k == "id" || k == "created_at" || k == "updated_at" {
				continue
			}
			merged[k] = v
		}

		if problems := schema.Validate(entity, merged); len(problems) > 0 {
			return nil, validationError(problems)
		}

		merged["updated_at"] = time.Now().UTC().Format(time.RFC3339)
		records[idx] = merged

		if err := c.store.Set(key, records); err != nil {
			return nil, err
		}
		return makeResult(merged, nil)
	}
}

func (c *Client) mockDelete(key string) mockHandler {
	return func(_ context.Context, params map[string]string, _ url.Values, _ Record) (*Result, error) {
		records, err := c.store.Get(key)
		if err != nil {
			return nil, err
		}
		_, idx, err := findByID(records, params["id"], key)
		if err != nil {
			return nil, err
		}

		records = append(records[:idx], records[idx+1:]...)
		if err := c.store.Set(key, records); err != nil {
			return nil, err
		}
		return makeResult(Record{"deleted": true}, nil)
	}
}

func (c *Client) mockBulkDeleteLogs(_ context.Context, _ map[string]string, _ url.Values, body Record) (*Result, error) {
	ids := idSet(body["ids"])
	if len(ids) == 0 {
		return nil, badRequestError("ids must be a non-empty array")
	}

	records, err := c.store.Get(mockdata.KeyLogs)
	if err != nil {
		return nil, err
	}

	kept := make([]Record, 0, len(records))
	deleted := 0
	for _, rec := range records {
		if ids[recordID(rec)] {
			deleted++
			continue
		}
		kept = append(kept, rec)
	}

	if err := c.store.Set(mockdata.KeyLogs, kept); err != nil {
		return nil, err
	}
	return makeResult(Record{"deleted": deleted}, nil)
}

func (c *Client) mockGetRolePermissions(_ context.Context, params map[string]string, _ url.Values, _ Record) (*Result, error) {
	if err := c.requireRecord(mockdata.KeyRoles, params["id"], "role"); err != nil {
		return nil, err
	}

	grants, err := c.roleGrants()
	if err != nil {
		return nil, err
	}
	granted := map[int]bool{}
	for _, id := range grants[params["id"]] {
		granted[id] = true
	}

	perms, err := c.store.Get(mockdata.KeyPermissions)
	if err != nil {
		return nil, err
	}

	out := []Record{}
	for _, perm := range perms {
		if granted[recordID(perm)] {
			out = append(out, perm)
		}
	}
	return makeResult(out, nil)
}

// mockUpdateRolePermissions grants or revokes a single permission.
// Granting an already granted permission and revoking an absent one are
// both no-ops.
func (c *Client) mockUpdateRolePermissions(_ context.Context, params map[string]string, _ url.Values, body Record) (*Result, error) {
	if body == nil {
		return nil, badRequestError("request body is required")
	}

	permID := recordIDValue(body["permission_id"])
	if permID == 0 {
		return nil, badRequestError("permission_id is required")
	}
	action, _ := body["action"].(string)
	if action != "grant" && action != "revoke" {
		return nil, badRequestError("action must be grant or revoke")
	}

	if err := c.requireRecord(mockdata.KeyRoles, params["id"], "role"); err != nil {
		return nil, err
	}
	if err := c.requireRecord(mockdata.KeyPermissions, strconv.Itoa(permID), "permission"); err != nil {
		return nil, err
	}

	grants, err := c.roleGrants()
	if err != nil {
		return nil, err
	}

	current := grants[params["id"]]
	next := make([]int, 0, len(current)+1)
	present := false
	for _, id := range current {
		if id == permID {
			present = true
			if action == "revoke" {
				continue
			}
		}
		next = append(next, id)
	}
	if action == "grant" && !present {
		next = append(next, permID)
	}
	grants[params["id"]] = next

	if err := c.store.SetValue(mockdata.KeyRolePermissions, grants); err != nil {
		return nil, err
	}
	return makeResult(Record{"role_id": params["id"], "permission_ids": next}, nil)
}

func (c *Client) mockGlobalSearch(_ context.Context, _ map[string]string, values url.Values, _ Record) (*Result, error) {
	term := values.Get("q")
	if term == "" {
		term = values.Get("search")
	}
	if term == "" {
		return nil, badRequestError("search term is required")
	}

	out := Record{}
	total := 0
	for _, key := range []string{mockdata.KeyUsers, mockdata.KeyNfcTags, mockdata.KeyStores, mockdata.KeyRoles} {
		records, err := c.store.Get(key)
		if err != nil {
			return nil, err
		}
		hits := query.Filter(records, query.Filters{Search: term})
		if len(hits) > globalSearchCap {
			hits = hits[:globalSearchCap]
		}
		out[key] = hits
		total += len(hits)
	}
	out["total"] = total

	return makeResult(out, nil)
}

func (c *Client) mockGetSettings(_ context.Context, _ map[string]string, _ url.Values, _ Record) (*Result, error) {
	var settings Record
	ok, err := c.store.GetValue(mockdata.KeySettings, &settings)
	if err != nil {
		return nil, err
	}
	if !ok {
		settings = Record{}
	}
	return makeResult(settings, nil)
}

// Settings are replaced wholesale, never patched per key.
func (c *Client) mockReplaceSettings(_ context.Context, _ map[string]string, _ url.Values, body Record) (*Result, error) {
	if body == nil {
		return nil, badRequestError("request body is required")
	}
	if err := c.store.SetValue(mockdata.KeySettings, body); err != nil {
		return nil, err
	}
	return makeResult(body, nil)
}

func (c *Client) roleGrants() (map[string][]int, error) {
	grants := map[string][]int{}
	if _, err := c.store.GetValue(mockdata.KeyRolePermissions, &grants); err != nil {
		return nil, err
	}
	return grants, nil
}

func (c *Client) requireRecord(key, id, resource string) error {
	records, err := c.store.Get(key)
	if err != nil {
		return err
	}
	_, _, err = findByID(records, id, resource)
	return err
}

func findByID(records []Record, rawID, resource string) (Record, int, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, 0, badRequestError("invalid id: " + rawID)
	}
	for i, rec := range records {
		if recordID(rec) == id {
			return rec, i, nil
		}
	}
	return nil, 0, notFoundError(resource)
}

func recordID(rec Record) int {
	return recordIDValue(rec["id"])
}

func recordIDValue(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case int64:
		return int(t)
	}
	return 0
}

// mockCreateApiKey mints the key server-side; the raw key appears in
// the response once and only its hash is stored.
func (c *Client) mockCreateApiKey(_ context.Context, _ map[string]string, _ url.Values, body Record) (*Result, error) {
	if body == nil {
		return nil, badRequestError("request body is required")
	}
	if problems := schema.Validate("api_keys", body); len(problems) > 0 {
		return nil, validationError(problems)
	}

	records, err := c.store.Get(mockdata.KeyApiKeys)
	if err != nil {
		return nil, err
	}

	raw, prefix, hash := utils.GenerateApiKey()
	now := time.Now().UTC().Format(time.RFC3339)
	rec := Record{
		"id":           query.NextID(records),
		"name":         body["name"],
		"prefix":       prefix,
		"key_hash":     hash,
		"scopes":       body["scopes"],
		"status":       "active",
		"last_used_at": nil,
		"created_at":   now,
		"updated_at":   now,
	}

	if err := c.store.Set(mockdata.KeyApiKeys, append(records, rec)); err != nil {
		return nil, err
	}

	shown := Record{}
	for k, v := range rec {
		if k == "key_hash" {
			continue
		}
		shown[k] = v
	}
	shown["key"] = raw
	return makeResult(shown, nil)
}

func idSet(v any) map[int]bool {
	set := map[int]bool{}
	items, ok := v.([]any)
	if !ok {
		return set
	}
	for _, item := range items {
		if id := recordIDValue(item); id != 0 {
			set[id] = true
		}
	}
	return set
}
