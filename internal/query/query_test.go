package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleUsers() []Record {
	return []Record{
		{"id": float64(1), "email": "john.doe@example.com", "first_name": "John", "role": "customer", "status": "active", "created_at": "2024-01-15T10:30:00Z"},
		{"id": float64(2), "email": "jane.smith@example.com", "first_name": "Jane", "role": "store_owner", "status": "active", "created_at": "2024-01-14T09:15:00Z"},
		{"id": float64(3), "email": "admin@biz365.ai", "first_name": "Admin", "role": "admin", "status": "active", "created_at": "2024-01-10T08:00:00Z"},
		{"id": float64(4), "email": "bob.wilson@example.com", "first_name": "Bob", "role": "customer", "status": "suspended", "created_at": "2024-01-12T11:20:00Z"},
	}
}

func TestFilter(t *testing.T) {
	data := sampleUsers()

	t.Run("no filters returns everything", func(t *testing.T) {
		out := Filter(data, Filters{})
		assert.Len(t, out, len(data))
	})

	t.Run("search matches any field case-insensitively", func(t *testing.T) {
		out := Filter(data, Filters{Search: "JOHN"})
		assert.Len(t, out, 1)
		assert.Equal(t, "john.doe@example.com", out[0]["email"])
	})

	t.Run("search matches numeric fields by string form", func(t *testing.T) {
		tags := []Record{
			{"id": float64(1), "title": "Welcome Page", "hit_count": float64(1247)},
			{"id": float64(2), "title": "Menu Page", "hit_count": float64(892)},
		}
		out := Filter(tags, Filters{Search: "1247"})
		assert.Len(t, out, 1)
		assert.Equal(t, "Welcome Page", out[0]["title"])
	})

	t.Run("filters compose with AND", func(t *testing.T) {
		out := Filter(data, Filters{Role: "customer", Status: "active"})
		assert.Len(t, out, 1)
		assert.Equal(t, float64(1), out[0]["id"])
	})

	t.Run("output is a subset satisfying every predicate", func(t *testing.T) {
		out := Filter(data, Filters{Status: "active"})
		assert.LessOrEqual(t, len(out), len(data))
		for _, rec := range out {
			assert.Equal(t, "active", rec["status"])
		}
	})

	t.Run("date range is inclusive", func(t *testing.T) {
		out := Filter(data, Filters{DateFrom: "2024-01-12T11:20:00Z", DateTo: "2024-01-14T09:15:00Z"})
		assert.Len(t, out, 2)
	})

	t.Run("unparseable date bound matches nothing", func(t *testing.T) {
		assert.Empty(t, Filter(data, Filters{DateFrom: "not-a-date"}))
		assert.Empty(t, Filter(data, Filters{DateTo: "2024-13-99"}))
	})

	t.Run("no match yields empty, not nil panic", func(t *testing.T) {
		out := Filter(data, Filters{Search: "does-not-exist"})
		assert.Empty(t, out)
	})
}

func TestFilterLogs(t *testing.T) {
	logs := []Record{
		{"id": float64(1), "level": "info", "action": "user.login", "timestamp": "2024-01-20T14:30:00Z"},
		{"id": float64(2), "level": "warning", "action": "user.failed_login", "timestamp": "2024-01-20T14:25:00Z"},
		{"id": float64(3), "level": "error", "action": "system.error", "timestamp": "2024-01-20T14:15:00Z"},
	}

	t.Run("level matches exactly", func(t *testing.T) {
		out := Filter(logs, Filters{Level: "error"})
		assert.Len(t, out, 1)
	})

	t.Run("action matches as substring", func(t *testing.T) {
		out := Filter(logs, Filters{Action: "login"})
		assert.Len(t, out, 2)
	})
}

func TestSort(t *testing.T) {
	data := sampleUsers()

	t.Run("ascending by string field is case-insensitive", func(t *testing.T) {
		out := Sort(data, "first_name", "asc")
		assert.Equal(t, "Admin", out[0]["first_name"])
		assert.Equal(t, "John", out[3]["first_name"])
	})

	t.Run("default order is descending", func(t *testing.T) {
		out := Sort(data, "created_at", "")
		assert.Equal(t, "2024-01-15T10:30:00Z", out[0]["created_at"])
	})

	t.Run("numeric fields compare numerically", func(t *testing.T) {
		out := Sort(data, "id", "asc")
		assert.Equal(t, float64(1), out[0]["id"])
		assert.Equal(t, float64(4), out[3]["id"])
	})

	t.Run("missing values sort as empty strings", func(t *testing.T) {
		withNil := append([]Record{{"id": float64(9)}}, data...)
		out := Sort(withNil, "first_name", "asc")
		assert.Equal(t, float64(9), out[0]["id"])
	})

	t.Run("re-sorting is idempotent", func(t *testing.T) {
		once := Sort(data, "email", "asc")
		twice := Sort(once, "email", "asc")
		assert.Equal(t, once, twice)
	})

	t.Run("reversing order reverses a duplicate-free result", func(t *testing.T) {
		ascOrder := Sort(data, "email", "asc")
		descOrder := Sort(data, "email", "desc")
		for i := range ascOrder {
			assert.Equal(t, ascOrder[i]["id"], descOrder[len(descOrder)-1-i]["id"])
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		before := data[0]["id"]
		Sort(data, "id", "desc")
		assert.Equal(t, before, data[0]["id"])
	})
}

func TestPaginate(t *testing.T) {
	data := sampleUsers()

	t.Run("slices by 1-indexed page", func(t *testing.T) {
		page := Paginate(data, 1, 2)
		assert.Len(t, page.Data, 2)
		assert.Equal(t, 1, page.Pagination.Page)
		assert.Equal(t, 4, page.Pagination.Total)
		assert.Equal(t, 2, page.Pagination.Pages)
	})

	t.Run("pages equals ceil(total/limit)", func(t *testing.T) {
		page := Paginate(data, 1, 3)
		assert.Equal(t, 2, page.Pagination.Pages)
	})

	t.Run("page past the end returns empty data with full total", func(t *testing.T) {
		page := Paginate(data, 99, 2)
		assert.Empty(t, page.Data)
		assert.Equal(t, 4, page.Pagination.Total)
	})

	t.Run("result never exceeds limit", func(t *testing.T) {
		page := Paginate(data, 2, 3)
		assert.LessOrEqual(t, len(page.Data), 3)
	})

	t.Run("defaults applied for zero page and limit", func(t *testing.T) {
		page := Paginate(data, 0, 0)
		assert.Equal(t, 1, page.Pagination.Page)
		assert.Equal(t, 20, page.Pagination.Limit)
	})
}

func TestNextID(t *testing.T) {
	t.Run("max plus one", func(t *testing.T) {
		data := []Record{{"id": float64(3)}, {"id": float64(7)}, {"id": float64(2)}}
		assert.Equal(t, 8, NextID(data))
	})

	t.Run("empty collection starts at 1", func(t *testing.T) {
		assert.Equal(t, 1, NextID(nil))
	})
}
