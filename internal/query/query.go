// Package query holds the pure helpers the offline data layer filters,
// sorts and paginates collections with. Records are plain JSON-decoded
// maps; nothing here touches storage or the network.
package query

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type Record = map[string]any

// Filters compose with logical AND; a zero-value field means no
// constraint.
type Filters struct {
	Search   string `json:"search,omitempty"`
	Status   string `json:"status,omitempty"`
	Role     string `json:"role,omitempty"`
	Level    string `json:"level,omitempty"`
	Action   string `json:"action,omitempty"`
	DateFrom string `json:"date_from,omitempty"`
	DateTo   string `json:"date_to,omitempty"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type Page struct {
	Data       []Record   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Filter returns the records matching every supplied criterion. Search is
// a case-insensitive substring match against the string form of every
// field value; status/role/level match exactly; action matches as a
// substring; date bounds are inclusive and read "timestamp" with
// "created_at" as fallback.
func Filter(data []Record, f Filters) []Record {
	out := make([]Record, 0, len(data))
	for _, item := range data {
		if matches(item, f) {
			out = append(out, item)
		}
	}
	return out
}

func matches(item Record, f Filters) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		found := false
		for _, v := range item {
			if v == nil {
				continue
			}
			if strings.Contains(strings.ToLower(stringify(v)), term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Status != "" && stringify(item["status"]) != f.Status {
		return false
	}
	if f.Role != "" && stringify(item["role"]) != f.Role {
		return false
	}
	if f.Level != "" && stringify(item["level"]) != f.Level {
		return false
	}
	if f.Action != "" && !strings.Contains(stringify(item["action"]), f.Action) {
		return false
	}

	// An unparseable bound excludes everything rather than silently
	// dropping the constraint.
	if f.DateFrom != "" {
		from, err := parseDate(f.DateFrom)
		if err != nil {
			return false
		}
		ts, ok := recordTime(item)
		if !ok || ts.Before(from) {
			return false
		}
	}
	if f.DateTo != "" {
		to, err := parseDate(f.DateTo)
		if err != nil {
			return false
		}
		ts, ok := recordTime(item)
		if !ok || ts.After(to) {
			return false
		}
	}

	return true
}

// Sort orders a copy of data by the given field. Missing and nil values
// sort as empty strings, string comparison is case-insensitive, and any
// order other than "asc" is treated as descending.
func Sort(data []Record, field, order string) []Record {
	if field == "" {
		field = "created_at"
	}

	out := make([]Record, len(data))
	copy(out, data)

	asc := strings.ToLower(order) == "asc"
	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareValues(out[i][field], out[j][field])
		if asc {
			return cmp < 0
		}
		return cmp > 0
	})
	return out
}

func compareValues(a, b any) int {
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum && bNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}

	as := strings.ToLower(stringify(a))
	bs := strings.ToLower(stringify(b))
	return strings.Compare(as, bs)
}

// Paginate slices a 1-indexed page out of data. A page past the end
// yields an empty slice with total still reflecting the full input.
func Paginate(data []Record, page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	total := len(data)
	pages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Data: data[start:end],
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}
}

// NextID returns max(id)+1 across the collection, or 1 when empty. Safe
// only under a single writer.
func NextID(data []Record) int {
	maxID := 0
	for _, item := range data {
		if f, ok := toFloat(item["id"]); ok && int(f) > maxID {
			maxID = int(f)
		}
	}
	return maxID + 1
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// JSON numbers decode as float64; render integers without the
		// trailing ".0" so substring search behaves like the UI expects.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", t)
	}
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	}
	return 0, false
}

func parseDate(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02", s)
}

func recordTime(item Record) (time.Time, bool) {
	for _, key := range []string{"timestamp", "created_at"} {
		if raw, ok := item[key]; ok {
			if ts, err := parseDate(stringify(raw)); err == nil {
				return ts, true
			}
		}
	}
	return time.Time{}, false
}
