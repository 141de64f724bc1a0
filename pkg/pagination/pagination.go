package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultSize = 10
	MaxSize     = 100
)

// Pageable carries the caller-specified slice of a result set. Page numbers
// are zero-based.
type Pageable struct {
	Page  int
	Size  int
	Order string
}

func (p Pageable) Offset() int {
	return p.Page * p.Size
}

func (p Pageable) Limit() int {
	return p.Size
}

// TotalPages returns how many pages of this size a result set of total rows
// spans.
func (p Pageable) TotalPages(total int64) int {
	if total == 0 {
		return 0
	}
	pages := int(total) / p.Size
	if int(total)%p.Size != 0 {
		pages++
	}
	return pages
}

// FromQuery parses page, size and sort query parameters. The sort parameter
// has the form "field" or "field,desc"; field names are resolved against the
// sortable map (query name -> column name) so arbitrary input never reaches
// the ORDER BY clause. Unknown or missing sort fields fall back to
// defaultOrder.
func FromQuery(q url.Values, sortable map[string]string, defaultOrder string) Pageable {
	p := Pageable{Page: 0, Size: DefaultSize, Order: defaultOrder}

	if v := q.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page >= 0 {
			p.Page = page
		}
	}

	if v := q.Get("size"); v != "" {
		if size, err := strconv.Atoi(v); err == nil && size >= 1 {
			if size > MaxSize {
				size = MaxSize
			}
			p.Size = size
		}
	}

	if v := q.Get("sort"); v != "" {
		field := v
		dir := "ASC"
		if idx := strings.IndexByte(v, ','); idx >= 0 {
			field = v[:idx]
			if strings.EqualFold(v[idx+1:], "desc") {
				dir = "DESC"
			}
		}
		if column, ok := sortable[field]; ok {
			p.Order = column + " " + dir
		}
	}

	return p
}
