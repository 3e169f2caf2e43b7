package model

// ListQuery is the whole filter/pagination state of the order list, passed
// around as one value so loading a page is a pure function of the query.
type ListQuery struct {
	Page   int          `json:"page"`
	Size   int          `json:"size"`
	Status *OrderStatus `json:"status,omitempty"`
	Search string       `json:"search,omitempty"`
}

// WithFilters returns a copy with new filters and pagination reset to the
// first page. Changing a filter always restarts from page 1.
func (q ListQuery) WithFilters(status *OrderStatus, search string) ListQuery {
	q.Page = 1
	q.Status = status
	q.Search = search
	return q
}

// OrderPage is one page of the order collection as reported by the server.
type OrderPage struct {
	Items      []Order `json:"items"`
	Total      int64   `json:"total"`
	TotalPages int     `json:"totalPages"`
}
