package mailersend

import "strconv"

// ListOptions carries the pagination parameters shared by every list
// operation. Zero values are omitted so the API applies its defaults
// (page 1, limit 25).
type ListOptions struct {
	Page  int `json:"page,omitempty" validate:"omitempty,gte=1"`
	Limit int `json:"limit,omitempty" validate:"omitempty,gte=10,lte=100"`
}

func (o ListOptions) toQuery(params map[string]string) map[string]string {
	if params == nil {
		params = make(map[string]string)
	}

	if o.Page > 0 {
		params["page"] = strconv.Itoa(o.Page)
	}

	if o.Limit > 0 {
		params["limit"] = strconv.Itoa(o.Limit)
	}

	return params
}

// ListMeta mirrors the pagination block returned by list endpoints,
// usable with APIResponse.Unmarshal.
type ListMeta struct {
	CurrentPage int    `json:"current_page"`
	From        int    `json:"from"`
	LastPage    int    `json:"last_page"`
	Path        string `json:"path"`
	PerPage     int    `json:"per_page"`
	To          int    `json:"to"`
	Total       int    `json:"total"`
}

// HasMorePages reports whether pages remain past the current one.
func (m ListMeta) HasMorePages() bool {
	return m.CurrentPage < m.LastPage
}
