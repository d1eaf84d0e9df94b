package mpapi

import (
	"net/url"
	"strconv"
)

// QueryParams expresses the common list options accepted by collection
// endpoints. They apply to the first request of an iteration only; follow-up
// requests use the server's next link verbatim, which already encodes
// continuation state.
type QueryParams struct {
	// Page selects an explicit page of results. Zero means the API default.
	Page int
	// Query is the full-text query string sent as `q` to search endpoints.
	Query string
	// Filters holds resource-specific filter parameters, e.g.
	// supplier_id=123 or status=published.
	Filters map[string][]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page

	return q
}

// WithQuery sets the full-text query string.
func (q *QueryParams) WithQuery(query string) *QueryParams {
	q.Query = query

	return q
}

// WithFilter appends a filter value.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// ToValues converts the params to url.Values for the HTTP layer.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	if q.Query != "" {
		values.Set("q", q.Query)
	}

	for key, filterValues := range q.Filters {
		for _, value := range filterValues {
			values.Add(key, value)
		}
	}

	return values
}
