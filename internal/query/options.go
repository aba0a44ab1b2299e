package query

import (
	"net/url"
	"strconv"
)

// Options are list request options. Filters are forwarded verbatim,
// every value of a key becomes a repeated parameter.
type Options struct {
	Page    *int
	Size    *int
	Sort    []string
	Filters map[string][]string
}

// Values encodes options as query parameters. Nil options encode to empty values.
func (o *Options) Values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}

	if o.Page != nil {
		v.Set("page", strconv.Itoa(*o.Page))
	}
	if o.Size != nil {
		v.Set("size", strconv.Itoa(*o.Size))
	}
	for _, s := range o.Sort {
		v.Add("sort", s)
	}
	for key, values := range o.Filters {
		for _, val := range values {
			v.Add(key, val)
		}
	}

	return v
}

// Filter adds filter values and returns options for chaining
func (o *Options) Filter(key string, values ...string) *Options {
	if o.Filters == nil {
		o.Filters = make(map[string][]string)
	}
	o.Filters[key] = append(o.Filters[key], values...)
	return o
}
