package utils

import (
	"net/http"
	"strconv"
)

type QueryOptions struct {
	Skip     int
	Limit    int
	Category string
	Search   string
}

func ParseQueryOptions(r *http.Request) QueryOptions {
	q := r.URL.Query()

	skip, _ := strconv.Atoi(q.Get("skip"))
	if skip < 0 {
		skip = 0
	}

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 100
	}

	return QueryOptions{
		Skip:     skip,
		Limit:    limit,
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}
}
