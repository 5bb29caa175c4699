package httpserver

import (
	"net/url"
	"strings"

	"github.com/movielog/movielog/internal/repository"
)

// sortColumns maps client-facing sort names onto the repository's enumerated
// columns. It is the only path from query input to ORDER BY; anything not in
// this table never reaches SQL.
var sortColumns = map[string]repository.MovieSortColumn{
	"id":        repository.SortByID,
	"name":      repository.SortByName,
	"createdAt": repository.SortByCreatedAt,
	"viewedAt":  repository.SortByViewedAt,
}

// buildListOptions turns the sort/viewed query parameters into repository
// list options. Malformed input never fails the request: unknown sort
// columns are skipped and an unparseable viewed value applies no filter.
func buildListOptions(query url.Values) repository.MovieListOptions {
	return repository.MovieListOptions{
		Sort:   parseSort(query.Get("sort")),
		Viewed: parseViewed(query.Get("viewed")),
	}
}

// parseSort parses a comma-separated list of column[:dir] expressions into
// ordered sort keys. Direction defaults to ascending; only "desc" flips it.
func parseSort(raw string) []repository.MovieSort {
	if raw == "" {
		return nil
	}

	keys := make([]repository.MovieSort, 0, 4)
	for _, expr := range strings.Split(raw, ",") {
		name, dir, _ := strings.Cut(expr, ":")
		column, ok := sortColumns[name]
		if !ok {
			continue
		}
		keys = append(keys, repository.MovieSort{
			Column:     column,
			Descending: dir == "desc",
		})
	}
	return keys
}

func parseViewed(raw string) *bool {
	switch raw {
	case "true":
		viewed := true
		return &viewed
	case "false":
		viewed := false
		return &viewed
	default:
		return nil
	}
}
