package httpserver

import (
	"testing"

	"github.com/movielog/movielog/internal/repository"
)

func FuzzParseSort(f *testing.F) {
	seeds := []string{
		"id:desc,name",
		"bogus:asc",
		"createdAt:desc,viewedAt:desc,id",
		":::,,,",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		// Whatever the input, parsing must not panic and must only emit
		// enumerated columns.
		for _, key := range parseSort(raw) {
			switch key.Column {
			case repository.SortByID, repository.SortByName, repository.SortByCreatedAt, repository.SortByViewedAt:
			default:
				t.Fatalf("parseSort emitted unknown column %v", key.Column)
			}
		}
	})
}
