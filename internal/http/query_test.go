package httpserver

import (
	"net/url"
	"testing"

	"github.com/movielog/movielog/internal/repository"
)

func TestParseSortMultiKey(t *testing.T) {
	keys := parseSort("id:desc,name")
	if len(keys) != 2 {
		t.Fatalf("key count = %d, want 2", len(keys))
	}
	if keys[0].Column != repository.SortByID || !keys[0].Descending {
		t.Fatalf("first key = %+v, want id desc", keys[0])
	}
	if keys[1].Column != repository.SortByName || keys[1].Descending {
		t.Fatalf("second key = %+v, want name asc", keys[1])
	}
}

func TestParseSortUnknownColumnsSkipped(t *testing.T) {
	if keys := parseSort("bogus:asc"); len(keys) != 0 {
		t.Fatalf("parseSort(bogus) = %+v, want empty", keys)
	}
	// A malicious column name must be dropped, not propagated.
	if keys := parseSort("name;DROP TABLE movies:asc,createdAt"); len(keys) != 1 || keys[0].Column != repository.SortByCreatedAt {
		t.Fatalf("injection attempt not filtered: %+v", keys)
	}
}

func TestParseSortDirectionDefaults(t *testing.T) {
	tests := []struct {
		raw        string
		descending bool
	}{
		{"id", false},
		{"id:asc", false},
		{"id:desc", true},
		{"id:DESC", false}, // direction tokens are case-sensitive, unknown defaults to asc
		{"id:sideways", false},
	}
	for _, tt := range tests {
		keys := parseSort(tt.raw)
		if len(keys) != 1 {
			t.Fatalf("parseSort(%q) key count = %d, want 1", tt.raw, len(keys))
		}
		if keys[0].Descending != tt.descending {
			t.Fatalf("parseSort(%q).Descending = %v, want %v", tt.raw, keys[0].Descending, tt.descending)
		}
	}
}

func TestParseSortEmpty(t *testing.T) {
	if keys := parseSort(""); keys != nil {
		t.Fatalf("parseSort(\"\") = %+v, want nil", keys)
	}
}

func TestParseViewed(t *testing.T) {
	if v := parseViewed("true"); v == nil || !*v {
		t.Fatalf("parseViewed(true) = %v, want true", v)
	}
	if v := parseViewed("false"); v == nil || *v {
		t.Fatalf("parseViewed(false) = %v, want false", v)
	}
	for _, raw := range []string{"", "yes", "TRUE", "1", "maybe"} {
		if v := parseViewed(raw); v != nil {
			t.Fatalf("parseViewed(%q) = %v, want nil (no filter)", raw, *v)
		}
	}
}

func TestBuildListOptions(t *testing.T) {
	values, _ := url.ParseQuery("sort=createdAt:desc,viewedAt&viewed=true")
	opts := buildListOptions(values)

	if len(opts.Sort) != 2 {
		t.Fatalf("sort key count = %d, want 2", len(opts.Sort))
	}
	if opts.Sort[0].Column != repository.SortByCreatedAt || !opts.Sort[0].Descending {
		t.Fatalf("first key = %+v, want createdAt desc", opts.Sort[0])
	}
	if opts.Viewed == nil || !*opts.Viewed {
		t.Fatalf("viewed filter = %v, want true", opts.Viewed)
	}
}
