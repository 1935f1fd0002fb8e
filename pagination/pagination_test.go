package pagination_test

import (
	"encoding/json"
	"testing"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/pagination"
)

func TestNormalizeBareArray(t *testing.T) {
	page := pagination.Normalize(json.RawMessage(`[1,2,3]`), 10, pagination.ZeroIndexed)

	if len(page.Content) != 3 {
		t.Fatalf("want 3 elements, got %d", len(page.Content))
	}
	if page.CurrentPage != 0 || page.TotalPages != 1 || page.TotalElements != 3 {
		t.Fatalf("unexpected meta: %+v", page)
	}
}

func TestNormalizeOneIndexedEnvelope(t *testing.T) {
	raw := json.RawMessage(`{"content":[1,2,3],"totalItems":25,"currentPage":1}`)
	page := pagination.Normalize(raw, 10, pagination.OneIndexed)

	if page.CurrentPage != 0 {
		t.Fatalf("want currentPage 0 after shifting, got %d", page.CurrentPage)
	}
	if page.TotalElements != 25 {
		t.Fatalf("want totalElements 25, got %d", page.TotalElements)
	}
	if page.TotalPages != 3 {
		t.Fatalf("want ceil(25/10)=3 total pages, got %d", page.TotalPages)
	}
}

func TestNormalizeZeroIndexedEnvelope(t *testing.T) {
	raw := json.RawMessage(`{"content":[1],"totalElements":11,"totalPages":2,"currentPage":1}`)
	page := pagination.Normalize(raw, 10, pagination.ZeroIndexed)

	if page.CurrentPage != 1 {
		t.Fatalf("zero-indexed page must not shift, got %d", page.CurrentPage)
	}
	if page.TotalPages != 2 {
		t.Fatalf("explicit totalPages must win, got %d", page.TotalPages)
	}
}

func TestNormalizeTotalFieldPrecedence(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"totalElements first", `{"content":[],"totalElements":5,"totalItems":7,"total":9}`, 5},
		{"totalItems second", `{"content":[],"totalItems":7,"total":9}`, 7},
		{"total last", `{"content":[],"total":9}`, 9},
		{"all absent", `{"content":[]}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page := pagination.Normalize(json.RawMessage(tc.raw), 10, pagination.ZeroIndexed)
			if page.TotalElements != tc.want {
				t.Fatalf("want %d, got %d", tc.want, page.TotalElements)
			}
		})
	}
}

func TestNormalizeMalformedDegradesToEmpty(t *testing.T) {
	for _, raw := range []string{``, `not json`, `42`, `"str"`, `{"content":"oops"}`} {
		page := pagination.Normalize(json.RawMessage(raw), 10, pagination.ZeroIndexed)
		if len(page.Content) != 0 || page.TotalElements != 0 || page.TotalPages != 0 {
			t.Fatalf("malformed %q must degrade to empty page, got %+v", raw, page)
		}
	}
}

func TestNormalizeNegativePageClamped(t *testing.T) {
	// a 1-indexed endpoint reporting page 0 would normalize to -1
	raw := json.RawMessage(`{"content":[],"totalItems":0,"currentPage":0}`)
	page := pagination.Normalize(raw, 10, pagination.OneIndexed)
	if page.CurrentPage != 0 {
		t.Fatalf("want clamp at 0, got %d", page.CurrentPage)
	}
}

func TestPageRequestExternal(t *testing.T) {
	req := pagination.PageRequest{Index0: 2, Size: 20}

	if got := req.External(pagination.ZeroIndexed); got != 2 {
		t.Fatalf("want 2, got %d", got)
	}
	if got := req.External(pagination.OneIndexed); got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
	if got := req.Offset(); got != 40 {
		t.Fatalf("want offset 40, got %d", got)
	}
}

func TestDecodeSkipsBadElements(t *testing.T) {
	type item struct {
		SKU string `json:"sku"`
	}

	raw := json.RawMessage(`[{"sku":"A"},"garbage",{"sku":"B"}]`)
	page := pagination.Normalize(raw, 10, pagination.ZeroIndexed)

	items := pagination.Decode[item](page)
	if len(items) != 2 || items[0].SKU != "A" || items[1].SKU != "B" {
		t.Fatalf("unexpected decode result: %+v", items)
	}
}
