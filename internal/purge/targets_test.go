package purge_test

import (
	"cfpurge/internal/purge"
	"reflect"
	"testing"
)

func TestParseTargets(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  []string
	}{
		{
			name: "absent input yields empty list",
			in:   "",
			out:  []string{},
		},
		{
			name: "single target",
			in:   "www.example.com",
			out:  []string{"www.example.com"},
		},
		{
			name: "trims whitespace around each element",
			in:   " a , b ,c ",
			out:  []string{"a", "b", "c"},
		},
		{
			name: "keeps blank elements for the validator to judge",
			in:   "a,,b",
			out:  []string{"a", "", "b"},
		},
		{
			name: "preserves input order",
			in:   "c,a,b",
			out:  []string{"c", "a", "b"},
		},
		{
			name: "keeps duplicates",
			in:   "a,a",
			out:  []string{"a", "a"},
		},
	}

	for _, tc := range cases {
		got := purge.ParseTargets(tc.in)
		if !reflect.DeepEqual(got, tc.out) {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.out)
		}
	}
}
