package pagination

import "testing"

func TestGetMeta(t *testing.T) {
	cases := []struct {
		name     string
		params   *Params
		total    int64
		wantMeta Meta
	}{
		{
			name:     "first of three pages",
			params:   &Params{Page: 1, Limit: 10},
			total:    25,
			wantMeta: Meta{Page: 1, Limit: 10, Total: 25, TotalPages: 3, HasNext: true, HasPrev: false},
		},
		{
			name:     "middle page",
			params:   &Params{Page: 2, Limit: 10},
			total:    25,
			wantMeta: Meta{Page: 2, Limit: 10, Total: 25, TotalPages: 3, HasNext: true, HasPrev: true},
		},
		{
			name:     "last page",
			params:   &Params{Page: 3, Limit: 10},
			total:    25,
			wantMeta: Meta{Page: 3, Limit: 10, Total: 25, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name:     "empty result",
			params:   &Params{Page: 1, Limit: 10},
			total:    0,
			wantMeta: Meta{Page: 1, Limit: 10, Total: 0, TotalPages: 0, HasNext: false, HasPrev: false},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := GetMeta(tc.params, tc.total)
			if *got != tc.wantMeta {
				t.Errorf("GetMeta() = %+v, want %+v", *got, tc.wantMeta)
			}
		})
	}
}
