package model

import "testing"

func TestPreview(t *testing.T) {
	cases := []struct {
		name   string
		videos int
		want   int
	}{
		{"empty", 0, 0},
		{"under limit", 2, 2},
		{"at limit", 3, 3},
		{"over limit", 7, PreviewVideoCount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := AggregatedMonth{Videos: make([]Video, tc.videos)}
			if got := len(m.Preview()); got != tc.want {
				t.Errorf("Preview() returned %d videos, want %d", got, tc.want)
			}
		})
	}
}

func TestPreviewKeepsOrder(t *testing.T) {
	m := AggregatedMonth{Videos: []Video{
		{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"},
	}}
	preview := m.Preview()
	for i, want := range []string{"a", "b", "c"} {
		if preview[i].Title != want {
			t.Errorf("preview[%d].Title = %q, want %q", i, preview[i].Title, want)
		}
	}
}
