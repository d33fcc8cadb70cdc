package report

import (
	"bytes"
	"slices"
	"testing"

	"github.com/fatih/color"

	"github.com/javiermolinar/overlap/internal/interval"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func pair(s1, e1, s2, e2 int) interval.Pair {
	return interval.Pair{
		First:  interval.Interval{Start: s1, End: e1},
		Second: interval.Interval{Start: s2, End: e2},
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		pairs []interval.Pair
		want  []string
	}{
		{
			name:  "empty",
			pairs: nil,
			want:  []string{},
		},
		{
			name:  "single pair",
			pairs: []interval.Pair{pair(9*60, 10*60, 9*60+30, 10*60+30)},
			want:  []string{"(9:00am - 10:00am) and (9:30am - 10:30am)"},
		},
		{
			name:  "two pairs",
			pairs: []interval.Pair{pair(0, 2, 1, 3), pair(5, 10, 6, 7)},
			want: []string{
				"(12:00am - 12:02am) and (12:01am - 12:03am)",
				"(12:05am - 12:10am) and (12:06am - 12:07am)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.pairs)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Lines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name  string
		pairs []interval.Pair
		opts  Options
		want  string
	}{
		{
			name: "no overlaps",
			want: "No overlapping times\n",
		},
		{
			name: "no overlaps ignores summary",
			opts: Options{Summary: true},
			want: "No overlapping times\n",
		},
		{
			name:  "overlaps",
			pairs: []interval.Pair{pair(0, 2, 1, 3), pair(5, 10, 6, 7)},
			want: "Overlapping times:\n" +
				"(12:00am - 12:02am) and (12:01am - 12:03am)\n" +
				"(12:05am - 12:10am) and (12:06am - 12:07am)\n",
		},
		{
			name:  "overlaps with summary",
			pairs: []interval.Pair{pair(540, 630, 600, 720), pair(540, 630, 620, 660)},
			opts:  Options{Summary: true},
			want: "Overlapping times:\n" +
				"(9:00am - 10:30am) and (10:00am - 12:00pm)\n" +
				"(9:00am - 10:30am) and (10:20am - 11:00am)\n" +
				"2 pairs, 40m overlapping\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tt.pairs, tt.opts); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Write() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	if got := Text(nil); got != "No overlapping times\n" {
		t.Errorf("Text(nil) = %q", got)
	}
	got := Text([]interval.Pair{pair(5, 10, 6, 7)})
	want := "Overlapping times:\n(12:05am - 12:10am) and (12:06am - 12:07am)\n"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name  string
		pairs []interval.Pair
		want  string
	}{
		{name: "one pair", pairs: []interval.Pair{pair(540, 600, 570, 660)}, want: "1 pair, 30m overlapping"},
		{name: "hours", pairs: []interval.Pair{pair(0, 180, 0, 120)}, want: "1 pair, 2h overlapping"},
		{name: "hours and minutes", pairs: []interval.Pair{pair(0, 90, 0, 120), pair(0, 90, 10, 20)}, want: "2 pairs, 1h40m overlapping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summary(tt.pairs); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h30m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
