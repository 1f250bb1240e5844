package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSeatRowLabel(t *testing.T) {
	tests := []struct {
		number        int
		columnsPerRow int
		want          string
	}{
		{number: 1, columnsPerRow: 10, want: "A"},
		{number: 10, columnsPerRow: 10, want: "A"},
		{number: 11, columnsPerRow: 10, want: "B"},
		{number: 100, columnsPerRow: 10, want: "J"},
		{number: 7, columnsPerRow: 3, want: "C"},
		{number: 11, columnsPerRow: 0, want: "B"},
		{number: 0, columnsPerRow: 10, want: "A"},
	}

	for _, tt := range tests {
		if got := SeatRowLabel(tt.number, tt.columnsPerRow); got != tt.want {
			t.Errorf("SeatRowLabel(%d, %d) = %q, want %q", tt.number, tt.columnsPerRow, got, tt.want)
		}
	}
}

func TestMaxSeatNumber(t *testing.T) {
	if got := MaxSeatNumber(10); got != 260 {
		t.Errorf("MaxSeatNumber(10) = %d, want 260", got)
	}

	if got := MaxSeatNumber(0); got != 260 {
		t.Errorf("MaxSeatNumber(0) = %d, want 260", got)
	}

	if got := SeatRowLabel(MaxSeatNumber(4), 4); got != "Z" {
		t.Errorf("last seat row = %q, want Z", got)
	}
}

func TestSeatGrid(t *testing.T) {
	got := SeatGrid("s1", 2, 3)

	want := []Seat{
		{ScreenID: "s1", Row: "A", Number: 1},
		{ScreenID: "s1", Row: "A", Number: 2},
		{ScreenID: "s1", Row: "A", Number: 3},
		{ScreenID: "s1", Row: "B", Number: 4},
		{ScreenID: "s1", Row: "B", Number: 5},
		{ScreenID: "s1", Row: "B", Number: 6},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SeatGrid() mismatch (-want +got):\n%s", diff)
	}
}

func TestSeatGrid_LastRowLetter(t *testing.T) {
	seats := SeatGrid("s1", MaxScreenRows, 2)

	last := seats[len(seats)-1]
	if last.Row != "Z" || last.Number != MaxScreenRows*2 {
		t.Errorf("last seat = %s%d, want Z%d", last.Row, last.Number, MaxScreenRows*2)
	}
}
