package app

import (
	"testing"

	"cubebench/bench"
)

func TestHitButton(t *testing.T) {
	cases := []struct {
		x, y   int
		want   bench.Action
		wantOK bool
	}{
		{15, 15, bench.ActionAdd10, true},
		{199, 37, bench.ActionAdd100, true},
		{250, 20, bench.ActionSub10, true},
		{310, 10, bench.ActionSub100, true},
		{5, 5, 0, false},
		{450, 20, 0, false},
		{15, 500, 0, false},
	}
	for _, c := range cases {
		got, ok := hitButton(c.x, c.y)
		if ok != c.wantOK || got != c.want {
			t.Fatalf("hitButton(%d,%d) = %v,%v want %v,%v", c.x, c.y, got, ok, c.want, c.wantOK)
		}
	}
}
