package review

import "testing"

func TestRound1(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{5, 5},
		{4.333333, 4.3},
		{4.35, 4.4},
		{4.249999, 4.2},
		{2.666666, 2.7},
	}

	for _, c := range cases {
		if got := Round1(c.in); got != c.want {
			t.Errorf("Round1(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
