package chess

import "testing"

func TestPerftFromStartingPosition(t *testing.T) {
	want := []uint64{1, 20, 400, 8902, 197281}
	p := StartingPosition()
	for depth, w := range want {
		if got := Perft(p, depth); got != w {
			t.Errorf("Perft(depth=%d) = %d, want %d", depth, got, w)
		}
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	p := StartingPosition()
	results := PerftDivide(p, 3)
	var sum uint64
	for _, r := range results {
		sum += r.Nodes
	}
	if want := Perft(p, 3); sum != want {
		t.Errorf("sum of PerftDivide(3) = %d, want %d", sum, want)
	}
}
