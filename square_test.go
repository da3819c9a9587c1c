package chess

import "testing"

func TestSquareAlgebraicRoundTrip(t *testing.T) {
	for _, s := range allSquares {
		str := s.String()
		got, err := ParseSquare(str)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", str, err)
		}
		if got != s {
			t.Errorf("round trip %v -> %q -> %v", s, str, got)
		}
	}
}

func TestParseSquareDash(t *testing.T) {
	sq, err := ParseSquare("-")
	if err != nil {
		t.Fatal(err)
	}
	if sq != NoSquare {
		t.Errorf("ParseSquare(\"-\") = %v, want NoSquare", sq)
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, s := range []string{"", "i1", "a9", "a0", "abc"} {
		if _, err := ParseSquare(s); err == nil {
			t.Errorf("ParseSquare(%q): expected error", s)
		}
	}
}

func TestNewSquareMatchesNamedConstants(t *testing.T) {
	if NewSquare(FileA, Rank1) != A1 {
		t.Error("A1 mismatch")
	}
	if NewSquare(FileH, Rank8) != H8 {
		t.Error("H8 mismatch")
	}
	if NewSquare(FileE, Rank4) != E4 {
		t.Error("E4 mismatch")
	}
}
