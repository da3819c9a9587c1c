package notation

import (
	"testing"

	"github.com/rookmate/chesscore"
)

func TestDecodeUCIRoundTrip(t *testing.T) {
	p := chess.StartingPosition()
	m, err := DecodeUCI(p, "e2e4")
	if err != nil {
		t.Fatal(err)
	}
	if got := EncodeUCI(m); got != "e2e4" {
		t.Errorf("EncodeUCI = %q, want e2e4", got)
	}
}

func TestDecodeUCIRejectsIllegalMove(t *testing.T) {
	p := chess.StartingPosition()
	if _, err := DecodeUCI(p, "e2e5"); err == nil {
		t.Error("expected an error for an illegal move")
	}
}

func TestEncodeSANForOpeningMoves(t *testing.T) {
	p := chess.StartingPosition()
	for _, m := range chess.GenerateLegalMoves(p) {
		if m.From == chess.G1 && m.To == chess.F3 {
			if got := EncodeSAN(p, m); got != "Nf3" {
				t.Errorf("EncodeSAN(Ng1f3) = %q, want Nf3", got)
			}
		}
		if m.From == chess.E2 && m.To == chess.E4 {
			if got := EncodeSAN(p, m); got != "e4" {
				t.Errorf("EncodeSAN(e2e4) = %q, want e4", got)
			}
		}
	}
}

func TestEncodeSANDisambiguatesByFile(t *testing.T) {
	// Knights on d1 and f1 both reach e3.
	p, err := chess.NewFromFEN("4k3/8/8/8/4K3/8/8/3N1N2 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for _, m := range chess.GenerateLegalMoves(p) {
		if m.To != chess.E3 || p.PieceAt(m.From).Kind != chess.Knight {
			continue
		}
		seen[EncodeSAN(p, m)] = true
	}
	if !seen["Nde3"] || !seen["Nfe3"] {
		t.Errorf("expected file-disambiguated knight moves Nde3 and Nfe3, got %v", seen)
	}
}

func TestDecodeSANRoundTrip(t *testing.T) {
	p := chess.StartingPosition()
	m, err := DecodeSAN(p, "e4")
	if err != nil {
		t.Fatal(err)
	}
	if m.From != chess.E2 || m.To != chess.E4 {
		t.Errorf("DecodeSAN(e4) = %v, want e2e4", m)
	}
}
