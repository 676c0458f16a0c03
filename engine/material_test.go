package engine

import (
	"strings"
	"testing"
)

// mirrorFEN swaps the colors of a FEN string top-for-bottom so the
// returned position is the original as seen by the other side: white
// pieces become black and vice versa, the side to move flips, castling
// rights swap case and en-passant rank mirrors across the board.
func mirrorFEN(fen string) string {
	fields := strings.Fields(fen)

	var board strings.Builder
	ranks := strings.Split(fields[0], "/")
	for i := len(ranks) - 1; i >= 0; i-- {
		if board.Len() > 0 {
			board.WriteByte('/')
		}
		for _, c := range ranks[i] {
			switch {
			case c >= 'a' && c <= 'z':
				board.WriteRune(c - 'a' + 'A')
			case c >= 'A' && c <= 'Z':
				board.WriteRune(c - 'A' + 'a')
			default:
				board.WriteRune(c)
			}
		}
	}

	turn := "b"
	if fields[1] == "b" {
		turn = "w"
	}

	castling := ""
	for _, c := range fields[2] {
		switch c {
		case 'K':
			castling += "k"
		case 'Q':
			castling += "q"
		case 'k':
			castling += "K"
		case 'q':
			castling += "Q"
		default:
			castling += "-"
		}
	}
	if castling == "" {
		castling = "-"
	}

	enpassant := fields[3]
	if enpassant != "-" {
		rank := byte('6')
		if enpassant[1] == '6' {
			rank = '3'
		}
		enpassant = enpassant[:1] + string(rank)
	}

	mirrored := board.String() + " " + turn + " " + castling + " " + enpassant
	if len(fields) > 4 {
		mirrored += " " + fields[4]
	}
	if len(fields) > 5 {
		mirrored += " " + fields[5]
	}
	return mirrored
}

// TestEvaluateSymmetricPosition checks that color-symmetric positions,
// where neither side has any advantage, evaluate within a small margin
// of zero.
func TestEvaluateSymmetricPosition(t *testing.T) {
	for _, fen := range []string{
		FENStartPos,
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		"4k3/8/8/3rr3/3RR3/8/8/4K3 w - - 0 1",
		"4k3/8/8/3NN3/3nn3/8/8/4K3 w - - 0 1",
	} {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("PositionFromFEN(%q) failed: %v", fen, err)
		}
		if score := Evaluate(pos); score < -5 || score > 5 {
			t.Errorf("Evaluate(%q) = %v, want within +-5", fen, score)
		}
	}
}

// TestEvaluateMirrorSymmetry checks that mirroring a position (flipping
// every square top-for-bottom and swapping piece colors) negates its
// evaluation, since the same position is now seen from the other side.
func TestEvaluateMirrorSymmetry(t *testing.T) {
	for _, fen := range []string{
		FENStartPos,
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
		"r1bqk2r/ppp2ppp/2np1n2/2b1p3/2B1P3/2NP1N2/PPP2PPP/R1BQK2R w KQkq - 0 1",
		"4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1",
		FENKiwipete,
	} {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("PositionFromFEN(%q) failed: %v", fen, err)
		}
		mirrored, err := PositionFromFEN(mirrorFEN(fen))
		if err != nil {
			t.Fatalf("PositionFromFEN(mirrorFEN(%q)) failed: %v", fen, err)
		}

		score, mirroredScore := Evaluate(pos), Evaluate(mirrored)
		if diff := score + mirroredScore; diff < -5 || diff > 5 {
			t.Errorf("Evaluate(%q) = %v, Evaluate(mirror) = %v, want the latter to be approximately %v",
				fen, score, mirroredScore, -score)
		}
	}
}
