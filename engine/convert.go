package engine

import (
	"fmt"
	"strings"
)

var (
	errWrongLength       = fmt.Errorf("SAN string is too short")
	errUnknownFigure     = fmt.Errorf("unknown figure symbol")
	errBadDisambiguation = fmt.Errorf("bad disambiguation")
	errBadPromotion      = fmt.Errorf("only pawns on the last rank can be promoted")
	errNoSuchMove        = fmt.Errorf("no such move")
)

type castleInfo struct {
	Castle Castle
	Piece  [2]Piece
	Square [2]Square
}

var (
	itoa               = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8"} // shortcut for Itoa
	colorToSymbol      = []string{"", "w", "b"}
	pieceToSymbol      = [PieceArraySize]string{NoPiece: ".", WhitePawn: "P", BlackPawn: "p", WhiteKnight: "N", BlackKnight: "n", WhiteBishop: "B", BlackBishop: "b", WhiteRook: "R", BlackRook: "r", WhiteQueen: "Q", BlackQueen: "q", WhiteKing: "K", BlackKing: "k"}
	symbolToCastleInfo = map[rune]castleInfo{
		'K': castleInfo{
			Castle: WhiteOO,
			Piece:  [2]Piece{WhiteKing, WhiteRook},
			Square: [2]Square{SquareE1, SquareH1},
		},
		'k': castleInfo{
			Castle: BlackOO,
			Piece:  [2]Piece{BlackKing, BlackRook},
			Square: [2]Square{SquareE8, SquareH8},
		},
		'Q': castleInfo{
			Castle: WhiteOOO,
			Piece:  [2]Piece{WhiteKing, WhiteRook},
			Square: [2]Square{SquareE1, SquareA1},
		},
		'q': castleInfo{
			Castle: BlackOOO,
			Piece:  [2]Piece{BlackKing, BlackRook},
			Square: [2]Square{SquareE8, SquareA8},
		},
	}
	symbolToColor = map[string]Color{
		"w": White,
		"b": Black,
	}
	symbolToPiece = map[rune]Piece{
		'p': BlackPawn,
		'n': BlackKnight,
		'b': BlackBishop,
		'r': BlackRook,
		'q': BlackQueen,
		'k': BlackKing,

		'P': WhitePawn,
		'N': WhiteKnight,
		'B': WhiteBishop,
		'R': WhiteRook,
		'Q': WhiteQueen,
		'K': WhiteKing,
	}
	symbolToFigure = map[rune]Figure{
		'n': Knight,
		'b': Bishop,
		'r': Rook,
		'q': Queen,

		// Upper case is used for the figure letter in SAN, e.g. "Nf3".
		'N': Knight,
		'B': Bishop,
		'R': Rook,
		'Q': Queen,
		'K': King,
	}
)

// ParsePiecePlacement parse pieces from str (FEN like) into pos.
func ParsePiecePlacement(str string, pos *Position) error {
	ranks := strings.Split(str, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("expected 8 ranks, got %d", len(ranks))
	}
	for r := range ranks {
		f := 0
		for _, p := range ranks[r] {
			pi := symbolToPiece[p]
			if pi == NoPiece {
				if '1' <= p && p <= '8' {
					f += int(p) - int('0') - 1
				} else {
					return fmt.Errorf("expected rank or number, got %s", string(p))
				}
			}
			if f >= 8 {
				return fmt.Errorf("rank %d too long (%d cells)", 8-r, f)
			}
			// 7-r because FEN describes the table from 8th rank.
			pos.Put(RankFile(7-r, f), pi)
			f++
		}
		if f < 8 {
			return fmt.Errorf("rank %d too short (%d cells)", 8-r, f)
		}
	}
	return nil
}

// FormatPiecePlacement converts a position to FEN piece placement.
func FormatPiecePlacement(pos *Position) string {
	s := ""
	for r := 7; r >= 0; r-- {
		space := 0
		for f := 0; f < 8; f++ {
			sq := RankFile(r, f)
			pi := pos.Get(sq)
			if pi == NoPiece {
				space++
			} else {
				if space != 0 {
					s += itoa[space]
					space = 0
				}
				s += pieceToSymbol[pi]
			}
		}

		if space != 0 {
			s += itoa[space]
		}
		if r != 0 {
			s += "/"
		}
	}
	return s
}

func ParseEnpassantSquare(str string, pos *Position) error {
	if str[:1] == "-" {
		pos.SetEnpassantSquare(SquareA1)
		return nil
	}
	sq, err := SquareFromString(str)
	if err != nil {
		return err
	}
	pos.SetEnpassantSquare(sq)
	return nil
}

// FormatEnpassantSquare converts position's en passant square to string.
func FormatEnpassantSquare(pos *Position) string {
	if pos.EnpassantSquare() != SquareA1 {
		return pos.EnpassantSquare().String()
	}
	return "-"
}

func ParseSideToMove(str string, pos *Position) error {
	if col, ok := symbolToColor[str]; ok {
		pos.SetSideToMove(col)
		return nil
	}
	return fmt.Errorf("invalid color %s", str)
}

func FormatSideToMove(pos *Position) string {
	return colorToSymbol[pos.SideToMove]
}

func ParseCastlingAbility(str string, pos *Position) error {
	if str == "-" {
		pos.SetCastlingAbility(NoCastle)
		return nil
	}

	ability := NoCastle
	for _, p := range str {
		info, ok := symbolToCastleInfo[p]
		if !ok {
			return fmt.Errorf("invalid castling ability %s", str)
		}
		ability |= info.Castle
		for i := 0; i < 2; i++ {
			if info.Piece[i] != pos.Get(info.Square[i]) {
				return fmt.Errorf("expected %v at %v, got %v",
					info.Piece[i], info.Square[i], pos.Get(info.Square[i]))
			}
		}
	}
	pos.SetCastlingAbility(ability)
	return nil
}

func FormatCastlingAbility(pos *Position) string {
	return pos.CastlingAbility().String()
}

// UCIToMove parses a move in UCI's long algebraic form (e.g. "e2e4",
// "e7e8q") against pos, filling in capture, target and move type the way
// the engine's internal moves carry them.
func (pos *Position) UCIToMove(s string) Move {
	from, _ := SquareFromString(s[0:2])
	to, _ := SquareFromString(s[2:4])

	moveType := Normal
	capture := pos.Get(to)
	target := pos.Get(from)

	pi := pos.Get(from)
	if pi.Figure() == Pawn && pos.IsEnpassantSquare(to) {
		moveType = Enpassant
		capture = ColorFigure(pos.SideToMove.Opposite(), Pawn)
	}
	if pi == WhiteKing && from == SquareE1 && (to == SquareC1 || to == SquareG1) {
		moveType = Castling
	}
	if pi == BlackKing && from == SquareE8 && (to == SquareC8 || to == SquareG8) {
		moveType = Castling
	}
	if pi.Figure() == Pawn && len(s) > 4 && (to.Rank() == 0 || to.Rank() == 7) {
		moveType = Promotion
		target = ColorFigure(pos.SideToMove, symbolToFigure[rune(s[4])])
	}

	return MakeMove(moveType, from, to, capture, target)
}

// SANToMove converts a move given in standard algebraic notation (as
// defined in the FIDE handbook) to a Move, disambiguating against the
// moves legal in pos.
//
// The accepted strings are slightly more permissive than strict SAN:
// 'x' (capture) presence or correctness is ignored, '+' and '#' (check,
// checkmate) are ignored, and "e.p." (enpassant) is ignored.
func (pos *Position) SANToMove(s string) (Move, error) {
	piece := NoPiece
	moveType := Normal
	to := SquareA1
	capture, target := NoPiece, NoPiece
	r, f := -1, -1

	b, e := 0, len(s)
	if b == e {
		return NullMove, errWrongLength
	}
	for e > b && (s[e-1] == '#' || s[e-1] == '+') {
		e--
	}

	if s[b:e] == "o-o" || s[b:e] == "O-O" {
		moveType = Castling
		if pos.SideToMove == White {
			to, target = SquareG1, WhiteKing
		} else {
			to, target = SquareG8, BlackKing
		}
		piece = target
	} else if s[b:e] == "o-o-o" || s[b:e] == "O-O-O" {
		moveType = Castling
		if pos.SideToMove == White {
			to, target = SquareC1, WhiteKing
		} else {
			to, target = SquareC8, BlackKing
		}
		piece = target
	} else {
		if ('a' <= s[b] && s[b] <= 'h') || s[b] == 'x' {
			piece = ColorFigure(pos.SideToMove, Pawn)
		} else {
			fig := symbolToFigure[rune(s[b])]
			if fig == NoFigure {
				return NullMove, errUnknownFigure
			}
			piece = ColorFigure(pos.SideToMove, fig)
			b++
		}
		target = piece

		// Skip e.p. when enpassant.
		if e-4 > b && s[e-4:e] == "e.p." {
			e -= 4
		}

		if e-1 < b {
			return NullMove, errWrongLength
		}
		if !('1' <= s[e-1] && s[e-1] <= '8') {
			// Not a rank, but a promotion.
			if piece.Figure() != Pawn {
				return NullMove, errBadPromotion
			}
			fig := symbolToFigure[rune(s[e-1])]
			if fig == NoFigure {
				return NullMove, errUnknownFigure
			}
			moveType = Promotion
			target = ColorFigure(pos.SideToMove, fig)
			e--
			if e-1 >= b && s[e-1] == '=' {
				e--
			}
		}

		if e-2 < b {
			return NullMove, errWrongLength
		}
		var err error
		to, err = SquareFromString(s[e-2 : e])
		if err != nil {
			return NullMove, err
		}
		if piece.Figure() == Pawn && pos.IsEnpassantSquare(to) {
			moveType = Enpassant
			capture = ColorFigure(pos.SideToMove.Opposite(), Pawn)
		} else {
			capture = pos.Get(to)
		}
		e -= 2

		// Ignore 'x' (capture) or '-' (no capture) if present.
		if e-1 >= b && (s[e-1] == 'x' || s[e-1] == '-') {
			e--
		}

		if e-b > 2 {
			return NullMove, errBadDisambiguation
		}
		for ; b < e; b++ {
			switch {
			case 'a' <= s[b] && s[b] <= 'h':
				f = int(s[b] - 'a')
			case '1' <= s[b] && s[b] <= '8':
				r = int(s[b] - '1')
			default:
				return NullMove, errBadDisambiguation
			}
		}
	}

	var moves []Move
	pos.GenerateFigureMoves(piece.Figure(), All, &moves)
	for _, pm := range moves {
		if pm.MoveType() != moveType || pm.Capture() != capture {
			continue
		}
		if pm.To() != to || pm.Target() != target {
			continue
		}
		if r != -1 && pm.From().Rank() != r {
			continue
		}
		if f != -1 && pm.From().File() != f {
			continue
		}
		return pm, nil
	}
	return NullMove, errNoSuchMove
}

// MoveToUCI converts a move to UCI's long algebraic notation, e.g.
// "a2a4" or "h7h8q" for a pawn promotion.
func (pos *Position) MoveToUCI(move Move) string {
	r := move.From().String() + move.To().String()
	if move.MoveType() == Promotion {
		r += strings.ToLower(pieceToSymbol[move.Target()])
	}
	return r
}