// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// board.go contains the low level board primitives: square and piece
// enumerations, bitboard shift helpers and move construction. These used to
// live in a separate board package; they were folded into engine when that
// package was retired.

package engine

import "math/bits"

const (
	SquareA1 Square = iota
	SquareB1
	SquareC1
	SquareD1
	SquareE1
	SquareF1
	SquareG1
	SquareH1
	SquareA2
	SquareB2
	SquareC2
	SquareD2
	SquareE2
	SquareF2
	SquareG2
	SquareH2
	SquareA3
	SquareB3
	SquareC3
	SquareD3
	SquareE3
	SquareF3
	SquareG3
	SquareH3
	SquareA4
	SquareB4
	SquareC4
	SquareD4
	SquareE4
	SquareF4
	SquareG4
	SquareH4
	SquareA5
	SquareB5
	SquareC5
	SquareD5
	SquareE5
	SquareF5
	SquareG5
	SquareH5
	SquareA6
	SquareB6
	SquareC6
	SquareD6
	SquareE6
	SquareF6
	SquareG6
	SquareH6
	SquareA7
	SquareB7
	SquareC7
	SquareD7
	SquareE7
	SquareF7
	SquareG7
	SquareH7
	SquareA8
	SquareB8
	SquareC8
	SquareD8
	SquareE8
	SquareF8
	SquareG8
	SquareH8

	SquareArraySize = int(iota)
	SquareMinValue  = SquareA1
	SquareMaxValue  = SquareH8
)

const (
	NoPiece Piece = 0

	WhitePawn   Piece = Piece(Pawn)<<2 + Piece(White)
	BlackPawn   Piece = Piece(Pawn)<<2 + Piece(Black)
	WhiteKnight Piece = Piece(Knight)<<2 + Piece(White)
	BlackKnight Piece = Piece(Knight)<<2 + Piece(Black)
	WhiteBishop Piece = Piece(Bishop)<<2 + Piece(White)
	BlackBishop Piece = Piece(Bishop)<<2 + Piece(Black)
	WhiteRook   Piece = Piece(Rook)<<2 + Piece(White)
	BlackRook   Piece = Piece(Rook)<<2 + Piece(Black)
	WhiteQueen  Piece = Piece(Queen)<<2 + Piece(White)
	BlackQueen  Piece = Piece(Queen)<<2 + Piece(Black)
	WhiteKing   Piece = Piece(King)<<2 + Piece(White)
	BlackKing   Piece = Piece(King)<<2 + Piece(Black)

	PieceArraySize = int(BlackKing) + 1
	PieceMinValue  = WhitePawn
	PieceMaxValue  = BlackKing
)

// Bitboard constants used throughout move generation.
const (
	BbEmpty Bitboard = 0
	BbFull  Bitboard = 1<<64 - 1

	BbFileA = Bitboard(0x0101010101010101)
	BbFileH = BbFileA << 7

	BbRank1 = Bitboard(0x00000000000000ff)
	BbRank2 = BbRank1 << (1 * 8)
	BbRank4 = BbRank1 << (3 * 8)
	BbRank5 = BbRank1 << (4 * 8)
	BbRank7 = BbRank1 << (6 * 8)
	BbRank8 = BbRank1 << (7 * 8)

	// BbPawnStartRank is the set of squares a pawn can double-push from.
	BbPawnStartRank = BbRank2 | BbRank7
	// BbPawnDoubleRank is the set of squares a double push lands on.
	BbPawnDoubleRank = BbRank4 | BbRank5
)

// North shifts bb one rank towards the 8th rank.
func North(bb Bitboard) Bitboard {
	return bb << 8
}

// South shifts bb one rank towards the 1st rank.
func South(bb Bitboard) Bitboard {
	return bb >> 8
}

// East shifts bb one file towards the H file, clearing wrap-around.
func East(bb Bitboard) Bitboard {
	return (bb &^ BbFileH) << 1
}

// West shifts bb one file towards the A file, clearing wrap-around.
func West(bb Bitboard) Bitboard {
	return (bb &^ BbFileA) >> 1
}

// Forward shifts bb one rank in the direction col's pawns advance.
func Forward(col Color, bb Bitboard) Bitboard {
	if col == White {
		return North(bb)
	}
	return South(bb)
}

// Backward shifts bb one rank opposite to the direction col's pawns advance.
func Backward(col Color, bb Bitboard) Bitboard {
	if col == White {
		return South(bb)
	}
	return North(bb)
}

func popcnt(x uint64) int {
	return bits.OnesCount64(x)
}

func logN(x uint64) int {
	return bits.TrailingZeros64(x)
}

// NullMove is a sentinel Move used to mark "no move" in tables and loops.
// It is the zero Move, which never collides with a generated move because
// From == To never happens for a real move.
var NullMove = Move{}

// MakeMove constructs a move. capture is the piece being captured (NoPiece
// if none); target is the piece landing on `to` (the moving piece, or the
// promoted piece for a Promotion move).
func MakeMove(moveType MoveType, from, to Square, capture, target Piece) Move {
	return Move{
		moveType: moveType,
		from:     from,
		to:       to,
		capture:  capture,
		target:   target,
	}
}
