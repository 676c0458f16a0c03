// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZugzwangRisk(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		us   Color
		want zugzwangRisk
	}{
		{"pure king and pawns", "4k3/8/3K4/4P3/8/8/8/8 w - - 0 1", White, zugzwangExtreme},
		{"start position", FENStartPos, White, zugzwangNone},
	}

	for _, tt := range tests {
		pos, err := PositionFromFEN(tt.fen)
		require.NoError(t, err, "failed to parse %s", tt.fen)
		assert.Equal(t, tt.want, pos.zugzwangRisk(tt.us), "failed: %s", tt.name)
	}
}

func TestZugzwangRiskSideWithOnlyPawns(t *testing.T) {
	pos, err := PositionFromFEN("4k3/8/8/4p3/8/3N4/5Q2/4K3 b - - 0 1")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, int(pos.zugzwangRisk(Black)), int(zugzwangHigh))
	assert.True(t, pos.shouldAvoidNullMove(Black))
}

func TestShouldAvoidNullMove(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	require.NoError(t, err)
	assert.False(t, pos.shouldAvoidNullMove(White))
}

func TestNullMoveReduction(t *testing.T) {
	tests := []struct {
		base int32
		risk zugzwangRisk
		want int32
	}{
		{3, zugzwangNone, 3},
		{3, zugzwangMedium, 2},
		{3, zugzwangHigh, 0},
		{3, zugzwangExtreme, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nullMoveReduction(tt.base, tt.risk))
	}
}
