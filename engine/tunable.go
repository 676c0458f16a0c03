// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// tunable.go holds the search's tunable scalars and a loader that can
// override them from a flat NAME VALUE file at startup. This is the only
// persisted configuration the engine package reads; nothing here is ever
// written back out by the search.

package engine

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Tunable search parameters. Defaults match the values a from-scratch
// tuning session settled on; LoadTunableParams can override them before
// the first search starts. They must not be mutated afterwards.
var (
	RFPMargin         int32 = 75
	RFPDepth          int32 = 5
	RFPImprovingBonus int32 = 62

	LMRBase     int32 = 75
	LMRDivision int32 = 225

	NMPBase     int32 = 3
	NMPDivision int32 = 3
	NMPMargin   int32 = 180

	LMPDepthThreshold int32 = 7

	FutilityMargin    int32 = 150
	FutilityDepth     int32 = 6
	FutilityImproving int32 = 24

	QSFutilityMargin int32 = 177

	SEEQuietMarginBase int32 = -70
	SEENoisyMarginBase int32 = -15

	AspirationDelta int32 = 12

	// HistoryPruningThreshold is scaled to this table's own add(move, 16/-1)
	// increments, not to the much coarser counters a depth*depth-scaled
	// history table would produce, so it is not taken from the same source
	// as the other defaults above.
	HistoryPruningThreshold int32 = 15
)

// singularMargin is the verification-search safety margin used by the
// singular-extension check. It has never been split out into its own
// tuning-file entry, so unlike the scalars above it stays a constant.
const singularMargin int32 = 60

// tunableParams maps a tuning file's NAME token to the variable it overrides.
var tunableParams = map[string]*int32{
	"RFP_MARGIN":                &RFPMargin,
	"RFP_DEPTH":                 &RFPDepth,
	"RFP_IMPROVING_BONUS":       &RFPImprovingBonus,
	"LMR_BASE":                  &LMRBase,
	"LMR_DIVISION":              &LMRDivision,
	"NMP_BASE":                  &NMPBase,
	"NMP_DIVISION":              &NMPDivision,
	"NMP_MARGIN":                &NMPMargin,
	"LMP_DEPTH_THRESHOLD":       &LMPDepthThreshold,
	"FUTILITY_MARGIN":           &FutilityMargin,
	"FUTILITY_DEPTH":            &FutilityDepth,
	"FUTILITY_IMPROVING":        &FutilityImproving,
	"QS_FUTILITY_MARGIN":        &QSFutilityMargin,
	"SEE_QUIET_MARGIN_BASE":     &SEEQuietMarginBase,
	"SEE_NOISY_MARGIN_BASE":     &SEENoisyMarginBase,
	"ASPIRATION_DELTA":          &AspirationDelta,
	"HISTORY_PRUNING_THRESHOLD": &HistoryPruningThreshold,
}

// LoadTunableParams reads search parameters from path, one "NAME VALUE"
// pair per line, and overrides the matching package variable. Blank lines
// are skipped. A name the binary doesn't recognize is skipped too, so a
// tuning file produced by a newer build still loads under an older one.
func LoadTunableParams(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return fmt.Errorf("%s:%d: expected \"NAME VALUE\", got %q", path, lineNum, scanner.Text())
		}
		value, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return fmt.Errorf("%s:%d: %v", path, lineNum, err)
		}
		if p, ok := tunableParams[fields[0]]; ok {
			*p = int32(value)
		}
	}
	return scanner.Err()
}
