package fusion

import (
	"fmt"
	"strings"
)

// #region conflict-types

// ConflictType tags a detected lexical opposition.
type ConflictType string

const (
	ConflictVerbosity ConflictType = "verbosity"
	ConflictTone      ConflictType = "tone"
	ConflictSpeed     ConflictType = "speed"
	ConflictApproach  ConflictType = "approach"
)

// ConflictRecord describes a lexical opposition between two layers. Records
// are derived, never stored; detection recomputes them on every call.
type ConflictRecord struct {
	Type        ConflictType
	LayerA      LayerName
	LayerB      LayerName
	Description string
}

// #endregion conflict-types

// #region opposition-table

// opposition pairs two pattern sets that pull a response in opposite
// directions. Matching is case-insensitive substring matching — best-effort
// lexical detection, not semantic understanding.
type opposition struct {
	ctype  ConflictType
	first  []string
	second []string
}

// oppositions is the fixed detection table. Append-only: new conflict types
// are added as rows, no registration mechanism.
var oppositions = []opposition{
	{ConflictVerbosity, []string{"verbose", "detailed", "comprehensive"}, []string{"concise", "brief", "short"}},
	{ConflictTone, []string{"formal", "professional"}, []string{"casual", "informal"}},
	{ConflictSpeed, []string{"fast", "quick", "immediate"}, []string{"careful", "thorough", "deliberate"}},
	{ConflictApproach, []string{"creative", "innovative"}, []string{"conservative", "traditional"}},
}

// layerPairs enumerates the unordered layer pairs checked for conflicts.
var layerPairs = [3][2]LayerName{
	{LayerBase, LayerBrain},
	{LayerBase, LayerPersona},
	{LayerBrain, LayerPersona},
}

// #endregion opposition-table

// #region detect

// DetectConflicts scans every unordered pair of non-empty layers against the
// opposition table. A pair may yield one record per matched conflict type;
// no deduplication across types. Never fails.
func DetectConflicts(layers Layers) []ConflictRecord {
	var records []ConflictRecord
	for _, pair := range layerPairs {
		textA := layers.Text(pair[0])
		textB := layers.Text(pair[1])
		if textA == "" || textB == "" {
			continue
		}
		lowerA := strings.ToLower(textA)
		lowerB := strings.ToLower(textB)

		for _, opp := range oppositions {
			forward := matchesAny(lowerA, opp.first) && matchesAny(lowerB, opp.second)
			reverse := matchesAny(lowerA, opp.second) && matchesAny(lowerB, opp.first)
			if forward || reverse {
				records = append(records, ConflictRecord{
					Type:   opp.ctype,
					LayerA: pair[0],
					LayerB: pair[1],
					Description: fmt.Sprintf("%s and %s layers give opposing %s directions",
						pair[0], pair[1], opp.ctype),
				})
			}
		}
	}
	return records
}

func matchesAny(lower string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// #endregion detect
