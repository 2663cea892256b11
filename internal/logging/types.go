package logging

import "time"

// #region fusion-entry

// FusionEntry is one row of the fusion_log table: what was fused, with which
// strategy and weights, and how many conflicts the layers carried.
type FusionEntry struct {
	ConversationID string
	Strategy       string
	WeightsJSON    string
	ConflictCount  int
	PromptSHA      string
	CreatedAt      time.Time
}

// #endregion fusion-entry
