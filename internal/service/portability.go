package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/daniazubel1/suptrack/internal/catalog"
	"github.com/daniazubel1/suptrack/internal/model"
)

// Snapshot is the export format: the four records plus the export timestamp.
type Snapshot struct {
	Supplements []model.Supplement `json:"supplements"`
	History     model.History      `json:"history"`
	Lifestyle   model.Lifestyle    `json:"lifestyle"`
	UserProfile model.UserProfile  `json:"userProfile"`
	ExportedAt  string             `json:"exportedAt"`
}

// ImportResult is the only user-visible failure surface of the engine.
type ImportResult struct {
	Success bool
	Count   int
	Message string
}

// Export serializes the full state as pretty-printed JSON.
func (e *Engine) Export() (string, error) {
	snap := Snapshot{
		Supplements: e.supplements,
		History:     e.history,
		Lifestyle:   e.lifestyle,
		UserProfile: e.profile,
		ExportedAt:  e.now().Format(time.RFC3339),
	}
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return string(raw), nil
}

// snapshotIn distinguishes absent records from empty ones on import.
type snapshotIn struct {
	Supplements *[]model.Supplement `json:"supplements"`
	History     *model.History      `json:"history"`
	Lifestyle   *model.Lifestyle    `json:"lifestyle"`
	UserProfile *model.UserProfile  `json:"userProfile"`
}

// Import parses raw as either a bare supplement array (legacy export) or a
// full snapshot object. The supplement list is replaced wholesale, as are any
// of history/lifestyle/userProfile present in a snapshot. Failures are
// reported in the result, never raised.
func (e *Engine) Import(raw []byte) ImportResult {
	trimmed := bytes.TrimSpace(raw)

	var imported []model.Supplement
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &imported); err != nil {
			return ImportResult{Message: err.Error()}
		}
	} else {
		var snap snapshotIn
		if err := json.Unmarshal(trimmed, &snap); err != nil {
			return ImportResult{Message: err.Error()}
		}
		// An object without a supplements field is not a snapshot; nothing is
		// touched. A present-but-empty list still replaces the side records
		// before the count check fails.
		if snap.Supplements == nil {
			return ImportResult{Message: "no supplements found in data"}
		}
		imported = *snap.Supplements
		if snap.History != nil {
			e.history = *snap.History
			e.saveHistory()
		}
		if snap.Lifestyle != nil {
			e.lifestyle = *snap.Lifestyle
			e.saveLifestyle()
		}
		if snap.UserProfile != nil {
			e.profile = *snap.UserProfile
			e.saveProfile()
		}
	}

	if len(imported) == 0 {
		return ImportResult{Message: "no supplements found in data"}
	}

	for i, sup := range imported {
		imported[i] = repairImported(sup)
	}
	e.supplements = imported
	e.saveSupplements()
	return ImportResult{Success: true, Count: len(imported)}
}

// repairImported fixes a known historical data bug: Ashwagandha records that
// carried an Omega 3 description. Those are stripped and re-enriched.
func repairImported(sup model.Supplement) model.Supplement {
	if !strings.Contains(strings.ToLower(sup.Name), "ashwagandha") {
		return sup
	}
	if !strings.Contains(strings.ToLower(sup.Description), "fatty acids") {
		return sup
	}
	sup.Description = ""
	sup.Benefits = nil
	return catalog.Enrich(sup)
}
