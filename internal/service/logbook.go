package service

import "github.com/daniazubel1/suptrack/internal/model"

// LogDetails optionally overrides the recorded time and context of a toggle.
type LogDetails struct {
	Time    string
	Context string
}

// ToggleLog is the binary intake toggle for one (date, supplement) pair.
// Toggling off removes the entry and restores one serving; the restore is
// deliberately uncapped, so an undo after an interleaved refill can exceed
// the container size. Toggling on records the entry and consumes one serving,
// floored at zero. Returns whether an entry now exists for the pair. Unknown
// supplement ids are a silent no-op.
func (e *Engine) ToggleLog(date, supplementID string, details *LogDetails) bool {
	idx := e.findSupplementIndex(supplementID)
	if idx < 0 {
		return false
	}

	dayLogs := e.history[date]
	for i, entry := range dayLogs {
		if entry.SupplementID != supplementID {
			continue
		}
		e.history[date] = append(append([]model.LogEntry{}, dayLogs[:i]...), dayLogs[i+1:]...)
		if left := e.supplements[idx].ServingsLeft; left != nil {
			restored := *left + 1
			e.supplements[idx].ServingsLeft = &restored
			e.saveSupplements()
		}
		e.saveHistory()
		e.achievementsDirty = true
		return false
	}

	entry := model.LogEntry{
		SupplementID: supplementID,
		Time:         e.now().Format(clockLayout),
		Context:      model.ContextWithFood,
		Status:       model.StatusTaken,
	}
	if details != nil {
		if details.Time != "" {
			entry.Time = details.Time
		}
		if details.Context != "" {
			entry.Context = details.Context
		}
	}
	if e.history == nil {
		e.history = model.History{}
	}
	e.history[date] = append(dayLogs, entry)
	if left := e.supplements[idx].ServingsLeft; left != nil && *left > 0 {
		consumed := *left - 1
		e.supplements[idx].ServingsLeft = &consumed
		e.saveSupplements()
	}
	e.saveHistory()
	e.achievementsDirty = true
	return true
}

// TakenOn reports whether the supplement has a log entry for the date.
func (e *Engine) TakenOn(date, supplementID string) bool {
	for _, entry := range e.history[date] {
		if entry.SupplementID == supplementID {
			return true
		}
	}
	return false
}

// EntriesOn returns the date's log entries whose supplement still exists,
// skipping orphans left behind by deletions.
func (e *Engine) EntriesOn(date string) []model.LogEntry {
	entries := make([]model.LogEntry, 0, len(e.history[date]))
	for _, entry := range e.history[date] {
		if _, ok := e.FindSupplement(entry.SupplementID); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func (e *Engine) findSupplementIndex(id string) int {
	for i, sup := range e.supplements {
		if sup.ID == id {
			return i
		}
	}
	return -1
}
