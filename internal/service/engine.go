// Package service implements the state engine: it owns the four persisted
// records (supplements, history, lifestyle, profile), exposes the mutation
// operations, and keeps the derived views (inventory, achievements)
// consistent.
package service

import (
	"database/sql"
	"time"

	"github.com/daniazubel1/suptrack/internal/catalog"
	"github.com/daniazubel1/suptrack/internal/model"
	"github.com/daniazubel1/suptrack/internal/store"
)

// Engine is the single owner of the tracker's state. All operations are
// synchronous; there is one logical actor, so no locking is needed. Writes to
// the store are best-effort: the in-memory records are authoritative for the
// lifetime of the process.
type Engine struct {
	db          *sql.DB
	supplements []model.Supplement
	history     model.History
	lifestyle   model.Lifestyle
	profile     model.UserProfile

	// achievementsDirty defers achievement evaluation to the next Flush so a
	// batch of toggles produces a single evaluation.
	achievementsDirty bool

	now func() time.Time
}

func New(db *sql.DB) *Engine {
	return NewWithClock(db, time.Now)
}

// NewWithClock is New with an injected clock, for deterministic tests.
func NewWithClock(db *sql.DB, now func() time.Time) *Engine {
	e := &Engine{
		db:          db,
		supplements: store.Load(db, store.KeySupplements, []model.Supplement{}),
		history:     store.Load(db, store.KeyHistory, model.History{}),
		lifestyle:   store.Load(db, store.KeyLifestyle, model.Lifestyle{}),
		profile:     store.Load(db, store.KeyProfile, model.DefaultProfile()),
		now:         now,
	}
	e.enrichLoaded()
	return e
}

// enrichLoaded backfills catalog metadata for stored supplements that predate
// an entry for their name.
func (e *Engine) enrichLoaded() {
	changed := false
	for i, sup := range e.supplements {
		if sup.Description != "" && len(sup.Benefits) > 0 {
			continue
		}
		enriched := catalog.Enrich(sup)
		if enriched.Description != sup.Description {
			e.supplements[i] = enriched
			changed = true
		}
	}
	if changed {
		e.saveSupplements()
	}
}

func (e *Engine) Supplements() []model.Supplement { return e.supplements }
func (e *Engine) History() model.History          { return e.history }
func (e *Engine) Lifestyle() model.Lifestyle      { return e.lifestyle }
func (e *Engine) Profile() model.UserProfile      { return e.profile }

// FindSupplement resolves an id to its record.
func (e *Engine) FindSupplement(id string) (model.Supplement, bool) {
	for _, sup := range e.supplements {
		if sup.ID == id {
			return sup, true
		}
	}
	return model.Supplement{}, false
}

// Flush runs the deferred achievement evaluation if any logging happened
// since the last flush. Safe to call repeatedly.
func (e *Engine) Flush() {
	if !e.achievementsDirty {
		return
	}
	e.achievementsDirty = false
	unlocked := EvaluateAchievements(e.history, e.supplements, e.profile, e.now())
	if len(unlocked) == 0 {
		return
	}
	if e.profile.Achievements == nil {
		e.profile.Achievements = make(map[string]string, len(unlocked))
	}
	for id, ts := range unlocked {
		e.profile.Achievements[id] = ts
	}
	e.saveProfile()
}

// Store writes are best-effort: the store is a local cache, not a database,
// and a failed write must not fail the mutation that triggered it.
func (e *Engine) saveSupplements() { _ = store.Save(e.db, store.KeySupplements, e.supplements) }
func (e *Engine) saveHistory()     { _ = store.Save(e.db, store.KeyHistory, e.history) }
func (e *Engine) saveLifestyle()   { _ = store.Save(e.db, store.KeyLifestyle, e.lifestyle) }
func (e *Engine) saveProfile()     { _ = store.Save(e.db, store.KeyProfile, e.profile) }

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

func (e *Engine) today() string {
	return e.now().Format(dateLayout)
}
