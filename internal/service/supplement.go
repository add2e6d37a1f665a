package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/daniazubel1/suptrack/internal/catalog"
	"github.com/daniazubel1/suptrack/internal/model"
)

// SupplementPatch is a partial update; nil fields are left unchanged.
type SupplementPatch struct {
	Name                 *string
	Brand                *string
	Dosage               *string
	Type                 *string
	Timing               *string
	Notes                *string
	ServingsPerContainer *int
	ServingsLeft         *int
}

// AddSupplement enriches the input from the catalog, assigns a fresh id,
// initializes the serving count and appends the record.
func (e *Engine) AddSupplement(in model.Supplement) model.Supplement {
	sup := catalog.Enrich(in)
	sup.ID = uuid.NewString()
	if sup.ServingsPerContainer != nil && sup.ServingsLeft == nil {
		left := *sup.ServingsPerContainer
		sup.ServingsLeft = &left
	}
	e.supplements = append(e.supplements, sup)
	e.saveSupplements()
	return sup
}

// UpdateSupplement merges patch into the stored record by shallow overwrite.
// A rename replaces the enrichment fields from the new name only; stale
// metadata never survives a rename. Unknown ids are a silent no-op.
func (e *Engine) UpdateSupplement(id string, patch SupplementPatch) {
	for i, sup := range e.supplements {
		if sup.ID != id {
			continue
		}
		renamed := patch.Name != nil && strings.TrimSpace(*patch.Name) != sup.Name
		merged := applyPatch(sup, patch)
		if renamed {
			merged.Description = ""
			merged.Benefits = nil
			merged.FoodReq = ""
			merged.Warning = ""
			merged.RecommendedTime = ""
			merged = catalog.Enrich(merged)
		}
		e.supplements[i] = merged
		e.saveSupplements()
		return
	}
}

// DeleteSupplement removes the record. History entries referencing it are
// left in place; readers resolving ids skip them.
func (e *Engine) DeleteSupplement(id string) {
	for i, sup := range e.supplements {
		if sup.ID == id {
			e.supplements = append(e.supplements[:i], e.supplements[i+1:]...)
			e.saveSupplements()
			return
		}
	}
}

// RefillSupplement resets ServingsLeft to the container size. No-op when the
// container size is untracked or the id is unknown.
func (e *Engine) RefillSupplement(id string) {
	for i, sup := range e.supplements {
		if sup.ID != id {
			continue
		}
		if sup.ServingsPerContainer == nil {
			return
		}
		left := *sup.ServingsPerContainer
		e.supplements[i].ServingsLeft = &left
		e.saveSupplements()
		return
	}
}

func applyPatch(sup model.Supplement, p SupplementPatch) model.Supplement {
	if p.Name != nil {
		sup.Name = strings.TrimSpace(*p.Name)
	}
	if p.Brand != nil {
		sup.Brand = *p.Brand
	}
	if p.Dosage != nil {
		sup.Dosage = *p.Dosage
	}
	if p.Type != nil {
		sup.Type = *p.Type
	}
	if p.Timing != nil {
		sup.Timing = *p.Timing
	}
	if p.Notes != nil {
		sup.Notes = *p.Notes
	}
	if p.ServingsPerContainer != nil {
		size := *p.ServingsPerContainer
		sup.ServingsPerContainer = &size
	}
	if p.ServingsLeft != nil {
		left := *p.ServingsLeft
		sup.ServingsLeft = &left
	}
	return sup
}
