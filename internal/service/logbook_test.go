package service_test

import (
	"testing"

	"github.com/daniazubel1/suptrack/internal/model"
	"github.com/daniazubel1/suptrack/internal/service"
)

func TestToggleLogScenario(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)

	sup := engine.AddSupplement(model.Supplement{
		Name:                 "Creatine Monohydrate",
		ServingsPerContainer: intPtr(60),
	})

	if added := engine.ToggleLog("2024-06-01", sup.ID, nil); !added {
		t.Fatal("first toggle should add an entry")
	}
	got, _ := engine.FindSupplement(sup.ID)
	if *got.ServingsLeft != 59 {
		t.Fatalf("servingsLeft = %d, want 59", *got.ServingsLeft)
	}
	if entries := engine.History()["2024-06-01"]; len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}

	if added := engine.ToggleLog("2024-06-01", sup.ID, nil); added {
		t.Fatal("second toggle should remove the entry")
	}
	got, _ = engine.FindSupplement(sup.ID)
	if *got.ServingsLeft != 60 {
		t.Fatalf("servingsLeft restored = %d, want 60", *got.ServingsLeft)
	}
	if entries := engine.History()["2024-06-01"]; len(entries) != 0 {
		t.Fatalf("entries after undo = %d, want 0", len(entries))
	}
}

func TestToggleLogDefaultsAndDetails(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)
	sup := engine.AddSupplement(model.Supplement{Name: "Zinc"})

	engine.ToggleLog("2024-06-01", sup.ID, nil)
	entry := engine.History()["2024-06-01"][0]
	if entry.Context != model.ContextWithFood {
		t.Fatalf("default context = %q, want with-food", entry.Context)
	}
	if entry.Time != "12:00" {
		t.Fatalf("default time = %q, want the clock's 12:00", entry.Time)
	}
	if entry.Status != model.StatusTaken {
		t.Fatalf("status = %q", entry.Status)
	}

	engine.ToggleLog("2024-06-01", sup.ID, nil)
	engine.ToggleLog("2024-06-01", sup.ID, &service.LogDetails{Time: "07:30", Context: model.ContextFasted})
	entry = engine.History()["2024-06-01"][0]
	if entry.Time != "07:30" || entry.Context != model.ContextFasted {
		t.Fatalf("details not honored: %+v", entry)
	}
}

func TestToggleLogOnePerDayPerSupplement(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)
	a := engine.AddSupplement(model.Supplement{Name: "Zinc"})
	b := engine.AddSupplement(model.Supplement{Name: "Magnesium"})

	engine.ToggleLog("2024-06-01", a.ID, nil)
	engine.ToggleLog("2024-06-01", b.ID, nil)
	engine.ToggleLog("2024-06-02", a.ID, nil)

	if len(engine.History()["2024-06-01"]) != 2 {
		t.Fatalf("day one entries = %d, want 2", len(engine.History()["2024-06-01"]))
	}
	if len(engine.History()["2024-06-02"]) != 1 {
		t.Fatalf("day two entries = %d, want 1", len(engine.History()["2024-06-02"]))
	}
}

func TestToggleLogAtZeroStockStillRecords(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)

	sup := engine.AddSupplement(model.Supplement{
		Name:                 "Zinc",
		ServingsPerContainer: intPtr(30),
		ServingsLeft:         intPtr(0),
	})

	engine.ToggleLog("2024-06-01", sup.ID, nil)
	got, _ := engine.FindSupplement(sup.ID)
	if *got.ServingsLeft != 0 {
		t.Fatalf("servingsLeft = %d, must not go below 0", *got.ServingsLeft)
	}
	if !engine.TakenOn("2024-06-01", sup.ID) {
		t.Fatal("the log entry must still be recorded at zero stock")
	}
}

func TestToggleLogUndoAfterRefillIsUncapped(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)

	sup := engine.AddSupplement(model.Supplement{
		Name:                 "Creatine Monohydrate",
		ServingsPerContainer: intPtr(60),
	})

	engine.ToggleLog("2024-06-01", sup.ID, nil) // 59
	engine.RefillSupplement(sup.ID)             // 60
	engine.ToggleLog("2024-06-01", sup.ID, nil) // undo restores past the cap

	got, _ := engine.FindSupplement(sup.ID)
	if *got.ServingsLeft != 61 {
		t.Fatalf("servingsLeft = %d, want 61 (restore is uncapped)", *got.ServingsLeft)
	}
}

func TestToggleLogUnknownSupplementIsNoop(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)

	engine.ToggleLog("2024-06-01", "missing", nil)
	if len(engine.History()["2024-06-01"]) != 0 {
		t.Fatalf("history mutated for unknown id: %+v", engine.History())
	}
}

func TestUntrackedStockIsUntouchedByToggles(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)

	sup := engine.AddSupplement(model.Supplement{Name: "Zinc"})
	engine.ToggleLog("2024-06-01", sup.ID, nil)
	engine.ToggleLog("2024-06-01", sup.ID, nil)

	got, _ := engine.FindSupplement(sup.ID)
	if got.ServingsLeft != nil {
		t.Fatalf("servingsLeft = %v, want untracked", got.ServingsLeft)
	}
}
