package service_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/daniazubel1/suptrack/internal/model"
	"github.com/daniazubel1/suptrack/internal/service"
)

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	source := newTestEngine(t)

	sup := source.AddSupplement(model.Supplement{Name: "Magnesium", Timing: model.TimingNight, ServingsPerContainer: intPtr(90)})
	source.ToggleLog("2024-06-01", sup.ID, &service.LogDetails{Time: "22:00", Context: model.ContextFasted})
	source.SetSleep("2024-06-01", 7.5)
	source.SetWorkout("2024-06-01", model.Workout{Done: true, Type: "Gym", Completed: true})
	source.UpdateProfile(service.ProfilePatch{Name: strPtr("Dana")})

	snapshot, err := source.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	target := newTestEngine(t)
	result := target.Import([]byte(snapshot))
	if !result.Success || result.Count != 1 {
		t.Fatalf("import result = %+v", result)
	}

	if !reflect.DeepEqual(target.Supplements(), source.Supplements()) {
		t.Fatalf("supplements differ:\n%+v\n%+v", target.Supplements(), source.Supplements())
	}
	if !reflect.DeepEqual(target.History(), source.History()) {
		t.Fatalf("history differs:\n%+v\n%+v", target.History(), source.History())
	}
	if !reflect.DeepEqual(target.Lifestyle(), source.Lifestyle()) {
		t.Fatalf("lifestyle differs:\n%+v\n%+v", target.Lifestyle(), source.Lifestyle())
	}
	if !reflect.DeepEqual(target.Profile(), source.Profile()) {
		t.Fatalf("profile differs:\n%+v\n%+v", target.Profile(), source.Profile())
	}
}

func TestExportIsPrettyPrintedWithTimestamp(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)

	snapshot, err := engine.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(snapshot, "\n  \"supplements\"") {
		t.Fatal("export should be indented")
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal([]byte(snapshot), &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if _, ok := decoded["exportedAt"]; !ok {
		t.Fatal("exportedAt missing")
	}
}

func TestImportLegacyArray(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)

	existing := engine.AddSupplement(model.Supplement{Name: "Zinc"})
	engine.ToggleLog("2024-06-01", existing.ID, nil)

	raw := `[{"id":"legacy-1","name":"Vitamin C"},{"id":"legacy-2","name":"Omega 3"}]`
	result := engine.Import([]byte(raw))
	if !result.Success || result.Count != 2 {
		t.Fatalf("result = %+v", result)
	}
	if len(engine.Supplements()) != 2 {
		t.Fatalf("supplement list must be replaced, got %+v", engine.Supplements())
	}
	// A legacy array carries no history; the existing record stays.
	if len(engine.History()["2024-06-01"]) != 1 {
		t.Fatal("legacy import must not touch history")
	}
}

func TestImportSnapshotReplacesRecordsWholesale(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)
	engine.SetSleep("2024-05-01", 6)

	raw := `{
  "supplements": [{"id":"s1","name":"Zinc"}],
  "history": {"2024-06-02": [{"supplementId":"s1","time":"09:00","context":"with-food","status":"taken"}]},
  "lifestyle": {"2024-06-02": {"sleepHours": 8, "workout": false}},
  "userProfile": {"name":"Imported","age":40,"gender":"female","height":160,"weight":60,"activityLevel":"light","goal":"energy"}
}`
	result := engine.Import([]byte(raw))
	if !result.Success || result.Count != 1 {
		t.Fatalf("result = %+v", result)
	}
	if _, ok := engine.Lifestyle()["2024-05-01"]; ok {
		t.Fatal("lifestyle must be overwritten wholesale, not merged")
	}
	if engine.Profile().Name != "Imported" {
		t.Fatalf("profile = %+v", engine.Profile())
	}
	if !engine.TakenOn("2024-06-02", "s1") {
		t.Fatal("imported history missing")
	}
}

func TestImportRepairsAshwagandhaDescription(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)

	raw := `[{"id":"s1","name":"Ashwagandha KSM-66","description":"Omega-3 fatty acids, specifically EPA and DHA","benefits":["Heart Health"]}]`
	result := engine.Import([]byte(raw))
	if !result.Success {
		t.Fatalf("result = %+v", result)
	}
	sup := engine.Supplements()[0]
	if strings.Contains(strings.ToLower(sup.Description), "fatty acids") {
		t.Fatalf("bad description survived: %q", sup.Description)
	}
	if sup.RecommendedTime != "Night" {
		t.Fatalf("expected fresh Ashwagandha enrichment, got %+v", sup)
	}
}

func TestImportMalformedJSON(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)
	engine.AddSupplement(model.Supplement{Name: "Zinc"})

	result := engine.Import([]byte("{not json"))
	if result.Success || result.Message == "" {
		t.Fatalf("result = %+v", result)
	}
	if len(engine.Supplements()) != 1 {
		t.Fatal("failed import must not mutate state")
	}
}

func TestImportWithoutSupplements(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)

	sup := engine.AddSupplement(model.Supplement{Name: "Zinc"})
	engine.ToggleLog("2024-06-01", sup.ID, nil)
	engine.SetSleep("2024-06-01", 7)
	engine.UpdateProfile(service.ProfilePatch{Name: strPtr("Dana")})

	for _, raw := range []string{
		`[]`,
		`{"history": {}}`,
		`{"history": {}, "lifestyle": {}, "userProfile": {"name":"Intruder"}}`,
	} {
		result := engine.Import([]byte(raw))
		if result.Success {
			t.Fatalf("import %q should fail", raw)
		}
		if result.Message != "no supplements found in data" {
			t.Fatalf("message = %q", result.Message)
		}
	}

	// A failed import on a shape without a supplement list must leave every
	// record untouched.
	if len(engine.History()["2024-06-01"]) != 1 {
		t.Fatalf("history mutated by failed import: %+v", engine.History())
	}
	if engine.LifestyleOn("2024-06-01").SleepHours != 7 {
		t.Fatalf("lifestyle mutated by failed import: %+v", engine.Lifestyle())
	}
	if engine.Profile().Name != "Dana" {
		t.Fatalf("profile mutated by failed import: %+v", engine.Profile())
	}
	if len(engine.Supplements()) != 1 {
		t.Fatalf("supplements mutated by failed import: %+v", engine.Supplements())
	}
}
