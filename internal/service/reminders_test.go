package service_test

import (
	"testing"
	"time"

	"github.com/daniazubel1/suptrack/internal/model"
	"github.com/daniazubel1/suptrack/internal/service"
)

// 2024-06-03 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2024, 6, 3, hour, minute, 0, 0, time.Local)
}

func reminderEngine(t *testing.T) (*service.Engine, model.Supplement) {
	t.Helper()
	engine := newTestEngine(t)
	sup := engine.AddSupplement(model.Supplement{Name: "Vitamin D3", Timing: model.TimingMorning})
	engine.SetNotification(model.CategoryMorning, model.NotificationPref{Enabled: true, Time: "08:00"})
	return engine, sup
}

func TestDueRemindersFiresInsideWindow(t *testing.T) {
	t.Parallel()
	engine, _ := reminderEngine(t)

	due := engine.DueReminders(monday(8, 30))
	if len(due) != 1 || due[0].Category != model.CategoryMorning {
		t.Fatalf("due = %+v, want one morning reminder", due)
	}
	if len(due[0].Missing) != 1 || due[0].Missing[0] != "Vitamin D3" {
		t.Fatalf("missing = %v", due[0].Missing)
	}
}

func TestDueRemindersWindowBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before target", monday(7, 59), false},
		{"at target", monday(8, 0), true},
		{"end of window", monday(10, 59), true},
		{"past window", monday(11, 0), false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			engine, _ := reminderEngine(t)
			due := engine.DueReminders(tc.at)
			if (len(due) > 0) != tc.want {
				t.Fatalf("at %s: fired=%v, want %v", tc.at.Format("15:04"), len(due) > 0, tc.want)
			}
		})
	}
}

func TestDueRemindersFiresOncePerDay(t *testing.T) {
	t.Parallel()
	engine, _ := reminderEngine(t)

	if due := engine.DueReminders(monday(8, 5)); len(due) != 1 {
		t.Fatalf("first poll: %+v", due)
	}
	if due := engine.DueReminders(monday(8, 6)); len(due) != 0 {
		t.Fatalf("second poll must be silenced by lastRun: %+v", due)
	}
	pref := engine.Profile().Notifications[model.CategoryMorning]
	if pref.LastRun != "2024-06-03" {
		t.Fatalf("lastRun = %q", pref.LastRun)
	}
}

func TestDueRemindersSkipsWhenNothingMissing(t *testing.T) {
	t.Parallel()
	engine, sup := reminderEngine(t)

	engine.ToggleLog("2024-06-03", sup.ID, nil)
	if due := engine.DueReminders(monday(8, 5)); len(due) != 0 {
		t.Fatalf("nothing is missing, got %+v", due)
	}
	// A silent poll must not stamp lastRun.
	if pref := engine.Profile().Notifications[model.CategoryMorning]; pref.LastRun != "" {
		t.Fatalf("lastRun stamped without firing: %q", pref.LastRun)
	}
}

func TestDueRemindersDisabledCategory(t *testing.T) {
	t.Parallel()
	engine, _ := reminderEngine(t)

	engine.SetNotification(model.CategoryMorning, model.NotificationPref{Enabled: false, Time: "08:00"})
	if due := engine.DueReminders(monday(8, 5)); len(due) != 0 {
		t.Fatalf("disabled category fired: %+v", due)
	}
}

func TestWorkoutReminderNameHeuristic(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)

	engine.AddSupplement(model.Supplement{Name: "Creatine Monohydrate", Timing: model.TimingAny})
	engine.AddSupplement(model.Supplement{Name: "Pre-JYM", Timing: model.TimingAny})
	engine.AddSupplement(model.Supplement{Name: "Zinc", Timing: model.TimingAny})

	missing := engine.MissingForCategory(model.CategoryWorkout, "2024-06-03")
	if len(missing) != 2 {
		t.Fatalf("missing = %+v, want creatine and pre-workout names only", missing)
	}
}

func TestWorkoutReminderHonorsSchedule(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)

	engine.AddSupplement(model.Supplement{Name: "Creatine Monohydrate"})
	engine.SetNotification(model.CategoryWorkout, model.NotificationPref{Enabled: true, Time: "08:00"})

	// No schedule configured: never fires.
	if due := engine.DueReminders(monday(8, 5)); len(due) != 0 {
		t.Fatalf("workout reminder fired without a schedule: %+v", due)
	}

	// Monday is not a scheduled day.
	engine.SetWorkoutDays([]int{int(time.Tuesday)})
	if due := engine.DueReminders(monday(8, 10)); len(due) != 0 {
		t.Fatalf("workout reminder fired on an unscheduled day: %+v", due)
	}

	engine.SetWorkoutDays([]int{int(time.Monday)})
	if due := engine.DueReminders(monday(8, 15)); len(due) != 1 {
		t.Fatalf("workout reminder should fire on a scheduled Monday: %+v", due)
	}
}

func TestDueRemindersIgnoresBadClock(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)

	engine.AddSupplement(model.Supplement{Name: "Vitamin D3", Timing: model.TimingMorning})
	engine.SetNotification(model.CategoryMorning, model.NotificationPref{Enabled: true, Time: "not-a-time"})
	if due := engine.DueReminders(monday(8, 5)); len(due) != 0 {
		t.Fatalf("unparseable time must not fire: %+v", due)
	}
}
