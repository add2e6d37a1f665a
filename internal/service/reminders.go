package service

import (
	"strings"
	"time"

	"github.com/daniazubel1/suptrack/internal/model"
)

// Reminder is one fired notification: the category and the names of the
// supplements still missing for today.
type Reminder struct {
	Category string
	Missing  []string
}

// reminderWindowMinutes is how long past the configured time a category stays
// eligible to fire.
const reminderWindowMinutes = 180

// MissingForCategory returns the supplements tagged with the category's
// timing that have no log entry on date. The workout set additionally
// includes supplements whose name contains "creatine" or "pre" regardless of
// timing; the data model has no reliably populated workout tag, so the name
// heuristic stays.
func (e *Engine) MissingForCategory(category, date string) []model.Supplement {
	missing := make([]model.Supplement, 0)
	for _, sup := range e.supplements {
		if !inCategory(sup, category) {
			continue
		}
		if !e.TakenOn(date, sup.ID) {
			missing = append(missing, sup)
		}
	}
	return missing
}

func inCategory(sup model.Supplement, category string) bool {
	switch category {
	case model.CategoryWorkout:
		if sup.Timing == model.TimingWorkout {
			return true
		}
		name := strings.ToLower(sup.Name)
		return strings.Contains(name, "creatine") || strings.Contains(name, "pre")
	default:
		return sup.Timing == category
	}
}

// DueReminders evaluates the reminder predicate for every enabled category
// and stamps lastRun for the ones that fire, so a category fires at most once
// per day. The caller delivers the returned reminders.
func (e *Engine) DueReminders(now time.Time) []Reminder {
	today := now.Format(dateLayout)
	nowMinutes := now.Hour()*60 + now.Minute()

	due := make([]Reminder, 0)
	for _, category := range []string{model.CategoryMorning, model.CategoryNight, model.CategoryWorkout} {
		pref, ok := e.profile.Notifications[category]
		if !ok || !pref.Enabled {
			continue
		}
		target, ok := parseClock(pref.Time)
		if !ok {
			continue
		}
		if nowMinutes < target || nowMinutes >= target+reminderWindowMinutes {
			continue
		}
		if pref.LastRun == today {
			continue
		}
		if category == model.CategoryWorkout && !e.workoutDay(now.Weekday()) {
			continue
		}
		missing := e.MissingForCategory(category, today)
		if len(missing) == 0 {
			continue
		}

		names := make([]string, 0, len(missing))
		for _, sup := range missing {
			names = append(names, sup.Name)
		}
		due = append(due, Reminder{Category: category, Missing: names})

		pref.LastRun = today
		e.profile.Notifications[category] = pref
	}
	if len(due) > 0 {
		e.saveProfile()
	}
	return due
}

func (e *Engine) workoutDay(weekday time.Weekday) bool {
	if e.profile.Schedule == nil {
		return false
	}
	for _, day := range e.profile.Schedule.WorkoutDays {
		if day == int(weekday) {
			return true
		}
	}
	return false
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, bool) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
