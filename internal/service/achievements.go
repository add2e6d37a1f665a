package service

import (
	"time"

	"github.com/daniazubel1/suptrack/internal/model"
)

// AchievementDef describes one achievement for display. Streak-based entries
// are defined for rendering but have no evaluator yet.
type AchievementDef struct {
	ID          string
	Title       string
	Description string
}

var achievementDefs = []AchievementDef{
	{ID: "first_step", Title: "First Step", Description: "Log your first supplement."},
	{ID: "streak_3", Title: "Momentum", Description: "Achieve a 3-day consistency streak."},
	{ID: "streak_7", Title: "Unstoppable", Description: "Achieve a 7-day consistency streak."},
	{ID: "early_bird", Title: "Early Bird", Description: "Complete your morning stack before 9 AM."},
	{ID: "night_owl", Title: "Night Owl", Description: "Complete your night stack."},
	{ID: "gym_rat", Title: "Gym Rat", Description: "Log a workout 3 days in a row."},
	{ID: "perfect_week", Title: "Perfect Week", Description: "100% adherence for 7 days straight."},
	{ID: "supp_master", Title: "Supp Master", Description: "Have 5 or more supplements in your stack."},
}

// AchievementDefs returns the display catalog in its fixed order.
func AchievementDefs() []AchievementDef {
	return achievementDefs
}

// EvaluateAchievements computes newly unlocked achievements. It is pure:
// already-unlocked ids are never re-evaluated or revoked, and each unlock is
// stamped with now.
func EvaluateAchievements(history model.History, supplements []model.Supplement, profile model.UserProfile, now time.Time) map[string]string {
	unlocked := func(id string) bool {
		_, ok := profile.Achievements[id]
		return ok
	}
	stamp := now.Format(time.RFC3339)
	today := now.Format(dateLayout)
	fresh := make(map[string]string)

	if !unlocked("first_step") {
		for _, dayLogs := range history {
			if len(dayLogs) > 0 {
				fresh["first_step"] = stamp
				break
			}
		}
	}

	if !unlocked("supp_master") && len(supplements) >= 5 {
		fresh["supp_master"] = stamp
	}

	if !unlocked("early_bird") && now.Hour() < 9 &&
		stackComplete(history, supplements, model.TimingMorning, today) {
		fresh["early_bird"] = stamp
	}

	if !unlocked("night_owl") && stackComplete(history, supplements, model.TimingNight, today) {
		fresh["night_owl"] = stamp
	}

	return fresh
}

// stackComplete reports whether the set of supplements with the given timing
// is non-empty and every member has a log entry for the date.
func stackComplete(history model.History, supplements []model.Supplement, timing, date string) bool {
	logged := make(map[string]bool, len(history[date]))
	for _, entry := range history[date] {
		logged[entry.SupplementID] = true
	}
	found := false
	for _, sup := range supplements {
		if sup.Timing != timing {
			continue
		}
		found = true
		if !logged[sup.ID] {
			return false
		}
	}
	return found
}
