package service

import "github.com/daniazubel1/suptrack/internal/model"

// ProfilePatch is a partial profile update; nil fields are left unchanged.
type ProfilePatch struct {
	Name          *string
	Age           *int
	Gender        *string
	Height        *float64
	Weight        *float64
	ActivityLevel *string
	Goal          *string
}

// UpdateProfile shallow-merges patch into the profile singleton. The
// achievements, notifications and schedule sub-objects have their own
// additive operations and are never touched here.
func (e *Engine) UpdateProfile(p ProfilePatch) {
	if p.Name != nil {
		e.profile.Name = *p.Name
	}
	if p.Age != nil {
		e.profile.Age = *p.Age
	}
	if p.Gender != nil {
		e.profile.Gender = *p.Gender
	}
	if p.Height != nil {
		e.profile.Height = *p.Height
	}
	if p.Weight != nil {
		e.profile.Weight = *p.Weight
	}
	if p.ActivityLevel != nil {
		e.profile.ActivityLevel = *p.ActivityLevel
	}
	if p.Goal != nil {
		e.profile.Goal = *p.Goal
	}
	e.saveProfile()
}

// SetNotification configures one reminder category. An existing lastRun stamp
// survives reconfiguration so a category cannot fire twice in a day by being
// edited.
func (e *Engine) SetNotification(category string, pref model.NotificationPref) {
	if e.profile.Notifications == nil {
		e.profile.Notifications = make(map[string]model.NotificationPref)
	}
	if pref.LastRun == "" {
		pref.LastRun = e.profile.Notifications[category].LastRun
	}
	e.profile.Notifications[category] = pref
	e.saveProfile()
}

// SetWorkoutDays replaces the scheduled workout weekdays (0 = Sunday).
func (e *Engine) SetWorkoutDays(days []int) {
	e.profile.Schedule = &model.Schedule{WorkoutDays: append([]int(nil), days...)}
	e.saveProfile()
}
