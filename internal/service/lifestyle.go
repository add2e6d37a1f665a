package service

import "github.com/daniazubel1/suptrack/internal/model"

// SetSleep upserts the date's sleep hours, preserving the workout field.
func (e *Engine) SetSleep(date string, hours float64) {
	if hours < 0 {
		hours = 0
	}
	day := e.lifestyle[date]
	day.SleepHours = hours
	if e.lifestyle == nil {
		e.lifestyle = model.Lifestyle{}
	}
	e.lifestyle[date] = day
	e.saveLifestyle()
}

// SetWorkout upserts the date's workout, preserving the sleep field.
func (e *Engine) SetWorkout(date string, w model.Workout) {
	day := e.lifestyle[date]
	day.Workout = w
	if e.lifestyle == nil {
		e.lifestyle = model.Lifestyle{}
	}
	e.lifestyle[date] = day
	e.saveLifestyle()
}

// LifestyleOn returns the date's metrics; absent dates read as zero sleep and
// no workout.
func (e *Engine) LifestyleOn(date string) model.DayLifestyle {
	return e.lifestyle[date]
}
