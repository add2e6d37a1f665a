package service

import (
	"math"
	"time"

	"github.com/daniazubel1/suptrack/internal/model"
)

// DayStat is one day of derived metrics for trend rendering.
type DayStat struct {
	Date        string  `json:"date"`
	Consistency int     `json:"consistency"`
	SleepHours  float64 `json:"sleepHours"`
	WorkoutDone bool    `json:"workoutDone"`
}

// TrendReport summarizes a date range.
type TrendReport struct {
	Days               []DayStat `json:"days"`
	AverageConsistency int       `json:"avgConsistency"`
	AverageSleepHours  float64   `json:"avgSleepHours"`
	WorkoutCount       int       `json:"workoutCount"`
}

// Consistency is the percentage of the current supplement list with a log
// entry on date, counting only entries whose supplement still exists.
func (e *Engine) Consistency(date string) int {
	if len(e.supplements) == 0 {
		return 0
	}
	logged := 0
	for _, sup := range e.supplements {
		if e.TakenOn(date, sup.ID) {
			logged++
		}
	}
	return int(math.Round(100 * float64(logged) / float64(len(e.supplements))))
}

// CurrentStreak counts consecutive days ending at today with at least one
// log entry.
func (e *Engine) CurrentStreak(today string) int {
	day, err := time.ParseInLocation(dateLayout, today, time.Local)
	if err != nil {
		return 0
	}
	streak := 0
	for {
		if len(e.history[day.Format(dateLayout)]) == 0 {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

// Trends computes per-day consistency, sleep and workout stats over the
// inclusive date range.
func (e *Engine) Trends(from, to time.Time) TrendReport {
	report := TrendReport{Days: make([]DayStat, 0)}
	sleepSum := 0.0
	consistencySum := 0
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		date := day.Format(dateLayout)
		lifestyle := e.lifestyle[date]
		stat := DayStat{
			Date:        date,
			Consistency: e.Consistency(date),
			SleepHours:  lifestyle.SleepHours,
			WorkoutDone: lifestyle.Workout.Done,
		}
		report.Days = append(report.Days, stat)
		sleepSum += stat.SleepHours
		consistencySum += stat.Consistency
		if stat.WorkoutDone {
			report.WorkoutCount++
		}
	}
	if n := len(report.Days); n > 0 {
		report.AverageConsistency = int(math.Round(float64(consistencySum) / float64(n)))
		report.AverageSleepHours = math.Round(10*sleepSum/float64(n)) / 10
	}
	return report
}

// LowStock lists supplements with five or fewer servings left.
func (e *Engine) LowStock() []model.Supplement {
	low := make([]model.Supplement, 0)
	for _, sup := range e.supplements {
		if sup.ServingsLeft != nil && *sup.ServingsLeft <= 5 {
			low = append(low, sup)
		}
	}
	return low
}
