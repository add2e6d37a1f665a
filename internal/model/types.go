// Package model defines the persisted record types. JSON field names are
// camelCase to stay compatible with snapshots exported by earlier versions of
// the tracker.
package model

const (
	TypePill   = "pill"
	TypePowder = "powder"
	TypeLiquid = "liquid"
	TypeFood   = "food"
)

const (
	TimingMorning      = "morning"
	TimingPreWorkout   = "pre-workout"
	TimingIntraWorkout = "intra-workout"
	TimingPostWorkout  = "post-workout"
	TimingNight        = "night"
	TimingAny          = "any"
	TimingWorkout      = "workout"
)

const (
	ContextFasted      = "fasted"
	ContextWithFood    = "with-food"
	ContextPreWorkout  = "pre-workout"
	ContextPostWorkout = "post-workout"
)

const StatusTaken = "taken"

// Supplement is a stocked item the user intends to take. Description,
// Benefits, FoodReq, Warning and RecommendedTime are set by catalog
// enrichment; ServingsPerContainer/ServingsLeft are absent when the user does
// not track stock.
type Supplement struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Brand                string   `json:"brand,omitempty"`
	Dosage               string   `json:"dosage,omitempty"`
	Type                 string   `json:"type,omitempty"`
	Timing               string   `json:"timing,omitempty"`
	Notes                string   `json:"notes,omitempty"`
	FoodReq              string   `json:"foodReq,omitempty"`
	ServingsPerContainer *int     `json:"servingsPerContainer,omitempty"`
	ServingsLeft         *int     `json:"servingsLeft,omitempty"`
	Description          string   `json:"description,omitempty"`
	Benefits             []string `json:"benefits,omitempty"`
	Warning              string   `json:"warning,omitempty"`
	RecommendedTime      string   `json:"recommendedTime,omitempty"`
}

// LogEntry records one intake. SupplementID is a reference, not ownership:
// entries may outlive their supplement and readers must skip unresolved ids.
type LogEntry struct {
	SupplementID string `json:"supplementId"`
	Time         string `json:"time"`
	Context      string `json:"context"`
	Status       string `json:"status"`
}

// History maps YYYY-MM-DD dates to that day's log entries. At most one entry
// exists per (date, supplement) pair.
type History map[string][]LogEntry

// DayLifestyle holds the per-day metrics.
type DayLifestyle struct {
	SleepHours float64 `json:"sleepHours,omitempty"`
	Workout    Workout `json:"workout"`
}

// Lifestyle maps YYYY-MM-DD dates to that day's metrics. Absent dates mean
// zero sleep and no workout.
type Lifestyle map[string]DayLifestyle

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

const (
	GoalHealth     = "health"
	GoalMuscleGain = "muscle_gain"
	GoalWeightLoss = "weight_loss"
	GoalEnergy     = "energy"
)

// Reminder categories.
const (
	CategoryMorning = "morning"
	CategoryNight   = "night"
	CategoryWorkout = "workout"
)

type NotificationPref struct {
	Enabled bool   `json:"enabled"`
	Time    string `json:"time"`
	LastRun string `json:"lastRun,omitempty"`
}

type Schedule struct {
	WorkoutDays []int `json:"workoutDays"`
}

// UserProfile is the singleton profile record. Achievements maps achievement
// ids to their unlock timestamps and only ever grows.
type UserProfile struct {
	Name          string                      `json:"name"`
	Age           int                         `json:"age"`
	Gender        string                      `json:"gender"`
	Height        float64                     `json:"height"`
	Weight        float64                     `json:"weight"`
	ActivityLevel string                      `json:"activityLevel"`
	Goal          string                      `json:"goal"`
	Achievements  map[string]string           `json:"achievements,omitempty"`
	Notifications map[string]NotificationPref `json:"notifications,omitempty"`
	Schedule      *Schedule                   `json:"schedule,omitempty"`
}

// DefaultProfile matches the profile created on first load.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:          "Guest User",
		Age:           30,
		Gender:        GenderMale,
		Height:        175,
		Weight:        75,
		ActivityLevel: ActivityModerate,
		Goal:          GoalHealth,
	}
}
