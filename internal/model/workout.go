package model

import (
	"encoding/json"
	"fmt"
)

// Workout is a tagged variant: either no workout for the day, or a workout
// with a type and completion flag. Older data stored this field as a plain
// boolean or as {type, duration}; UnmarshalJSON migrates both shapes.
type Workout struct {
	Done      bool   `json:"-"`
	Type      string `json:"type,omitempty"`
	Completed bool   `json:"completed,omitempty"`
}

func (w Workout) MarshalJSON() ([]byte, error) {
	if !w.Done {
		return []byte("false"), nil
	}
	return json.Marshal(struct {
		Type      string `json:"type"`
		Completed bool   `json:"completed"`
	}{Type: w.Type, Completed: w.Completed})
}

func (w *Workout) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*w = Workout{}
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*w = Workout{Done: b}
		if b {
			w.Completed = true
		}
		return nil
	}
	var obj struct {
		Type      string `json:"type"`
		Completed *bool  `json:"completed"`
		Duration  *int   `json:"duration"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decode workout: %w", err)
	}
	w.Done = true
	w.Type = obj.Type
	switch {
	case obj.Completed != nil:
		w.Completed = *obj.Completed
	case obj.Duration != nil:
		// Legacy shape recorded a duration instead of a flag; a logged
		// duration means the workout happened.
		w.Completed = *obj.Duration > 0
	default:
		w.Completed = true
	}
	return nil
}
