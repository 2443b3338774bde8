package main

import (
	"encoding/json"

	"lg/energy-estimator-go-api/internal/energy"
)

// formText is a raw form field. JSON clients may send it as a string or as a
// bare number; either way it is kept as text and coerced later, the same way
// a browser form hands over its input values.
type formText string

func (f *formText) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = formText(s)
		return nil
	}
	*f = formText(b)
	return nil
}

/* ─── Request / Response types ───────────────────────────────────────── */

// estimateRequest is the calculator form for GET and POST /api/estimate.
// All fields are raw text; empty or non-numeric values become 0.
type estimateRequest struct {
	Sex           formText `json:"sex"            form:"sex"`
	Age           formText `json:"age"            form:"age"`
	Weight        formText `json:"weight"         form:"weight"`
	Height        formText `json:"height"         form:"height"`
	ActivityLevel formText `json:"activity_level" form:"activity_level"`
	GoalLevel     formText `json:"goal_level"     form:"goal_level"`
}

// estimateResponse flattens the estimator result and adds what a form needs
// to render it: the goal label, the coerced profile, and input warnings.
// Warnings is always an array (never null) in JSON.
type estimateResponse struct {
	energy.EnergyResult
	GoalLabel string              `json:"goal_label"`
	Profile   energy.InputProfile `json:"profile"`
	Warnings  []string            `json:"warnings"`
}

// option is one entry of a select on the calculator form.
type option struct {
	Value      string   `json:"value"`
	Label      string   `json:"label"`
	Multiplier *float64 `json:"multiplier,omitempty"`
}

// optionsResponse is the response shape for GET /api/options.
type optionsResponse struct {
	Sexes          []option          `json:"sexes"`
	ActivityLevels []option          `json:"activity_levels"`
	GoalLevels     []option          `json:"goal_levels"`
	Defaults       map[string]string `json:"defaults"`
}
