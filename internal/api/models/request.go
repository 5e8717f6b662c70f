package models

import "macro-stress/internal/model"

// ScenarioRequest is a scenario sent inline with a request. It mirrors the
// YAML scenario file except that calibration files cannot be referenced.
type ScenarioRequest struct {
	Name        string             `json:"name,omitempty"`
	Horizon     int                `json:"horizon" binding:"max=4000"`
	Series      model.SeriesInputs `json:"series"`
	Initial     model.Initial      `json:"initial"`
	Shocks      model.Shocks       `json:"shocks,omitempty"`
	Calibration map[string]float64 `json:"calibration,omitempty"`
}

// SimulateRequest represents the request body for running a projection
type SimulateRequest struct {
	Scenario ScenarioRequest `json:"scenario"`
	Options  SimulateOptions `json:"options,omitempty"`
}

// SimulateOptions contains optional output parameters
type SimulateOptions struct {
	IncludeTable bool `json:"include_table,omitempty"` // default: false
}

// CompareRequest runs a base scenario and a set of variations of it.
type CompareRequest struct {
	Base       ScenarioRequest `json:"base"`
	Variations []Variation     `json:"variations" binding:"required,min=1,dive"`
}

// Variation changes part of the base scenario. Calibration entries overlay the
// base calibration, shock paths replace the base path of the same name and
// Initial, when given, replaces the base initial conditions.
type Variation struct {
	Name        string             `json:"name" binding:"required"`
	Calibration map[string]float64 `json:"calibration,omitempty"`
	Shocks      model.Shocks       `json:"shocks,omitempty"`
	Initial     *model.Initial     `json:"initial,omitempty"`
}
