package pipeline

import (
	"fmt"
	"math"

	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/models"
)

// ValidationError names the offending field and why it was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// PredictionRequest carries the eight raw input fields as submitted by the
// presentation surface. Pointers distinguish a missing field from zero.
type PredictionRequest struct {
	Longitude   *float64 `json:"longitude"`
	Latitude    *float64 `json:"latitude"`
	Distance    *float64 `json:"distance"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	Pressure    *float64 `json:"pressure"`
	Hour        *float64 `json:"hour"`
	Duration    *float64 `json:"duration"`
}

// Validate checks presence, numeric well-formedness, and per-field ranges,
// returning a FeatureVector in training order or the first violation found.
func Validate(req PredictionRequest) (models.FeatureVector, error) {
	var fv models.FeatureVector

	fields := []struct {
		name  string
		value *float64
	}{
		{"longitude", req.Longitude},
		{"latitude", req.Latitude},
		{"distance", req.Distance},
		{"temperature", req.Temperature},
		{"humidity", req.Humidity},
		{"pressure", req.Pressure},
		{"hour", req.Hour},
		{"duration", req.Duration},
	}

	for _, f := range fields {
		if f.value == nil {
			return fv, &ValidationError{Field: f.name, Reason: "missing"}
		}
		if math.IsNaN(*f.value) || math.IsInf(*f.value, 0) {
			return fv, &ValidationError{Field: f.name, Reason: "must be a finite number"}
		}
	}

	if *req.Longitude < -180 || *req.Longitude > 180 {
		return fv, &ValidationError{Field: "longitude", Reason: "must be between -180 and 180"}
	}
	if *req.Latitude < -90 || *req.Latitude > 90 {
		return fv, &ValidationError{Field: "latitude", Reason: "must be between -90 and 90"}
	}
	if *req.Distance < 0 {
		return fv, &ValidationError{Field: "distance", Reason: "must be non-negative"}
	}
	if *req.Hour != math.Trunc(*req.Hour) {
		return fv, &ValidationError{Field: "hour", Reason: "must be a whole number"}
	}
	if *req.Hour < 0 || *req.Hour > 23 {
		return fv, &ValidationError{Field: "hour", Reason: "must be between 0 and 23"}
	}
	if *req.Duration < 0 {
		return fv, &ValidationError{Field: "duration", Reason: "must be non-negative"}
	}

	return models.FeatureVector{
		Longitude:   *req.Longitude,
		Latitude:    *req.Latitude,
		Distance:    *req.Distance,
		Temperature: *req.Temperature,
		Humidity:    *req.Humidity,
		Pressure:    *req.Pressure,
		Hour:        int(*req.Hour),
		Duration:    *req.Duration,
	}, nil
}
