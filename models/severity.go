package models

// Severity is the predicted traffic severity class. Only the prediction
// pipeline produces values; they are immutable once recorded.
type Severity int

const (
	SeverityMinimal Severity = iota
	SeverityMinor
	SeverityModerate
	SeveritySevere
)

type SeverityInfo struct {
	Class       int    `json:"class"`
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

var severityClasses = [...]SeverityInfo{
	{0, "Minimal", "#4CAF50", "Minimal impact on traffic flow"},
	{1, "Minor", "#FFC107", "Minor delays and slowdowns"},
	{2, "Moderate", "#FF9800", "Moderate congestion affecting travel time"},
	{3, "Severe", "#F44336", "Severe congestion with significant delays"},
}

func (s Severity) Valid() bool {
	return s >= 0 && int(s) < len(severityClasses)
}

func (s Severity) Label() string {
	if !s.Valid() {
		return "Unknown"
	}
	return severityClasses[s].Label
}

func (s Severity) Info() SeverityInfo {
	if !s.Valid() {
		return SeverityInfo{Class: int(s), Label: "Unknown", Color: "#CCCCCC"}
	}
	return severityClasses[s]
}

// SeverityClasses returns the four-class reference scale in class order.
func SeverityClasses() []SeverityInfo {
	out := make([]SeverityInfo, len(severityClasses))
	copy(out, severityClasses[:])
	return out
}
