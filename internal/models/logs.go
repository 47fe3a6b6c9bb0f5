package models

type AdherenceStatus string

const (
	AdherenceTaken   AdherenceStatus = "taken"
	AdherenceSkipped AdherenceStatus = "skipped"
	AdherenceSnoozed AdherenceStatus = "snoozed"
)

// AdherenceResponse is the POST /reminders/reminder-response body.
type AdherenceResponse struct {
	MedicationID int64           `json:"medication"`
	Status       AdherenceStatus `json:"status" validate:"required,oneof=taken skipped snoozed"`
	Reason       string          `json:"reason,omitempty"`
}

// RefillConfirmation is the POST /reminders/refill-log body.
type RefillConfirmation struct {
	MedicationID int64  `json:"medication_id"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
}

// SideEffectReport goes out as multipart form data; ImagePath points at a
// local file attached when set.
type SideEffectReport struct {
	MedicationID int64  `validate:"required"`
	Symptom      string `validate:"required"`
	Severity     int    `validate:"required,min=1,max=10"`
	Notes        string
	ImagePath    string
}

// RefillAlert is computed client-side from the medication list.
type RefillAlert struct {
	MedicationID   int64
	MedicationName string
	DaysLeft       int
}

type SymptomTrend struct {
	Symptom string `json:"symptom"`
	Count   int    `json:"count"`
}

type MissedDoseReason struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// Insights is the GET /insights response.
type Insights struct {
	AdherenceScore     float64            `json:"adherence_score"`
	SymptomTrends      []SymptomTrend     `json:"symptom_trends"`
	MissedDoseBreakdown []MissedDoseReason `json:"missed_dose_breakdown"`
	CurrentStreak      int                `json:"current_streak"`
}
