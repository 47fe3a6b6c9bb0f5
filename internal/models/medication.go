package models

import "fmt"

type ScheduleType string

const (
	ScheduleFixed        ScheduleType = "fixed"
	ScheduleEveryXHours  ScheduleType = "everyXHours"
	ScheduleSpecificDays ScheduleType = "specificDays"
	SchedulePRN          ScheduleType = "prn"
)

type ReminderRepeat string

const (
	RepeatDaily   ReminderRepeat = "Daily"
	RepeatWeekly  ReminderRepeat = "Weekly"
	RepeatMonthly ReminderRepeat = "Monthly"
)

var FormTypes = []string{"Pill", "Injection", "Syrup", "Tablet"}

var DaysOfWeek = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Schedule is one of the four dosing variants. Each variant carries only
// the fields that matter to it and knows how to validate itself.
type Schedule interface {
	Type() ScheduleType
	Validate() error
}

type FixedSchedule struct {
	Times []string
}

func (s FixedSchedule) Type() ScheduleType { return ScheduleFixed }

func (s FixedSchedule) Validate() error {
	if len(s.Times) == 0 {
		return fmt.Errorf("at least one time is required")
	}
	for _, t := range s.Times {
		if t == "" {
			return fmt.Errorf("at least one time is required")
		}
	}
	return nil
}

type IntervalSchedule struct {
	EveryXHours int
}

func (s IntervalSchedule) Type() ScheduleType { return ScheduleEveryXHours }

func (s IntervalSchedule) Validate() error {
	if s.EveryXHours < 1 {
		return fmt.Errorf("interval must be at least 1 hour")
	}
	return nil
}

type DaysSchedule struct {
	Days []string
}

func (s DaysSchedule) Type() ScheduleType { return ScheduleSpecificDays }

func (s DaysSchedule) Validate() error {
	if len(s.Days) == 0 {
		return fmt.Errorf("select at least one day")
	}
	for _, d := range s.Days {
		if !validDay(d) {
			return fmt.Errorf("unknown day %q", d)
		}
	}
	return nil
}

type PRNSchedule struct{}

func (s PRNSchedule) Type() ScheduleType { return SchedulePRN }

func (s PRNSchedule) Validate() error { return nil }

func validDay(d string) bool {
	for _, day := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// Medication is the backend's record shape.
type Medication struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Schedule      string `json:"schedule"`
	Dose          string `json:"dose"`
	StartDate     string `json:"start_date,omitempty"`
	StartQuantity int    `json:"start_quantity,omitempty"`
	DoseQuantity  int    `json:"dose_quantity,omitempty"`
	TimesPerDay   int    `json:"times_per_day,omitempty"`
}

// CreateMedicationRequest is the POST /medications body. Field names follow
// the form contract the backend accepts for creation.
type CreateMedicationRequest struct {
	Name           string       `json:"name" validate:"required"`
	Dosage         string       `json:"dosage" validate:"required"`
	FormType       string       `json:"formType" validate:"required"`
	ScheduleType   ScheduleType `json:"scheduleType" validate:"required,oneof=fixed everyXHours specificDays prn"`
	FixedTimes     []string     `json:"fixedTimes,omitempty"`
	EveryXHours    int          `json:"everyXHours,omitempty"`
	SpecificDays   []string     `json:"specificDays,omitempty"`
	PRN            bool         `json:"prn,omitempty"`
	StartDate      string       `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate        string       `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RefillCount    int          `json:"refillCount,omitempty" validate:"min=0"`
	StartQuantity  int          `json:"startQuantity,omitempty" validate:"min=0"`
	DoseQuantity   int          `json:"doseQuantity,omitempty" validate:"min=0"`
	TimesPerDay    int          `json:"timesPerDay,omitempty" validate:"min=0"`
	Notes          string       `json:"notes,omitempty"`
	ReminderOn     bool         `json:"reminderOn"`
	ReminderTime   string       `json:"reminderTime,omitempty"`
	ReminderRepeat string       `json:"reminderRepeat,omitempty" validate:"omitempty,oneof=Daily Weekly Monthly"`
}

// DosingSchedule extracts the tagged variant from the flat request.
func (r CreateMedicationRequest) DosingSchedule() Schedule {
	switch r.ScheduleType {
	case ScheduleFixed:
		return FixedSchedule{Times: r.FixedTimes}
	case ScheduleEveryXHours:
		return IntervalSchedule{EveryXHours: r.EveryXHours}
	case ScheduleSpecificDays:
		return DaysSchedule{Days: r.SpecificDays}
	default:
		return PRNSchedule{}
	}
}
