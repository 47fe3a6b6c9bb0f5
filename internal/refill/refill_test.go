package refill

import (
	"testing"
	"time"

	"wateen/client/internal/models"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestDaysLeftFromDosingRate(t *testing.T) {
	// 30 pills, 1 per dose, 3 doses a day: ten days of supply.
	med := models.Medication{
		Name:          "Metformin",
		StartDate:     "2024-06-01",
		StartQuantity: 30,
		DoseQuantity:  1,
		TimesPerDay:   3,
	}

	daysLeft, ok := DaysLeft(med, day("2024-06-07"))
	if !ok {
		t.Fatal("expected a computable supply")
	}
	if daysLeft != 3 {
		t.Errorf("want 3 days left, got %d", daysLeft)
	}
}

func TestDaysLeftNeedsFullQuantityData(t *testing.T) {
	med := models.Medication{Name: "Aspirin", StartDate: "2024-06-01", StartQuantity: 30}
	if _, ok := DaysLeft(med, day("2024-06-07")); ok {
		t.Error("missing dosing rate must not produce an estimate")
	}

	med = models.Medication{Name: "Aspirin", StartQuantity: 30, DoseQuantity: 1, TimesPerDay: 1}
	if _, ok := DaysLeft(med, day("2024-06-07")); ok {
		t.Error("missing start date must not produce an estimate")
	}
}

func TestAlertsOnlyWithinThreshold(t *testing.T) {
	meds := []models.Medication{
		{ID: 1, Name: "Metformin", StartDate: "2024-06-01",
			StartQuantity: 30, DoseQuantity: 1, TimesPerDay: 3}, // 3 days left
		{ID: 2, Name: "Lisinopril", StartDate: "2024-06-01",
			StartQuantity: 90, DoseQuantity: 1, TimesPerDay: 1}, // plenty left
		{ID: 3, Name: "Aspirin"}, // no data
	}

	alerts := Alerts(meds, day("2024-06-07"))
	if len(alerts) != 1 {
		t.Fatalf("want 1 alert, got %d", len(alerts))
	}
	if alerts[0].MedicationID != 1 || alerts[0].DaysLeft != 3 {
		t.Errorf("unexpected alert %+v", alerts[0])
	}
}

func TestAlertsIncludeOverdueSupplies(t *testing.T) {
	meds := []models.Medication{
		{ID: 1, Name: "Metformin", StartDate: "2024-06-01",
			StartQuantity: 30, DoseQuantity: 1, TimesPerDay: 3},
	}

	alerts := Alerts(meds, day("2024-06-20"))
	if len(alerts) != 1 {
		t.Fatalf("a depleted supply should still alert, got %d alerts", len(alerts))
	}
	if alerts[0].DaysLeft >= 0 {
		t.Errorf("want negative days left, got %d", alerts[0].DaysLeft)
	}
}
