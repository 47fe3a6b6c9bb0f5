package refill

import (
	"time"

	"wateen/client/internal/models"
)

// AlertThresholdDays matches the backend's push-alert window; the banner
// mirrors it so both channels agree on when a refill is due.
const AlertThresholdDays = 3

// Alerts computes which medications run out within the threshold. A
// medication without full quantity data never alerts.
func Alerts(meds []models.Medication, today time.Time) []models.RefillAlert {
	var alerts []models.RefillAlert
	for _, med := range meds {
		daysLeft, ok := DaysLeft(med, today)
		if !ok || daysLeft > AlertThresholdDays {
			continue
		}
		alerts = append(alerts, models.RefillAlert{
			MedicationID:   med.ID,
			MedicationName: med.Name,
			DaysLeft:       daysLeft,
		})
	}
	return alerts
}

// DaysLeft estimates supply from the starting quantity and the dosing
// rate: startQuantity / (doseQuantity * timesPerDay) days from the start
// date.
func DaysLeft(med models.Medication, today time.Time) (int, bool) {
	if med.StartQuantity <= 0 || med.DoseQuantity <= 0 || med.TimesPerDay <= 0 {
		return 0, false
	}
	start, err := time.Parse("2006-01-02", med.StartDate)
	if err != nil {
		return 0, false
	}

	daysSupply := med.StartQuantity / (med.DoseQuantity * med.TimesPerDay)
	depletion := start.AddDate(0, 0, daysSupply)
	return int(depletion.Sub(today).Hours() / 24), true
}
