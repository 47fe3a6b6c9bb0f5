package api

import (
	"context"
	"net/http"

	"wateen/client/internal/models"
)

func (c *Client) CreateMedication(ctx context.Context, req models.CreateMedicationRequest) (*models.Medication, error) {
	var created models.Medication
	if err := c.doJSON(ctx, http.MethodPost, "/medications", req, true, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListMedications(ctx context.Context) ([]models.Medication, error) {
	var meds []models.Medication
	if err := c.doJSON(ctx, http.MethodGet, "/medications", nil, true, &meds); err != nil {
		return nil, err
	}
	return meds, nil
}
