package api

import (
	"context"
	"net/http"

	"wateen/client/internal/models"
)

func (c *Client) ConfirmRefill(ctx context.Context, confirmation models.RefillConfirmation) error {
	return c.doJSON(ctx, http.MethodPost, "/reminders/refill-log", confirmation, true, nil)
}

func (c *Client) RespondToReminder(ctx context.Context, response models.AdherenceResponse) error {
	return c.doJSON(ctx, http.MethodPost, "/reminders/reminder-response", response, true, nil)
}

func (c *Client) Insights(ctx context.Context) (*models.Insights, error) {
	var insights models.Insights
	if err := c.doJSON(ctx, http.MethodGet, "/insights", nil, true, &insights); err != nil {
		return nil, err
	}
	return &insights, nil
}
