package api

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// NutritionPlan is a coach-authored nutrition program.
type NutritionPlan struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	DurationWeeks int        `json:"durationWeeks"`
	Price         float64    `json:"price"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// ListNutritionPlans returns all plans, or only the active ones when
// activeOnly is set.
func (c *Client) ListNutritionPlans(ctx context.Context, activeOnly bool) ([]NutritionPlan, error) {
	path := "/api/nutrition/plans"
	if activeOnly {
		path += "?active=true"
	}
	var plans []NutritionPlan
	if err := c.request(ctx, http.MethodGet, path, nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// GetNutritionPlan fetches a single plan.
func (c *Client) GetNutritionPlan(ctx context.Context, id int64) (*NutritionPlan, error) {
	var plan NutritionPlan
	err := c.request(ctx, http.MethodGet, fmt.Sprintf("/api/nutrition/plans/%d", id), nil, &plan)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// ActivateNutritionPlan makes a plan visible to clients.
func (c *Client) ActivateNutritionPlan(ctx context.Context, id int64) error {
	return c.request(ctx, http.MethodPut, fmt.Sprintf("/api/nutrition/plans/%d/activate", id), nil, nil)
}

// DeactivateNutritionPlan hides a plan from clients.
func (c *Client) DeactivateNutritionPlan(ctx context.Context, id int64) error {
	return c.request(ctx, http.MethodPut, fmt.Sprintf("/api/nutrition/plans/%d/deactivate", id), nil, nil)
}
