package service

import (
	"Pinseed/internal/dataset"
	"Pinseed/models"
	"context"
	"fmt"
	"slices"
)

func (r *loadRun) loadInteraction(ctx context.Context, row dataset.Row) (string, error) {
	userID, err := r.resolveUser(ctx, row.String("user_id"))
	if err != nil {
		return "", err
	}
	pinID, err := r.resolvePin(ctx, row.String("pin_id"))
	if err != nil {
		return "", err
	}
	interactionType := row.String("interaction_type")
	if !slices.Contains(models.InteractionTypes, interactionType) {
		return "", fmt.Errorf("column interaction_type: unknown type %q", interactionType)
	}

	item := &models.UserInteraction{
		UserID:          userID,
		PinID:           pinID,
		InteractionType: interactionType,
		SessionID:       row.Optional("session_id"),
		DeviceType:      row.String("device_type"),
		Referrer:        row.String("referrer"),
	}
	if item.Timestamp, err = row.Time("timestamp"); err != nil {
		return "", err
	}

	_, created, err := r.InteractionDAO.CreateIfAbsent(ctx, item)
	if err != nil {
		return "", err
	}
	return resultOf(created), nil
}
