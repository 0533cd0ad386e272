package request

import (
	"strings"

	"builder_estimates/internal/domain/entities"
)

// EstimateStatusRequest is the admin payload for changing an estimate's status.
type EstimateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r EstimateStatusRequest) ResolveStatus() entities.EstimateStatus {
	return entities.EstimateStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}
