package lifecycle

import (
	"fmt"

	"trading-storefront/internal/contact/model"
	appErrors "trading-storefront/pkg/errors"
)

// State machine for contact message status transitions. The policy is
// deliberately permissive: an admin may move a message between any of the
// enumerated states, including backwards (e.g. archived -> new). Tightening
// the policy only requires editing this table.
var validTransitions = map[model.Status][]model.Status{
	model.StatusNew: {
		model.StatusNew,
		model.StatusRead,
		model.StatusReplied,
		model.StatusArchived,
	},
	model.StatusRead: {
		model.StatusNew,
		model.StatusRead,
		model.StatusReplied,
		model.StatusArchived,
	},
	model.StatusReplied: {
		model.StatusNew,
		model.StatusRead,
		model.StatusReplied,
		model.StatusArchived,
	},
	model.StatusArchived: {
		model.StatusNew,
		model.StatusRead,
		model.StatusReplied,
		model.StatusArchived,
	},
}

// IsValidStatus reports whether s is one of the enumerated statuses.
func IsValidStatus(s model.Status) bool {
	_, ok := validTransitions[s]
	return ok
}

// ValidateStatusTransition checks if a status transition is allowed.
func ValidateStatusTransition(currentStatus, newStatus model.Status) error {
	allowedStatuses, exists := validTransitions[currentStatus]
	if !exists {
		return appErrors.NewAppError(
			"INVALID_STATUS",
			fmt.Sprintf("Unknown current status: %s", currentStatus),
			appErrors.ErrInvalidStatus,
		)
	}

	for _, allowed := range allowedStatuses {
		if newStatus == allowed {
			return nil
		}
	}

	return appErrors.NewAppError(
		"INVALID_TRANSITION",
		fmt.Sprintf("Cannot transition from %s to %s", currentStatus, newStatus),
		appErrors.ErrInvalidStatus,
	)
}

// GetAllowedTransitions returns allowed next statuses.
func GetAllowedTransitions(currentStatus model.Status) []model.Status {
	return validTransitions[currentStatus]
}
