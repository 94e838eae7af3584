// Package moderation holds the review decision logic: which roles may
// perform which actions, and how an action changes a diary's state. It is
// deliberately storage-free; persistence and locking live in the repository.
package moderation

import (
	"fmt"
	"strings"

	"travel-diary/internal/entity"
)

var capabilities = map[entity.ModeratorRole]map[entity.AuditAction]bool{
	entity.RoleAuditor: {
		entity.ActionApprove: true,
		entity.ActionReject:  true,
	},
	entity.RoleAdmin: {
		entity.ActionApprove: true,
		entity.ActionReject:  true,
		entity.ActionDelete:  true,
	},
}

// Can reports whether role is allowed to perform action.
func Can(role entity.ModeratorRole, action entity.AuditAction) bool {
	return capabilities[role][action]
}

// KnownAction reports whether action is one of approve/reject/delete.
// Callers check this before Can so an unknown action surfaces as bad input
// rather than as a permission failure.
func KnownAction(action entity.AuditAction) bool {
	switch action {
	case entity.ActionApprove, entity.ActionReject, entity.ActionDelete:
		return true
	}
	return false
}

// Change is the computed effect of a successful moderation action on a
// diary row. Delete leaves Status untouched and flips the deleted flag.
type Change struct {
	Status       entity.DiaryStatus
	RejectReason *string
	Delete       bool
}

// Decide validates action against the current status and returns the
// resulting state change. It does not check roles; callers gate with Can
// first so that permission failures are distinguishable from bad input.
func Decide(current entity.DiaryStatus, action entity.AuditAction, reason string) (Change, error) {
	switch action {
	case entity.ActionApprove:
		return Change{Status: entity.StatusApproved}, nil
	case entity.ActionReject:
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return Change{}, fmt.Errorf("%w: reject requires a reason", entity.ErrValidation)
		}
		return Change{Status: entity.StatusRejected, RejectReason: &reason}, nil
	case entity.ActionDelete:
		return Change{Status: current, Delete: true}, nil
	default:
		return Change{}, fmt.Errorf("%w: unknown action %q", entity.ErrValidation, action)
	}
}
