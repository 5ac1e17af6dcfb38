// Package authz is the session and role gate: pure predicates deciding
// which mutations the active session may perform. The HTTP layer consults
// them before offering an action, and the domain store re-checks them on
// every transition.
package authz

import "github.com/ruralroots/directory-api/internal/core/domain"

// CanAddFarm reports whether the session may list a farm.
func CanAddFarm(session *domain.User) bool {
	return session != nil && session.Role == domain.RoleFarm
}

// CanAddJob reports whether the session may post a job. Posting requires
// the farm role and at least one owned farm.
func CanAddJob(session *domain.User, ownedFarms int) bool {
	return CanAddFarm(session) && ownedFarms > 0
}

// CanApply reports whether the session may apply to a job.
func CanApply(session *domain.User) bool {
	return session != nil
}

// CanReview reports whether the session may review a farm.
func CanReview(session *domain.User) bool {
	return session != nil
}
