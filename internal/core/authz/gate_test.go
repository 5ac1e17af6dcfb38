package authz

import (
	"testing"

	"github.com/ruralroots/directory-api/internal/core/domain"
)

func TestCanAddFarm(t *testing.T) {
	if CanAddFarm(nil) {
		t.Fatal("nil session must not add farms")
	}
	if CanAddFarm(&domain.User{Role: domain.RoleCustomer}) || CanAddFarm(&domain.User{Role: domain.RoleWorker}) {
		t.Fatal("only the farm role may add farms")
	}
	if !CanAddFarm(&domain.User{Role: domain.RoleFarm}) {
		t.Fatal("farm role rejected")
	}
}

func TestCanAddJob(t *testing.T) {
	farmer := &domain.User{Role: domain.RoleFarm}

	if CanAddJob(nil, 1) {
		t.Fatal("nil session must not post jobs")
	}
	if CanAddJob(farmer, 0) {
		t.Fatal("posting requires at least one owned farm")
	}
	if CanAddJob(&domain.User{Role: domain.RoleWorker}, 3) {
		t.Fatal("worker role must not post jobs")
	}
	if !CanAddJob(farmer, 1) {
		t.Fatal("farmer with a farm rejected")
	}
}

func TestCanApplyAndReview(t *testing.T) {
	if CanApply(nil) || CanReview(nil) {
		t.Fatal("anonymous callers must not apply or review")
	}
	for _, role := range []string{domain.RoleCustomer, domain.RoleFarm, domain.RoleWorker} {
		u := &domain.User{Role: role}
		if !CanApply(u) || !CanReview(u) {
			t.Fatalf("role %s should be able to apply and review", role)
		}
	}
}
