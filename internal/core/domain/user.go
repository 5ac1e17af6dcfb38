package domain

import "errors"

const (
	RoleCustomer = "customer"
	RoleFarm     = "farm"
	RoleWorker   = "worker"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailTaken = errors.New("email already registered")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrWrongRole = errors.New("operation not allowed for this role")

// ValidRole reports whether role is one of the three account roles.
func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleFarm || role == RoleWorker
}

// User models a registered account. Accounts are immutable after
// registration: there are no profile-update or delete operations.
//
// Password is stored and compared in plain text, matching the sample
// domain it serves. Comparison is isolated behind a CredentialVerifier in
// the service layer so a hashing scheme can be swapped in without touching
// the store.
type User struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"password" bson:"password"`
	Role     string `json:"type" bson:"type"`
}
