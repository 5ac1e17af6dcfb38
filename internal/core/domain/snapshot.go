package domain

import "slices"

// Snapshot is the aggregate root: the entire durable and transient state
// of the directory at a point in time. It is persisted as one unit and
// treated as immutable once published; transitions build a new Snapshot
// rather than mutating in place.
//
// CurrentUser is the active session, nil when logged out. The JSON shape
// (users/farms/jobs/currentUser) is the persistence document format.
type Snapshot struct {
	Users       []User `json:"users" bson:"users"`
	Farms       []Farm `json:"farms" bson:"farms"`
	Jobs        []Job  `json:"jobs" bson:"jobs"`
	CurrentUser *User  `json:"currentUser" bson:"currentUser"`
}

// Clone returns a deep copy. Consumers never share slice backing arrays
// with the store's authoritative copy. Empty slices stay non-nil so the
// document shape is stable across save/load cycles.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := &Snapshot{
		Users: slices.Clone(s.Users),
		Farms: slices.Clone(s.Farms),
		Jobs:  slices.Clone(s.Jobs),
	}
	for i := range out.Farms {
		out.Farms[i] = out.Farms[i].Clone()
	}
	for i := range out.Jobs {
		out.Jobs[i] = out.Jobs[i].Clone()
	}
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		out.CurrentUser = &u
	}
	return out
}

// FindFarm returns the farm with the given id, or nil.
func (s *Snapshot) FindFarm(id string) *Farm {
	for i := range s.Farms {
		if s.Farms[i].ID == id {
			return &s.Farms[i]
		}
	}
	return nil
}

// FindJob returns the job with the given id, or nil.
func (s *Snapshot) FindJob(id string) *Job {
	for i := range s.Jobs {
		if s.Jobs[i].ID == id {
			return &s.Jobs[i]
		}
	}
	return nil
}

// FindUserByEmail returns the user with the given email (case-sensitive
// exact match), or nil.
func (s *Snapshot) FindUserByEmail(email string) *User {
	for i := range s.Users {
		if s.Users[i].Email == email {
			return &s.Users[i]
		}
	}
	return nil
}
