package service

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ruralroots/directory-api/internal/core/authz"
	"github.com/ruralroots/directory-api/internal/core/domain"
	"github.com/ruralroots/directory-api/internal/core/ports"
	"github.com/ruralroots/directory-api/internal/metrics"
)

// Default images applied when a farm listing is submitted without photos.
const (
	defaultFarmImage1 = "https://picsum.photos/seed/newfarm1/800/600"
	defaultFarmImage2 = "https://picsum.photos/seed/newfarm2/800/600"
)

// Store is the domain store: the single owner of the directory Snapshot.
// Transitions are copy-on-write: each builds a new Snapshot, swaps it in
// under the mutex, and write-through persists it. The in-memory Snapshot
// is authoritative; a failed persistence write degrades the session to
// memory-only operation but never fails the transition.
type Store struct {
	mu      sync.Mutex
	snap    *domain.Snapshot
	persist ports.SnapshotStore
	verify  CredentialVerifier

	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

var _ ports.AuthService = (*Store)(nil)
var _ ports.DirectoryService = (*Store)(nil)

// NewStore creates a Store over the given initial Snapshot. The Snapshot
// is cloned on the way in; the caller's copy is never aliased.
func NewStore(initial *domain.Snapshot, persist ports.SnapshotStore, verify CredentialVerifier, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *Store {
	if verify == nil {
		verify = PlaintextVerifier
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Store{
		snap:      initial.Clone(),
		persist:   persist,
		verify:    verify,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() *domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// Login authenticates by email and password and sets the session.
func (s *Store) Login(ctx context.Context, email, password string) (token string, user *domain.User, err error) {
	defer func() { countOp("login", err) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	found := s.snap.FindUserByEmail(email)
	if found == nil || !s.verify(found.Password, password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	next := s.snap.Clone()
	u := *found
	next.CurrentUser = &u

	tok, err := s.generateToken(&u)
	if err != nil {
		return "", nil, err
	}
	s.commit(ctx, next, "login")

	s.log.Info().Str("user_id", u.ID).Str("role", u.Role).Msg("user logged in")
	out := u
	return tok, &out, nil
}

// Register creates a new account and logs it in immediately. The email
// uniqueness check is a case-sensitive exact match.
func (s *Store) Register(ctx context.Context, name, email, password, role string) (token string, user *domain.User, err error) {
	defer func() { countOp("register", err) }()
	if name == "" || email == "" || password == "" || !domain.ValidRole(role) {
		return "", nil, domain.ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap.FindUserByEmail(email) != nil {
		return "", nil, domain.ErrEmailTaken
	}

	u := domain.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}
	next := s.snap.Clone()
	next.Users = append(next.Users, u)
	session := u
	next.CurrentUser = &session

	tok, err := s.generateToken(&u)
	if err != nil {
		return "", nil, err
	}
	s.commit(ctx, next, "register")

	s.log.Info().Str("user_id", u.ID).Str("role", u.Role).Msg("user registered")
	out := u
	return tok, &out, nil
}

// Logout clears the session unconditionally.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	next.CurrentUser = nil
	s.commit(ctx, next, "logout")
	countOp("logout", nil)
	return nil
}

// AddFarm creates a farm listing owned by the session user. Requires the
// farm role.
func (s *Store) AddFarm(ctx context.Context, in ports.AddFarmInput) (farm *domain.Farm, err error) {
	defer func() { countOp("add_farm", err) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.snap.CurrentUser
	if session == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if !authz.CanAddFarm(session) {
		return nil, domain.ErrWrongRole
	}

	image1, image2 := in.Image1, in.Image2
	if image1 == "" {
		image1 = defaultFarmImage1
	}
	if image2 == "" {
		image2 = defaultFarmImage2
	}

	f := domain.Farm{
		ID:          uuid.NewString(),
		OwnerID:     session.ID,
		Name:        in.Name,
		Location:    in.Location,
		Region:      in.Region,
		Description: in.Description,
		Tags:        domain.ParseList(in.Tags),
		Rating:      0,
		Contact:     in.Contact,
		Website:     in.Website,
		Images:      []string{image1, image2},
		Reviews:     []domain.Review{},
	}
	next := s.snap.Clone()
	next.Farms = append(next.Farms, f)
	s.commit(ctx, next, "add_farm")

	s.log.Info().Str("farm_id", f.ID).Str("owner_id", f.OwnerID).Msg("farm listed")
	out := f.Clone()
	return &out, nil
}

// AddJob creates a posting attached to one of the session user's farms.
// With no explicit FarmID the first owned farm in snapshot order is used;
// an explicit FarmID must name a farm owned by the caller.
func (s *Store) AddJob(ctx context.Context, in ports.AddJobInput) (job *domain.Job, err error) {
	defer func() { countOp("add_job", err) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.snap.CurrentUser
	if session == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if !authz.CanAddFarm(session) {
		return nil, domain.ErrWrongRole
	}

	var owned []*domain.Farm
	for i := range s.snap.Farms {
		if s.snap.Farms[i].OwnerID == session.ID {
			owned = append(owned, &s.snap.Farms[i])
		}
	}
	if !authz.CanAddJob(session, len(owned)) {
		return nil, domain.ErrNoFarmOwned
	}

	farmID := in.FarmID
	if farmID == "" {
		farmID = owned[0].ID
	} else if !ownsFarm(owned, farmID) {
		return nil, domain.ErrFarmNotFound
	}

	j := domain.Job{
		ID:           uuid.NewString(),
		FarmID:       farmID,
		Title:        in.Title,
		Type:         domain.JobType(in.Type),
		Description:  in.Description,
		Requirements: domain.ParseList(in.Requirements),
		Salary:       in.Salary,
		Posted:       time.Now().UTC(),
		Applications: []string{},
	}
	next := s.snap.Clone()
	next.Jobs = append(next.Jobs, j)
	s.commit(ctx, next, "add_job")

	s.log.Info().Str("job_id", j.ID).Str("farm_id", j.FarmID).Msg("job posted")
	out := j.Clone()
	return &out, nil
}

// AddReview appends a review to a farm and recomputes its rating as the
// mean of all review ratings rounded to two decimals.
func (s *Store) AddReview(ctx context.Context, farmID string, rating int, text string) (farm *domain.Farm, err error) {
	defer func() { countOp("add_review", err) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.snap.CurrentUser
	if !authz.CanReview(session) {
		return nil, domain.ErrNotAuthenticated
	}

	next := s.snap.Clone()
	target := next.FindFarm(farmID)
	if target == nil {
		return nil, domain.ErrFarmNotFound
	}

	target.Reviews = append(target.Reviews, domain.Review{
		ID:       uuid.NewString(),
		UserID:   session.ID,
		UserName: session.Name,
		Text:     text,
		Rating:   rating,
		Date:     time.Now().UTC(),
	})
	target.Rating = domain.RecomputeRating(target.Reviews)
	s.commit(ctx, next, "add_review")
	metrics.ReviewsAddedTotal.Inc()

	s.log.Info().Str("farm_id", farmID).Int("rating", rating).Float64("farm_rating", target.Rating).Msg("review added")
	out := target.Clone()
	return &out, nil
}

// ApplyToJob appends the session user to a job's applications. Applying
// twice is a no-op, not an error.
func (s *Store) ApplyToJob(ctx context.Context, jobID string) (job *domain.Job, err error) {
	defer func() { countOp("apply_to_job", err) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.snap.CurrentUser
	if !authz.CanApply(session) {
		return nil, domain.ErrNotAuthenticated
	}

	existing := s.snap.FindJob(jobID)
	if existing == nil {
		return nil, domain.ErrJobNotFound
	}
	if existing.HasApplicant(session.ID) {
		metrics.ApplicationsTotal.WithLabelValues("duplicate").Inc()
		out := existing.Clone()
		return &out, nil
	}

	next := s.snap.Clone()
	target := next.FindJob(jobID)
	target.Applications = append(target.Applications, session.ID)
	s.commit(ctx, next, "apply_to_job")
	metrics.ApplicationsTotal.WithLabelValues("applied").Inc()

	s.log.Info().Str("job_id", jobID).Str("user_id", session.ID).Msg("application submitted")
	out := target.Clone()
	return &out, nil
}

// commit publishes the next snapshot and write-through persists it. The
// caller holds the mutex. Persistence failure is logged and counted but
// does not roll back the in-memory state.
func (s *Store) commit(ctx context.Context, next *domain.Snapshot, op string) {
	s.snap = next

	start := time.Now()
	saveErr := s.persist.Save(ctx, next)
	metrics.SnapshotSaveDuration.Observe(time.Since(start).Seconds())
	if saveErr != nil {
		metrics.SnapshotSaveFailures.Inc()
		s.log.Error().Err(saveErr).Str("op", op).Msg("snapshot save failed, continuing with in-memory state")
	}
}

func (s *Store) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func ownsFarm(owned []*domain.Farm, farmID string) bool {
	for _, f := range owned {
		if f.ID == farmID {
			return true
		}
	}
	return false
}

func countOp(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.OperationsTotal.WithLabelValues(op, outcome).Inc()
}
