package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"catering-api/models"
	"catering-api/store"
)

var (
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	ErrDuplicateUser      = errors.New("auth: user already exists")
)

// Service owns the users collection and the single persisted session.
type Service struct {
	users   *store.Collection[*models.User]
	session *store.Single[*models.User]
	log     *slog.Logger
}

func NewService(s *store.Store, log *slog.Logger) *Service {
	return &Service{
		users:   store.NewCollection[*models.User](s, store.KeyUsers),
		session: store.NewSingle[*models.User](s, store.KeySession),
		log:     log,
	}
}

// SignIn checks credentials, persists the sanitized user as the current
// session and returns it.
func (s *Service) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	matches, err := s.users.Where(ctx, "email", store.OpEq, email)
	if err != nil {
		return nil, err
	}
	for _, u := range matches {
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil {
			sanitized := u.Sanitized()
			if err := s.session.Put(ctx, sanitized); err != nil {
				return nil, err
			}
			s.log.Info("user signed in", "userId", u.ID, "role", u.Role)
			return sanitized, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// CreateAccount stores a bare user record without establishing a session.
// Name and role are assigned by the caller afterwards via AssignProfile.
func (s *Service) CreateAccount(ctx context.Context, email, password string) (*models.User, error) {
	existing, err := s.users.Where(ctx, "email", store.OpEq, email)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}
	u := &models.User{Email: email, Password: string(hash), Role: models.RoleUser}
	if _, err := s.users.Add(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("account created", "userId", u.ID)
	return u.Sanitized(), nil
}

// Profile is what registration fills in after the bare account exists.
type Profile struct {
	Name    string
	Role    models.Role
	Phone   string
	Address string
}

func (s *Service) AssignProfile(ctx context.Context, userID string, p Profile) (*models.User, error) {
	err := s.users.Update(ctx, userID, func(u *models.User) {
		u.Name = p.Name
		u.Role = p.Role
		u.Phone = p.Phone
		u.Address = p.Address
	})
	if err != nil {
		return nil, err
	}
	return s.User(ctx, userID)
}

// SignOut clears the persisted session.
func (s *Service) SignOut(ctx context.Context) error {
	return s.session.Clear(ctx)
}

// CurrentUser returns the persisted session, if any.
func (s *Service) CurrentUser(ctx context.Context) (*models.User, bool, error) {
	return s.session.Get(ctx)
}

// User returns a sanitized user by id.
func (s *Service) User(ctx context.Context, userID string) (*models.User, error) {
	u, ok, err := s.users.Find(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: user %s", store.ErrNotFound, userID)
	}
	return u.Sanitized(), nil
}

// UpdateProfile applies a patch to the user and keeps the persisted
// session in step when it belongs to the same user.
func (s *Service) UpdateProfile(ctx context.Context, userID string, patch models.UserPatch) (*models.User, error) {
	if err := s.users.Update(ctx, userID, func(u *models.User) { patch.Apply(u) }); err != nil {
		return nil, err
	}
	u, err := s.User(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cur, ok, err := s.session.Get(ctx); err == nil && ok && cur.ID == userID {
		if err := s.session.Put(ctx, u); err != nil {
			return nil, err
		}
	}
	return u, nil
}
