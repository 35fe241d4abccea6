package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aretw0/canova/pkg/auth"
	"github.com/aretw0/canova/pkg/domain"
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignupInput holds the fields of a new account.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is a signed-in user with its access token.
type Session struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Signup creates an account and signs it in.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*Session, error) {
	name := strings.TrimSpace(in.Name)
	email := NormalizeEmail(in.Email)
	if name == "" {
		return nil, domain.Invalid("name", "please add a name")
	}
	if !emailPattern.MatchString(email) {
		return nil, domain.Invalid("email", "please add a valid email")
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &domain.User{
		ID:           domain.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Preferences:  domain.DefaultPreferences(),
		Projects:     []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User signed up", "user_id", user.ID)
	return s.session(user)
}

// Signin checks credentials and issues a token.
func (s *Service) Signin(ctx context.Context, email, password string) (*Session, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.Invalid("", "please provide an email and password")
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, err
	}
	return s.session(user)
}

func (s *Service) session(user *domain.User) (*Session, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &Session{User: user.Public(), Token: token}, nil
}

// Authenticate verifies a token and checks that its account still exists.
func (s *Service) Authenticate(ctx context.Context, token string) (auth.Identity, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return auth.Identity{}, err
	}
	user, err := s.store.GetUser(ctx, claims.Subject)
	if errors.Is(err, domain.ErrNotFound) {
		return auth.Identity{}, fmt.Errorf("%w: account no longer exists", domain.ErrUnauthenticated)
	}
	if err != nil {
		return auth.Identity{}, fmt.Errorf("failed to load user: %w", err)
	}
	return auth.Identity{UserID: user.ID, Email: user.Email}, nil
}

// Profile returns the account of userID without credentials.
func (s *Service) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// ProfileUpdate lists the editable profile fields. Nil fields are left unchanged.
type ProfileUpdate struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	Location    *string `json:"location"`
}

// UpdateProfile changes name, phone number or location.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in ProfileUpdate) (*domain.User, error) {
	return s.updateUser(ctx, userID, func(u *domain.User) error {
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return domain.Invalid("name", "must not be empty")
			}
			u.Name = name
		}
		if in.PhoneNumber != nil {
			u.PhoneNumber = strings.TrimSpace(*in.PhoneNumber)
		}
		if in.Location != nil {
			u.Location = strings.TrimSpace(*in.Location)
		}
		return nil
	})
}

// PreferencesUpdate lists the editable preferences. Nil fields are left unchanged.
type PreferencesUpdate struct {
	Theme    *domain.Theme `json:"theme"`
	Language *string       `json:"language"`
}

// UpdatePreferences changes the theme or language of userID.
func (s *Service) UpdatePreferences(ctx context.Context, userID string, in PreferencesUpdate) (*domain.User, error) {
	return s.updateUser(ctx, userID, func(u *domain.User) error {
		if in.Theme != nil {
			if *in.Theme != domain.ThemeLight && *in.Theme != domain.ThemeDark {
				return domain.Invalid("theme", "must be light or dark")
			}
			u.Preferences.Theme = *in.Theme
		}
		if in.Language != nil {
			u.Preferences.Language = strings.TrimSpace(*in.Language)
		}
		return nil
	})
}

func (s *Service) updateUser(ctx context.Context, userID string, mutate func(*domain.User) error) (*domain.User, error) {
	var user *domain.User
	err := s.locks.WithLock(ctx, "user:"+userID, func(ctx context.Context) error {
		var err error
		user, err = s.store.GetUser(ctx, userID)
		if err != nil {
			return err
		}
		if err := mutate(user); err != nil {
			return err
		}
		user.UpdatedAt = s.now()
		return s.store.UpdateUser(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// CheckEmail looks up an account by email. ok is false when none exists.
func (s *Service) CheckEmail(ctx context.Context, email string) (user *domain.User, ok bool, err error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, false, domain.Invalid("email", "email is required")
	}
	user, err = s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return user.Public(), true, nil
}
