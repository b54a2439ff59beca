package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wastewise/wastewise-api/internal/domain/entity"
	repo "github.com/wastewise/wastewise-api/internal/domain/repository"
	"github.com/wastewise/wastewise-api/internal/oauth"
	"github.com/wastewise/wastewise-api/pkg/helpers"
)

var (
	ErrMissingFields = errors.New("All fields must be filled")
	ErrEmailTaken    = errors.New("Email already in use")
	// Login failures are deliberately distinguishable; unifying them to
	// prevent account enumeration would break the documented API contract.
	ErrIncorrectEmail    = errors.New("Incorrect email")
	ErrIncorrectPassword = errors.New("Incorrect password")
	ErrAccountNotFound   = errors.New("account not found")
)

// TokenDenylist records revoked token ids until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) bool
}

// AuthService owns account creation and credential verification. Tokens are
// minted here and can be revoked on logout through a denylist keyed by the
// token id.
type AuthService struct {
	Repo     repo.AccountRepository
	JWT      *helpers.JWTManager
	Denylist TokenDenylist
	Logger   *logrus.Logger
}

func NewAuthService(r repo.AccountRepository, jwt *helpers.JWTManager, denylist TokenDenylist, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: r, JWT: jwt, Denylist: denylist, Logger: logger}
}

type SignupInput struct {
	FirstName   string
	LastName    string
	Mobile      string
	Email       string
	ResidenceID string
	Password    string
	AdminType   bool
}

// Signup hashes the password and persists a new account. Email uniqueness is
// enforced by the store's unique index; a duplicate insert surfaces as
// ErrEmailTaken without any prior existence check.
func (s *AuthService) Signup(in SignupInput) (*entity.Account, error) {
	if in.FirstName == "" || in.LastName == "" || in.Mobile == "" ||
		in.Email == "" || in.ResidenceID == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	a := &entity.Account{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Mobile:       in.Mobile,
		Email:        in.Email,
		ResidenceID:  in.ResidenceID,
		PasswordHash: hash,
		AdminType:    in.AdminType,
	}
	if err := s.Repo.Create(a); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return a, nil
}

// Login validates the credentials and returns the stored account. Callers
// must not leak the password hash downstream.
func (s *AuthService) Login(email, password string) (*entity.Account, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}
	a, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrIncorrectEmail
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(a.PasswordHash, password) {
		return nil, ErrIncorrectPassword
	}
	return a, nil
}

// LoginWithGoogle resolves a verified Google identity to a local account,
// creating one on first sight. Bridge-created accounts carry a placeholder
// hash that can never match a user-supplied password, so the password login
// path is permanently closed for them.
func (s *AuthService) LoginWithGoogle(info *oauth.UserInfo) (*entity.Account, error) {
	a, err := s.Repo.GetByEmail(info.Email)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	a = &entity.Account{
		FirstName:    info.GivenName,
		LastName:     info.FamilyName,
		Email:        info.Email,
		Mobile:       entity.UnknownSentinel,
		ResidenceID:  entity.UnknownSentinel,
		PasswordHash: entity.OAuthPlaceholder,
		AdminType:    false,
	}
	if err := s.Repo.Create(a); err != nil {
		// Lost a race against a concurrent signup for the same email.
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return s.Repo.GetByEmail(info.Email)
		}
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"email": a.Email}).Info("account created via google oauth")
	return a, nil
}

// IssueToken mints a bearer token for the account.
func (s *AuthService) IssueToken(accountID string) (string, time.Time, error) {
	return s.JWT.Generate(accountID)
}

// RevokeToken denylists the token id until the token would have expired.
// Verification rejects denylisted ids, which is what makes logout effective
// server-side despite the tokens being stateless.
func (s *AuthService) RevokeToken(ctx context.Context, claims *helpers.Claims) error {
	if s.Denylist == nil || claims.ID == "" {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.Denylist.Revoke(ctx, claims.ID, ttl)
}

// IsTokenRevoked reports whether the token id is on the denylist.
func (s *AuthService) IsTokenRevoked(ctx context.Context, jti string) bool {
	if s.Denylist == nil || jti == "" {
		return false
	}
	return s.Denylist.IsRevoked(ctx, jti)
}

// GetIdentity loads the projection attached to authorized requests. The
// password hash is never selected on this path.
func (s *AuthService) GetIdentity(id string) (*entity.Account, error) {
	a, err := s.Repo.GetIdentity(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return a, nil
}

// GetAllAccounts lists accounts for staff; hashes are not loaded.
func (s *AuthService) GetAllAccounts() ([]*entity.Account, error) {
	return s.Repo.GetAll()
}
