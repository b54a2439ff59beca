package application

import (
	"context"
	"io"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastewise/wastewise-api/internal/domain/entity"
	repo "github.com/wastewise/wastewise-api/internal/domain/repository"
	"github.com/wastewise/wastewise-api/internal/oauth"
	"github.com/wastewise/wastewise-api/pkg/helpers"
)

// fakeAccountRepo is an in-memory AccountRepository that mimics the store's
// unique email index.
type fakeAccountRepo struct {
	byID map[string]*entity.Account
	seq  int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byID: map[string]*entity.Account{}}
}

func (f *fakeAccountRepo) Create(a *entity.Account) error {
	for _, existing := range f.byID {
		if existing.Email == a.Email {
			return repo.ErrDuplicateEmail
		}
	}
	f.seq++
	a.ID = "acc-" + strconv.Itoa(f.seq)
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	f.byID[a.ID] = &cp
	return nil
}

func (f *fakeAccountRepo) GetByID(id string) (*entity.Account, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccountRepo) GetByEmail(email string) (*entity.Account, error) {
	for _, a := range f.byID {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeAccountRepo) GetIdentity(id string) (*entity.Account, error) {
	a, err := f.GetByID(id)
	if err != nil {
		return nil, err
	}
	a.PasswordHash = ""
	return a, nil
}

func (f *fakeAccountRepo) GetAll() ([]*entity.Account, error) {
	out := make([]*entity.Account, 0, len(f.byID))
	for _, a := range f.byID {
		cp := *a
		cp.PasswordHash = ""
		out = append(out, &cp)
	}
	return out, nil
}

// fakeDenylist is an in-memory TokenDenylist; TTLs are recorded, not enforced.
type fakeDenylist struct {
	revoked map[string]time.Duration
}

func newFakeDenylist() *fakeDenylist {
	return &fakeDenylist{revoked: map[string]time.Duration{}}
}

func (d *fakeDenylist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	d.revoked[jti] = ttl
	return nil
}

func (d *fakeDenylist) IsRevoked(_ context.Context, jti string) bool {
	_, ok := d.revoked[jti]
	return ok
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newAuthService(r repo.AccountRepository) *AuthService {
	return NewAuthService(r, helpers.NewJWTManager("test-secret", time.Hour), nil, quietLogger())
}

func validSignup() SignupInput {
	return SignupInput{
		FirstName:   "Amara",
		LastName:    "Perera",
		Mobile:      "0771234567",
		Email:       "amara@example.com",
		ResidenceID: "RES-42",
		Password:    "supersecret",
	}
}

func TestSignupThenLogin(t *testing.T) {
	svc := newAuthService(newFakeAccountRepo())

	created, err := svc.Signup(validSignup())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "supersecret", created.PasswordHash)

	account, err := svc.Login("amara@example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, account.ID)
}

func TestSignupMissingFields(t *testing.T) {
	svc := newAuthService(newFakeAccountRepo())

	in := validSignup()
	in.ResidenceID = ""
	_, err := svc.Signup(in)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newAuthService(newFakeAccountRepo())

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	_, err = svc.Signup(validSignup())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginFailures(t *testing.T) {
	svc := newAuthService(newFakeAccountRepo())
	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	_, err = svc.Login("nobody@example.com", "supersecret")
	assert.ErrorIs(t, err, ErrIncorrectEmail)

	_, err = svc.Login("amara@example.com", "not-the-password")
	assert.ErrorIs(t, err, ErrIncorrectPassword)

	_, err = svc.Login("", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestLoginWithGoogleCreatesAccount(t *testing.T) {
	r := newFakeAccountRepo()
	svc := newAuthService(r)

	info := &oauth.UserInfo{Email: "bridge@example.com", GivenName: "Nilu", FamilyName: "Silva"}
	created, err := svc.LoginWithGoogle(info)
	require.NoError(t, err)
	assert.Equal(t, entity.UnknownSentinel, created.Mobile)
	assert.Equal(t, entity.UnknownSentinel, created.ResidenceID)
	assert.False(t, created.AdminType)

	// Password login must be permanently closed for bridge accounts.
	_, err = svc.Login("bridge@example.com", entity.OAuthPlaceholder)
	assert.ErrorIs(t, err, ErrIncorrectPassword)

	// Second google login resolves to the same account.
	again, err := svc.LoginWithGoogle(info)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
}

func TestGetIdentityNeverExposesHash(t *testing.T) {
	r := newFakeAccountRepo()
	svc := newAuthService(r)

	created, err := svc.Signup(validSignup())
	require.NoError(t, err)

	id, err := svc.GetIdentity(created.ID)
	require.NoError(t, err)
	assert.Empty(t, id.PasswordHash)
	assert.Equal(t, "RES-42", id.ResidenceID)

	_, err = svc.GetIdentity("acc-missing")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestIssueTokenRoundTrip(t *testing.T) {
	svc := newAuthService(newFakeAccountRepo())

	token, exp, err := svc.IssueToken("acc-1")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := svc.JWT.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.UserID)
}

func TestRevokeTokenDenylistsUntilExpiry(t *testing.T) {
	denylist := newFakeDenylist()
	svc := newAuthService(newFakeAccountRepo())
	svc.Denylist = denylist
	ctx := context.Background()

	token, _, err := svc.IssueToken("acc-1")
	require.NoError(t, err)
	claims, err := svc.JWT.Parse(token)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(ctx, claims.ID))

	require.NoError(t, svc.RevokeToken(ctx, claims))
	assert.True(t, svc.IsTokenRevoked(ctx, claims.ID))

	// TTL matches the token's remaining validity so the entry expires with it.
	ttl := denylist.revoked[claims.ID]
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)

	// A second token's id is untouched.
	other, _, err := svc.IssueToken("acc-1")
	require.NoError(t, err)
	otherClaims, err := svc.JWT.Parse(other)
	require.NoError(t, err)
	assert.False(t, svc.IsTokenRevoked(ctx, otherClaims.ID))
}

func TestRevokeExpiredTokenIsNoop(t *testing.T) {
	denylist := newFakeDenylist()
	svc := newAuthService(newFakeAccountRepo())
	svc.Denylist = denylist

	claims := &helpers.Claims{}
	claims.ID = "stale-jti"
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	require.NoError(t, svc.RevokeToken(context.Background(), claims))
	assert.Empty(t, denylist.revoked, "an already-expired token needs no denylist entry")
}
