package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"kejaspace/internal/domain"
	"kejaspace/internal/repository"
)

type stubIssuer struct {
	token string
	err   error
}

func (s stubIssuer) GenerateToken(string) (string, error) {
	return s.token, s.err
}

func newTestService() *Service {
	return NewService(repository.NewMemStorage(), stubIssuer{token: "test-token"})
}

func TestSignUp_CreatesAccountProfileAndToken(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	result, err := svc.SignUp(ctx, SignUpRequest{
		Email:    "Jane@Example.com",
		Password: "secret123",
		FullName: "Jane Wanjiru",
		UserType: "tenant",
		Phone:    "+254712345678",
	})
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", result.Account.Email, "email must be normalized")
	assert.NotEmpty(t, result.Account.ID)
	assert.Equal(t, "test-token", result.Token)

	require.NotNil(t, result.Profile)
	assert.Equal(t, result.Account.ID, result.Profile.ID)
	assert.Equal(t, domain.UserTenant, result.Profile.UserType)

	// The plaintext must not survive anywhere.
	assert.NotEqual(t, "secret123", result.Account.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(result.Account.PasswordHash), []byte("secret123")))
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	req := SignUpRequest{Email: "jane@example.com", Password: "secret123", FullName: "Jane", UserType: "tenant"}
	_, err := svc.SignUp(ctx, req)
	require.NoError(t, err)

	// Same address in a different case is still a duplicate.
	req.Email = "JANE@example.com"
	_, err = svc.SignUp(ctx, req)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestSignUp_RejectsUnknownUserType(t *testing.T) {
	svc := newTestService()

	_, err := svc.SignUp(context.Background(), SignUpRequest{
		Email: "x@example.com", Password: "secret123", FullName: "X", UserType: "admin",
	})
	assert.ErrorIs(t, err, ErrInvalidUserType)
}

func TestSignIn(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, SignUpRequest{
		Email: "jane@example.com", Password: "secret123", FullName: "Jane", UserType: "tenant",
	})
	require.NoError(t, err)

	result, err := svc.SignIn(ctx, SignInRequest{Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "test-token", result.Token)

	_, err = svc.SignIn(ctx, SignInRequest{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, SignInRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUp_FailsWhenAuthDisabled(t *testing.T) {
	svc := NewService(repository.NewMemStorage(), nil)

	_, err := svc.SignUp(context.Background(), SignUpRequest{
		Email: "jane@example.com", Password: "secret123", FullName: "Jane", UserType: "tenant",
	})
	assert.ErrorIs(t, err, ErrAuthDisabled)
}

func TestCreateProfile_RejectsOrphan(t *testing.T) {
	svc := newTestService()

	err := svc.CreateProfile(context.Background(), &domain.UserProfile{
		ID: "no-such-account", FullName: "Ghost", UserType: domain.UserTenant,
	})
	assert.ErrorIs(t, err, ErrNoSuchAccount)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	result, err := svc.SignUp(ctx, SignUpRequest{
		Email: "jane@example.com", Password: "secret123", FullName: "Jane", UserType: "tenant", Phone: "+254700000001",
	})
	require.NoError(t, err)

	newName := "Jane W."
	updated, err := svc.UpdateProfile(ctx, result.Account.ID, UpdateProfileRequest{FullName: &newName})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Jane W.", updated.FullName)
	// Untouched fields keep their values.
	assert.Equal(t, "+254700000001", updated.Phone)
	assert.Equal(t, domain.UserTenant, updated.UserType)
}
