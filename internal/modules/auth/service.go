package auth

import (
	"context"
	"strings"

	"kejaspace/internal/domain"
	"kejaspace/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer mints session tokens. A nil issuer disables sign-up and
// sign-in with ErrAuthDisabled.
type TokenIssuer interface {
	GenerateToken(accountID string) (string, error)
}

// Service is the single authentication contract: identities, tokens
// and the profile attached to each identity.
type Service struct {
	store repository.Storage
	jwt   TokenIssuer
}

type SignUpResult struct {
	Account *domain.Account     `json:"account"`
	Profile *domain.UserProfile `json:"profile"`
	Token   string              `json:"token"`
}

type SignInResult struct {
	Account *domain.Account `json:"account"`
	Token   string          `json:"token"`
}

func NewService(store repository.Storage, jwt TokenIssuer) *Service {
	return &Service{store: store, jwt: jwt}
}

// issueToken guards the no-secret deployment: sign-up and sign-in
// fail with ErrAuthDisabled instead of minting unverifiable tokens.
func (s *Service) issueToken(accountID string) (string, error) {
	if s.jwt == nil {
		return "", ErrAuthDisabled
	}
	return s.jwt.GenerateToken(accountID)
}

func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*SignUpResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.store.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	if !domain.IsValidUserType(req.UserType) {
		return nil, ErrInvalidUserType
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{Email: email, PasswordHash: string(hash)}
	if err := s.store.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	profile := &domain.UserProfile{
		ID:       account.ID,
		FullName: req.FullName,
		Phone:    req.Phone,
		UserType: domain.UserType(req.UserType),
	}
	if err := s.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	token, err := s.issueToken(account.ID)
	if err != nil {
		return nil, err
	}

	return &SignUpResult{Account: account, Profile: profile, Token: token}, nil
}

func (s *Service) SignIn(ctx context.Context, req SignInRequest) (*SignInResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := s.store.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(account.ID)
	if err != nil {
		return nil, err
	}

	return &SignInResult{Account: account, Token: token}, nil
}

func (s *Service) GetCurrentAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.store.GetAccount(ctx, accountID)
}

func (s *Service) GetProfile(ctx context.Context, accountID string) (*domain.UserProfile, error) {
	return s.store.GetUserProfile(ctx, accountID)
}

// CreateProfile rejects profiles whose id matches no account; orphan
// profiles are not representable through this service.
func (s *Service) CreateProfile(ctx context.Context, p *domain.UserProfile) error {
	account, err := s.store.GetAccount(ctx, p.ID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrNoSuchAccount
	}
	return s.store.CreateUserProfile(ctx, p)
}

func (s *Service) UpdateProfile(ctx context.Context, accountID string, req UpdateProfileRequest) (*domain.UserProfile, error) {
	profile, err := s.store.GetUserProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	if req.FullName != nil && *req.FullName != "" {
		profile.FullName = *req.FullName
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}
	if req.UserType != nil {
		if !domain.IsValidUserType(*req.UserType) {
			return nil, ErrInvalidUserType
		}
		profile.UserType = domain.UserType(*req.UserType)
	}

	if err := s.store.UpdateUserProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
