package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osystem/os-api/internal/user/entity"
	userrepo "github.com/osystem/os-api/internal/user/repo"
)

var (
	// ErrEmailTaken is returned when registering an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrBadCredentials covers both unknown email and wrong password so
	// a caller cannot probe which emails exist.
	ErrBadCredentials = errors.New("invalid email or password")
)

// defaultDisplayName is used at login when the account has no name stored.
const defaultDisplayName = "Usuário"

// LoginResult is what a successful login hands back to the transport.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserEmail   string `json:"user_email"`
	UserName    string `json:"user_name"`
}

// Service orchestrates registration and login on top of the account
// directory and the credential codec.
type Service struct {
	dir    userrepo.Directory
	secret []byte
	ttl    time.Duration
}

func NewService(dir userrepo.Directory, cfg Config) *Service {
	return &Service{dir: dir, secret: []byte(cfg.SecretKey), ttl: cfg.TokenTTL}
}

// Register creates an account with a freshly hashed password and
// active=true. Returns ErrEmailTaken when the email already has one.
func (s *Service) Register(ctx context.Context, email, password, name string) (string, error) {
	_, err := s.dir.FindByEmail(ctx, email)
	if err == nil {
		return "", ErrEmailTaken
	}
	if !errors.Is(err, userrepo.ErrNotFound) {
		return "", fmt.Errorf("lookup account: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	id, err := s.dir.Create(ctx, &entity.Account{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  name,
		Active:       true,
	})
	if err != nil {
		// unique-index backstop for the check/insert race
		if errors.Is(err, userrepo.ErrDuplicateEmail) {
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("create account: %w", err)
	}
	return id, nil
}

// Login verifies credentials and issues a bearer token for the account
// email. Unknown email and wrong password return the same error.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	account, err := s.dir.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if !VerifyPassword(password, account.PasswordHash) {
		return nil, ErrBadCredentials
	}

	token, err := IssueToken(account.Email, s.secret, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	name := account.DisplayName
	if name == "" {
		name = defaultDisplayName
	}
	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		UserEmail:   account.Email,
		UserName:    name,
	}, nil
}
