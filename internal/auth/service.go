package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/movielog/movielog/internal/domain"
	"github.com/movielog/movielog/internal/repository"
)

var (
	// ErrNameTaken indicates the requested username already exists.
	ErrNameTaken = errors.New("auth: name already taken")
	// ErrInvalidCredentials covers both unknown user and wrong password;
	// callers cannot tell which.
	ErrInvalidCredentials = errors.New("auth: invalid name or password")
	// ErrUnauthorized indicates a request that could not be tied to a
	// current user.
	ErrUnauthorized = errors.New("auth: unauthorized")
	// ErrInvalidInput indicates a missing name or password.
	ErrInvalidInput = errors.New("auth: name and password are required")
)

// UserStore abstracts the user rows the auth service needs. The interface is
// defined here, on the consumer side.
type UserStore interface {
	Create(ctx context.Context, name, passwordHash string) (domain.User, error)
	GetByName(ctx context.Context, name string) (domain.User, error)
}

// Service combines credential storage and token handling into
// register/login/resolve operations.
type Service struct {
	users  UserStore
	hasher *Hasher
	tokens *TokenManager

	// dummyHash is verified against on unknown-user logins so a miss costs
	// the same argon2 work as a mismatch.
	dummyHash string
}

// NewService wires the auth service. The dummy hash is derived once up
// front; the password behind it is never accepted anywhere.
func NewService(users UserStore, hasher *Hasher, tokens *TokenManager) (*Service, error) {
	dummy, err := hasher.Hash("movielog-dummy-credential")
	if err != nil {
		return nil, fmt.Errorf("derive dummy hash: %w", err)
	}
	return &Service{users: users, hasher: hasher, tokens: tokens, dummyHash: dummy}, nil
}

// Register creates a user with a hashed password.
func (s *Service) Register(ctx context.Context, name, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return domain.User{}, ErrInvalidInput
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, name, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return domain.User{}, ErrNameTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and issues a bearer token. Unknown user and
// wrong password produce the same error and comparable timing.
func (s *Service) Login(ctx context.Context, name, password string) (string, error) {
	user, lookupErr := s.users.GetByName(ctx, name)

	hash := s.dummyHash
	if lookupErr == nil {
		hash = user.PasswordHash
	}

	ok, verifyErr := s.hasher.Verify(hash, password)
	if lookupErr != nil || verifyErr != nil || !ok {
		if lookupErr != nil && !errors.Is(lookupErr, repository.ErrNotFound) {
			return "", fmt.Errorf("lookup user: %w", lookupErr)
		}
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Name)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Resolve maps a bearer token back to a current user record. The username
// from the token is re-checked against the store on every call, so a token
// for a renamed or deleted user stops working even while its signature and
// expiry are still valid.
func (s *Service) Resolve(ctx context.Context, token string) (domain.User, error) {
	username, err := s.tokens.Verify(token)
	if err != nil {
		return domain.User{}, ErrUnauthorized
	}

	user, err := s.users.GetByName(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.User{}, ErrUnauthorized
		}
		return domain.User{}, fmt.Errorf("resolve user: %w", err)
	}
	return user, nil
}
