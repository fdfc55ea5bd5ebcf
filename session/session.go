// Package session owns the "who is logged in" state for the whole view
// tree. It is an explicit store handed to the TUI rather than an ambient
// global, so tests can construct isolated instances.
package session

import (
	"context"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"cinetix/model"
	"cinetix/store"
)

type Status int

const (
	Anonymous Status = iota
	Validating
	Authenticated
)

func (s Status) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Validating:
		return "validating"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// API is the slice of the service client the session needs.
type API interface {
	Login(ctx context.Context, username string, password string) (string, error)
	Register(ctx context.Context, username string, email string, password string) error
	ValidateToken(ctx context.Context) error
	SetToken(token string)
	ClearToken()
}

// TokenStore persists the bearer token across restarts.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokens stores the token in the user config dir.
type FileTokens struct{}

func (FileTokens) Load() (string, error) { return store.LoadToken() }
func (FileTokens) Save(tok string) error { return store.SaveToken(tok) }
func (FileTokens) Clear() error          { return store.ClearToken() }

type Store struct {
	api    API
	tokens TokenStore

	status Status
	token  string
	user   model.User
}

func New(api API, tokens TokenStore) *Store {
	if tokens == nil {
		tokens = FileTokens{}
	}
	return &Store{api: api, tokens: tokens, status: Anonymous}
}

func (s *Store) Status() Status {
	return s.status
}

func (s *Store) User() model.User {
	return s.user
}

func (s *Store) Token() string {
	return s.token
}

func (s *Store) IsAuthenticated() bool {
	return s.status == Authenticated
}

// IsAdmin derives strictly from the decoded role; there is no client-side
// elevation path.
func (s *Store) IsAdmin() bool {
	return s.status == Authenticated && s.user.Role == model.RoleAdmin
}

// Restore picks up a token persisted by a previous run and validates it
// against the backend. An invalid or missing token leaves the store
// Anonymous with nothing persisted.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.tokens.Load()
	if err != nil || token == "" {
		s.reset()
		return err
	}

	s.status = Validating
	s.api.SetToken(token)
	if err := s.api.ValidateToken(ctx); err != nil {
		_ = s.tokens.Clear()
		s.api.ClearToken()
		s.reset()
		return nil
	}

	s.token = token
	s.user = identityFromToken(token)
	s.status = Authenticated
	return nil
}

// Login exchanges credentials for a token, decodes identity and role from
// the token payload (falling back to a validation round-trip when the
// payload cannot be decoded) and persists the token. On failure the state is
// left unchanged.
func (s *Store) Login(ctx context.Context, username string, password string) error {
	if err := validateLogin(username, password); err != nil {
		return err
	}

	token, err := s.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	s.api.SetToken(token)
	user, decodeErr := decodeIdentity(token)
	if decodeErr != nil {
		if err := s.api.ValidateToken(ctx); err != nil {
			s.api.ClearToken()
			return err
		}
		user = model.User{Username: username, Role: model.RoleUser}
	}
	if user.Username == "" {
		user.Username = username
	}

	_ = s.tokens.Save(token)
	s.token = token
	s.user = user
	s.status = Authenticated
	return nil
}

// Register creates an account server-side. It does not authenticate the
// caller; inputs are validated locally before any network call.
func (s *Store) Register(ctx context.Context, username string, email string, password string, confirm string) error {
	if err := validateRegistration(username, email, password, confirm); err != nil {
		return err
	}
	return s.api.Register(ctx, username, email, password)
}

// Logout clears the persisted token and identity unconditionally. No
// network call is made.
func (s *Store) Logout() {
	_ = s.tokens.Clear()
	s.api.ClearToken()
	s.reset()
}

// Expire is the forced logout for requests that reported an invalid or
// expired token.
func (s *Store) Expire() {
	s.Logout()
}

func (s *Store) reset() {
	s.status = Anonymous
	s.token = ""
	s.user = model.User{}
}

// identityFromToken is the lenient variant used on restore, where a token
// the backend just accepted should not be discarded over an undecodable
// payload.
func identityFromToken(token string) model.User {
	user, err := decodeIdentity(token)
	if err != nil {
		return model.User{Role: model.RoleUser}
	}
	return user
}

// decodeIdentity extracts the user id, name and role from the JWT payload
// without verifying the signature; verification is the backend's job and
// the client has no key material.
func decodeIdentity(token string) (model.User, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return model.User{}, err
	}

	user := model.User{Role: model.RoleUser}
	if id, ok := numericClaim(claims, "sub"); ok {
		user.Id = id
	} else if id, ok := numericClaim(claims, "user_id"); ok {
		user.Id = id
	}
	if username, ok := claims["username"].(string); ok {
		user.Username = username
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		user.Role = role
	}
	return user, nil
}

// numericClaim reads an int claim that backends encode as either a JSON
// number or a string.
func numericClaim(claims jwt.MapClaims, key string) (int, bool) {
	switch value := claims[key].(type) {
	case float64:
		return int(value), true
	case string:
		if id, err := strconv.Atoi(value); err == nil {
			return id, true
		}
	}
	return 0, false
}
