package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vista-store/storefront/internal/core/domain"
	"github.com/vista-store/storefront/internal/core/ports"
)

// SessionSnapshotKey is the durable storage namespace for session state.
const SessionSnapshotKey = "vista:session"

// Result is the outcome of a user-initiated session operation, shaped for
// forms that branch on success and surface field-level errors.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func okResult() Result             { return Result{Success: true} }
func failResult(msg string) Result { return Result{Success: false, Error: msg} }

// sessionSnapshot is the persisted shape. The loading flag is transient and
// never persisted.
type sessionSnapshot struct {
	User          *domain.User `json:"user"`
	Token         string       `json:"token"`
	Authenticated bool         `json:"authenticated"`
}

// Session authenticates, persists, and restores a user session.
//
// Invariant: authenticated is true only while both user and token are
// non-null and the token has been validated against the auth service at
// least once since restore.
type Session struct {
	mu            sync.Mutex
	client        ports.AuthClient
	storage       ports.SnapshotStore
	notifier      ports.Notifier
	log           zerolog.Logger
	key           string
	user          *domain.User
	token         string
	authenticated bool
	loading       bool
}

func NewSession(client ports.AuthClient, storage ports.SnapshotStore, notifier ports.Notifier, log zerolog.Logger) *Session {
	return &Session{client: client, storage: storage, notifier: notifier, log: log, key: SessionSnapshotKey}
}

// Restore loads the persisted session fields. It performs no validation;
// call CheckAuth afterwards to re-validate the restored token.
func (s *Session) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var snap sessionSnapshot
	found, err := s.storage.Load(ctx, s.key, &snap)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if found {
		s.user = snap.User
		s.token = snap.Token
		s.authenticated = snap.Authenticated
	}
	return nil
}

// Login authenticates with the auth service. On failure the session state is
// left exactly as it was: a failed login never clears an existing session.
func (s *Session) Login(ctx context.Context, email, password string) Result {
	s.setLoading(true)
	defer s.setLoading(false)

	res, err := s.client.Login(ctx, email, password)
	if err != nil {
		msg := errorMessage(err, "Login failed")
		s.notifier.Error(msg)
		return failResult(msg)
	}

	s.applyAuth(ctx, res)
	s.notifier.Success(fmt.Sprintf("Welcome back, %s!", res.User.Name))
	return okResult()
}

// Register creates a new account; success and failure handling mirror Login
// with a generic success notification.
func (s *Session) Register(ctx context.Context, input ports.RegisterInput) Result {
	s.setLoading(true)
	defer s.setLoading(false)

	res, err := s.client.Register(ctx, input)
	if err != nil {
		msg := errorMessage(err, "Registration failed")
		s.notifier.Error(msg)
		return failResult(msg)
	}

	s.applyAuth(ctx, res)
	s.notifier.Success("Account created successfully!")
	return okResult()
}

// Logout unconditionally clears the session and its durable record.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.authenticated = false
	if err := s.storage.Delete(ctx, s.key); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear session snapshot")
	}
	s.mu.Unlock()

	s.notifier.Success("Logged out successfully")
}

// ForgotPassword requests a reset link. Session state is never altered; the
// result object is returned for the calling form to branch on.
func (s *Session) ForgotPassword(ctx context.Context, email string) Result {
	s.setLoading(true)
	defer s.setLoading(false)

	if _, err := s.client.ForgotPassword(ctx, email); err != nil {
		msg := errorMessage(err, "Failed to send reset link")
		s.notifier.Error(msg)
		return failResult(msg)
	}

	s.notifier.Success("Password reset link sent to your email")
	return okResult()
}

// UpdateProfile merges the fields returned by the auth service into the
// existing user (partial update, not replacement). On failure the session is
// unchanged.
func (s *Session) UpdateProfile(ctx context.Context, input ports.ProfileInput) Result {
	s.setLoading(true)
	defer s.setLoading(false)

	s.mu.Lock()
	user := s.user
	s.mu.Unlock()
	if user == nil {
		return failResult("Not authenticated")
	}

	updated, err := s.client.UpdateProfile(ctx, user.ID, input)
	if err != nil {
		msg := errorMessage(err, "Profile update failed")
		s.notifier.Error(msg)
		return failResult(msg)
	}

	s.mu.Lock()
	merged := *s.user
	if updated.Name != "" {
		merged.Name = updated.Name
	}
	if updated.Email != "" {
		merged.Email = updated.Email
	}
	if updated.Avatar != "" {
		merged.Avatar = updated.Avatar
	}
	s.user = &merged
	s.persist(ctx)
	s.mu.Unlock()

	s.notifier.Success("Profile updated successfully")
	return okResult()
}

// CheckAuth re-validates a restored token at start-up. With no token present
// it is a no-op. Any validation failure forces a full logout: this is the
// only path that silently deauthenticates a restored session.
func (s *Session) CheckAuth(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	if token == "" {
		return nil
	}

	user, err := s.client.VerifyToken(ctx, token)
	if err != nil {
		s.log.Info().Err(err).Msg("token re-validation failed, forcing logout")
		s.mu.Lock()
		s.user = nil
		s.token = ""
		s.authenticated = false
		if delErr := s.storage.Delete(ctx, s.key); delErr != nil {
			s.log.Warn().Err(delErr).Msg("failed to clear session snapshot")
		}
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	s.user = user
	s.authenticated = true
	s.persist(ctx)
	s.mu.Unlock()
	return nil
}

func (s *Session) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	clone := *s.user
	return &clone
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// applyAuth installs a successful auth result and persists the snapshot.
func (s *Session) applyAuth(ctx context.Context, res *ports.AuthResult) {
	s.mu.Lock()
	s.user = res.User
	s.token = res.Token
	s.authenticated = true
	s.persist(ctx)
	s.mu.Unlock()
}

// persist writes the durable session fields; callers hold the mutex.
func (s *Session) persist(ctx context.Context) {
	snap := sessionSnapshot{User: s.user, Token: s.token, Authenticated: s.authenticated}
	if err := s.storage.Save(ctx, s.key, snap); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist session")
	}
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// errorMessage extracts the service-provided message, falling back to a
// generic one when the error carries none.
func errorMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
