// Package session owns the customer access token and the cached customer
// projection. All authentication happens remotely; this store only decides
// when to call the backend and what survives a restart.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"verse-storefront/internal/domain"
	"verse-storefront/internal/localstore"
)

// sessionKey matches the token/expiry pair the web client kept in
// localStorage.
const sessionKey = "customerSession"

// Backend is the slice of the commerce API the store needs.
type Backend interface {
	TokenCreate(ctx context.Context, email, password string) (*domain.Session, error)
	TokenRenew(ctx context.Context, accessToken string) (*domain.Session, error)
	TokenDelete(ctx context.Context, accessToken string) error
	CustomerCreate(ctx context.Context, email, password, firstName, lastName string) (string, error)
	CustomerRecover(ctx context.Context, email string) error
	GetCustomer(ctx context.Context, accessToken string) (*domain.Customer, error)
}

// Store holds at most one customer session plus the customer projection
// fetched with it.
type Store struct {
	mu       sync.Mutex
	backend  Backend
	storage  localstore.Store
	logger   *log.Logger
	now      func() time.Time
	session  *domain.Session
	customer *domain.Customer
}

// New builds a Store. Call Init once afterwards to rehydrate a persisted
// session.
func New(backend Backend, storage localstore.Store, logger *log.Logger) *Store {
	return &Store{
		backend: backend,
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// Init rehydrates a stored session. An expired token gets one renewal
// attempt; renewal failure forces a logout. Expiry is only ever checked
// here — there is no background renewal loop.
func (s *Store) Init(ctx context.Context) {
	s.mu.Lock()
	var stored domain.Session
	ok, err := s.storage.Get(sessionKey, &stored)
	if err != nil {
		s.logger.Printf("load session: %v", err)
		s.mu.Unlock()
		return
	}
	if !ok || stored.AccessToken == "" {
		s.mu.Unlock()
		return
	}

	if stored.Expired(s.now()) {
		renewed, err := s.backend.TokenRenew(ctx, stored.AccessToken)
		if err != nil {
			s.logger.Printf("session renewal failed, logging out: %v", err)
			s.clearLocked()
			s.mu.Unlock()
			return
		}
		stored = *renewed
	}
	s.session = &stored
	s.persistLocked()
	token := stored.AccessToken
	s.mu.Unlock()

	customer, err := s.backend.GetCustomer(ctx, token)
	if err != nil {
		s.logger.Printf("fetch customer on init: %v", err)
		if errors.Is(err, domain.ErrSessionExpired) {
			s.mu.Lock()
			s.clearLocked()
			s.mu.Unlock()
		}
		return
	}
	s.mu.Lock()
	s.customer = customer
	s.mu.Unlock()
}

// Login exchanges credentials for a session, persists it, then fetches and
// caches the customer projection.
func (s *Store) Login(ctx context.Context, email, password string) (*domain.Customer, error) {
	sess, err := s.backend.TokenCreate(ctx, email, password)
	if err != nil {
		var userErr *domain.RemoteUserError
		if errors.As(err, &userErr) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, userErr.Message)
		}
		return nil, err
	}

	s.mu.Lock()
	s.session = sess
	s.persistLocked()
	s.mu.Unlock()

	customer, err := s.backend.GetCustomer(ctx, sess.AccessToken)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.customer = customer
	s.mu.Unlock()
	return customer, nil
}

// CreateAccount registers a customer record remotely then logs in with the
// same credentials. Remote business-rule violations (duplicate email) come
// back as *domain.RemoteUserError.
func (s *Store) CreateAccount(ctx context.Context, email, password, firstName, lastName string) (*domain.Customer, error) {
	if _, err := s.backend.CustomerCreate(ctx, email, password, firstName, lastName); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return s.Login(ctx, email, password)
}

// RecoverPassword triggers a remote password-reset email. Whether the email
// exists is not revealed.
func (s *Store) RecoverPassword(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return &domain.ValidationError{Field: "email", Message: "email required"}
	}
	if err := s.backend.CustomerRecover(ctx, email); err != nil {
		return fmt.Errorf("recover password: %w", err)
	}
	return nil
}

// Logout invalidates the remote token best-effort and clears local state
// unconditionally.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	token := ""
	if s.session != nil {
		token = s.session.AccessToken
	}
	s.clearLocked()
	s.mu.Unlock()

	if token == "" {
		return
	}
	if err := s.backend.TokenDelete(ctx, token); err != nil {
		s.logger.Printf("remote logout: %v", err)
	}
}

// RefreshCustomer refetches the customer projection with the current token.
func (s *Store) RefreshCustomer(ctx context.Context) (*domain.Customer, error) {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return nil, domain.ErrUnauthorized
	}
	token := s.session.AccessToken
	s.mu.Unlock()

	customer, err := s.backend.GetCustomer(ctx, token)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.customer = customer
	s.mu.Unlock()
	return customer, nil
}

// Customer returns the cached projection, nil when logged out.
func (s *Store) Customer() *domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer
}

// LoggedIn reports whether a session is held.
func (s *Store) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil
}

func (s *Store) persistLocked() {
	if err := s.storage.Set(sessionKey, s.session); err != nil {
		s.logger.Printf("persist session: %v", err)
	}
}

func (s *Store) clearLocked() {
	s.session = nil
	s.customer = nil
	if err := s.storage.Delete(sessionKey); err != nil {
		s.logger.Printf("clear session: %v", err)
	}
}
