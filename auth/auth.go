// Package auth issues and verifies sessions for email/password accounts and
// anonymous guests. The billing core only ever sees a CurrentUser.
package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/satheeshds/billing/config"
	"github.com/satheeshds/billing/models"
	"github.com/satheeshds/billing/store"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLen = 6
	guestPrefix    = "anon-"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CurrentUser is the signed-in identity attached to a request.
type CurrentUser struct {
	ID          string `json:"id"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Anonymous   bool   `json:"anonymous"`
}

// Session is returned by every sign-in path.
type Session struct {
	Token string      `json:"token"`
	User  CurrentUser `json:"user"`
}

// Claims is the JWT payload. The subject is the user id.
type Claims struct {
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	Anonymous bool   `json:"anon,omitempty"`
	jwt.RegisteredClaims
}

// Service signs users up and in against a Store.
type Service struct {
	store      store.Store
	secret     []byte
	ttl        time.Duration
	cost       int
	allowGuest bool
	limiter    *limiter
	now        func() time.Time
}

// NewService builds a Service from the auth configuration. An empty secret
// is replaced with a random one, which invalidates tokens across restarts.
func NewService(s store.Store, cfg config.AuthConfig) *Service {
	secret := []byte(cfg.JWTSecret)
	if len(secret) == 0 {
		slog.Warn("auth.jwt_secret not set, using a random secret; tokens will not survive a restart")
		secret = make([]byte, 32)
		rand.Read(secret)
	}
	ttl := time.Duration(cfg.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Service{
		store:      s,
		secret:     secret,
		ttl:        ttl,
		cost:       cost,
		allowGuest: cfg.AllowGuest,
		limiter:    newLimiter(5, 10*time.Minute),
		now:        time.Now,
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// SignUp creates an email/password account and signs it in.
func (s *Service) SignUp(ctx context.Context, in models.SignUpInput) (Session, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return Session{}, err
	}
	if len(in.Password) < minPasswordLen {
		return Session{}, ErrWeakPassword
	}

	_, err = s.store.GetUserByEmail(ctx, email)
	if err == nil {
		return Session{}, ErrEmailInUse
	}
	if !errors.Is(err, store.ErrNotFound) {
		return Session{}, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}
	u, err := s.store.CreateUser(ctx, models.User{
		Email:        email,
		DisplayName:  strings.TrimSpace(in.DisplayName),
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	})
	if errors.Is(err, store.ErrDuplicate) {
		return Session{}, ErrEmailInUse
	}
	if err != nil {
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	slog.Info("user signed up", "user_id", u.ID)
	return s.issue(CurrentUser{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName})
}

// SignIn verifies an email/password pair. Repeated failures for the same
// email are refused with ErrTooManyRequests until the lockout passes.
func (s *Service) SignIn(ctx context.Context, in models.SignInInput) (Session, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return Session{}, err
	}
	if in.Password == "" {
		return Session{}, ErrInvalidCredential
	}
	if s.limiter.locked(email, s.now()) {
		return Session{}, ErrTooManyRequests
	}

	u, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return Session{}, ErrUserNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		s.limiter.fail(email, s.now())
		return Session{}, ErrWrongPassword
	}
	s.limiter.reset(email)

	return s.issue(CurrentUser{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName})
}

// SignInAnonymously starts a guest session with a fresh id. Guests can build
// and print bills but cannot save them.
func (s *Service) SignInAnonymously() (Session, error) {
	if !s.allowGuest {
		return Session{}, ErrOperationNotAllowed
	}
	return s.issue(CurrentUser{ID: guestPrefix + uuid.NewString(), Anonymous: true})
}

// TokenTTL is how long an issued token stays valid.
func (s *Service) TokenTTL() time.Duration { return s.ttl }

func (s *Service) issue(u CurrentUser) (Session, error) {
	now := s.now()
	claims := Claims{
		Email:     u.Email,
		Name:      u.DisplayName,
		Anonymous: u.Anonymous,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return Session{}, fmt.Errorf("sign token: %w", err)
	}
	return Session{Token: token, User: u}, nil
}

// ParseToken verifies a token issued by this service. Expired tokens yield
// ErrTokenExpired and every other failure ErrInvalidCredential.
func (s *Service) ParseToken(token string) (CurrentUser, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return CurrentUser{}, ErrTokenExpired
	}
	if err != nil || claims.Subject == "" {
		return CurrentUser{}, ErrInvalidCredential
	}
	return CurrentUser{
		ID:          claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
		Anonymous:   claims.Anonymous,
	}, nil
}

type ctxKey struct{}

// WithUser attaches u to ctx.
func WithUser(ctx context.Context, u CurrentUser) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// FromContext returns the user attached by WithUser.
func FromContext(ctx context.Context) (CurrentUser, bool) {
	u, ok := ctx.Value(ctxKey{}).(CurrentUser)
	return u, ok
}
