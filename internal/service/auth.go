package service

import (
	"context"
	"errors"
	"html"
	"strings"

	"github.com/rs/zerolog"

	"github.com/deppfellow/go-signup/internal/errs"
	"github.com/deppfellow/go-signup/internal/logger"
	"github.com/deppfellow/go-signup/internal/model"
	"github.com/deppfellow/go-signup/internal/repository"
	"github.com/deppfellow/go-signup/internal/validation"
)

const (
	MsgUserCreated     = "User created successfully!"
	MsgEmailExists     = "Email address already exists!"
	MsgUserCreateError = "An error occurred while creating the user."

	CodeEmailAlreadyExists = "EMAIL_ALREADY_EXISTS"
)

// UserStore persists users. CreateUser returns repository.ErrDuplicateEmail
// when the email address is already registered.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// WelcomeNotifier schedules the welcome email after a signup.
type WelcomeNotifier interface {
	EnqueueWelcomeEmail(ctx context.Context, to, name string) error
}

// SignupRequest is the POST /signup payload, accepted as JSON or form data.
type SignupRequest struct {
	Name         string `json:"name" form:"name" validate:"required,min=3"`
	EmailAddress string `json:"emailID" form:"emailID" validate:"required,email"`
	Password     string `json:"password" form:"password" validate:"required,min=8"`
}

// Sanitize trims every field, escapes name and password and normalizes the
// email address. Lengths are checked on the sanitized values.
func (r *SignupRequest) Sanitize() {
	r.Name = validation.Escape(strings.TrimSpace(r.Name))
	r.EmailAddress = validation.NormalizeEmail(strings.TrimSpace(r.EmailAddress))
	r.Password = validation.Escape(strings.TrimSpace(r.Password))
}

func (r *SignupRequest) Validate() error {
	return validation.Struct(r)
}

func (r *SignupRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"name.required":     "User name can not be empty!",
		"name.min":          "Minimum 3 characters required!",
		"emailID.required":  "Invalid email address!",
		"emailID.email":     "Invalid email address!",
		"password.required": "Password can not be empty!",
		"password.min":      "Minimum 8 characters required!",
	}
}

type SignupResponse struct {
	Message string `json:"message"`
}

type AuthService struct {
	users    UserStore
	hasher   PasswordHasher
	notifier WelcomeNotifier
	logger   *zerolog.Logger
}

// NewAuthService wires the signup dependencies. notifier may be nil, in
// which case no welcome email is sent.
func NewAuthService(users UserStore, hasher PasswordHasher, notifier WelcomeNotifier, log *zerolog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		notifier: notifier,
		logger:   log,
	}
}

// Signup hashes the password and stores the user described by req, which
// must already be sanitized and validated.
func (s *AuthService) Signup(ctx context.Context, req *SignupRequest) (*SignupResponse, error) {
	log := s.loggerFor(ctx).With().
		Str("operation", "signup").
		Str("email", logger.RedactEmail(req.EmailAddress)).
		Logger()

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		return nil, createUserError(err)
	}

	user, err := s.users.CreateUser(ctx, &model.User{
		Name:         req.Name,
		EmailAddress: req.EmailAddress,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			log.Info().Msg("signup rejected, email address already registered")
			code := CodeEmailAlreadyExists
			return nil, errs.NewBadRequestError(MsgEmailExists, true, &code, nil)
		}

		log.Error().Err(err).Msg("failed to create user")
		return nil, createUserError(err)
	}

	log.Info().Str("user_id", user.ID.String()).Msg("user created")

	if s.notifier != nil {
		if err := s.notifier.EnqueueWelcomeEmail(ctx, user.EmailAddress, html.UnescapeString(user.Name)); err != nil {
			log.Error().Err(err).Msg("failed to enqueue welcome email")
		}
	}

	return &SignupResponse{Message: MsgUserCreated}, nil
}

// loggerFor prefers the request-scoped logger carried by ctx.
func (s *AuthService) loggerFor(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.logger
}

func createUserError(err error) *errs.HTTPError {
	return errs.NewInternalServerError().
		WithMessage(MsgUserCreateError).
		WithDetail(err.Error())
}
