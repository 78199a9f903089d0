// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// payloads from handlers, applies the business rules and calls repositories.
package service

import (
	"fmt"

	"github.com/deppfellow/go-signup/internal/lib/hasher"
	"github.com/deppfellow/go-signup/internal/lib/job"
	"github.com/deppfellow/go-signup/internal/repository"
	"github.com/deppfellow/go-signup/internal/server"
)

type Services struct {
	Auth *AuthService
	Job  *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	bcrypt, err := hasher.NewBcrypt(s.Config.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("creating password hasher: %w", err)
	}

	var notifier WelcomeNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Auth: NewAuthService(repos.Users, bcrypt, notifier, s.Logger),
		Job:  s.Job,
	}, nil
}
