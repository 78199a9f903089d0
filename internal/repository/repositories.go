// Package repository handles all interactions with the database.
//
// It contains the SQL queries and persists domain models, keeping SQL out
// of the service layer.
package repository

import (
	"github.com/deppfellow/go-signup/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users *UserRepository
}

// NewRepositories builds every repository on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users: NewUserRepository(s.DB.Pool),
	}
}
