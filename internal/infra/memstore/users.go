package memstore

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	userDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/user"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

type UserRepository struct {
	s *Store
}

func (r *UserRepository) Create(_ context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if r.emailTaken(u.Email, "") {
		return domain.ErrDuplicate
	}

	u.ID = models.EnsureID(u.ID)
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	now := r.s.tick()
	u.CreatedAt, u.UpdatedAt = now, now

	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u := r.s.userRef(id)
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepository) Update(_ context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.users[u.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if r.emailTaken(u.Email, u.ID) {
		return domain.ErrDuplicate
	}

	u.CreatedAt = current.CreatedAt
	u.UpdatedAt = r.s.tick()
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepository) emailTaken(email, exceptID string) bool {
	for id, u := range r.s.users {
		if id != exceptID && u.Email == email {
			return true
		}
	}
	return false
}

var _ userDomain.Repository = (*UserRepository)(nil)
