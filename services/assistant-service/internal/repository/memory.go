package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/model"
)

type userMemoryRepository struct {
	mu      sync.RWMutex
	byID    map[bson.ObjectID]*model.User
	byEmail map[string]bson.ObjectID
	now     func() time.Time
}

// NewUserMemoryRepository returns a process-local store with the same
// invariants as the mongo one. Nothing survives a restart.
func NewUserMemoryRepository() UserRepository {
	return &userMemoryRepository{
		byID:    make(map[bson.ObjectID]*model.User),
		byEmail: make(map[string]bson.ObjectID),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (r *userMemoryRepository) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := NormalizeEmail(user.Email)
	if _, ok := r.byEmail[email]; ok {
		return nil, ErrEmailAlreadyExists
	}

	now := r.now()
	user.ID = bson.NewObjectID()
	user.Email = email
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	r.byID[user.ID] = &stored
	r.byEmail[email] = user.ID

	return user, nil
}

func (r *userMemoryRepository) GetUser(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.lookup(id)
	if !ok {
		return nil, ErrUserNotFound
	}

	cp := *u
	return &cp, nil
}

func (r *userMemoryRepository) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[NormalizeEmail(email)]
	if !ok {
		return nil, ErrUserNotFound
	}

	cp := *r.byID[id]
	return &cp, nil
}

func (r *userMemoryRepository) UpdateProfile(_ context.Context, id string, params UpdateProfileParams) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.lookup(id)
	if !ok {
		return nil, ErrUserNotFound
	}

	u.Name = params.Name
	u.CollegeCourseName = params.CollegeCourseName
	u.University = params.University
	u.ResponseFormat = params.ResponseFormat
	u.UpdatedAt = r.now()

	cp := *u
	return &cp, nil
}

func (r *userMemoryRepository) UpdatePasswordHash(_ context.Context, id string, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.lookup(id)
	if !ok {
		return ErrUserNotFound
	}

	u.PasswordHash = passwordHash
	u.UpdatedAt = r.now()

	return nil
}

func (r *userMemoryRepository) lookup(id string) (*model.User, bool) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, false
	}

	u, ok := r.byID[objectID]
	return u, ok
}
