// Package memory keeps notification state in process memory. State is lost on restart.
package memory

import (
	"context"
	"sync"

	"patrol/internal/domain/entity"
	"patrol/internal/domain/repository"
)

type notificationStateRepository struct {
	mu     sync.Mutex
	states map[entity.AdminID]*entity.NotificationState
}

// NewNotificationStateRepository returns an in-memory notification state store.
func NewNotificationStateRepository() repository.NotificationStateRepository {
	return &notificationStateRepository{
		states: make(map[entity.AdminID]*entity.NotificationState),
	}
}

// Get returns a copy of the stored state so callers cannot mutate it behind the lock.
func (r *notificationStateRepository) Get(_ context.Context, adminID entity.AdminID) (*entity.NotificationState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(adminID).Clone(), nil
}

func (r *notificationStateRepository) Put(_ context.Context, state *entity.NotificationState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[state.AdminID] = state.Clone()

	return nil
}

// Update applies fn to a working copy and stores it only when fn succeeds.
func (r *notificationStateRepository) Update(
	_ context.Context,
	adminID entity.AdminID,
	fn func(state *entity.NotificationState) error,
) (*entity.NotificationState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	working := r.load(adminID).Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	r.states[adminID] = working

	return working.Clone(), nil
}

func (r *notificationStateRepository) load(adminID entity.AdminID) *entity.NotificationState {
	if state, ok := r.states[adminID]; ok {
		return state
	}

	return entity.NewNotificationState(adminID)
}
