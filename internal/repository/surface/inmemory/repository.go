package inmemory

import (
	"log/slog"
	"sync"

	"github.com/twitchembed/server/internal/repository/surface"
)

type repo struct {
	attachments map[string]*surface.Attachment
	mu          sync.RWMutex
}

func NewRepo() *repo {
	return &repo{
		attachments: make(map[string]*surface.Attachment),
	}
}

func (r *repo) Add(playerID string, att *surface.Attachment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.attachments[playerID]; ok {
		slog.Debug("surface.inmemory.Add", "error", surface.ErrAlreadyAttached, "playerID", playerID)
		return surface.ErrAlreadyAttached
	}

	r.attachments[playerID] = att

	return nil
}

func (r *repo) Get(playerID string) (*surface.Attachment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	att, ok := r.attachments[playerID]
	if !ok {
		return nil, surface.ErrNotAttached
	}

	return att, nil
}

func (r *repo) Remove(playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	att, ok := r.attachments[playerID]
	if !ok {
		return surface.ErrNotAttached
	}
	att.Surface().Close()

	delete(r.attachments, playerID)

	return nil
}
