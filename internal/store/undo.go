package store

import (
	"context"

	"go.uber.org/zap"

	svurlerrors "github.com/lojhan/svurl/internal/errors"
	"github.com/lojhan/svurl/internal/persistence"
)

// Undo restores the backing files of source and dest from their backups and
// reloads both sets. Only the most recent save can be undone. If either
// backup is missing nothing is restored.
func (s *Store) Undo(ctx context.Context, source, dest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	handles, err := s.acquire(ctx, source, dest)
	if err != nil {
		return err
	}
	if handles[0].path == handles[1].path {
		handles = handles[:1]
	}

	for _, h := range handles {
		ok, err := persistence.HasBackup(h.path)
		if err != nil {
			return err
		}
		if !ok {
			return svurlerrors.CannotUndo(persistence.ErrNoBackup, h.path).WithContext("set", h.name)
		}
	}

	for _, h := range handles {
		if err := persistence.Restore(h.path); err != nil {
			return err
		}
		members, err := persistence.LoadSet(h.path, s.logger)
		if err != nil {
			return err
		}
		h.set.Replace(members)
		s.logger.Info("restored set from backup", zap.String("set", h.name), zap.String("path", h.path))
	}

	return nil
}
