package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	svurlerrors "github.com/lojhan/svurl/internal/errors"
	"github.com/lojhan/svurl/internal/link"
	"github.com/lojhan/svurl/internal/persistence"
)

// InsertResult describes the outcome of InsertDeduped. A duplicate is a normal
// outcome: Added is false and DuplicateSet/Position say where it was found.
type InsertResult struct {
	Value        string
	Added        bool
	DuplicateSet string
	Position     int
}

func (r InsertResult) String() string {
	if r.Added {
		return "added " + r.Value
	}
	return fmt.Sprintf("%s already in %s at position %d", r.Value, r.DuplicateSet, r.Position)
}

// InsertDeduped adds rawURL to the target set unless it is already present.
//
// In full mode the stored value is the URL's origin and path; when check is
// not empty the check set is searched too. In origin mode only the origin is
// stored and only the target set is searched. A new value is appended to the
// target's file immediately.
func (s *Store) InsertDeduped(ctx context.Context, target, check, rawURL string, mode link.Mode) (InsertResult, error) {
	if mode != link.ModeFull && mode != link.ModeOrigin {
		return InsertResult{}, svurlerrors.InvalidMode(string(mode))
	}

	candidate, err := link.Parse(rawURL)
	if err != nil {
		return InsertResult{}, svurlerrors.InvalidURL(rawURL, err)
	}
	value, err := candidate.Key(mode)
	if err != nil {
		return InsertResult{}, svurlerrors.InvalidMode(string(mode))
	}

	names := []string{target}
	if mode == link.ModeFull && check != "" && check != target {
		names = append(names, check)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	handles, err := s.acquire(ctx, names...)
	if err != nil {
		return InsertResult{}, err
	}

	for _, h := range handles {
		if pos := h.set.Position(value); pos > 0 {
			s.logger.Info("duplicate URL",
				zap.String("value", value),
				zap.String("set", h.name),
				zap.Int("position", pos))
			return InsertResult{Value: value, DuplicateSet: h.name, Position: pos}, nil
		}
	}

	dst := handles[0]
	dst.set.Add(value)
	if err := persistence.Append(dst.path, value); err != nil {
		dst.set.Remove(value)
		return InsertResult{}, err
	}

	s.logger.Info("added URL", zap.String("value", value), zap.String("set", dst.name))
	return InsertResult{Value: value, Added: true}, nil
}
