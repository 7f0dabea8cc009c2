package store

import (
	"context"

	"go.uber.org/zap"

	svurlerrors "github.com/lojhan/svurl/internal/errors"
)

// Selection is the outcome of a retrieval. OpenErr holds a failure of the
// external opener; it never undoes the transfer.
type Selection struct {
	Value   string
	Index   int
	Source  string
	Dest    string
	Moved   bool
	OpenErr error
}

// SelectByIndex picks the member at zero-based index of source. With remove
// the member moves to dest and every set is saved before the URL is opened.
func (s *Store) SelectByIndex(ctx context.Context, source, dest string, index int, remove bool) (Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handles, err := s.acquire(ctx, source, dest)
	if err != nil {
		return Selection{}, err
	}
	return s.selectAt(ctx, handles[0], handles[1], index, remove)
}

// SelectRandom picks a uniformly random selectable member of source. The draw
// is taken from [MinIndex, size-1] instead of drawing from the whole set and
// letting the range check reject the reserved position.
func (s *Store) SelectRandom(ctx context.Context, source, dest string, remove bool) (Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handles, err := s.acquire(ctx, source, dest)
	if err != nil {
		return Selection{}, err
	}

	size := handles[0].set.Card()
	if size <= MinIndex {
		return Selection{}, indexOutOfRange(source, MinIndex, size)
	}
	index := MinIndex + s.randIntn(size-MinIndex)
	return s.selectAt(ctx, handles[0], handles[1], index, remove)
}

// PopLast moves the most recently added member of source to dest.
func (s *Store) PopLast(ctx context.Context, source, dest string) (Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handles, err := s.acquire(ctx, source, dest)
	if err != nil {
		return Selection{}, err
	}
	return s.selectAt(ctx, handles[0], handles[1], handles[0].set.Card()-1, true)
}

func (s *Store) selectAt(ctx context.Context, src, dst *handle, index int, remove bool) (Selection, error) {
	size := src.set.Card()
	if index < MinIndex || index > size-1 {
		return Selection{}, indexOutOfRange(src.name, index, size)
	}

	value, ok := src.set.At(index)
	if !ok {
		return Selection{}, svurlerrors.InternalError("selectable index has no member", nil).
			WithContext("set", src.name).
			WithContext("index", index)
	}

	sel := Selection{Value: value, Index: index, Source: src.name, Dest: dst.name}

	if remove {
		all, err := s.acquire(ctx, s.names...)
		if err != nil {
			return Selection{}, err
		}

		if index == size-1 {
			src.set.Pop()
		} else {
			src.set.Remove(value)
		}
		dst.set.Add(value)
		sel.Moved = true

		if err := s.saveAll(all); err != nil {
			return sel, err
		}
		s.logger.Info("moved URL",
			zap.String("value", value),
			zap.String("from", src.name),
			zap.String("to", dst.name))
	}

	if err := s.opener.Open(ctx, value); err != nil {
		sel.OpenErr = svurlerrors.OpenFailed(value, err)
		s.logger.Warn("failed to open URL", zap.String("value", value), zap.Error(err))
	}

	return sel, nil
}
