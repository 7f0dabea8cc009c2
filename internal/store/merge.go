package store

import (
	"context"

	"go.uber.org/zap"

	svurlerrors "github.com/lojhan/svurl/internal/errors"
)

type MergeResult struct {
	Kept       int
	Reconciled int
}

// Merge computes (leftA ∪ rightA) \ (leftB ∪ rightB) and writes it over leftA,
// then writes leftB ∪ rightB over leftB. rightA and rightB are read only.
func (s *Store) Merge(ctx context.Context, leftA, rightA, leftB, rightB string) (MergeResult, error) {
	if leftA == leftB {
		return MergeResult{}, svurlerrors.InvalidArgument("merge would write both results to one set").
			WithContext("set", leftA)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	handles, err := s.acquire(ctx, leftA, rightA, leftB, rightB)
	if err != nil {
		return MergeResult{}, err
	}
	la, ra, lb, rb := handles[0], handles[1], handles[2], handles[3]

	unionA := Union(la.set, ra.set)
	unionB := Union(lb.set, rb.set)
	result := unionA.Difference(unionB)

	if err := s.save(la, result.Members()); err != nil {
		return MergeResult{}, err
	}
	la.set = result

	if err := s.save(lb, unionB.Members()); err != nil {
		return MergeResult{}, err
	}
	lb.set = unionB

	s.logger.Info("merged sets",
		zap.String("left_a", leftA),
		zap.String("right_a", rightA),
		zap.String("left_b", leftB),
		zap.String("right_b", rightB),
		zap.Int("kept", result.Card()),
		zap.Int("reconciled", unionB.Card()))

	return MergeResult{Kept: result.Card(), Reconciled: unionB.Card()}, nil
}
