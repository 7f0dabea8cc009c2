package store

import (
	"context"
	"math/rand"
	"sort"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	svurlerrors "github.com/lojhan/svurl/internal/errors"
	"github.com/lojhan/svurl/internal/persistence"
)

// Opener launches an external viewer for a URL. Implementations should not
// wait for the viewer to exit.
type Opener interface {
	Open(ctx context.Context, url string) error
}

type nopOpener struct{}

func (nopOpener) Open(context.Context, string) error { return nil }

// handle is a set's slot in the Store. done is closed once the load finished;
// set and err are only read after that.
type handle struct {
	name  string
	path  string
	set   *Set
	err   error
	done  chan struct{}
	saves atomic.Int64
}

func (h *handle) load(logger *zap.Logger) error {
	defer close(h.done)

	members, err := persistence.LoadSet(h.path, logger.With(zap.String("set", h.name)))
	if err != nil {
		h.err = err
		return err
	}
	h.set = NewSet(members...)
	return nil
}

type Store struct {
	mu       sync.Mutex
	handles  map[string]*handle
	names    []string
	loads    errgroup.Group
	opener   Opener
	logger   *zap.Logger
	randIntn func(n int) int
}

type Option func(*Store)

func WithOpener(o Opener) Option {
	return func(s *Store) {
		if o != nil {
			s.opener = o
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRandom replaces the source used by SelectRandom. intn must return a
// value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(s *Store) {
		if intn != nil {
			s.randIntn = intn
		}
	}
}

// New builds a Store from a name to path mapping and starts loading every set
// in the background. Use Ready or Wait before touching the sets.
func New(paths map[string]string, opts ...Option) *Store {
	s := &Store{
		handles:  make(map[string]*handle, len(paths)),
		opener:   nopOpener{},
		logger:   zap.NewNop(),
		randIntn: rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}

	for name := range paths {
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)

	for _, name := range s.names {
		h := &handle{name: name, path: paths[name], done: make(chan struct{})}
		s.handles[name] = h
		s.loads.Go(func() error { return h.load(s.logger) })
	}

	return s
}

// Wait blocks until every set has loaded and returns the first load error.
func (s *Store) Wait() error {
	return s.loads.Wait()
}

// Ready blocks until the named sets have loaded.
func (s *Store) Ready(ctx context.Context, names ...string) error {
	for _, name := range names {
		h, err := s.lookup(name)
		if err != nil {
			return err
		}
		if err := h.wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (h *handle) wait(ctx context.Context) error {
	select {
	case <-h.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	if h.err != nil {
		return h.err
	}
	if h.set == nil {
		return svurlerrors.InternalError("set loaded without members", nil).WithContext("set", h.name)
	}
	return nil
}

func (s *Store) lookup(name string) (*handle, error) {
	h, ok := s.handles[name]
	if !ok {
		return nil, svurlerrors.UnknownSet(name)
	}
	return h, nil
}

// acquire resolves names to loaded handles, in argument order.
func (s *Store) acquire(ctx context.Context, names ...string) ([]*handle, error) {
	handles := make([]*handle, 0, len(names))
	for _, name := range names {
		h, err := s.lookup(name)
		if err != nil {
			return nil, err
		}
		if err := h.wait(ctx); err != nil {
			return nil, err
		}
		handles = append(handles, h)
	}
	return handles, nil
}

// Names returns the configured set names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// SetView is a read-only copy of a set.
type SetView struct {
	Name    string
	Path    string
	Members []string
	Saves   int64
}

func (h *handle) view() SetView {
	return SetView{
		Name:    h.name,
		Path:    h.path,
		Members: h.set.Members(),
		Saves:   h.saves.Load(),
	}
}

func (s *Store) Find(ctx context.Context, name string) (SetView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handles, err := s.acquire(ctx, name)
	if err != nil {
		return SetView{}, err
	}
	return handles[0].view(), nil
}

// Sets returns a view of every set, sorted by name.
func (s *Store) Sets(ctx context.Context) ([]SetView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handles, err := s.acquire(ctx, s.names...)
	if err != nil {
		return nil, err
	}
	views := make([]SetView, 0, len(handles))
	for _, h := range handles {
		views = append(views, h.view())
	}
	return views, nil
}

// SaveAll persists every set. Each set is saved independently; all failures
// are returned together.
func (s *Store) SaveAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	handles, err := s.acquire(ctx, s.names...)
	if err != nil {
		return err
	}
	return s.saveAll(handles)
}

func (s *Store) saveAll(handles []*handle) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs error
	)

	for _, h := range handles {
		h := h
		members := h.set.Members()
		g.Go(func() error {
			if err := s.save(h, members); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	g.Wait()

	return errs
}

func (s *Store) save(h *handle, members []string) error {
	if err := persistence.Save(h.path, members); err != nil {
		s.logger.Error("failed to save set",
			zap.String("set", h.name),
			zap.String("path", h.path),
			zap.Error(err))
		return err
	}
	h.saves.Inc()
	s.logger.Debug("saved set",
		zap.String("set", h.name),
		zap.String("path", h.path),
		zap.Int("members", len(members)))
	return nil
}
