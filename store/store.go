// Package store holds the runtime property lists of a game. Lists are fetched
// once from a content source, cloned into private instances and then read and
// mutated through the accessors. Every accessor fails fast until the load has
// completed.
//
// Accessors are not synchronized with each other. Mutations are expected to
// come from a single update loop.
package store

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/milk9111/tileprops/content"
	"github.com/milk9111/tileprops/proplist"
)

type State int32

const (
	Uninitialized State = iota
	Loading
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

type Options struct {
	// Tag selects which lists the source returns. Empty means content.DefaultTag.
	Tag string
	// Logger receives surfaced warnings. Nil means the standard logger.
	Logger *log.Logger
	// OnLoaded runs once after the store becomes ready.
	OnLoaded func()
}

type Store struct {
	src      content.Source
	tag      string
	logger   *log.Logger
	onLoaded func()

	state  atomic.Int32
	ready  chan struct{}
	failed chan struct{}

	mu  sync.Mutex
	err error

	lists []*proplist.List
}

func New(src content.Source, opts Options) *Store {
	if opts.Tag == "" {
		opts.Tag = content.DefaultTag
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Store{
		src:      src,
		tag:      opts.Tag,
		logger:   opts.Logger,
		onLoaded: opts.OnLoaded,
		ready:    make(chan struct{}),
		failed:   make(chan struct{}),
	}
}

// Load starts fetching every list carrying the store's tag and returns a
// channel that is closed once the store is ready. Only the first call starts
// a load; later calls return the same channel.
func (s *Store) Load(ctx context.Context) <-chan struct{} {
	if !s.state.CompareAndSwap(int32(Uninitialized), int32(Loading)) {
		s.warn(fmt.Errorf("%w (state %s)", ErrLoadStarted, s.State()))
		return s.ready
	}
	go s.load(ctx)
	return s.ready
}

func (s *Store) load(ctx context.Context) {
	if s.src == nil {
		s.fail(fmt.Errorf("store: no content source"))
		return
	}
	fetched, err := s.src.FetchAllTagged(ctx, s.tag)
	if err != nil {
		s.fail(fmt.Errorf("store: fetch %q: %w", s.tag, err))
		return
	}

	lists := make([]*proplist.List, 0, len(fetched))
	for _, l := range fetched {
		if l == nil {
			continue
		}
		lists = append(lists, l.Clone())
	}
	if len(lists) == 0 {
		s.warn(fmt.Errorf("%w with tag %q", ErrNoLists, s.tag))
	}

	s.lists = lists
	s.state.Store(int32(Ready))
	close(s.ready)
	if s.onLoaded != nil {
		s.onLoaded()
	}
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
	s.warn(err)
	close(s.failed)
}

// Ready returns a channel closed when the store becomes ready.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

func (s *Store) IsReady() bool {
	return s.State() == Ready
}

func (s *Store) State() State {
	return State(s.state.Load())
}

// Err returns the error of a failed load, if any.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Wait blocks until the store is ready, the load fails or ctx is done.
func (s *Store) Wait(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-s.failed:
		return s.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Lists returns the runtime lists in store order. The slice is a copy; the
// lists are not.
func (s *Store) Lists() []*proplist.List {
	if !s.checkReady() {
		return nil
	}
	out := make([]*proplist.List, len(s.lists))
	copy(out, s.lists)
	return out
}

func (s *Store) warn(err error) {
	s.logger.Printf("tileprops: warning: %v", err)
}

func (s *Store) warnIf(strict bool, err error) {
	if strict {
		s.warn(err)
	}
}

func (s *Store) checkReady() bool {
	if s.IsReady() {
		return true
	}
	s.warn(ErrNotReady)
	return false
}
