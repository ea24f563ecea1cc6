package preview

import (
	"image"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
)

const defaultStoreSize = 64

// Store keeps one Cache per block list row, keyed by the row's option set
// id. Least recently previewed rows are dropped first.
type Store struct {
	caches   *lru.Cache[uuid.UUID, *Cache]
	renderer types.PreviewRenderer
	probe    types.FileProbe
}

// NewStore creates a store holding at most size row caches. A size of zero
// or less uses the default.
func NewStore(size int, renderer types.PreviewRenderer, probe types.FileProbe) (*Store, error) {
	if size <= 0 {
		size = defaultStoreSize
	}
	caches, err := lru.New[uuid.UUID, *Cache](size)
	if err != nil {
		return nil, err
	}
	return &Store{caches: caches, renderer: renderer, probe: probe}, nil
}

// For returns the cache of a row, creating it on first use
func (s *Store) For(id uuid.UUID) *Cache {
	if c, ok := s.caches.Get(id); ok {
		return c
	}
	c := NewCache()
	s.caches.Add(id, c)
	return c
}

// Preview returns the thumbnail of opt in its row's cache
func (s *Store) Preview(opt *types.InsertionOptionSet, projection types.Projection, mode types.DisplayMode, size image.Point) image.Image {
	if opt == nil {
		return nil
	}
	return s.For(opt.ID).GetOrRender(opt, s.renderer, s.probe, projection, mode, size)
}

// Forget drops the cache of a row
func (s *Store) Forget(id uuid.UUID) {
	s.caches.Remove(id)
}

// Len returns the number of cached rows
func (s *Store) Len() int {
	return s.caches.Len()
}
