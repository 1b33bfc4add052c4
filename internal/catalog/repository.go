package catalog

import (
	"errors"
	"slices"
	"sync"
)

var ErrNotFound = errors.New("product not found")

type Repository interface {
	List() ([]Product, error)
	GetByID(id string) (Product, error)
	// Reset replaces all products with the provided list (used for seeding).
	Reset(products []Product) error
}

// InMemoryRepository keeps the catalog in process memory.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{}
	_ = r.Reset(seed)
	return r
}

func (r *InMemoryRepository) List() ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := slices.IndexFunc(r.storage, func(p Product) bool { return p.ID == id })
	if i < 0 {
		return Product{}, ErrNotFound
	}
	return r.storage[i], nil
}

func (r *InMemoryRepository) Reset(products []Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = append([]Product(nil), products...)
	return nil
}
