package generics

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Entity is anything stored by ID.
type Entity interface {
	EntityID() uuid.UUID
}

type User struct {
	ID    uuid.UUID
	Name  string
	Email string
}

func NewUser(name, email string) User { return User{ID: uuid.New(), Name: name, Email: email} }

func (u User) EntityID() uuid.UUID { return u.ID }

type Product struct {
	ID    uuid.UUID
	Name  string
	Price float64
}

func NewProduct(name string, price float64) Product {
	return Product{ID: uuid.New(), Name: name, Price: price}
}

func (p Product) EntityID() uuid.UUID { return p.ID }

// Repository is an in-memory store keyed by entity ID. FindAll returns
// entities in the order they were first saved.
type Repository[T Entity] struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]T
	order []uuid.UUID
}

func NewRepository[T Entity]() *Repository[T] {
	return &Repository[T]{byID: make(map[uuid.UUID]T)}
}

// Save inserts or replaces the entity with the same ID.
func (r *Repository[T]) Save(entity T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.EntityID()
	if _, exists := r.byID[id]; !exists {
		r.order = append(r.order, id)
	}
	r.byID[id] = entity
}

func (r *Repository[T]) FindByID(id uuid.UUID) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	return e, ok
}

func (r *Repository[T]) FindAll() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

func (r *Repository[T]) FindWhere(pred func(T) bool) []T {
	var out []T
	for _, e := range r.FindAll() {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

func (r *Repository[T]) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return false
	}
	delete(r.byID, id)
	r.order = slices.DeleteFunc(r.order, func(k uuid.UUID) bool { return k == id })
	return true
}

func (r *Repository[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
