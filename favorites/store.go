package favorites

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
)

var (
	// ErrEmptyCity is returned when a blank name is added.
	ErrEmptyCity = errors.New("city name is empty")
	// ErrDuplicate is returned when the city is already a favorite. It is an
	// informational condition, the list is left unchanged.
	ErrDuplicate = errors.New("already in favorites")
)

// Store is the ordered, in-memory list of favorite cities.
// Names are unique (case-sensitive, after trimming) and kept in insertion order.
// Nothing is persisted: the list starts empty and is lost when the app exits.
type Store struct {
	mu       sync.RWMutex
	cities   []string
	onChange []func([]string)
}

// NewStore creates an empty favorites store.
func NewStore() *Store {
	return &Store{
		cities:   make([]string, 0),
		onChange: make([]func([]string), 0),
	}
}

// Add appends city if it is not already present.
func (s *Store) Add(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return ErrEmptyCity
	}

	s.mu.Lock()
	if s.indexOf(city) >= 0 {
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", city, ErrDuplicate)
	}
	s.cities = append(s.cities, city)
	s.mu.Unlock()

	log.Printf("[Favorites] Added %q", city)
	s.notify()
	return nil
}

// Remove deletes city if present and reports whether anything changed.
// Removing an absent city is a no-op.
func (s *Store) Remove(city string) bool {
	s.mu.Lock()
	idx := s.indexOf(city)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.cities = append(s.cities[:idx], s.cities[idx+1:]...)
	s.mu.Unlock()

	log.Printf("[Favorites] Removed %q", city)
	s.notify()
	return true
}

// List returns a copy of the favorites in insertion order.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.cities))
	copy(out, s.cities)
	return out
}

// Contains reports whether city (trimmed) is a favorite.
func (s *Store) Contains(city string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(strings.TrimSpace(city)) >= 0
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cities)
}

// OnChange registers a callback invoked with the full list after every
// mutation that changed it. Callbacks run on the mutating goroutine.
func (s *Store) OnChange(callback func([]string)) {
	s.mu.Lock()
	s.onChange = append(s.onChange, callback)
	s.mu.Unlock()
}

// indexOf must be called with s.mu held.
func (s *Store) indexOf(city string) int {
	for i, c := range s.cities {
		if c == city {
			return i
		}
	}
	return -1
}

func (s *Store) notify() {
	s.mu.RLock()
	callbacks := make([]func([]string), len(s.onChange))
	copy(callbacks, s.onChange)
	s.mu.RUnlock()

	list := s.List()
	for _, callback := range callbacks {
		callback(list)
	}
}
