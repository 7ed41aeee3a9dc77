package store

import (
	"strings"
	"sync"
)

// PriorityStore - список меток приоритетов для диспетчера. Простое
// key-value хранилище без какой-либо машинной логики.
type PriorityStore struct {
	mu         sync.RWMutex
	priorities []string
}

// NewPriorityStore создает хранилище с набором меток по умолчанию
func NewPriorityStore(defaults []string) *PriorityStore {
	s := &PriorityStore{}
	s.Set(defaults)
	return s
}

// List возвращает копию текущего списка меток
func (s *PriorityStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.priorities...)
}

// Set нормализует и замещает список: метки обрезаются, пустые
// выбрасываются, дубликаты схлопываются с сохранением порядка.
func (s *PriorityStore) Set(priorities []string) []string {
	cleaned := make([]string, 0, len(priorities))
	seen := make(map[string]bool, len(priorities))
	for _, p := range priorities {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		cleaned = append(cleaned, p)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.priorities = cleaned
	return append([]string(nil), cleaned...)
}
