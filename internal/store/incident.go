package store

import (
	"sync"

	"github.com/alarmmonitor/fleet_coordination_system/internal/models"
)

// IncidentStore - упорядоченная коллекция инцидентов в памяти.
// Идентификаторы монотонные и не переиспользуются после удалений.
type IncidentStore struct {
	mu        sync.RWMutex
	incidents []*models.Incident
	nextID    int
}

// NewIncidentStore создает пустое хранилище инцидентов
func NewIncidentStore() *IncidentStore {
	return &IncidentStore{nextID: 1}
}

// NextID выдает следующий свободный идентификатор
func (s *IncidentStore) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	return id
}

// Get возвращает копию инцидента по идентификатору
func (s *IncidentStore) Get(id int) (*models.Incident, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inc := range s.incidents {
		if inc.ID == id {
			return inc.Clone(), true
		}
	}
	return nil, false
}

// Append добавляет инцидент в конец коллекции
func (s *IncidentStore) Append(inc *models.Incident) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incidents = append(s.incidents, inc.Clone())
	if inc.ID >= s.nextID {
		s.nextID = inc.ID + 1
	}
}

// Update замещает инцидент с тем же идентификатором
func (s *IncidentStore) Update(inc *models.Incident) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.incidents {
		if cur.ID == inc.ID {
			s.incidents[i] = inc.Clone()
			return true
		}
	}
	return false
}

// Delete удаляет инцидент и сообщает, существовал ли он.
// Счетчик идентификаторов при этом не откатывается.
func (s *IncidentStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.incidents {
		if cur.ID == id {
			s.incidents = append(s.incidents[:i], s.incidents[i+1:]...)
			return true
		}
	}
	return false
}

// List возвращает снимок всех инцидентов в порядке добавления
func (s *IncidentStore) List() []*models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Incident, 0, len(s.incidents))
	for _, inc := range s.incidents {
		out = append(out, inc.Clone())
	}
	return out
}

// ListActive возвращает снимок только активных инцидентов
func (s *IncidentStore) ListActive() []*models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Incident, 0, len(s.incidents))
	for _, inc := range s.incidents {
		if inc.Active {
			out = append(out, inc.Clone())
		}
	}
	return out
}

// Load замещает содержимое хранилища нормализованными записями
// (восстановление снимка при старте)
func (s *IncidentStore) Load(incidents []*models.Incident) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incidents = make([]*models.Incident, 0, len(incidents))
	s.nextID = 1
	for _, inc := range incidents {
		s.incidents = append(s.incidents, models.NormalizeIncident(inc.Clone()))
		if inc.ID >= s.nextID {
			s.nextID = inc.ID + 1
		}
	}
}
