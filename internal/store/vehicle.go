package store

import (
	"sort"
	"sync"

	"github.com/alarmmonitor/fleet_coordination_system/internal/models"
)

// VehicleStore - чисто key-value хранилище машин в памяти. Никакой
// кросс-записной логики: её ведёт только сервис координации.
type VehicleStore struct {
	mu       sync.RWMutex
	vehicles map[string]*models.Vehicle
}

// NewVehicleStore создает пустое хранилище машин
func NewVehicleStore() *VehicleStore {
	return &VehicleStore{
		vehicles: make(map[string]*models.Vehicle),
	}
}

// Get возвращает копию машины по позывному
func (s *VehicleStore) Get(unit string) (*models.Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vehicles[unit]
	if !ok {
		return nil, false
	}
	return v.Clone(), true
}

// Put сохраняет копию машины
func (s *VehicleStore) Put(v *models.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles[v.Unit] = v.Clone()
}

// Delete удаляет машину и сообщает, существовала ли она
func (s *VehicleStore) Delete(unit string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vehicles[unit]; !ok {
		return false
	}
	delete(s.vehicles, unit)
	return true
}

// List возвращает снимок всех машин, отсортированный по позывному
func (s *VehicleStore) List() []*models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		out = append(out, v.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Unit < out[j].Unit })
	return out
}

// Load замещает содержимое хранилища (восстановление снимка при старте)
func (s *VehicleStore) Load(vehicles []*models.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles = make(map[string]*models.Vehicle, len(vehicles))
	for _, v := range vehicles {
		s.vehicles[v.Unit] = v.Clone()
	}
}
