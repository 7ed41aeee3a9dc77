package service

import (
	"context"
	"sync"

	"github.com/alarmmonitor/fleet_coordination_system/internal/models"
	"github.com/alarmmonitor/fleet_coordination_system/internal/store"
	"github.com/sirupsen/logrus"
)

// Имена хранилищ для коллаборатора персистентности
const (
	StoreVehicles   = "vehicles"
	StoreIncidents  = "incidents"
	StorePriorities = "priorities"
)

// Geocoder определяет контракт внешнего геокодера. Неудача разрешения
// адреса (ok=false) никогда не считается ошибкой операции.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lat, lon float64, ok bool)
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, bool)
}

// Persister определяет контракт синхронной записи снимка хранилища.
// Память остается авторитетной: при ошибке записи операция сообщает о
// сбое, но уже примененное состояние не откатывается.
type Persister interface {
	Persist(ctx context.Context, storeName string, payload any) error
}

// ChangeNotifier публикует один сигнал «состояние изменилось» за
// каждую успешную мутирующую операцию
type ChangeNotifier interface {
	Publish()
}

// AddVehicleParams - параметры создания машины
type AddVehicleParams struct {
	Unit      string
	Name      string
	CallSign  string
	Crew      []string
	Base      string
	Icon      string
	TTSPhrase string
}

// VehicleAttributes - частичное обновление описательных полей машины.
// Эти поля не влияют на статусный автомат, nil означает «не менять».
type VehicleAttributes struct {
	Name      *string
	CallSign  *string
	Crew      *[]string
	Base      *string
	TTSPhrase *string
}

// DispatchOptions - необязательные поля смены статуса
type DispatchOptions struct {
	Note     *string
	Location *string
	Lat      *float64
	Lon      *float64
}

// CreateIncidentParams - параметры создания инцидента
type CreateIncidentParams struct {
	Keyword  string
	Location string
	Lat      *float64
	Lon      *float64
	Priority string
	Patient  string
	Note     string
	Vehicles []string
}

// UpdateIncidentParams - частичное обновление инцидента, nil означает
// «поле не менять»
type UpdateIncidentParams struct {
	Keyword  *string
	Location *string
	Lat      *float64
	Lon      *float64
	Priority *string
	Patient  *string
	Note     *string
	Vehicles *[]string
}

// AlertResult - три непересекающихся списка, покрывающих ровно
// запрошенный набор машин
type AlertResult struct {
	Alerted        []string `json:"alerted"`
	Skipped        []string `json:"skipped"`
	AlreadyAlerted []string `json:"already_alerted"`
}

// FleetService определяет контракт бизнес-логики координации флота и
// инцидентов. Это единственное место, которому разрешено менять оба
// хранилища совместно.
type FleetService interface {
	AddVehicle(ctx context.Context, params AddVehicleParams) (*models.Vehicle, error)
	UpdateVehicleAttributes(ctx context.Context, unit string, attrs VehicleAttributes) (*models.Vehicle, error)
	SetVehicleIcon(ctx context.Context, unit, icon string) error
	DeleteVehicle(ctx context.Context, unit string) error
	GetVehicle(ctx context.Context, unit string) (*models.Vehicle, error)
	ListVehicles(ctx context.Context) []*models.Vehicle
	Dispatch(ctx context.Context, unit string, status int, opts DispatchOptions) error
	CreateIncident(ctx context.Context, params CreateIncidentParams) (*models.Incident, error)
	UpdateIncident(ctx context.Context, id int, params UpdateIncidentParams) (*models.Incident, error)
	Alert(ctx context.Context, id int, units []string) (*AlertResult, error)
	EndIncident(ctx context.Context, id int) error
	AddIncidentNote(ctx context.Context, id int, text string) error
	RemoveVehicleFromIncident(ctx context.Context, id int, unit string) error
	DeleteIncident(ctx context.Context, id int) error
	GetIncident(ctx context.Context, id int) (*models.Incident, error)
	ListIncidents(ctx context.Context) []*models.Incident
	ListPriorities(ctx context.Context) []string
	SetPriorities(ctx context.Context, priorities []string) ([]string, error)
}

type fleetService struct {
	// Один мьютекс на все мутирующие операции: машина и инцидент
	// всегда меняются в общей критической секции.
	mu         sync.Mutex
	vehicles   *store.VehicleStore
	incidents  *store.IncidentStore
	priorities *store.PriorityStore
	geocoder   Geocoder
	persister  Persister
	notifier   ChangeNotifier
	logger     *logrus.Logger
}

// NewFleetService создает сервис координации над переданными хранилищами
func NewFleetService(
	vehicles *store.VehicleStore,
	incidents *store.IncidentStore,
	priorities *store.PriorityStore,
	geocoder Geocoder,
	persister Persister,
	notifier ChangeNotifier,
	logger *logrus.Logger,
) FleetService {
	return &fleetService{
		vehicles:   vehicles,
		incidents:  incidents,
		priorities: priorities,
		geocoder:   geocoder,
		persister:  persister,
		notifier:   notifier,
		logger:     logger,
	}
}

// persistVehicles сбрасывает снимок машин коллаборатору персистентности
func (s *fleetService) persistVehicles(ctx context.Context) error {
	if err := s.persister.Persist(ctx, StoreVehicles, s.vehicles.List()); err != nil {
		return &PersistenceError{Store: StoreVehicles, Err: err}
	}
	return nil
}

// persistIncidents сбрасывает снимок инцидентов
func (s *fleetService) persistIncidents(ctx context.Context) error {
	if err := s.persister.Persist(ctx, StoreIncidents, s.incidents.List()); err != nil {
		return &PersistenceError{Store: StoreIncidents, Err: err}
	}
	return nil
}

// otherActiveIncident ищет активный инцидент (кроме excludeID),
// в составе которого числится позывной
func (s *fleetService) otherActiveIncident(unit string, excludeID int) (*models.Incident, bool) {
	for _, inc := range s.incidents.ListActive() {
		if inc.ID == excludeID {
			continue
		}
		if inc.HasVehicle(unit) {
			return inc, true
		}
	}
	return nil, false
}

// activeIncidentsWith возвращает все активные инциденты с этим позывным
func (s *fleetService) activeIncidentsWith(unit string) []*models.Incident {
	var out []*models.Incident
	for _, inc := range s.incidents.ListActive() {
		if inc.HasVehicle(unit) {
			out = append(out, inc)
		}
	}
	return out
}
