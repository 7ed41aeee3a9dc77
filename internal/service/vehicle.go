package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alarmmonitor/fleet_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// AddVehicle создает машину. Новая машина по умолчанию «на базе» -
// статус 2, все необязательные поля пустые.
func (s *fleetService) AddVehicle(ctx context.Context, params AddVehicleParams) (*models.Vehicle, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "fleet",
		"method":  "AddVehicle",
		"unit":    params.Unit,
	})
	log.Info("Attempting to add a new vehicle")

	if params.Unit == "" {
		return nil, fmt.Errorf("service: could not add vehicle: %w", ErrUnitRequired)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vehicles.Get(params.Unit); ok {
		log.Warn("Attempted to add a vehicle with an existing unit")
		return nil, fmt.Errorf("service: unit %s: %w", params.Unit, ErrVehicleExists)
	}

	v := &models.Vehicle{
		Unit:      params.Unit,
		Name:      params.Name,
		CallSign:  params.CallSign,
		Crew:      params.Crew,
		Base:      params.Base,
		Icon:      params.Icon,
		TTSPhrase: params.TTSPhrase,
		Status:    models.StatusFreeAtBase,
	}
	if v.Crew == nil {
		v.Crew = []string{}
	}
	if v.Base != "" {
		v.Location = v.Base
		v.Lat, v.Lon = s.resolveLocation(ctx, v.Base)
	}
	s.vehicles.Put(v)

	err := s.persistVehicles(ctx)
	s.notifier.Publish()
	if err != nil {
		log.WithError(err).Error("Failed to persist vehicles after add")
		return nil, err
	}

	log.Info("Vehicle added successfully")
	return v, nil
}

// UpdateVehicleAttributes меняет описательные поля машины. Статусный
// автомат и привязка к инциденту не затрагиваются.
func (s *fleetService) UpdateVehicleAttributes(ctx context.Context, unit string, attrs VehicleAttributes) (*models.Vehicle, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "fleet",
		"method":  "UpdateVehicleAttributes",
		"unit":    unit,
	})
	log.Info("Updating vehicle attributes")

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vehicles.Get(unit)
	if !ok {
		log.Warn("Attempted to update a non-existent vehicle")
		return nil, fmt.Errorf("service: unit %s: %w", unit, ErrVehicleNotFound)
	}

	if attrs.Name != nil {
		v.Name = *attrs.Name
	}
	if attrs.CallSign != nil {
		v.CallSign = *attrs.CallSign
	}
	if attrs.Crew != nil {
		v.Crew = append([]string(nil), (*attrs.Crew)...)
	}
	if attrs.Base != nil {
		v.Base = *attrs.Base
	}
	if attrs.TTSPhrase != nil {
		v.TTSPhrase = *attrs.TTSPhrase
	}
	s.vehicles.Put(v)

	err := s.persistVehicles(ctx)
	s.notifier.Publish()
	if err != nil {
		log.WithError(err).Error("Failed to persist vehicles after attribute update")
		return nil, err
	}

	log.Info("Vehicle attributes updated successfully")
	return v, nil
}

// SetVehicleIcon сохраняет ссылку на иконку машины
func (s *fleetService) SetVehicleIcon(ctx context.Context, unit, icon string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "fleet",
		"method":  "SetVehicleIcon",
		"unit":    unit,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vehicles.Get(unit)
	if !ok {
		log.Warn("Attempted to set icon for a non-existent vehicle")
		return fmt.Errorf("service: unit %s: %w", unit, ErrVehicleNotFound)
	}
	v.Icon = icon
	s.vehicles.Put(v)

	err := s.persistVehicles(ctx)
	s.notifier.Publish()
	if err != nil {
		log.WithError(err).Error("Failed to persist vehicles after icon update")
		return err
	}
	return nil
}

// DeleteVehicle безусловно удаляет машину. Членство в инцидентах при
// этом сознательно не вычищается (см. DESIGN.md, открытый вопрос).
func (s *fleetService) DeleteVehicle(ctx context.Context, unit string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "fleet",
		"method":  "DeleteVehicle",
		"unit":    unit,
	})
	log.Info("Attempting to delete vehicle")

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.vehicles.Delete(unit) {
		log.Warn("Attempted to delete a non-existent vehicle")
		return fmt.Errorf("service: unit %s: %w", unit, ErrVehicleNotFound)
	}

	err := s.persistVehicles(ctx)
	s.notifier.Publish()
	if err != nil {
		log.WithError(err).Error("Failed to persist vehicles after delete")
		return err
	}

	log.Info("Vehicle deleted successfully")
	return nil
}

// GetVehicle возвращает машину по позывному
func (s *fleetService) GetVehicle(ctx context.Context, unit string) (*models.Vehicle, error) {
	v, ok := s.vehicles.Get(unit)
	if !ok {
		return nil, fmt.Errorf("service: unit %s: %w", unit, ErrVehicleNotFound)
	}
	return v, nil
}

// ListVehicles возвращает снимок всех машин
func (s *fleetService) ListVehicles(ctx context.Context) []*models.Vehicle {
	return s.vehicles.List()
}

// Dispatch - смена статуса машины. Переход в статус 1 или 2 у машины,
// привязанной к активному инциденту, трактуется как неявное
// «возвращение в строй» и снимает машину с инцидента.
func (s *fleetService) Dispatch(ctx context.Context, unit string, status int, opts DispatchOptions) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "fleet",
		"method":  "Dispatch",
		"unit":    unit,
		"status":  status,
	})
	log.Info("Dispatching vehicle status change")

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vehicles.Get(unit)
	if !ok {
		log.Warn("Dispatch for unknown unit")
		return fmt.Errorf("service: unit %s: %w", unit, ErrVehicleNotFound)
	}
	if !models.ValidStatus(status) {
		log.Warn("Dispatch with status code out of range")
		return fmt.Errorf("service: status %d: %w", status, ErrInvalidStatus)
	}

	// Активные инциденты с этим позывным на момент входа: каждый из
	// них получит ровно одну строку журнала, какая бы ветка ни сработала.
	containing := s.activeIncidentsWith(unit)

	bound := false
	var boundIncident *models.Incident
	if v.IncidentID != nil {
		if inc, found := s.incidents.Get(*v.IncidentID); found && inc.Active {
			bound = true
			boundIncident = inc
		}
	}

	hasOverrides := opts.Note != nil || opts.Location != nil || opts.Lat != nil || opts.Lon != nil

	switch {
	case bound && models.AvailableStatus(status):
		// Неявное возвращение в строй: отвязка от инцидента. Сам
		// инцидент при этом не завершается, даже если машин не осталось.
		v.IncidentID = nil
		v.AlarmTime = nil
		v.Note = ""
		v.Priority = ""
		if status == models.StatusFreeAtBase {
			v.Location = v.Base
			v.Lat, v.Lon = s.resolveLocation(ctx, v.Base)
		} else {
			v.Location = ""
			v.Lat = nil
			v.Lon = nil
		}
		boundIncident.RemoveVehicle(unit)
		s.incidents.Update(boundIncident)
		v.Status = status

	case hasOverrides:
		v.Status = status
		if opts.Note != nil {
			v.Note = *opts.Note
		}
		if opts.Location != nil {
			v.Location = *opts.Location
		}
		if opts.Lat != nil {
			lat := *opts.Lat
			v.Lat = &lat
		}
		if opts.Lon != nil {
			lon := *opts.Lon
			v.Lon = &lon
		}
		// Адрес без явных координат разрешается через геокодер
		if opts.Location != nil && opts.Lat == nil && opts.Lon == nil {
			v.Lat, v.Lon = s.resolveLocation(ctx, *opts.Location)
		}
		// Голые координаты без адреса: подпись места берется из
		// обратного геокодинга; неудача не меняет прежний адрес
		if opts.Location == nil && (opts.Lat != nil || opts.Lon != nil) && v.Lat != nil && v.Lon != nil {
			if addr, ok := s.geocoder.ReverseGeocode(ctx, *v.Lat, *v.Lon); ok {
				v.Location = addr
			}
		}
		if !bound {
			v.IncidentID = nil
			v.Priority = ""
		}

	case !bound && status == models.StatusFreeAtBase:
		v.Status = status
		v.Location = v.Base
		v.Lat, v.Lon = s.resolveLocation(ctx, v.Base)
		v.Note = ""
		v.Priority = ""

	case !bound:
		v.Status = status
		v.Note = ""
		v.Location = ""
		v.Lat = nil
		v.Lon = nil
		v.Priority = ""

	default:
		// Привязана и без переопределений: поля, производные от
		// инцидента, не трогаем.
		v.Status = status
	}

	now := time.Now()
	for _, inc := range containing {
		// Для ветки возвращения в строй журналируется уже измененный
		// инцидент, без дублей.
		cur := inc
		if boundIncident != nil && inc.ID == boundIncident.ID {
			cur = boundIncident
		}
		cur.AppendLog(now, unit, strconv.Itoa(status))
		s.incidents.Update(cur)
	}

	s.vehicles.Put(v)

	err := s.persistVehicles(ctx)
	if perr := s.persistIncidents(ctx); err == nil {
		err = perr
	}
	s.notifier.Publish()
	if err != nil {
		log.WithError(err).Error("Failed to persist stores after dispatch")
		return err
	}

	log.Info("Vehicle status changed successfully")
	return nil
}

// resolveLocation разрешает адрес в пару координат; при неудаче
// возвращает nil-координаты, не прерывая операцию
func (s *fleetService) resolveLocation(ctx context.Context, address string) (*float64, *float64) {
	if address == "" {
		return nil, nil
	}
	lat, lon, ok := s.geocoder.Geocode(ctx, address)
	if !ok {
		return nil, nil
	}
	return &lat, &lon
}
