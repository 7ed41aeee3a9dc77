package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alarmmonitor/fleet_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// CreateIncident заводит новый инцидент и сразу применяет его поля к
// изначально назначенным машинам. Назначение - это еще не алярм:
// AlarmTime у таких машин остается пустым.
func (s *fleetService) CreateIncident(ctx context.Context, params CreateIncidentParams) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "fleet",
		"method":  "CreateIncident",
		"keyword": params.Keyword,
	})
	log.Info("Attempting to create a new incident")

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	inc := models.NormalizeIncident(&models.Incident{
		ID:       s.incidents.NextID(),
		Start:    &now,
		Keyword:  params.Keyword,
		Priority: params.Priority,
		Patient:  params.Patient,
		Location: s.normalizeLocation(ctx, params.Location, params.Lat, params.Lon),
	})

	if params.Note != "" {
		inc.Notes = append(inc.Notes, models.Note{Time: now, Text: params.Note})
	}

	for _, unit := range dedupe(params.Vehicles) {
		v, ok := s.vehicles.Get(unit)
		if !ok {
			log.WithField("unit", unit).Warn("Skipping assignment of unknown unit")
			continue
		}
		inc.Vehicles = append(inc.Vehicles, unit)
		inc.AppendLog(now, unit, models.LogAssigned)
		s.applyIncidentDetails(v, inc, true)
		s.vehicles.Put(v)
	}

	s.incidents.Append(inc)

	err := s.persistIncidents(ctx)
	if perr := s.persistVehicles(ctx); err == nil {
		err = perr
	}
	s.notifier.Publish()
	if err != nil {
		log.WithError(err).Error("Failed to persist stores after incident creation")
		return nil, err
	}

	log.WithField("incident_id", inc.ID).Info("Incident created successfully")
	return inc, nil
}

// UpdateIncident - частичное обновление: меняются только переданные
// поля. Снятие машины блокируется статусным гейтом, но остальная
// часть обновления все равно фиксируется; заблокированные позывные
// возвращаются вызывающему типизированной ошибкой.
func (s *fleetService) UpdateIncident(ctx context.Context, id int, params UpdateIncidentParams) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "fleet",
		"method":      "UpdateIncident",
		"incident_id": id,
	})
	log.Info("Attempting to update incident")

	s.mu.Lock()
	defer s.mu.Unlock()

	inc, found := s.incidents.Get(id)
	if !found {
		log.Warn("Attempted to update a non-existent incident")
		return nil, fmt.Errorf("service: incident %d: %w", id, ErrIncidentNotFound)
	}

	if params.Keyword != nil {
		inc.Keyword = *params.Keyword
	}
	if params.Priority != nil {
		inc.Priority = *params.Priority
	}
	if params.Patient != nil {
		inc.Patient = *params.Patient
	}

	switch {
	case params.Location != nil && (params.Lat != nil || params.Lon != nil):
		inc.Location = models.Location{Name: *params.Location}
		if params.Lat != nil {
			lat := *params.Lat
			inc.Location.Lat = &lat
		}
		if params.Lon != nil {
			lon := *params.Lon
			inc.Location.Lon = &lon
		}
	case params.Location != nil && *params.Location != inc.Location.Name:
		// Смена адреса без координат: старые координаты сбрасываются,
		// повторный геокодинг только для непустого адреса.
		inc.Location = models.Location{Name: *params.Location}
		if inc.Location.Name != "" {
			inc.Location.Lat, inc.Location.Lon = s.resolveLocation(ctx, inc.Location.Name)
		}
	case params.Lat != nil || params.Lon != nil:
		if params.Lat != nil {
			lat := *params.Lat
			inc.Location.Lat = &lat
		}
		if params.Lon != nil {
			lon := *params.Lon
			inc.Location.Lon = &lon
		}
	}

	now := time.Now()
	var blocked []string
	newlyAdded := make(map[string]bool)

	if params.Vehicles != nil {
		requested := make(map[string]bool)
		for _, unit := range dedupe(*params.Vehicles) {
			requested[unit] = true
		}
		current := make(map[string]bool, len(inc.Vehicles))
		for _, unit := range inc.Vehicles {
			current[unit] = true
		}

		// Снятые позывные: гейт пропускает, если инцидент неактивен
		// либо машина в доступном статусе (1/2)
		for _, unit := range append([]string(nil), inc.Vehicles...) {
			if requested[unit] {
				continue
			}
			v, ok := s.vehicles.Get(unit)
			if inc.Active && ok && !models.AvailableStatus(v.Status) {
				blocked = append(blocked, unit)
				continue
			}
			inc.RemoveVehicle(unit)
			inc.AppendLog(now, unit, models.LogRemoved)
			if ok {
				s.releaseVehicle(v, inc.ID)
				s.vehicles.Put(v)
			}
		}

		// Добавленные позывные
		for _, unit := range dedupe(*params.Vehicles) {
			if current[unit] {
				continue
			}
			if _, ok := s.vehicles.Get(unit); !ok {
				log.WithField("unit", unit).Warn("Skipping assignment of unknown unit")
				continue
			}
			inc.Vehicles = append(inc.Vehicles, unit)
			inc.AppendLog(now, unit, models.LogAssigned)
			newlyAdded[unit] = true
		}
	}

	// Каждая машина, оставшаяся в инциденте после сверки, получает
	// освеженные производные поля
	for _, unit := range inc.Vehicles {
		v, ok := s.vehicles.Get(unit)
		if !ok {
			continue
		}
		s.applyIncidentDetails(v, inc, newlyAdded[unit])
		s.vehicles.Put(v)
	}

	if params.Note != nil && *params.Note != "" {
		inc.Notes = append(inc.Notes, models.Note{Time: now, Text: *params.Note})
	}

	s.incidents.Update(inc)

	err := s.persistIncidents(ctx)
	if perr := s.persistVehicles(ctx); err == nil {
		err = perr
	}
	s.notifier.Publish()
	if err != nil {
		log.WithError(err).Error("Failed to persist stores after incident update")
		return nil, err
	}

	if len(blocked) > 0 {
		log.WithField("blocked", blocked).Warn("Some units were blocked from removal")
		return inc, &BlockedUnitsError{Units: blocked}
	}

	log.Info("Incident updated successfully")
	return inc, nil
}

// Alert - идемпотентная рассылка тревоги машинам уже открытого
// инцидента. Машина, занятая другим активным инцидентом, пропускается;
// повторная тревога не дублирует ни журнал, ни отметку времени.
func (s *fleetService) Alert(ctx context.Context, id int, units []string) (*AlertResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "fleet",
		"method":      "Alert",
		"incident_id": id,
	})
	log.Info("Attempting to alert units")

	s.mu.Lock()
	defer s.mu.Unlock()

	inc, found := s.incidents.Get(id)
	if !found {
		log.Warn("Alert for unknown incident")
		return nil, fmt.Errorf("service: incident %d: %w", id, ErrIncidentNotFound)
	}
	if !inc.Active {
		log.Warn("Alert for inactive incident")
		return nil, fmt.Errorf("service: incident %d: %w", id, ErrIncidentInactive)
	}

	now := time.Now()
	result := &AlertResult{
		Alerted:        []string{},
		Skipped:        []string{},
		AlreadyAlerted: []string{},
	}
	vehiclesChanged := false
	incidentChanged := false

	for _, unit := range dedupe(units) {
		// Эксклюзивность: машина другого активного инцидента не
		// перехватывается
		if _, taken := s.otherActiveIncident(unit, inc.ID); taken {
			result.Skipped = append(result.Skipped, unit)
			continue
		}

		v, hasVehicle := s.vehicles.Get(unit)

		// Идемпотентность: уже по тревоге в этом инциденте - ни
		// дублей в журнале, ни смены отметки времени. Позывной без
		// карточки машины считается оповещенным по одному членству.
		if inc.HasVehicle(unit) && (!hasVehicle || (v.IncidentID != nil && *v.IncidentID == inc.ID)) {
			result.AlreadyAlerted = append(result.AlreadyAlerted, unit)
			continue
		}

		if !inc.HasVehicle(unit) {
			inc.Vehicles = append(inc.Vehicles, unit)
		}
		inc.AppendLog(now, unit, models.LogAlerted)
		incidentChanged = true

		if hasVehicle {
			s.applyIncidentDetails(v, inc, false)
			alarm := now
			v.AlarmTime = &alarm
			// Статус машины тревога сознательно не навязывает
			s.vehicles.Put(v)
			vehiclesChanged = true
		}
		result.Alerted = append(result.Alerted, unit)
	}

	var err error
	if incidentChanged {
		s.incidents.Update(inc)
		err = s.persistIncidents(ctx)
	}
	if vehiclesChanged {
		if perr := s.persistVehicles(ctx); err == nil {
			err = perr
		}
	}
	if incidentChanged || vehiclesChanged {
		s.notifier.Publish()
	}
	if err != nil {
		log.WithError(err).Error("Failed to persist stores after alert")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"alerted":         result.Alerted,
		"skipped":         result.Skipped,
		"already_alerted": result.AlreadyAlerted,
	}).Info("Alert processed")
	return result, nil
}

// EndIncident завершает активный инцидент. Машины без другого
// активного инцидента возвращаются в статус 1 со сброшенной привязкой.
// Завершение уже неактивного или неизвестного инцидента - not found.
func (s *fleetService) EndIncident(ctx context.Context, id int) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "fleet",
		"method":      "EndIncident",
		"incident_id": id,
	})
	log.Info("Attempting to end incident")

	s.mu.Lock()
	defer s.mu.Unlock()

	inc, found := s.incidents.Get(id)
	if !found || !inc.Active {
		log.Warn("Attempted to end an unknown or inactive incident")
		return fmt.Errorf("service: incident %d: %w", id, ErrIncidentNotFound)
	}

	now := time.Now()
	inc.End = &now
	inc.Active = false
	s.incidents.Update(inc)

	for _, unit := range inc.Vehicles {
		v, ok := s.vehicles.Get(unit)
		if !ok {
			continue
		}
		if _, elsewhere := s.otherActiveIncident(unit, inc.ID); elsewhere {
			// Машина разделена с другим активным инцидентом - не трогаем
			continue
		}
		s.releaseVehicle(v, inc.ID)
		s.vehicles.Put(v)
	}

	err := s.persistIncidents(ctx)
	if perr := s.persistVehicles(ctx); err == nil {
		err = perr
	}
	s.notifier.Publish()
	if err != nil {
		log.WithError(err).Error("Failed to persist stores after ending incident")
		return err
	}

	log.Info("Incident ended successfully")
	return nil
}

// AddIncidentNote добавляет заметку к еще активному инциденту
func (s *fleetService) AddIncidentNote(ctx context.Context, id int, text string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "fleet",
		"method":      "AddIncidentNote",
		"incident_id": id,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	inc, found := s.incidents.Get(id)
	if !found {
		log.Warn("Attempted to add note to a non-existent incident")
		return fmt.Errorf("service: incident %d: %w", id, ErrIncidentNotFound)
	}
	if !inc.Active {
		log.Warn("Attempted to add note to an inactive incident")
		return fmt.Errorf("service: incident %d: %w", id, ErrIncidentInactive)
	}

	inc.Notes = append(inc.Notes, models.Note{Time: time.Now(), Text: text})
	s.incidents.Update(inc)

	err := s.persistIncidents(ctx)
	s.notifier.Publish()
	if err != nil {
		log.WithError(err).Error("Failed to persist incidents after adding note")
		return err
	}
	return nil
}

// RemoveVehicleFromIncident - явное снятие одной машины с инцидента с
// тем же статусным гейтом, что и при сверке в UpdateIncident
func (s *fleetService) RemoveVehicleFromIncident(ctx context.Context, id int, unit string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "fleet",
		"method":      "RemoveVehicleFromIncident",
		"incident_id": id,
		"unit":        unit,
	})
	log.Info("Attempting to remove vehicle from incident")

	s.mu.Lock()
	defer s.mu.Unlock()

	inc, found := s.incidents.Get(id)
	if !found {
		return fmt.Errorf("service: incident %d: %w", id, ErrIncidentNotFound)
	}
	if !inc.HasVehicle(unit) {
		return fmt.Errorf("service: unit %s is not assigned to incident %d: %w", unit, id, ErrVehicleNotFound)
	}

	v, hasVehicle := s.vehicles.Get(unit)
	if inc.Active && hasVehicle && !models.AvailableStatus(v.Status) {
		log.Warn("Vehicle removal blocked by status gate")
		return &BlockedUnitsError{Units: []string{unit}}
	}

	inc.RemoveVehicle(unit)
	inc.AppendLog(time.Now(), unit, models.LogRemoved)
	s.incidents.Update(inc)

	if hasVehicle {
		s.releaseVehicle(v, inc.ID)
		s.vehicles.Put(v)
	}

	err := s.persistIncidents(ctx)
	if perr := s.persistVehicles(ctx); err == nil {
		err = perr
	}
	s.notifier.Publish()
	if err != nil {
		log.WithError(err).Error("Failed to persist stores after vehicle removal")
		return err
	}

	log.Info("Vehicle removed from incident")
	return nil
}

// DeleteIncident безусловно удаляет инцидент из хранилища. Привязка
// машин сознательно не вычищается (см. DESIGN.md, открытый вопрос).
func (s *fleetService) DeleteIncident(ctx context.Context, id int) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "fleet",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.incidents.Delete(id) {
		log.Warn("Attempted to delete a non-existent incident")
		return fmt.Errorf("service: incident %d: %w", id, ErrIncidentNotFound)
	}

	err := s.persistIncidents(ctx)
	s.notifier.Publish()
	if err != nil {
		log.WithError(err).Error("Failed to persist incidents after delete")
		return err
	}

	log.Info("Incident deleted successfully")
	return nil
}

// GetIncident возвращает инцидент по идентификатору
func (s *fleetService) GetIncident(ctx context.Context, id int) (*models.Incident, error) {
	inc, found := s.incidents.Get(id)
	if !found {
		return nil, fmt.Errorf("service: incident %d: %w", id, ErrIncidentNotFound)
	}
	return inc, nil
}

// ListIncidents возвращает снимок всех инцидентов
func (s *fleetService) ListIncidents(ctx context.Context) []*models.Incident {
	return s.incidents.List()
}

// ListPriorities возвращает текущий список меток приоритетов
func (s *fleetService) ListPriorities(ctx context.Context) []string {
	return s.priorities.List()
}

// SetPriorities нормализует и замещает список меток приоритетов
func (s *fleetService) SetPriorities(ctx context.Context, priorities []string) ([]string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "fleet",
		"method":  "SetPriorities",
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	cleaned := s.priorities.Set(priorities)
	if err := s.persister.Persist(ctx, StorePriorities, cleaned); err != nil {
		log.WithError(err).Error("Failed to persist priorities")
		return nil, &PersistenceError{Store: StorePriorities, Err: err}
	}

	log.WithField("count", len(cleaned)).Info("Priorities updated")
	return cleaned, nil
}

// applyIncidentDetails переносит производные поля инцидента на машину.
// Для только что назначенной машины сбрасывается и отметка тревоги:
// назначение - это еще не алярм.
func (s *fleetService) applyIncidentDetails(v *models.Vehicle, inc *models.Incident, newlyAssigned bool) {
	incID := inc.ID
	v.IncidentID = &incID
	v.Note = inc.Keyword
	v.Location = inc.Location.Name
	if inc.Location.Lat != nil {
		lat := *inc.Location.Lat
		v.Lat = &lat
	} else {
		v.Lat = nil
	}
	if inc.Location.Lon != nil {
		lon := *inc.Location.Lon
		v.Lon = &lon
	} else {
		v.Lon = nil
	}
	v.Priority = inc.Priority
	if newlyAssigned {
		v.AlarmTime = nil
	}
}

// releaseVehicle возвращает машину в строй (статус 1) и сбрасывает
// связанные с инцидентом поля, если она больше не числится ни в одном
// другом активном инциденте
func (s *fleetService) releaseVehicle(v *models.Vehicle, excludeIncidentID int) {
	if _, elsewhere := s.otherActiveIncident(v.Unit, excludeIncidentID); elsewhere {
		return
	}
	v.Status = models.StatusFreeOnRadio
	v.Note = ""
	v.Location = ""
	v.Lat = nil
	v.Lon = nil
	v.IncidentID = nil
	v.AlarmTime = nil
	v.Priority = ""
}

// normalizeLocation собирает каноничную форму {name, lat, lon},
// разрешая адрес через геокодер, когда координаты не заданы явно
func (s *fleetService) normalizeLocation(ctx context.Context, name string, lat, lon *float64) models.Location {
	loc := models.Location{Name: name}
	if lat != nil {
		l := *lat
		loc.Lat = &l
	}
	if lon != nil {
		l := *lon
		loc.Lon = &l
	}
	if name != "" && (loc.Lat == nil || loc.Lon == nil) {
		loc.Lat, loc.Lon = s.resolveLocation(ctx, name)
	}
	return loc
}

func dedupe(units []string) []string {
	seen := make(map[string]bool, len(units))
	out := make([]string, 0, len(units))
	for _, u := range units {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}
