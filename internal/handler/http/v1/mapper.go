package v1

import (
	"github.com/alarmmonitor/fleet_coordination_system/internal/models"
	"github.com/alarmmonitor/fleet_coordination_system/internal/service"
)

// ModelToVehicleResponse преобразует доменную модель машины в DTO для ответа
func ModelToVehicleResponse(model *models.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		Unit:       model.Unit,
		Name:       model.Name,
		CallSign:   model.CallSign,
		Crew:       model.Crew,
		Base:       model.Base,
		Icon:       model.Icon,
		TTSPhrase:  model.TTSPhrase,
		Status:     model.Status,
		StatusText: models.StatusText[model.Status],
		Note:       model.Note,
		Location:   model.Location,
		Lat:        model.Lat,
		Lon:        model.Lon,
		Priority:   model.Priority,
		IncidentID: model.IncidentID,
		AlarmTime:  model.AlarmTime,
	}
}

// ModelsToVehicleResponses преобразует слайс моделей в слайс DTO
func ModelsToVehicleResponses(vehicles []*models.Vehicle) []*VehicleResponse {
	responses := make([]*VehicleResponse, len(vehicles))
	for i, model := range vehicles {
		responses[i] = ModelToVehicleResponse(model)
	}
	return responses
}

// ModelToIncidentResponse преобразует доменную модель инцидента в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	notes := make([]NoteResponse, len(model.Notes))
	for i, n := range model.Notes {
		notes[i] = NoteResponse{Time: n.Time, Text: n.Text}
	}
	log := make([]LogEntryResponse, len(model.Log))
	for i, e := range model.Log {
		log[i] = LogEntryResponse{Time: e.Time, Unit: e.Unit, Status: e.Status}
	}
	return &IncidentResponse{
		ID:       model.ID,
		Start:    model.Start,
		End:      model.End,
		Keyword:  model.Keyword,
		Priority: model.Priority,
		Patient:  model.Patient,
		Location: LocationResponse{
			Name: model.Location.Name,
			Lat:  model.Location.Lat,
			Lon:  model.Location.Lon,
		},
		Vehicles: model.Vehicles,
		Notes:    notes,
		Log:      log,
		Active:   model.Active,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, model := range incidents {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ResultToAlertResponse преобразует результат тревоги в DTO
func ResultToAlertResponse(result *service.AlertResult) *AlertResponse {
	return &AlertResponse{
		Alerted:        result.Alerted,
		Skipped:        result.Skipped,
		AlreadyAlerted: result.AlreadyAlerted,
	}
}

// DTOToCreateIncidentParams преобразует DTO создания в параметры сервиса
func DTOToCreateIncidentParams(dto CreateIncidentRequest) service.CreateIncidentParams {
	return service.CreateIncidentParams{
		Keyword:  dto.Keyword,
		Location: dto.Location,
		Lat:      dto.Lat,
		Lon:      dto.Lon,
		Priority: dto.Priority,
		Patient:  dto.Patient,
		Note:     dto.Note,
		Vehicles: dto.Vehicles,
	}
}

// DTOToUpdateIncidentParams преобразует DTO обновления в параметры сервиса
func DTOToUpdateIncidentParams(dto UpdateIncidentRequest) service.UpdateIncidentParams {
	return service.UpdateIncidentParams{
		Keyword:  dto.Keyword,
		Location: dto.Location,
		Lat:      dto.Lat,
		Lon:      dto.Lon,
		Priority: dto.Priority,
		Patient:  dto.Patient,
		Note:     dto.Note,
		Vehicles: dto.Vehicles,
	}
}
