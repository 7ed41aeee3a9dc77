package v1

import (
	"time"
)

// AddVehicleRequest DTO для создания машины
// @Description DTO для создания машины
type AddVehicleRequest struct {
	Unit      string   `json:"unit" validate:"required,min=1,max=32"`
	Name      string   `json:"name,omitempty"`
	CallSign  string   `json:"call_sign,omitempty"`
	Crew      []string `json:"crew,omitempty"`
	Base      string   `json:"base,omitempty"`
	Icon      string   `json:"icon,omitempty"`
	TTSPhrase string   `json:"tts_phrase,omitempty"`
}

// UpdateVehicleRequest DTO для частичного обновления описательных полей
// @Description DTO для частичного обновления описательных полей машины
type UpdateVehicleRequest struct {
	Name      *string   `json:"name,omitempty"`
	CallSign  *string   `json:"call_sign,omitempty"`
	Crew      *[]string `json:"crew,omitempty"`
	Base      *string   `json:"base,omitempty"`
	TTSPhrase *string   `json:"tts_phrase,omitempty"`
}

// SetVehicleIconRequest DTO для установки иконки машины
// @Description DTO для установки иконки машины
type SetVehicleIconRequest struct {
	Icon string `json:"icon" validate:"required"`
}

// DispatchRequest DTO для смены статуса машины
// @Description DTO для смены статуса машины
type DispatchRequest struct {
	Unit     string   `json:"unit" validate:"required"`
	Status   int      `json:"status" validate:"gte=0,lte=9"`
	Note     *string  `json:"note,omitempty"`
	Location *string  `json:"location,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Keyword  string   `json:"keyword" validate:"required,min=1,max=255"`
	Location string   `json:"location,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
	Priority string   `json:"priority,omitempty"`
	Patient  string   `json:"patient,omitempty"`
	Note     string   `json:"note,omitempty"`
	Vehicles []string `json:"vehicles,omitempty"`
}

// UpdateIncidentRequest DTO для частичного обновления инцидента
// @Description DTO для частичного обновления инцидента
type UpdateIncidentRequest struct {
	Keyword  *string   `json:"keyword,omitempty"`
	Location *string   `json:"location,omitempty"`
	Lat      *float64  `json:"lat,omitempty"`
	Lon      *float64  `json:"lon,omitempty"`
	Priority *string   `json:"priority,omitempty"`
	Patient  *string   `json:"patient,omitempty"`
	Note     *string   `json:"note,omitempty"`
	Vehicles *[]string `json:"vehicles,omitempty"`
}

// AlertRequest DTO для рассылки тревоги
// @Description DTO для рассылки тревоги машинам инцидента
type AlertRequest struct {
	Units []string `json:"units" validate:"required,min=1"`
}

// NoteRequest DTO для добавления заметки к инциденту
// @Description DTO для добавления заметки к инциденту
type NoteRequest struct {
	Text string `json:"text" validate:"required"`
}

// PrioritiesRequest DTO для замены списка меток приоритетов
// @Description DTO для замены списка меток приоритетов
type PrioritiesRequest struct {
	Priorities []string `json:"priorities" validate:"required"`
}

// VehicleResponse DTO для ответа с информацией о машине
// @Description DTO для ответа с информацией о машине
type VehicleResponse struct {
	Unit       string     `json:"unit"`
	Name       string     `json:"name"`
	CallSign   string     `json:"call_sign"`
	Crew       []string   `json:"crew"`
	Base       string     `json:"base"`
	Icon       string     `json:"icon"`
	TTSPhrase  string     `json:"tts_phrase"`
	Status     int        `json:"status"`
	StatusText string     `json:"status_text"`
	Note       string     `json:"note"`
	Location   string     `json:"location"`
	Lat        *float64   `json:"lat"`
	Lon        *float64   `json:"lon"`
	Priority   string     `json:"priority"`
	IncidentID *int       `json:"incident_id"`
	AlarmTime  *time.Time `json:"alarm_time"`
}

// LocationResponse DTO для нормализованного места инцидента
type LocationResponse struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
}

// NoteResponse DTO для одной заметки инцидента
type NoteResponse struct {
	Time time.Time `json:"time"`
	Text string    `json:"text"`
}

// LogEntryResponse DTO для одной строки журнала инцидента
type LogEntryResponse struct {
	Time   time.Time `json:"time"`
	Unit   string    `json:"unit"`
	Status string    `json:"status"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID       int                `json:"id"`
	Start    *time.Time         `json:"start"`
	End      *time.Time         `json:"end"`
	Keyword  string             `json:"keyword"`
	Priority string             `json:"priority"`
	Patient  string             `json:"patient"`
	Location LocationResponse   `json:"location"`
	Vehicles []string           `json:"vehicles"`
	Notes    []NoteResponse     `json:"notes"`
	Log      []LogEntryResponse `json:"log"`
	Active   bool               `json:"active"`
}

// AlertResponse DTO для результата рассылки тревоги
// @Description DTO для результата рассылки тревоги
type AlertResponse struct {
	Alerted        []string `json:"alerted"`
	Skipped        []string `json:"skipped"`
	AlreadyAlerted []string `json:"already_alerted"`
}

// StateResponse DTO для полного снимка состояния
// @Description DTO для полного снимка состояния флота и инцидентов
type StateResponse struct {
	Vehicles  []*VehicleResponse  `json:"vehicles"`
	Incidents []*IncidentResponse `json:"incidents"`
}

// PrioritiesResponse DTO для списка меток приоритетов
// @Description DTO для списка меток приоритетов
type PrioritiesResponse struct {
	Priorities []string `json:"priorities"`
}
