package models

import (
	"time"
)

// Коды статусов транспортных средств (FMS-схема)
const (
	StatusPriorityCallRequest = 0 // priorisierter Sprechwunsch
	StatusFreeOnRadio         = 1 // einsatzbereit über Funk
	StatusFreeAtBase          = 2 // einsatzbereit auf Wache
	StatusEnRoute             = 3 // Einsatz übernommen
	StatusOnScene             = 4 // am Einsatzort
	StatusCallRequest         = 5 // Sprechwunsch
	StatusNotAvailable        = 6 // nicht einsatzbereit
	StatusCommitted           = 7 // Einsatz gebunden
	StatusConditional         = 8 // bedingt verfügbar
	StatusForeign             = 9 // Fremdanmeldung
)

// StatusText - человекочитаемые подписи статусов для монитора
var StatusText = map[int]string{
	StatusPriorityCallRequest: "Priorisierter Sprechwunsch",
	StatusFreeOnRadio:         "Einsatzbereit über Funk",
	StatusFreeAtBase:          "Einsatzbereit auf Wache",
	StatusEnRoute:             "Einsatz übernommen",
	StatusOnScene:             "Am Einsatzort",
	StatusCallRequest:         "Sprechwunsch",
	StatusNotAvailable:        "Nicht einsatzbereit",
	StatusCommitted:           "Einsatz gebunden",
	StatusConditional:         "Bedingt verfügbar",
	StatusForeign:             "Fremdanmeldung",
}

// ValidStatus проверяет, что код статуса лежит в допустимом диапазоне 0..9
func ValidStatus(status int) bool {
	_, ok := StatusText[status]
	return ok
}

// AvailableStatus сообщает, свободна ли машина для снятия с инцидента.
// Только статусы 1 и 2 считаются «доступными».
func AvailableStatus(status int) bool {
	return status == StatusFreeOnRadio || status == StatusFreeAtBase
}

// Vehicle - одна единица флота, идентифицируется позывным (unit)
type Vehicle struct {
	Unit      string     `json:"unit"`
	Name      string     `json:"name"`
	CallSign  string     `json:"call_sign"`
	Crew      []string   `json:"crew"`
	Base      string     `json:"base"`
	Icon      string     `json:"icon"`
	TTSPhrase string     `json:"tts_phrase"`
	Status    int        `json:"status"`
	Note      string     `json:"note"`
	Location  string     `json:"location"`
	Lat       *float64   `json:"lat"`
	Lon       *float64   `json:"lon"`
	Priority  string     `json:"priority"`
	// IncidentID не nil тогда и только тогда, когда машина привязана
	// к ровно одному активному инциденту.
	IncidentID *int       `json:"incident_id"`
	AlarmTime  *time.Time `json:"alarm_time"`
}

// Clone возвращает глубокую копию, чтобы хранилище не отдавало наружу
// свои внутренние указатели.
func (v *Vehicle) Clone() *Vehicle {
	cp := *v
	if v.Crew != nil {
		cp.Crew = append([]string(nil), v.Crew...)
	}
	cp.Lat = copyFloat(v.Lat)
	cp.Lon = copyFloat(v.Lon)
	if v.IncidentID != nil {
		id := *v.IncidentID
		cp.IncidentID = &id
	}
	if v.AlarmTime != nil {
		t := *v.AlarmTime
		cp.AlarmTime = &t
	}
	return &cp
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
