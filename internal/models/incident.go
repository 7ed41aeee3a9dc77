package models

import (
	"encoding/json"
	"time"
)

// Сентинельные записи журнала инцидента. Помимо них в журнал попадают
// числовые коды статусов в текстовом виде.
const (
	LogAlerted  = "alarmiert"
	LogAssigned = "zugeteilt"
	LogRemoved  = "entfernt"
)

// Location - нормализованное место инцидента {name, lat, lon}
type Location struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
}

// UnmarshalJSON принимает как объект, так и «голую» строку адреса,
// которую писали старые версии записей.
func (l *Location) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		l.Name = name
		l.Lat = nil
		l.Lon = nil
		return nil
	}
	type plain Location
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*l = Location(p)
	return nil
}

// Note - одна запись блока заметок инцидента (только добавление)
type Note struct {
	Time time.Time `json:"time"`
	Text string    `json:"text"`
}

// LogEntry - одна строка журнала инцидента (только добавление)
type LogEntry struct {
	Time   time.Time `json:"time"`
	Unit   string    `json:"unit"`
	Status string    `json:"status"`
}

// Incident - один вызов/миссия. Инвариант: Active == false тогда и
// только тогда, когда End установлен.
type Incident struct {
	ID       int        `json:"id"`
	Start    *time.Time `json:"start"`
	End      *time.Time `json:"end"`
	Keyword  string     `json:"keyword"`
	Priority string     `json:"priority"`
	Patient  string     `json:"patient"`
	Location Location   `json:"location"`
	Vehicles []string   `json:"vehicles"`
	Notes    []Note     `json:"notes"`
	Log      []LogEntry `json:"log"`
	Active   bool       `json:"active"`
}

// HasVehicle проверяет членство позывного в инциденте
func (i *Incident) HasVehicle(unit string) bool {
	for _, u := range i.Vehicles {
		if u == unit {
			return true
		}
	}
	return false
}

// RemoveVehicle убирает позывной из набора машин инцидента
func (i *Incident) RemoveVehicle(unit string) {
	out := i.Vehicles[:0]
	for _, u := range i.Vehicles {
		if u != unit {
			out = append(out, u)
		}
	}
	i.Vehicles = out
}

// AppendLog добавляет строку журнала
func (i *Incident) AppendLog(t time.Time, unit, status string) {
	i.Log = append(i.Log, LogEntry{Time: t, Unit: unit, Status: status})
}

// Clone возвращает глубокую копию инцидента
func (i *Incident) Clone() *Incident {
	cp := *i
	if i.Start != nil {
		t := *i.Start
		cp.Start = &t
	}
	if i.End != nil {
		t := *i.End
		cp.End = &t
	}
	cp.Location.Lat = copyFloat(i.Location.Lat)
	cp.Location.Lon = copyFloat(i.Location.Lon)
	if i.Vehicles != nil {
		cp.Vehicles = append([]string(nil), i.Vehicles...)
	}
	if i.Notes != nil {
		cp.Notes = append([]Note(nil), i.Notes...)
	}
	if i.Log != nil {
		cp.Log = append([]LogEntry(nil), i.Log...)
	}
	return &cp
}

// NormalizeIncident приводит запись к каноничной форме один раз при
// загрузке: непустые слайсы и согласованный флаг Active. Дальше ядро
// работает только с нормализованными записями.
func NormalizeIncident(inc *Incident) *Incident {
	if inc.Vehicles == nil {
		inc.Vehicles = []string{}
	}
	if inc.Notes == nil {
		inc.Notes = []Note{}
	}
	if inc.Log == nil {
		inc.Log = []LogEntry{}
	}
	inc.Active = inc.End == nil
	return inc
}
