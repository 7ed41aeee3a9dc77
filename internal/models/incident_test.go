package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_UnmarshalLegacyString(t *testing.T) {
	var loc Location
	require.NoError(t, json.Unmarshal([]byte(`"Bahnhofstr. 5"`), &loc))
	assert.Equal(t, "Bahnhofstr. 5", loc.Name)
	assert.Nil(t, loc.Lat)
	assert.Nil(t, loc.Lon)
}

func TestLocation_UnmarshalObject(t *testing.T) {
	var loc Location
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Bahnhofstr. 5", "lat": 50.1, "lon": 8.6}`), &loc))
	assert.Equal(t, "Bahnhofstr. 5", loc.Name)
	require.NotNil(t, loc.Lat)
	assert.InDelta(t, 50.1, *loc.Lat, 0.001)
}

func TestNormalizeIncident(t *testing.T) {
	inc := NormalizeIncident(&Incident{ID: 1})
	assert.NotNil(t, inc.Vehicles)
	assert.NotNil(t, inc.Notes)
	assert.NotNil(t, inc.Log)
	assert.True(t, inc.Active)

	end := time.Now()
	inc = NormalizeIncident(&Incident{ID: 2, End: &end})
	assert.False(t, inc.Active)
}

func TestIncident_RemoveVehicle(t *testing.T) {
	inc := &Incident{Vehicles: []string{"RTW1", "RTW2", "ELW1"}}
	inc.RemoveVehicle("RTW2")
	assert.Equal(t, []string{"RTW1", "ELW1"}, inc.Vehicles)
	assert.False(t, inc.HasVehicle("RTW2"))
	assert.True(t, inc.HasVehicle("RTW1"))
}

func TestIncident_CloneIsDeep(t *testing.T) {
	lat := 50.1
	inc := &Incident{
		ID:       1,
		Keyword:  "Brand",
		Location: Location{Name: "Loc", Lat: &lat},
		Vehicles: []string{"RTW1"},
		Log:      []LogEntry{{Unit: "RTW1", Status: LogAlerted}},
		Active:   true,
	}

	clone := inc.Clone()
	clone.Vehicles[0] = "NF1"
	*clone.Location.Lat = 0
	clone.Log[0].Status = LogRemoved

	assert.Equal(t, []string{"RTW1"}, inc.Vehicles)
	assert.InDelta(t, 50.1, *inc.Location.Lat, 0.001)
	assert.Equal(t, LogAlerted, inc.Log[0].Status)
}

func TestValidStatusAndAvailability(t *testing.T) {
	for status := 0; status <= 9; status++ {
		assert.True(t, ValidStatus(status))
	}
	assert.False(t, ValidStatus(-1))
	assert.False(t, ValidStatus(10))

	assert.True(t, AvailableStatus(StatusFreeOnRadio))
	assert.True(t, AvailableStatus(StatusFreeAtBase))
	assert.False(t, AvailableStatus(StatusOnScene))
	assert.False(t, AvailableStatus(0))
}
