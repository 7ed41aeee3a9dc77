package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alarmmonitor/fleet_coordination_system/internal/models"
)

func TestIncidentStore_IDsAreMonotonic(t *testing.T) {
	s := NewIncidentStore()

	first := s.NextID()
	s.Append(&models.Incident{ID: first, Active: true})
	second := s.NextID()
	s.Append(&models.Incident{ID: second, Active: true})
	assert.Greater(t, second, first)

	// Удаление не откатывает счетчик: идентификаторы не переиспользуются
	require.True(t, s.Delete(second))
	third := s.NextID()
	assert.Greater(t, third, second)
}

func TestIncidentStore_GetReturnsCopy(t *testing.T) {
	s := NewIncidentStore()
	s.Append(&models.Incident{ID: 1, Keyword: "Brand", Active: true, Vehicles: []string{"RTW1"}})

	inc, ok := s.Get(1)
	require.True(t, ok)
	inc.Keyword = "verändert"
	inc.Vehicles[0] = "NF1"

	again, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Brand", again.Keyword)
	assert.Equal(t, []string{"RTW1"}, again.Vehicles)
}

func TestIncidentStore_ListActive(t *testing.T) {
	s := NewIncidentStore()
	end := time.Now()
	s.Append(&models.Incident{ID: 1, Active: true})
	s.Append(&models.Incident{ID: 2, Active: false, End: &end})

	active := s.ListActive()
	require.Len(t, active, 1)
	assert.Equal(t, 1, active[0].ID)
}

func TestIncidentStore_LoadNormalizesAndBumpsCounter(t *testing.T) {
	s := NewIncidentStore()
	end := time.Now()

	// В снимке флаг Active отсутствует (нулевое значение): при загрузке
	// он выводится из поля End
	s.Load([]*models.Incident{
		{ID: 3},
		{ID: 7, End: &end},
	})

	inc, ok := s.Get(3)
	require.True(t, ok)
	assert.True(t, inc.Active)
	assert.NotNil(t, inc.Vehicles)
	assert.NotNil(t, inc.Log)

	inc, ok = s.Get(7)
	require.True(t, ok)
	assert.False(t, inc.Active)

	assert.Equal(t, 8, s.NextID())
}

func TestVehicleStore_PutGetDelete(t *testing.T) {
	s := NewVehicleStore()

	s.Put(&models.Vehicle{Unit: "RTW1", Status: models.StatusFreeAtBase})
	v, ok := s.Get("RTW1")
	require.True(t, ok)

	// Мутация копии не задевает хранилище
	v.Status = models.StatusOnScene
	again, ok := s.Get("RTW1")
	require.True(t, ok)
	assert.Equal(t, models.StatusFreeAtBase, again.Status)

	assert.True(t, s.Delete("RTW1"))
	assert.False(t, s.Delete("RTW1"))
	_, ok = s.Get("RTW1")
	assert.False(t, ok)
}

func TestVehicleStore_ListSortedByUnit(t *testing.T) {
	s := NewVehicleStore()
	s.Put(&models.Vehicle{Unit: "RTW2"})
	s.Put(&models.Vehicle{Unit: "ELW1"})
	s.Put(&models.Vehicle{Unit: "RTW1"})

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "ELW1", list[0].Unit)
	assert.Equal(t, "RTW1", list[1].Unit)
	assert.Equal(t, "RTW2", list[2].Unit)
}

func TestPriorityStore_SetNormalizes(t *testing.T) {
	s := NewPriorityStore(nil)

	cleaned := s.Set([]string{" 1 ", "", "2", "1"})
	assert.Equal(t, []string{"1", "2"}, cleaned)
	assert.Equal(t, []string{"1", "2"}, s.List())
}
