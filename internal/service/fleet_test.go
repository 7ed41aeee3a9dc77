package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alarmmonitor/fleet_coordination_system/internal/models"
	"github.com/alarmmonitor/fleet_coordination_system/internal/service"
	"github.com/alarmmonitor/fleet_coordination_system/internal/service/mocks"
	"github.com/alarmmonitor/fleet_coordination_system/internal/store"
)

// newTestFleetService создает сервис с моками для тестов.
func newTestFleetService(t *testing.T) (service.FleetService, *mocks.MockGeocoder, *mocks.MockPersister, *mocks.MockChangeNotifier) {
	ctrl := gomock.NewController(t)
	geoMock := mocks.NewMockGeocoder(ctrl)
	persisterMock := mocks.NewMockPersister(ctrl)
	notifierMock := mocks.NewMockChangeNotifier(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := service.NewFleetService(
		store.NewVehicleStore(),
		store.NewIncidentStore(),
		store.NewPriorityStore(nil),
		geoMock,
		persisterMock,
		notifierMock,
		logger,
	)
	return svc, geoMock, persisterMock, notifierMock
}

// allowSideEffects разрешает любые записи снимков и публикации
// уведомлений в тестах, где они не являются предметом проверки
func allowSideEffects(persisterMock *mocks.MockPersister, notifierMock *mocks.MockChangeNotifier) {
	persisterMock.EXPECT().Persist(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	notifierMock.EXPECT().Publish().AnyTimes()
}

func addVehicle(t *testing.T, svc service.FleetService, unit string) {
	t.Helper()
	_, err := svc.AddVehicle(context.Background(), service.AddVehicleParams{Unit: unit})
	require.NoError(t, err)
}

// countLog считает записи журнала с данным позывным и статусом
func countLog(inc *models.Incident, unit, status string) int {
	n := 0
	for _, entry := range inc.Log {
		if entry.Unit == unit && entry.Status == status {
			n++
		}
	}
	return n
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestAddVehicle_Defaults(t *testing.T) {
	svc, _, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	v, err := svc.AddVehicle(ctx, service.AddVehicleParams{Unit: "RTW1", Name: "Rettungswagen 1"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusFreeAtBase, v.Status)
	assert.NotNil(t, v.Crew)
	assert.Nil(t, v.IncidentID)
	assert.Nil(t, v.AlarmTime)
}

func TestAddVehicle_DuplicateUnit(t *testing.T) {
	svc, _, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	addVehicle(t, svc, "RTW1")
	_, err := svc.AddVehicle(ctx, service.AddVehicleParams{Unit: "RTW1"})
	assert.ErrorIs(t, err, service.ErrVehicleExists)
}

func TestAddVehicle_EmptyUnit(t *testing.T) {
	svc, _, _, _ := newTestFleetService(t)

	_, err := svc.AddVehicle(context.Background(), service.AddVehicleParams{})
	assert.ErrorIs(t, err, service.ErrUnitRequired)
}

func TestAddVehicle_GeocodesBase(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	geoMock.EXPECT().
		Geocode(gomock.Any(), "Hauptwache 1").
		Return(50.11, 8.68, true).
		Times(1)

	v, err := svc.AddVehicle(ctx, service.AddVehicleParams{Unit: "RTW1", Base: "Hauptwache 1"})
	require.NoError(t, err)
	assert.Equal(t, "Hauptwache 1", v.Location)
	require.NotNil(t, v.Lat)
	require.NotNil(t, v.Lon)
	assert.InDelta(t, 50.11, *v.Lat, 0.001)
	assert.InDelta(t, 8.68, *v.Lon, 0.001)
}

// Отказ геокодера не валит операцию: координаты остаются пустыми
func TestAddVehicle_GeocodeFailureIsNonFatal(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	geoMock.EXPECT().
		Geocode(gomock.Any(), "Nirgendwo 99").
		Return(0.0, 0.0, false).
		Times(1)

	v, err := svc.AddVehicle(ctx, service.AddVehicleParams{Unit: "RTW1", Base: "Nirgendwo 99"})
	require.NoError(t, err)
	assert.Nil(t, v.Lat)
	assert.Nil(t, v.Lon)
}

func TestDispatch_UnknownUnit(t *testing.T) {
	svc, _, _, _ := newTestFleetService(t)

	err := svc.Dispatch(context.Background(), "NF1", 3, service.DispatchOptions{})
	assert.ErrorIs(t, err, service.ErrVehicleNotFound)
}

func TestDispatch_InvalidStatus(t *testing.T) {
	svc, _, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)

	addVehicle(t, svc, "RTW1")
	err := svc.Dispatch(context.Background(), "RTW1", 10, service.DispatchOptions{})
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestCreateIncident_AssignsKnownVehicles(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	addVehicle(t, svc, "RTW1")
	addVehicle(t, svc, "RTW2")

	geoMock.EXPECT().
		Geocode(gomock.Any(), "Bahnhofstr. 5").
		Return(50.0, 8.0, true).
		Times(1)

	// Дубликат и неизвестный позывной в списке назначений
	inc, err := svc.CreateIncident(ctx, service.CreateIncidentParams{
		Keyword:  "Brand 2",
		Location: "Bahnhofstr. 5",
		Priority: "1",
		Vehicles: []string{"RTW1", "RTW1", "NF1", "RTW2"},
	})
	require.NoError(t, err)

	assert.True(t, inc.Active)
	assert.Nil(t, inc.End)
	assert.NotNil(t, inc.Start)
	assert.Equal(t, []string{"RTW1", "RTW2"}, inc.Vehicles)
	assert.Equal(t, 1, countLog(inc, "RTW1", models.LogAssigned))
	assert.Equal(t, 1, countLog(inc, "RTW2", models.LogAssigned))

	// Назначение - это еще не алярм
	v, err := svc.GetVehicle(ctx, "RTW1")
	require.NoError(t, err)
	require.NotNil(t, v.IncidentID)
	assert.Equal(t, inc.ID, *v.IncidentID)
	assert.Nil(t, v.AlarmTime)
	assert.Equal(t, "Brand 2", v.Note)
	assert.Equal(t, "1", v.Priority)
	assert.Equal(t, "Bahnhofstr. 5", v.Location)
}

// Сценарий: тревога и повторная тревога того же позывного
func TestAlert_Idempotent(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	addVehicle(t, svc, "RTW1")
	geoMock.EXPECT().Geocode(gomock.Any(), "Loc").Return(0.0, 0.0, false).Times(1)

	inc, err := svc.CreateIncident(ctx, service.CreateIncidentParams{Keyword: "Test", Location: "Loc"})
	require.NoError(t, err)

	result, err := svc.Alert(ctx, inc.ID, []string{"RTW1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"RTW1"}, result.Alerted)
	assert.Empty(t, result.Skipped)
	assert.Empty(t, result.AlreadyAlerted)

	v, err := svc.GetVehicle(ctx, "RTW1")
	require.NoError(t, err)
	require.NotNil(t, v.IncidentID)
	assert.Equal(t, inc.ID, *v.IncidentID)
	require.NotNil(t, v.AlarmTime)
	firstAlarm := *v.AlarmTime

	// Повторная тревога: ни новых записей журнала, ни смены отметки
	result, err = svc.Alert(ctx, inc.ID, []string{"RTW1"})
	require.NoError(t, err)
	assert.Empty(t, result.Alerted)
	assert.Equal(t, []string{"RTW1"}, result.AlreadyAlerted)

	inc, err = svc.GetIncident(ctx, inc.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, countLog(inc, "RTW1", models.LogAlerted))

	v, err = svc.GetVehicle(ctx, "RTW1")
	require.NoError(t, err)
	require.NotNil(t, v.AlarmTime)
	assert.True(t, firstAlarm.Equal(*v.AlarmTime))
}

// Позывной без карточки машины остается членом инцидента; повторная
// тревога по нему также не дублирует журнал
func TestAlert_UnregisteredUnitIdempotent(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	geoMock.EXPECT().Geocode(gomock.Any(), "Loc").Return(0.0, 0.0, false).Times(1)
	inc, err := svc.CreateIncident(ctx, service.CreateIncidentParams{Keyword: "Test", Location: "Loc"})
	require.NoError(t, err)

	result, err := svc.Alert(ctx, inc.ID, []string{"NF1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"NF1"}, result.Alerted)
	assert.Empty(t, result.AlreadyAlerted)

	result, err = svc.Alert(ctx, inc.ID, []string{"NF1"})
	require.NoError(t, err)
	assert.Empty(t, result.Alerted)
	assert.Equal(t, []string{"NF1"}, result.AlreadyAlerted)

	inc, err = svc.GetIncident(ctx, inc.ID)
	require.NoError(t, err)
	assert.True(t, inc.HasVehicle("NF1"))
	assert.Equal(t, 1, countLog(inc, "NF1", models.LogAlerted))
}

// Сценарий: машина активного инцидента не перехватывается вторым
func TestAlert_SkipsUnitBoundElsewhere(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	addVehicle(t, svc, "RTW1")
	geoMock.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(0.0, 0.0, false).AnyTimes()

	incA, err := svc.CreateIncident(ctx, service.CreateIncidentParams{Keyword: "A", Location: "LocA"})
	require.NoError(t, err)
	incB, err := svc.CreateIncident(ctx, service.CreateIncidentParams{Keyword: "B", Location: "LocB"})
	require.NoError(t, err)

	_, err = svc.Alert(ctx, incA.ID, []string{"RTW1"})
	require.NoError(t, err)

	result, err := svc.Alert(ctx, incB.ID, []string{"RTW1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"RTW1"}, result.Skipped)
	assert.Empty(t, result.Alerted)

	v, err := svc.GetVehicle(ctx, "RTW1")
	require.NoError(t, err)
	require.NotNil(t, v.IncidentID)
	assert.Equal(t, incA.ID, *v.IncidentID)

	incB, err = svc.GetIncident(ctx, incB.ID)
	require.NoError(t, err)
	assert.False(t, incB.HasVehicle("RTW1"))
}

func TestAlert_UnknownOrInactiveIncident(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	_, err := svc.Alert(ctx, 42, []string{"RTW1"})
	assert.ErrorIs(t, err, service.ErrIncidentNotFound)

	geoMock.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(0.0, 0.0, false).AnyTimes()
	inc, err := svc.CreateIncident(ctx, service.CreateIncidentParams{Keyword: "A", Location: "Loc"})
	require.NoError(t, err)
	require.NoError(t, svc.EndIncident(ctx, inc.ID))

	_, err = svc.Alert(ctx, inc.ID, []string{"RTW1"})
	assert.ErrorIs(t, err, service.ErrIncidentInactive)
}

// Сценарий: статус 4 у привязанной машины не меняет привязку,
// статус 1 - неявное возвращение в строй
func TestDispatch_BoundVehicle(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	addVehicle(t, svc, "RTW1")
	geoMock.EXPECT().Geocode(gomock.Any(), "Loc").Return(0.0, 0.0, false).Times(1)

	inc, err := svc.CreateIncident(ctx, service.CreateIncidentParams{Keyword: "Test", Location: "Loc"})
	require.NoError(t, err)
	_, err = svc.Alert(ctx, inc.ID, []string{"RTW1"})
	require.NoError(t, err)

	// Статус «на месте»: привязка сохраняется
	require.NoError(t, svc.Dispatch(ctx, "RTW1", models.StatusOnScene, service.DispatchOptions{}))

	v, err := svc.GetVehicle(ctx, "RTW1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnScene, v.Status)
	require.NotNil(t, v.IncidentID)
	assert.Equal(t, inc.ID, *v.IncidentID)
	assert.Equal(t, "Test", v.Note)

	inc, err = svc.GetIncident(ctx, inc.ID)
	require.NoError(t, err)
	assert.True(t, inc.HasVehicle("RTW1"))
	assert.Equal(t, 1, countLog(inc, "RTW1", "4"))

	// Статус 1: машина снимается с инцидента, инцидент остается активным
	require.NoError(t, svc.Dispatch(ctx, "RTW1", models.StatusFreeOnRadio, service.DispatchOptions{}))

	v, err = svc.GetVehicle(ctx, "RTW1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusFreeOnRadio, v.Status)
	assert.Nil(t, v.IncidentID)
	assert.Nil(t, v.AlarmTime)
	assert.Empty(t, v.Note)
	assert.Empty(t, v.Priority)

	inc, err = svc.GetIncident(ctx, inc.ID)
	require.NoError(t, err)
	assert.False(t, inc.HasVehicle("RTW1"))
	assert.True(t, inc.Active)
	assert.Equal(t, 1, countLog(inc, "RTW1", "1"))
}

func TestDispatch_OverridesAdoptedVerbatim(t *testing.T) {
	svc, _, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	addVehicle(t, svc, "RTW1")

	err := svc.Dispatch(ctx, "RTW1", 3, service.DispatchOptions{
		Note:     strPtr("Einsatzfahrt"),
		Location: strPtr("Marktplatz"),
		Lat:      floatPtr(49.5),
		Lon:      floatPtr(8.5),
	})
	require.NoError(t, err)

	v, err := svc.GetVehicle(ctx, "RTW1")
	require.NoError(t, err)
	assert.Equal(t, 3, v.Status)
	assert.Equal(t, "Einsatzfahrt", v.Note)
	assert.Equal(t, "Marktplatz", v.Location)
	require.NotNil(t, v.Lat)
	assert.InDelta(t, 49.5, *v.Lat, 0.001)
}

// Координаты без адреса получают подпись места через обратный
// геокодинг; неудача оставляет прежний адрес
func TestDispatch_BareCoordinatesReverseGeocoded(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	addVehicle(t, svc, "RTW1")

	geoMock.EXPECT().ReverseGeocode(gomock.Any(), 49.5, 8.5).Return("Marktplatz 1", true).Times(1)
	err := svc.Dispatch(ctx, "RTW1", 3, service.DispatchOptions{
		Lat: floatPtr(49.5),
		Lon: floatPtr(8.5),
	})
	require.NoError(t, err)

	v, err := svc.GetVehicle(ctx, "RTW1")
	require.NoError(t, err)
	assert.Equal(t, "Marktplatz 1", v.Location)

	geoMock.EXPECT().ReverseGeocode(gomock.Any(), 49.6, 8.6).Return("", false).Times(1)
	err = svc.Dispatch(ctx, "RTW1", 3, service.DispatchOptions{
		Lat: floatPtr(49.6),
		Lon: floatPtr(8.6),
	})
	require.NoError(t, err)

	v, err = svc.GetVehicle(ctx, "RTW1")
	require.NoError(t, err)
	assert.Equal(t, "Marktplatz 1", v.Location)
}

func TestEndIncident_ResetsUnsharedVehicles(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	addVehicle(t, svc, "RTW1")
	geoMock.EXPECT().Geocode(gomock.Any(), "Loc").Return(0.0, 0.0, false).Times(1)

	inc, err := svc.CreateIncident(ctx, service.CreateIncidentParams{Keyword: "Test", Location: "Loc"})
	require.NoError(t, err)
	_, err = svc.Alert(ctx, inc.ID, []string{"RTW1"})
	require.NoError(t, err)
	require.NoError(t, svc.Dispatch(ctx, "RTW1", models.StatusOnScene, service.DispatchOptions{}))

	require.NoError(t, svc.EndIncident(ctx, inc.ID))

	inc, err = svc.GetIncident(ctx, inc.ID)
	require.NoError(t, err)
	assert.False(t, inc.Active)
	assert.NotNil(t, inc.End)

	v, err := svc.GetVehicle(ctx, "RTW1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusFreeOnRadio, v.Status)
	assert.Nil(t, v.IncidentID)
	assert.Nil(t, v.AlarmTime)
	assert.Empty(t, v.Note)
	assert.Empty(t, v.Location)
}

// Машина, разделенная с другим активным инцидентом, при завершении
// одного из них не трогается
func TestEndIncident_LeavesSharedVehicleUntouched(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	addVehicle(t, svc, "RTW1")
	geoMock.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(0.0, 0.0, false).AnyTimes()

	incA, err := svc.CreateIncident(ctx, service.CreateIncidentParams{Keyword: "A", Location: "LocA"})
	require.NoError(t, err)
	_, err = svc.Alert(ctx, incA.ID, []string{"RTW1"})
	require.NoError(t, err)

	// Членство во втором инциденте через явное назначение
	incB, err := svc.CreateIncident(ctx, service.CreateIncidentParams{Keyword: "B", Location: "LocB"})
	require.NoError(t, err)
	_, err = svc.UpdateIncident(ctx, incB.ID, service.UpdateIncidentParams{
		Vehicles: &[]string{"RTW1"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Dispatch(ctx, "RTW1", models.StatusOnScene, service.DispatchOptions{}))

	require.NoError(t, svc.EndIncident(ctx, incB.ID))

	v, err := svc.GetVehicle(ctx, "RTW1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnScene, v.Status)
}

func TestEndIncident_UnknownOrAlreadyEnded(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	assert.ErrorIs(t, svc.EndIncident(ctx, 42), service.ErrIncidentNotFound)

	geoMock.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(0.0, 0.0, false).AnyTimes()
	inc, err := svc.CreateIncident(ctx, service.CreateIncidentParams{Keyword: "A", Location: "Loc"})
	require.NoError(t, err)
	require.NoError(t, svc.EndIncident(ctx, inc.ID))
	assert.ErrorIs(t, svc.EndIncident(ctx, inc.ID), service.ErrIncidentNotFound)
}

// Добавление машины сбрасывает отметку тревоги только у новичка;
// уже оповещенные члены сохраняют свою
func TestUpdateIncident_AddKeepsExistingAlarmTime(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	addVehicle(t, svc, "RTW1")
	addVehicle(t, svc, "RTW2")
	geoMock.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(0.0, 0.0, false).AnyTimes()

	inc, err := svc.CreateIncident(ctx, service.CreateIncidentParams{Keyword: "Test", Location: "Loc"})
	require.NoError(t, err)
	_, err = svc.Alert(ctx, inc.ID, []string{"RTW1"})
	require.NoError(t, err)

	v1, err := svc.GetVehicle(ctx, "RTW1")
	require.NoError(t, err)
	require.NotNil(t, v1.AlarmTime)
	firstAlarm := *v1.AlarmTime

	_, err = svc.UpdateIncident(ctx, inc.ID, service.UpdateIncidentParams{
		Vehicles: &[]string{"RTW1", "RTW2"},
	})
	require.NoError(t, err)

	v1, err = svc.GetVehicle(ctx, "RTW1")
	require.NoError(t, err)
	require.NotNil(t, v1.AlarmTime)
	assert.True(t, firstAlarm.Equal(*v1.AlarmTime))

	v2, err := svc.GetVehicle(ctx, "RTW2")
	require.NoError(t, err)
	require.NotNil(t, v2.IncidentID)
	assert.Equal(t, inc.ID, *v2.IncidentID)
	assert.Nil(t, v2.AlarmTime)
}

// Снятие занятой машины блокируется, но остальная часть обновления
// фиксируется
func TestUpdateIncident_BlockedRemovalPartialCommit(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	addVehicle(t, svc, "RTW1")
	geoMock.EXPECT().Geocode(gomock.Any(), "Loc").Return(0.0, 0.0, false).Times(1)

	inc, err := svc.CreateIncident(ctx, service.CreateIncidentParams{
		Keyword:  "Test",
		Location: "Loc",
		Vehicles: []string{"RTW1"},
	})
	require.NoError(t, err)
	require.NoError(t, svc.Dispatch(ctx, "RTW1", models.StatusOnScene, service.DispatchOptions{}))

	updated, err := svc.UpdateIncident(ctx, inc.ID, service.UpdateIncidentParams{
		Keyword:  strPtr("Brand 3"),
		Vehicles: &[]string{},
	})

	var blocked *service.BlockedUnitsError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, []string{"RTW1"}, blocked.Units)

	// Частичная фиксация: ключевое слово обновлено, машина осталась
	require.NotNil(t, updated)
	assert.Equal(t, "Brand 3", updated.Keyword)
	assert.True(t, updated.HasVehicle("RTW1"))

	v, err := svc.GetVehicle(ctx, "RTW1")
	require.NoError(t, err)
	require.NotNil(t, v.IncidentID)
	assert.Equal(t, inc.ID, *v.IncidentID)
	// Освеженные производные поля после частичной фиксации
	assert.Equal(t, "Brand 3", v.Note)
}

func TestUpdateIncident_AllowedRemovalReleasesVehicle(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	addVehicle(t, svc, "RTW1")
	geoMock.EXPECT().Geocode(gomock.Any(), "Loc").Return(0.0, 0.0, false).Times(1)

	inc, err := svc.CreateIncident(ctx, service.CreateIncidentParams{
		Keyword:  "Test",
		Location: "Loc",
		Vehicles: []string{"RTW1"},
	})
	require.NoError(t, err)

	// Машина в доступном статусе (2) - снятие разрешено
	updated, err := svc.UpdateIncident(ctx, inc.ID, service.UpdateIncidentParams{
		Vehicles: &[]string{},
	})
	require.NoError(t, err)
	assert.False(t, updated.HasVehicle("RTW1"))
	assert.Equal(t, 1, countLog(updated, "RTW1", models.LogRemoved))

	v, err := svc.GetVehicle(ctx, "RTW1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusFreeOnRadio, v.Status)
	assert.Nil(t, v.IncidentID)
}

func TestUpdateIncident_LocationNameChangeRegeocode(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	geoMock.EXPECT().Geocode(gomock.Any(), "Alte Str. 1").Return(50.0, 8.0, true).Times(1)
	inc, err := svc.CreateIncident(ctx, service.CreateIncidentParams{Keyword: "Test", Location: "Alte Str. 1"})
	require.NoError(t, err)
	require.NotNil(t, inc.Location.Lat)

	// Новый адрес без координат: старые координаты сбрасываются,
	// геокодер опрашивается заново - и на этот раз безуспешно
	geoMock.EXPECT().Geocode(gomock.Any(), "Neue Str. 2").Return(0.0, 0.0, false).Times(1)
	updated, err := svc.UpdateIncident(ctx, inc.ID, service.UpdateIncidentParams{
		Location: strPtr("Neue Str. 2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Neue Str. 2", updated.Location.Name)
	assert.Nil(t, updated.Location.Lat)
	assert.Nil(t, updated.Location.Lon)
}

func TestUpdateIncident_ExplicitCoordinatesSkipGeocoder(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	geoMock.EXPECT().Geocode(gomock.Any(), "Loc").Return(0.0, 0.0, false).Times(1)
	inc, err := svc.CreateIncident(ctx, service.CreateIncidentParams{Keyword: "Test", Location: "Loc"})
	require.NoError(t, err)

	updated, err := svc.UpdateIncident(ctx, inc.ID, service.UpdateIncidentParams{
		Location: strPtr("Koordinatenpunkt"),
		Lat:      floatPtr(49.0),
		Lon:      floatPtr(8.4),
	})
	require.NoError(t, err)
	assert.Equal(t, "Koordinatenpunkt", updated.Location.Name)
	require.NotNil(t, updated.Location.Lat)
	assert.InDelta(t, 49.0, *updated.Location.Lat, 0.001)
}

func TestRemoveVehicleFromIncident_BlockedBeforeMutation(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	addVehicle(t, svc, "RTW1")
	geoMock.EXPECT().Geocode(gomock.Any(), "Loc").Return(0.0, 0.0, false).Times(1)

	inc, err := svc.CreateIncident(ctx, service.CreateIncidentParams{
		Keyword:  "Test",
		Location: "Loc",
		Vehicles: []string{"RTW1"},
	})
	require.NoError(t, err)
	require.NoError(t, svc.Dispatch(ctx, "RTW1", models.StatusOnScene, service.DispatchOptions{}))

	err = svc.RemoveVehicleFromIncident(ctx, inc.ID, "RTW1")
	var blocked *service.BlockedUnitsError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, []string{"RTW1"}, blocked.Units)

	// Блокировка до мутации: ни снятия, ни записи в журнале
	inc, err = svc.GetIncident(ctx, inc.ID)
	require.NoError(t, err)
	assert.True(t, inc.HasVehicle("RTW1"))
	assert.Equal(t, 0, countLog(inc, "RTW1", models.LogRemoved))
}

func TestRemoveVehicleFromIncident_NotAssigned(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	geoMock.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(0.0, 0.0, false).AnyTimes()
	inc, err := svc.CreateIncident(ctx, service.CreateIncidentParams{Keyword: "Test", Location: "Loc"})
	require.NoError(t, err)

	err = svc.RemoveVehicleFromIncident(ctx, inc.ID, "RTW1")
	assert.ErrorIs(t, err, service.ErrVehicleNotFound)
}

// Удаление машины не вычищает членство в инцидентах: текущее
// (некаскадное) поведение закреплено явно
func TestDeleteVehicle_DoesNotCascade(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	addVehicle(t, svc, "RTW1")
	geoMock.EXPECT().Geocode(gomock.Any(), "Loc").Return(0.0, 0.0, false).Times(1)

	inc, err := svc.CreateIncident(ctx, service.CreateIncidentParams{
		Keyword:  "Test",
		Location: "Loc",
		Vehicles: []string{"RTW1"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteVehicle(ctx, "RTW1"))

	inc, err = svc.GetIncident(ctx, inc.ID)
	require.NoError(t, err)
	assert.True(t, inc.HasVehicle("RTW1"))
}

// Удаление инцидента оставляет висячую привязку у машины: текущее
// (некаскадное) поведение закреплено явно
func TestDeleteIncident_DoesNotCascade(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	addVehicle(t, svc, "RTW1")
	geoMock.EXPECT().Geocode(gomock.Any(), "Loc").Return(0.0, 0.0, false).Times(1)

	inc, err := svc.CreateIncident(ctx, service.CreateIncidentParams{
		Keyword:  "Test",
		Location: "Loc",
		Vehicles: []string{"RTW1"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteIncident(ctx, inc.ID))

	_, err = svc.GetIncident(ctx, inc.ID)
	assert.ErrorIs(t, err, service.ErrIncidentNotFound)

	v, err := svc.GetVehicle(ctx, "RTW1")
	require.NoError(t, err)
	require.NotNil(t, v.IncidentID)
	assert.Equal(t, inc.ID, *v.IncidentID)
}

// Сбой записи снимка: операция возвращает типизированную ошибку, но
// состояние в памяти остается авторитетным
func TestPersistenceFailure_InMemoryStateKept(t *testing.T) {
	svc, _, persisterMock, notifierMock := newTestFleetService(t)
	ctx := context.Background()

	persisterMock.EXPECT().
		Persist(gomock.Any(), service.StoreVehicles, gomock.Any()).
		Return(errors.New("connection refused")).
		Times(1)
	notifierMock.EXPECT().Publish().Times(1)

	_, err := svc.AddVehicle(ctx, service.AddVehicleParams{Unit: "RTW1"})

	var persistence *service.PersistenceError
	require.ErrorAs(t, err, &persistence)
	assert.Equal(t, service.StoreVehicles, persistence.Store)

	v, err := svc.GetVehicle(ctx, "RTW1")
	require.NoError(t, err)
	assert.Equal(t, "RTW1", v.Unit)
}

func TestAddIncidentNote(t *testing.T) {
	svc, geoMock, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	geoMock.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(0.0, 0.0, false).AnyTimes()
	inc, err := svc.CreateIncident(ctx, service.CreateIncidentParams{Keyword: "Test", Location: "Loc"})
	require.NoError(t, err)

	require.NoError(t, svc.AddIncidentNote(ctx, inc.ID, "Lage unklar"))

	inc, err = svc.GetIncident(ctx, inc.ID)
	require.NoError(t, err)
	require.Len(t, inc.Notes, 1)
	assert.Equal(t, "Lage unklar", inc.Notes[0].Text)

	require.NoError(t, svc.EndIncident(ctx, inc.ID))
	err = svc.AddIncidentNote(ctx, inc.ID, "zu spät")
	assert.ErrorIs(t, err, service.ErrIncidentInactive)
}

func TestSetPriorities_Normalizes(t *testing.T) {
	svc, _, persisterMock, notifierMock := newTestFleetService(t)
	allowSideEffects(persisterMock, notifierMock)
	ctx := context.Background()

	cleaned, err := svc.SetPriorities(ctx, []string{" 1 ", "", "2", "1", "Sofort"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "Sofort"}, cleaned)
	assert.Equal(t, []string{"1", "2", "Sofort"}, svc.ListPriorities(ctx))
}
