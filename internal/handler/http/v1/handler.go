package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/alarmmonitor/fleet_coordination_system/internal/config"
	"github.com/alarmmonitor/fleet_coordination_system/internal/notifier"
	"github.com/alarmmonitor/fleet_coordination_system/internal/service"
)

type Handler struct {
	fleetService service.FleetService
	hub          *notifier.Hub
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

func NewHandler(fleetService service.FleetService, hub *notifier.Hub, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		fleetService: fleetService,
		hub:          hub,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

// respondServiceError переводит таксономию ошибок сервиса в HTTP-статусы
func respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	var blocked *service.BlockedUnitsError
	var persistence *service.PersistenceError

	switch {
	case errors.As(err, &blocked):
		log.WithField("blocked", blocked.Units).Warn("Operation partially blocked by status gate")
		c.JSON(http.StatusConflict, gin.H{"error": blocked.Error(), "blocked": blocked.Units})
	case errors.Is(err, service.ErrVehicleNotFound), errors.Is(err, service.ErrIncidentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrUnitRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrVehicleExists), errors.Is(err, service.ErrIncidentInactive):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &persistence):
		// Память уже изменена, запись снимка не прошла: вызывающий
		// должен повторить запись, а не считать состояние потерянным
		log.WithError(err).Error("Persistence failure after in-memory mutation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "persistence failure"})
	default:
		log.WithError(err).Error("Unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func incidentID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return 0, false
	}
	return id, true
}

// @Summary Add a new vehicle
// @Description Add a new fleet vehicle. New vehicles start free at base (status 2). Requires API key.
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param vehicle body AddVehicleRequest true "Vehicle creation request"
// @Success 201 {object} VehicleResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Vehicle already exists"
// @Router /vehicles [post]
func (h *Handler) addVehicle(c *gin.Context) {
	log := h.logger.WithField("method", "addVehicle")

	var input AddVehicleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.fleetService.AddVehicle(c.Request.Context(), service.AddVehicleParams{
		Unit:      input.Unit,
		Name:      input.Name,
		CallSign:  input.CallSign,
		Crew:      input.Crew,
		Base:      input.Base,
		Icon:      input.Icon,
		TTSPhrase: input.TTSPhrase,
	})
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToVehicleResponse(vehicle))
}

// @Summary List all vehicles
// @Description Get a snapshot of all fleet vehicles. Requires API key.
// @Tags Vehicles
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} VehicleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /vehicles [get]
func (h *Handler) listVehicles(c *gin.Context) {
	vehicles := h.fleetService.ListVehicles(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToVehicleResponses(vehicles))
}

// @Summary Get vehicle by unit
// @Description Get a single vehicle by its unit identifier. Requires API key.
// @Tags Vehicles
// @Produce json
// @Security ApiKeyAuth
// @Param unit path string true "Unit identifier"
// @Success 200 {object} VehicleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Router /vehicles/{unit} [get]
func (h *Handler) getVehicle(c *gin.Context) {
	log := h.logger.WithField("method", "getVehicle")

	vehicle, err := h.fleetService.GetVehicle(c.Request.Context(), c.Param("unit"))
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToVehicleResponse(vehicle))
}

// @Summary Update vehicle attributes
// @Description Update descriptive vehicle fields (name, call sign, crew, base, TTS phrase). Has no effect on the status state machine. Requires API key.
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param unit path string true "Unit identifier"
// @Param vehicle body UpdateVehicleRequest true "Vehicle attribute update request"
// @Success 200 {object} VehicleResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Router /vehicles/{unit} [patch]
func (h *Handler) updateVehicle(c *gin.Context) {
	log := h.logger.WithField("method", "updateVehicle")

	var input UpdateVehicleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	vehicle, err := h.fleetService.UpdateVehicleAttributes(c.Request.Context(), c.Param("unit"), service.VehicleAttributes{
		Name:      input.Name,
		CallSign:  input.CallSign,
		Crew:      input.Crew,
		Base:      input.Base,
		TTSPhrase: input.TTSPhrase,
	})
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToVehicleResponse(vehicle))
}

// @Summary Set vehicle icon
// @Description Set the icon reference of a vehicle. Requires API key.
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param unit path string true "Unit identifier"
// @Param icon body SetVehicleIconRequest true "Icon request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Router /vehicles/{unit}/icon [put]
func (h *Handler) setVehicleIcon(c *gin.Context) {
	log := h.logger.WithField("method", "setVehicleIcon")

	var input SetVehicleIconRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.fleetService.SetVehicleIcon(c.Request.Context(), c.Param("unit"), input.Icon); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Delete a vehicle
// @Description Delete a vehicle unconditionally. Incident membership is intentionally left untouched. Requires API key.
// @Tags Vehicles
// @Produce json
// @Security ApiKeyAuth
// @Param unit path string true "Unit identifier"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Router /vehicles/{unit} [delete]
func (h *Handler) deleteVehicle(c *gin.Context) {
	log := h.logger.WithField("method", "deleteVehicle")

	if err := h.fleetService.DeleteVehicle(c.Request.Context(), c.Param("unit")); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Dispatch a vehicle status change
// @Description Change the status of a vehicle (FMS codes 0-9). Switching a bound vehicle to status 1 or 2 implicitly returns it to service and removes it from its incident. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param dispatch body DispatchRequest true "Dispatch request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or status code"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Router /dispatch [post]
func (h *Handler) dispatch(c *gin.Context) {
	log := h.logger.WithField("method", "dispatch")

	var input DispatchRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.fleetService.Dispatch(c.Request.Context(), input.Unit, input.Status, service.DispatchOptions{
		Note:     input.Note,
		Location: input.Location,
		Lat:      input.Lat,
		Lon:      input.Lon,
	})
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Create a new incident
// @Description Create a new incident. Initially assigned vehicles immediately receive the incident-derived fields. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	log := h.logger.WithField("method", "createIncident")

	var input CreateIncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.fleetService.CreateIncident(c.Request.Context(), DTOToCreateIncidentParams(input))
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary List all incidents
// @Description Get a snapshot of all incidents in creation order. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	incidents := h.fleetService.ListIncidents(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	log := h.logger.WithField("method", "getIncident")

	id, ok := incidentID(c)
	if !ok {
		return
	}
	incident, err := h.fleetService.GetIncident(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update an existing incident
// @Description Partially update an incident. Vehicle removals gated by status keep the unit assigned and are reported as blocked while the rest of the update commits. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Incident update request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]interface{} "Units blocked from removal"
// @Router /incidents/{id} [patch]
func (h *Handler) updateIncident(c *gin.Context) {
	log := h.logger.WithField("method", "updateIncident")

	id, ok := incidentID(c)
	if !ok {
		return
	}

	var input UpdateIncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	incident, err := h.fleetService.UpdateIncident(c.Request.Context(), id, DTOToUpdateIncidentParams(input))
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Alert units for an incident
// @Description Page units for an already-open incident. Units bound to another active incident are skipped; re-alerting is idempotent. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Param alert body AlertRequest true "Alert request"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident is not active"
// @Router /incidents/{id}/alert [post]
func (h *Handler) alertIncident(c *gin.Context) {
	log := h.logger.WithField("method", "alertIncident")

	id, ok := incidentID(c)
	if !ok {
		return
	}

	var input AlertRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.fleetService.Alert(c.Request.Context(), id, input.Units)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ResultToAlertResponse(result))
}

// @Summary End an active incident
// @Description End an active incident. Bound vehicles without another active incident are returned to service (status 1). Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found or already ended"
// @Router /incidents/{id}/end [post]
func (h *Handler) endIncident(c *gin.Context) {
	log := h.logger.WithField("method", "endIncident")

	id, ok := incidentID(c)
	if !ok {
		return
	}
	if err := h.fleetService.EndIncident(c.Request.Context(), id); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Add a note to an incident
// @Description Append a note to an active incident. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Param note body NoteRequest true "Note request"
// @Success 201 "Created"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident is not active"
// @Router /incidents/{id}/notes [post]
func (h *Handler) addIncidentNote(c *gin.Context) {
	log := h.logger.WithField("method", "addIncidentNote")

	id, ok := incidentID(c)
	if !ok {
		return
	}

	var input NoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.fleetService.AddIncidentNote(c.Request.Context(), id, input.Text); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary Remove a vehicle from an incident
// @Description Remove a single vehicle from an incident. Removal from an active incident is blocked unless the vehicle is in an available status (1 or 2). Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Param unit path string true "Unit identifier"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident or assignment not found"
// @Failure 409 {object} map[string]interface{} "Removal blocked by status gate"
// @Router /incidents/{id}/vehicles/{unit} [delete]
func (h *Handler) removeIncidentVehicle(c *gin.Context) {
	log := h.logger.WithField("method", "removeIncidentVehicle")

	id, ok := incidentID(c)
	if !ok {
		return
	}
	if err := h.fleetService.RemoveVehicleFromIncident(c.Request.Context(), id, c.Param("unit")); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Delete an incident
// @Description Delete an incident unconditionally, regardless of its active state. Vehicle back-references are intentionally left untouched. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	log := h.logger.WithField("method", "deleteIncident")

	id, ok := incidentID(c)
	if !ok {
		return
	}
	if err := h.fleetService.DeleteIncident(c.Request.Context(), id); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get full state snapshot
// @Description Get a consistent snapshot of all vehicles and incidents for monitor displays. Requires API key.
// @Tags State
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /state [get]
func (h *Handler) getState(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, StateResponse{
		Vehicles:  ModelsToVehicleResponses(h.fleetService.ListVehicles(ctx)),
		Incidents: ModelsToIncidentResponses(h.fleetService.ListIncidents(ctx)),
	})
}

// @Summary List priority labels
// @Description Get the list of dispatcher priority labels. Requires API key.
// @Tags Priorities
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} string
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /priorities [get]
func (h *Handler) listPriorities(c *gin.Context) {
	c.JSON(http.StatusOK, h.fleetService.ListPriorities(c.Request.Context()))
}

// @Summary Replace priority labels
// @Description Replace the list of dispatcher priority labels. Labels are trimmed, deduplicated and empties are dropped. Requires API key.
// @Tags Priorities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param priorities body PrioritiesRequest true "Priorities request"
// @Success 200 {object} PrioritiesResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /priorities [post]
func (h *Handler) setPriorities(c *gin.Context) {
	log := h.logger.WithField("method", "setPriorities")

	var input PrioritiesRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cleaned, err := h.fleetService.SetPriorities(c.Request.Context(), input.Priorities)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, PrioritiesResponse{Priorities: cleaned})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
