package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1. Health-check
// остается открытым, остальные маршруты закрыты API-ключом.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", auth)

	// Маршруты для управления транспортом
	vehicles := protected.Group("/vehicles")
	{
		vehicles.POST("", h.addVehicle)
		vehicles.GET("", h.listVehicles)
		vehicles.GET("/:unit", h.getVehicle)
		vehicles.PATCH("/:unit", h.updateVehicle)
		vehicles.PUT("/:unit/icon", h.setVehicleIcon)
		vehicles.DELETE("/:unit", h.deleteVehicle)
	}

	// Маршрут диспетчеризации статусов
	protected.POST("/dispatch", h.dispatch)

	// Маршруты для управления инцидентами
	incidents := protected.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id", h.updateIncident)
		incidents.DELETE("/:id", h.deleteIncident)
		incidents.POST("/:id/alert", h.alertIncident)
		incidents.POST("/:id/end", h.endIncident)
		incidents.POST("/:id/notes", h.addIncidentNote)
		incidents.DELETE("/:id/vehicles/:unit", h.removeIncidentVehicle)
	}

	// Снимок состояния для мониторов
	protected.GET("/state", h.getState)

	// Маршруты приоритетов
	protected.GET("/priorities", h.listPriorities)
	protected.POST("/priorities", h.setPriorities)

	// WebSocket-поток уведомлений об изменениях
	protected.GET("/ws/monitor", h.monitorWS)
}
