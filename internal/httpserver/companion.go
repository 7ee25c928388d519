package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dollshop-backend/internal/domain"
	"dollshop-backend/internal/service/companion"
)

func registerDeviceHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in companion.DeviceInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		d, err := svc.RegisterDevice(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, d)
	}
}

func listDevicesHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		devices, err := svc.ListDevices(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, devices)
	}
}

func listMyDevicesHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		devices, err := svc.ListUserDevices(c.Request.Context(), currentUser(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, devices)
	}
}

func getDeviceHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		d, err := svc.GetDevice(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

func syncDeviceHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			MACAddress string `json:"macAddress" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		d, err := svc.SyncDevice(c.Request.Context(), currentUser(c), in.MACAddress)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

func unsyncDeviceHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		if err := svc.UnsyncDevice(c.Request.Context(), currentUser(c), id); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func updateDeviceHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var in companion.DeviceInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		d, err := svc.UpdateDevice(c.Request.Context(), id, in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

func deleteDeviceHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		if err := svc.DeleteDevice(c.Request.Context(), id); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func createAlarmHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in companion.AlarmInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		a, err := svc.CreateAlarm(c.Request.Context(), currentUser(c), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, a)
	}
}

func deviceByMACHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := svc.GetDeviceByMAC(c.Request.Context(), c.Param("mac"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

func getAlarmHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		a, err := svc.GetAlarm(c.Request.Context(), id, currentUser(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

func listAlarmsHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		alarms, err := svc.ListAlarms(c.Request.Context(), currentUser(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, alarms)
	}
}

func updateAlarmHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var in companion.AlarmInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		a, err := svc.UpdateAlarm(c.Request.Context(), id, currentUser(c), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

func deleteAlarmHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		if err := svc.DeleteAlarm(c.Request.Context(), id, currentUser(c)); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func createMusicHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in companion.MusicInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		m, err := svc.CreateMusic(c.Request.Context(), currentUser(c), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, m)
	}
}

func getMusicHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		m, err := svc.GetMusic(c.Request.Context(), id, currentUser(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

func listMusicHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tracks, err := svc.ListMusic(c.Request.Context(), currentUser(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, tracks)
	}
}

func updateMusicHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var in companion.MusicInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		m, err := svc.UpdateMusic(c.Request.Context(), id, currentUser(c), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

func deleteMusicHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		if err := svc.DeleteMusic(c.Request.Context(), id, currentUser(c)); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func createEventHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in companion.EventInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		ev, err := svc.CreateEvent(c.Request.Context(), currentUser(c), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, ev)
	}
}

func getEventHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		ev, err := svc.GetEvent(c.Request.Context(), id, currentUser(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, ev)
	}
}

func listEventsHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := svc.ListEvents(c.Request.Context(), currentUser(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

// searchEventsHandler expects RFC 3339 "from" and "to" query parameters.
func searchEventsHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, err := time.Parse(time.RFC3339, c.Query("from"))
		if err != nil {
			badRequest(c, domain.Invalid("invalid from"))
			return
		}
		to, err := time.Parse(time.RFC3339, c.Query("to"))
		if err != nil {
			badRequest(c, domain.Invalid("invalid to"))
			return
		}
		events, err := svc.SearchEvents(c.Request.Context(), currentUser(c), from, to)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func updateEventHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var in companion.EventInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		ev, err := svc.UpdateEvent(c.Request.Context(), id, currentUser(c), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, ev)
	}
}

func deleteEventHandler(svc *companion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		if err := svc.DeleteEvent(c.Request.Context(), id, currentUser(c)); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
