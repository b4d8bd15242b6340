package timer

import (
	"errors"

	keycloakauth "github.com/JorgeSaicoski/keycloak-auth"
	"github.com/JorgeSaicoski/microservice-commons/responses"
	"github.com/gin-gonic/gin"

	"github.com/zolten95/project-man/internal/services/timer"
)

type TimerHandler struct {
	timerService *timer.TimerService
}

func NewTimerHandler(timerService *timer.TimerService) *TimerHandler {
	return &TimerHandler{
		timerService: timerService,
	}
}

func (h *TimerHandler) StartTimer(c *gin.Context) {
	var req StartTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	started, err := h.timerService.Start(c.Request.Context(), userID, req.TaskID)
	if err != nil {
		if errors.Is(err, timer.ErrTimerRunning) {
			responses.Conflict(c, err.Error())
			return
		}
		responses.InternalError(c, err.Error())
		return
	}

	response := ActiveTimerToResponse(started)
	responses.Created(c, "Timer started successfully", response)
}

func (h *TimerHandler) StopTimer(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	entry, err := h.timerService.Stop(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, timer.ErrNoTimer) {
			responses.BadRequest(c, err.Error())
			return
		}
		responses.InternalError(c, err.Error())
		return
	}

	responses.Success(c, "Timer stopped successfully", StoppedTimerToResponse(entry))
}

func (h *TimerHandler) GetActiveTimer(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	active, err := h.timerService.Active(c.Request.Context(), userID)
	if err != nil {
		responses.InternalError(c, "failed to get active timer")
		return
	}

	if active == nil {
		responses.Success(c, "ok", ActiveTimerEnvelope{
			Running: false,
			Timer:   nil,
		})
		return
	}

	resp := ActiveTimerToResponse(active)
	responses.Success(c, "ok", ActiveTimerEnvelope{
		Running: true,
		Timer:   &resp,
	})
}
