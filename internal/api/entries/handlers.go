package entries

import (
	"errors"
	"strconv"

	keycloakauth "github.com/JorgeSaicoski/keycloak-auth"
	"github.com/JorgeSaicoski/microservice-commons/responses"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zolten95/project-man/internal/services/entries"
)

type TimeEntryHandler struct {
	entryService *entries.TimeEntryService
}

func NewTimeEntryHandler(entryService *entries.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{
		entryService: entryService,
	}
}

func (h *TimeEntryHandler) CreateTimeEntry(c *gin.Context) {
	var req CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	entry, err := h.entryService.Create(req.ToInput(), userID)
	if err != nil {
		if errors.Is(err, entries.ErrInvalidMinutes) {
			responses.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, err.Error())
			return
		}
		responses.InternalError(c, err.Error())
		return
	}

	responses.Created(c, "Time entry created successfully", TimeEntryToResponse(entry))
}

func (h *TimeEntryHandler) ListTimeEntries(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	entryList, err := h.entryService.List(userID, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	entryResponses := TimeEntriesToResponse(entryList)
	responses.Success(c, "Time entries retrieved successfully", gin.H{
		"entries": entryResponses,
		"total":   len(entryResponses),
	})
}

func (h *TimeEntryHandler) DeleteTimeEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid time entry ID")
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.entryService.Delete(uint(id), userID); err != nil {
		if errors.Is(err, entries.ErrAccessDenied) {
			responses.Forbidden(c, err.Error())
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, err.Error())
			return
		}
		responses.InternalError(c, err.Error())
		return
	}

	responses.Success(c, "Time entry deleted successfully", nil)
}
