package timesheet

import (
	"errors"
	"strconv"
	"time"

	keycloakauth "github.com/JorgeSaicoski/keycloak-auth"
	"github.com/JorgeSaicoski/microservice-commons/responses"
	"github.com/gin-gonic/gin"

	"github.com/zolten95/project-man/internal/services/timesheet"
	"github.com/zolten95/project-man/internal/timeutil"
)

type TimesheetHandler struct {
	timesheetService *timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService *timesheet.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{
		timesheetService: timesheetService,
	}
}

// GetReport builds the per-task, per-day grid for the requested range.
// Without query parameters it reports on the current week.
func (h *TimesheetHandler) GetReport(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" && endDate == "" {
		startDate, endDate = timeutil.WeekRange(time.Now())
	}

	report, err := h.timesheetService.LoadReport(userID, startDate, endDate)
	if err != nil {
		if errors.Is(err, timesheet.ErrInvalidDate) {
			responses.BadRequest(c, "Invalid date range. Use YYYY-MM-DD")
			return
		}
		responses.InternalError(c, err.Error())
		return
	}

	responses.Success(c, "Timesheet report generated successfully", ReportToResponse(report))
}

// SetCell reconciles one (task, day) cell against an edited duration and
// returns the re-aggregated report for the cell's week.
func (h *TimesheetHandler) SetCell(c *gin.Context) {
	var req SetCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	targetMinutes, err := timeutil.ParseClock(req.Duration)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	if err := h.timesheetService.SetCell(userID, req.TaskID, req.Date, targetMinutes); err != nil {
		if errors.Is(err, timesheet.ErrInvalidDate) || errors.Is(err, timesheet.ErrNegativeDuration) {
			responses.BadRequest(c, err.Error())
			return
		}
		// A partially applied edit stays visible: the next report load
		// aggregates whatever state was actually reached.
		responses.InternalError(c, err.Error())
		return
	}

	report, err := h.reloadWeek(userID, req.Date)
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	responses.Success(c, "Timesheet cell updated successfully", report)
}

// DeleteDay clears every entry for one (task, day) cell.
func (h *TimesheetHandler) DeleteDay(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	taskID, err := strconv.ParseUint(c.Query("taskId"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid task ID")
		return
	}
	date := c.Query("date")

	if err := h.timesheetService.DeleteDay(userID, uint(taskID), date); err != nil {
		if errors.Is(err, timesheet.ErrInvalidDate) {
			responses.BadRequest(c, err.Error())
			return
		}
		responses.InternalError(c, err.Error())
		return
	}

	report, err := h.reloadWeek(userID, date)
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	responses.Success(c, "Time for day deleted successfully", report)
}

func (h *TimesheetHandler) reloadWeek(userID, date string) (*ReportResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		day = time.Now()
	}
	start, end := timeutil.WeekRange(day)

	report, err := h.timesheetService.LoadReport(userID, start, end)
	if err != nil {
		return nil, err
	}
	response := ReportToResponse(report)
	return &response, nil
}
