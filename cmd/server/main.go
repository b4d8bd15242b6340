package main

import (
	"github.com/JorgeSaicoski/microservice-commons/config"
	"github.com/JorgeSaicoski/microservice-commons/database"
	"github.com/JorgeSaicoski/microservice-commons/server"
	"github.com/JorgeSaicoski/microservice-commons/utils"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	commentsAPI "github.com/zolten95/project-man/internal/api/comments"
	entriesAPI "github.com/zolten95/project-man/internal/api/entries"
	tasksAPI "github.com/zolten95/project-man/internal/api/tasks"
	teamAPI "github.com/zolten95/project-man/internal/api/team"
	timerAPI "github.com/zolten95/project-man/internal/api/timer"
	timesheetAPI "github.com/zolten95/project-man/internal/api/timesheet"
	"github.com/zolten95/project-man/internal/db"
	commentsService "github.com/zolten95/project-man/internal/services/comments"
	entriesService "github.com/zolten95/project-man/internal/services/entries"
	tasksService "github.com/zolten95/project-man/internal/services/tasks"
	teamService "github.com/zolten95/project-man/internal/services/team"
	timerService "github.com/zolten95/project-man/internal/services/timer"
	timesheetService "github.com/zolten95/project-man/internal/services/timesheet"
)

func main() {
	server := server.NewServer(server.ServerOptions{
		ServiceName:    "project-man",
		ServiceVersion: "1.0.0",
		SetupRoutes:    setupRoutes,
	})
	server.Start()
}

func setupRoutes(router *gin.Engine, cfg *config.Config) {
	// Connect to database using microservice-commons
	dbConnection, err := database.ConnectWithConfig(cfg.DatabaseConfig)
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}

	// Auto-migrate models
	if err := database.QuickMigrate(dbConnection,
		&db.Task{},
		&db.TimeEntry{},
		&db.Comment{},
		&db.TeamMember{},
	); err != nil {
		panic("Failed to migrate database: " + err.Error())
	}

	// Timer state lives in redis so a running timer survives reloads
	// and service restarts.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     utils.GetEnv("REDIS_ADDR", "localhost:6379"),
		Password: utils.GetEnv("REDIS_PASSWORD", ""),
	})
	timerStore := timerService.NewRedisTimerStore(redisClient)

	// Initialize services
	taskSvc := tasksService.NewTaskService(dbConnection)
	entrySvc := entriesService.NewTimeEntryService(dbConnection)
	timesheetSvc := timesheetService.NewTimesheetService(dbConnection)
	timerSvc := timerService.NewTimerService(dbConnection, timerStore)
	commentSvc := commentsService.NewCommentService(dbConnection)
	teamSvc := teamService.NewTeamService(dbConnection)

	// Setup routes
	api := router.Group("/api")
	tasksAPI.RegisterRoutes(api, taskSvc)
	entriesAPI.RegisterRoutes(api, entrySvc)
	timesheetAPI.RegisterRoutes(api, timesheetSvc)
	timerAPI.RegisterRoutes(api, timerSvc)
	commentsAPI.RegisterRoutes(api, commentSvc)
	teamAPI.RegisterRoutes(api, teamSvc)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "project-man",
			"version": "1.0.0",
		})
	})
}
