package routes

import (
	"Bolita/controllers"
	"Bolita/services/rooms"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, roomService *rooms.Service) {
	roomController := &controllers.RoomController{Rooms: roomService}

	// Liveness/status probe
	router.GET("/status", roomController.GetStatus)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes group
	api := router.Group("/api/v1")
	{
		roomsGroup := api.Group("/rooms")
		{
			roomsGroup.GET("/:code", roomController.GetRoomInfo)
			roomsGroup.POST("/suggest", roomController.SuggestRoomCode)
		}
	}
}
