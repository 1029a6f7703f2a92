package controllers

import (
	"net/http"
	"strings"
	"time"

	"Bolita/services/rooms"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomController struct {
	Rooms *rooms.Service
}

// GetStatus is the liveness probe.
// @Summary Liveness probe
// @Description Reports server health and the number of live rooms
// @Tags status
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /status [get]
func (rc *RoomController) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"room_count": rc.Rooms.Count(),
		"timestamp":  time.Now().UnixMilli(),
	})
}

// GetRoomInfo lets a client peek at a room before joining it.
// @Summary Get room info
// @Description Basic information about a room with the provided code
// @Tags rooms
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} rooms.RoomInfo
// @Failure 404 {object} map[string]string
// @Router /api/v1/rooms/{code} [get]
func (rc *RoomController) GetRoomInfo(c *gin.Context) {
	code := c.Param("code")

	info, err := rc.Rooms.Info(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	c.JSON(http.StatusOK, info)
}

// SuggestRoomCode hands out a short shareable code. Room creation itself stays
// lazy (first join creates); the store never generates names.
// @Summary Suggest a room code
// @Description Returns a fresh short code a client can use as a room name
// @Tags rooms
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/rooms/suggest [post]
func (rc *RoomController) SuggestRoomCode(c *gin.Context) {
	code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	c.JSON(http.StatusOK, gin.H{"room_name": code})
}
