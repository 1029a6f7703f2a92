package handlers

import (
	"Bolita/services/rooms"
	socketio_utils "Bolita/services/socket_io/utils"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleAddDrawing appends an opaque drawing annotation and relays it to the
// rest of the room. The sender already rendered its own stroke locally, so the
// rebroadcast skips it.
func HandleAddDrawing(rs *rooms.Service, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p socketio_utils.DrawingPayload
		if !socketio_utils.DecodeArgs(client, args, &p) {
			return
		}

		if err := rs.AddDrawing(p.RoomName, string(client.Id()), p.Drawing); err != nil {
			socketio_utils.EmitActionError(client, "DRAWING", err)
			return
		}

		client.To(socket.Room(p.RoomName)).Emit("drawing_added", gin.H{
			"drawing": p.Drawing,
		})
	}
}
