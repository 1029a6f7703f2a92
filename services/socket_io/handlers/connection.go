package handlers

import (
	"log"

	"Bolita/services/rooms"
	socketio_types "Bolita/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// announceDeparture broadcasts the effects of one connection leaving a room:
// either the whole room is gone, or the survivors get the shrunken participant
// list and a leave notification.
func announceDeparture(sio *socketio_types.SocketServer, dep *rooms.Departure, reason string) {
	if dep.RoomDestroyed {
		sio.Sio_server.To(socket.Room(dep.RoomName)).Emit("room_destroyed", gin.H{
			"room_name": dep.RoomName,
		})
		sio.Sio_server.In(socket.Room(dep.RoomName)).SocketsLeave(socket.Room(dep.RoomName))
		return
	}

	sio.Sio_server.To(socket.Room(dep.RoomName)).Emit("participant_list", gin.H{
		"participants": dep.Participants,
	})
	sio.Sio_server.To(socket.Room(dep.RoomName)).Emit("user_left", gin.H{
		"user_id":   dep.Removed.ID,
		"user_name": dep.Removed.Name,
		"reason":    reason,
	})
}

// HandleDisconnecting cleans up after a dropped connection. A host disconnect
// destroys the room for everyone immediately; host authority never transfers.
// A non-host leave shrinks the participant list, deleting the room if it went
// empty.
func HandleDisconnecting(rs *rooms.Service, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		connID := string(client.Id())
		log.Printf("[DISCONNECT] Socket %s disconnecting", connID)

		dep, err := rs.Disconnect(connID)
		if err != nil {
			// Never joined a room; just drop the connection.
			sio.RemoveConnection(connID)
			return
		}

		announceDeparture(sio, dep, "disconnected")
		sio.RemoveConnection(connID)
		log.Printf("[DISCONNECT-DONE] Socket %s cleaned up (room=%s, destroyed=%v)",
			connID, dep.RoomName, dep.RoomDestroyed)
	}
}
