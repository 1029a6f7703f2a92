package handlers

import (
	"log"

	"Bolita/models"
	"Bolita/services/rooms"
	socketio_types "Bolita/services/socket_io/types"
	socketio_utils "Bolita/services/socket_io/utils"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleJoinRoom joins the client to a room, creating it lazily on first join.
// The joiner gets its host status and the room configuration as unicasts, the
// whole room (joiner included) gets the updated participant list and a join
// notification.
func HandleJoinRoom(rs *rooms.Service, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p socketio_utils.JoinRoomPayload
		if !socketio_utils.DecodeArgs(client, args, &p) {
			return
		}

		connID := string(client.Id())
		log.Printf("[JOIN] Socket %s joining room %s as %q", connID, p.RoomName, p.UserName)

		res, err := rs.Join(p.RoomName, connID, p.UserName, models.RoomType(p.RoomType))
		if err != nil {
			socketio_utils.EmitActionError(client, "JOIN", err)
			return
		}

		// One room per connection: joining elsewhere already ran the leave
		// cascade on the old room, so announce it and detach the channel.
		if res.Left != nil {
			announceDeparture(sio, res.Left, "left")
			client.Leave(socket.Room(res.Left.RoomName))
		}

		client.Join(socket.Room(p.RoomName))

		client.Emit("host_status", gin.H{
			"is_host": res.IsHost,
			"host_id": res.HostID,
		})
		roomInfo := gin.H{
			"room_name": p.RoomName,
			"game_mode": res.GameMode,
			"room_type": res.RoomType,
			"status":    res.Status,
		}
		if res.Betting != nil {
			roomInfo["betting_state"] = res.Betting
		}
		client.Emit("room_info", roomInfo)

		sio.Sio_server.To(socket.Room(p.RoomName)).Emit("participant_list", gin.H{
			"participants": res.Participants,
		})
		sio.Sio_server.To(socket.Room(p.RoomName)).Emit("user_joined", gin.H{
			"participant": res.Joined,
		})
		log.Printf("[JOIN-SUCCESS] Socket %s joined room %s (host=%v)", connID, p.RoomName, res.IsHost)
	}
}

// HandleKickUser removes a participant on the host's request. The target gets
// a kicked unicast and is detached from the socket.io room; everyone else sees
// the shrunken participant list.
func HandleKickUser(rs *rooms.Service, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p socketio_utils.KickUserPayload
		if !socketio_utils.DecodeArgs(client, args, &p) {
			return
		}

		res, err := rs.Kick(p.RoomName, string(client.Id()), p.UserID)
		if err != nil {
			socketio_utils.EmitActionError(client, "KICK", err)
			return
		}

		if target, exists := sio.GetConnection(p.UserID); exists {
			target.Emit("kicked", gin.H{"room_name": p.RoomName})
			target.Leave(socket.Room(p.RoomName))
		}

		sio.Sio_server.To(socket.Room(p.RoomName)).Emit("participant_list", gin.H{
			"participants": res.Participants,
		})
		sio.Sio_server.To(socket.Room(p.RoomName)).Emit("user_left", gin.H{
			"user_id":   res.Removed.ID,
			"user_name": res.Removed.Name,
			"reason":    "kicked",
		})
	}
}

// HandleDestroyRoom tears the room down on the host's request. Every member
// (host included) gets exactly one room_destroyed before the channel is
// emptied.
func HandleDestroyRoom(rs *rooms.Service, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p socketio_utils.RoomPayload
		if !socketio_utils.DecodeArgs(client, args, &p) {
			return
		}

		if err := rs.Destroy(p.RoomName, string(client.Id())); err != nil {
			socketio_utils.EmitActionError(client, "DESTROY", err)
			return
		}

		sio.Sio_server.To(socket.Room(p.RoomName)).Emit("room_destroyed", gin.H{
			"room_name": p.RoomName,
		})
		sio.Sio_server.In(socket.Room(p.RoomName)).SocketsLeave(socket.Room(p.RoomName))
		log.Printf("[DESTROY] Room %s destroyed by host %s", p.RoomName, client.Id())
	}
}
