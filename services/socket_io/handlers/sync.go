package handlers

import (
	"log"

	"Bolita/services/rooms"
	socketio_utils "Bolita/services/socket_io/utils"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleRequestRoomSync serves the full-state snapshot a late or reconnecting
// client rebuilds from. Read-only, safe to call redundantly; the snapshot is
// one atomic read so no partial update is ever visible.
func HandleRequestRoomSync(rs *rooms.Service, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p socketio_utils.RoomPayload
		if !socketio_utils.DecodeArgs(client, args, &p) {
			return
		}

		snap, err := rs.Snapshot(p.RoomName)
		if err != nil {
			socketio_utils.EmitActionError(client, "SYNC", err)
			return
		}

		payload := gin.H{
			"room_name":    snap.Name,
			"participants": snap.Participants,
			"rules":        snap.Rules,
			"drawings":     snap.Drawings,
			"game_mode":    snap.GameMode,
			"status":       snap.Status,
			"host_id":      snap.HostID,
			"game_results": snap.GameResults,
			"room_type":    snap.RoomType,
		}
		if snap.Betting != nil {
			payload["betting_state"] = snap.Betting
		}
		client.Emit("room_sync", payload)
		log.Printf("[SYNC] Snapshot of room %s sent to socket %s", p.RoomName, client.Id())
	}
}

// HandleRequestHostStatus re-answers "am I the host" from current state. The
// join-time host_status unicast can race the client's listener setup, so this
// stays callable any number of times.
func HandleRequestHostStatus(rs *rooms.Service, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p socketio_utils.RoomPayload
		if !socketio_utils.DecodeArgs(client, args, &p) {
			return
		}

		isHost, hostID, err := rs.HostStatus(p.RoomName, string(client.Id()))
		if err != nil {
			socketio_utils.EmitActionError(client, "HOST-STATUS", err)
			return
		}

		client.Emit("host_status", gin.H{
			"is_host": isHost,
			"host_id": hostID,
		})
	}
}
