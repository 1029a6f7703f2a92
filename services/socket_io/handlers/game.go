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

// HandleSetGameMode stores the host's chosen result-interpretation mode and
// announces it to the room.
func HandleSetGameMode(rs *rooms.Service, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p socketio_utils.SetGameModePayload
		if !socketio_utils.DecodeArgs(client, args, &p) {
			return
		}

		if err := rs.SetGameMode(p.RoomName, string(client.Id()), models.GameMode(p.GameMode)); err != nil {
			socketio_utils.EmitActionError(client, "GAME-MODE", err)
			return
		}

		sio.Sio_server.To(socket.Room(p.RoomName)).Emit("game_mode_changed", gin.H{
			"game_mode": p.GameMode,
		})
	}
}

// HandleCreateRule appends an outcome bucket and rebroadcasts the whole rule
// list so every client renders the same slots in the same order.
func HandleCreateRule(rs *rooms.Service, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p socketio_utils.CreateRulePayload
		if !socketio_utils.DecodeArgs(client, args, &p) {
			return
		}

		rules, err := rs.CreateRule(p.RoomName, string(client.Id()), models.Rule{
			ID:     p.Rule.ID,
			Label:  p.Rule.Label,
			Weight: p.Rule.Weight,
		})
		if err != nil {
			socketio_utils.EmitActionError(client, "RULE", err)
			return
		}

		sio.Sio_server.To(socket.Room(p.RoomName)).Emit("rule_list", gin.H{
			"rules": rules,
		})
	}
}

// HandleStartGame kicks off the round. The broadcast seed is the sole
// synchronization primitive: every client feeds it into its own simulation
// and gets the identical outcome ordering.
func HandleStartGame(rs *rooms.Service, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p socketio_utils.RoomPayload
		if !socketio_utils.DecodeArgs(client, args, &p) {
			return
		}

		seed, err := rs.StartGame(p.RoomName, string(client.Id()))
		if err != nil {
			socketio_utils.EmitActionError(client, "START", err)
			return
		}

		sio.Sio_server.To(socket.Room(p.RoomName)).Emit("game_started", gin.H{
			"seed": seed,
		})
	}
}

// HandleReportResult records a client-detected outcome. No broadcast: each
// client runs the same simulation, so results only travel via later syncs.
func HandleReportResult(rs *rooms.Service, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p socketio_utils.ReportResultPayload
		if !socketio_utils.DecodeArgs(client, args, &p) {
			return
		}

		err := rs.ReportResult(p.RoomName, string(client.Id()), models.GameResult{
			ParticipantID:   p.Result.ParticipantID,
			ParticipantName: p.Result.ParticipantName,
			RuleID:          p.Result.RuleID,
			RuleLabel:       p.Result.RuleLabel,
			Order:           p.Result.Order,
			Timestamp:       p.Result.Timestamp,
		})
		if err != nil {
			socketio_utils.EmitActionError(client, "RESULT", err)
			return
		}
		log.Printf("[RESULT] Room %s: result recorded for %s", p.RoomName, p.Result.ParticipantID)
	}
}

// HandleClearResults resets the round for a replay and tells every client to
// drop its local derived state.
func HandleClearResults(rs *rooms.Service, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p socketio_utils.RoomPayload
		if !socketio_utils.DecodeArgs(client, args, &p) {
			return
		}

		if err := rs.ClearResults(p.RoomName, string(client.Id())); err != nil {
			socketio_utils.EmitActionError(client, "RESET", err)
			return
		}

		sio.Sio_server.To(socket.Room(p.RoomName)).Emit("game_reset", gin.H{
			"room_name": p.RoomName,
		})
	}
}

// HandleGameFinished closes the round without clearing results.
func HandleGameFinished(rs *rooms.Service, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p socketio_utils.RoomPayload
		if !socketio_utils.DecodeArgs(client, args, &p) {
			return
		}

		if err := rs.FinishGame(p.RoomName, string(client.Id())); err != nil {
			socketio_utils.EmitActionError(client, "FINISH", err)
			return
		}

		sio.Sio_server.To(socket.Room(p.RoomName)).Emit("game_finished", gin.H{
			"room_name": p.RoomName,
		})
	}
}
