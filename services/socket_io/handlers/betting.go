package handlers

import (
	"Bolita/services/rooms"
	socketio_types "Bolita/services/socket_io/types"
	socketio_utils "Bolita/services/socket_io/utils"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// Betting handlers. All of these are rejected on roulette rooms; the admin
// ones are additionally host-only.

func HandleSetBettingTitle(rs *rooms.Service, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p socketio_utils.BettingTitlePayload
		if !socketio_utils.DecodeArgs(client, args, &p) {
			return
		}

		if err := rs.SetBettingTitle(p.RoomName, string(client.Id()), p.Title); err != nil {
			socketio_utils.EmitActionError(client, "BET-TITLE", err)
			return
		}

		sio.Sio_server.To(socket.Room(p.RoomName)).Emit("betting_title", gin.H{
			"title": p.Title,
		})
	}
}

// HandlePlaceBet records the sender's pick while betting is open. Placing a
// second bet replaces the first.
func HandlePlaceBet(rs *rooms.Service, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p socketio_utils.BetPayload
		if !socketio_utils.DecodeArgs(client, args, &p) {
			return
		}

		bets, err := rs.PlaceBet(p.RoomName, string(client.Id()), p.RuleID)
		if err != nil {
			socketio_utils.EmitActionError(client, "BET", err)
			return
		}

		sio.Sio_server.To(socket.Room(p.RoomName)).Emit("bet_list", gin.H{
			"bets": bets,
		})
	}
}

func HandleCloseBetting(rs *rooms.Service, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p socketio_utils.RoomPayload
		if !socketio_utils.DecodeArgs(client, args, &p) {
			return
		}

		if err := rs.CloseBetting(p.RoomName, string(client.Id())); err != nil {
			socketio_utils.EmitActionError(client, "BET-CLOSE", err)
			return
		}

		sio.Sio_server.To(socket.Room(p.RoomName)).Emit("betting_closed", gin.H{
			"room_name": p.RoomName,
		})
	}
}

// HandleSelectWinner settles the round once betting is closed and announces
// who called it right.
func HandleSelectWinner(rs *rooms.Service, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p socketio_utils.BetPayload
		if !socketio_utils.DecodeArgs(client, args, &p) {
			return
		}

		settlement, err := rs.SelectWinner(p.RoomName, string(client.Id()), p.RuleID)
		if err != nil {
			socketio_utils.EmitActionError(client, "BET-WINNER", err)
			return
		}

		sio.Sio_server.To(socket.Room(p.RoomName)).Emit("winner_selected", gin.H{
			"winning_rule_id": settlement.WinningRuleID,
			"winners":         settlement.Winners,
			"losers":          settlement.Losers,
		})
	}
}

func HandleResetBetting(rs *rooms.Service, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p socketio_utils.RoomPayload
		if !socketio_utils.DecodeArgs(client, args, &p) {
			return
		}

		state, err := rs.ResetBetting(p.RoomName, string(client.Id()))
		if err != nil {
			socketio_utils.EmitActionError(client, "BET-RESET", err)
			return
		}

		sio.Sio_server.To(socket.Room(p.RoomName)).Emit("betting_reset", gin.H{
			"betting_state": state,
		})
	}
}
