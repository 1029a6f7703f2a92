package socket_io

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Bolita/config"
	"Bolita/services/rooms"
	"Bolita/services/socket_io/handlers"
	socketio_types "Bolita/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start mounts the socket.io server on the gin router and registers every
// room event on each new connection. The socket id is the connection identity
// the whole room protocol runs on.
func (sio *MySocketServer) Start(router *gin.Engine, cfg *config.Config, roomService *rooms.Service) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      cfg.CorsOrigin,
		Credentials: true,
	})

	// KEY: initialize the map, otherwise it panics
	sio.Connections = make(map[string]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)
		self := (*socketio_types.SocketServer)(sio)

		connID := string(client.Id())
		self.AddConnection(connID, client)
		fmt.Println("An individual just connected!: ", connID)

		// Join a room, creating it on first join (first joiner becomes host)
		client.On("join_room", handlers.HandleJoinRoom(roomService, client, self))

		// Host-only room configuration
		client.On("set_game_mode", handlers.HandleSetGameMode(roomService, client, self))
		client.On("create_rule", handlers.HandleCreateRule(roomService, client, self))

		// Round lifecycle
		client.On("start_game", handlers.HandleStartGame(roomService, client, self))
		client.On("report_result", handlers.HandleReportResult(roomService, client))
		client.On("clear_results", handlers.HandleClearResults(roomService, client, self))
		client.On("game_finished", handlers.HandleGameFinished(roomService, client, self))

		// On-demand full-state sync for late joiners and reconnects
		client.On("request_room_sync", handlers.HandleRequestRoomSync(roomService, client))
		client.On("request_host_status", handlers.HandleRequestHostStatus(roomService, client))

		// Room administration
		client.On("kick_user", handlers.HandleKickUser(roomService, client, self))
		client.On("destroy_room", handlers.HandleDestroyRoom(roomService, client, self))

		// Shared canvas annotations
		client.On("add_drawing", handlers.HandleAddDrawing(roomService, client))

		// Betting rooms only
		client.On("set_betting_title", handlers.HandleSetBettingTitle(roomService, client, self))
		client.On("place_bet", handlers.HandlePlaceBet(roomService, client, self))
		client.On("close_betting", handlers.HandleCloseBetting(roomService, client, self))
		client.On("select_winner", handlers.HandleSelectWinner(roomService, client, self))
		client.On("reset_betting", handlers.HandleResetBetting(roomService, client, self))

		// NOTE: will remove sio connection from map and clean up room state
		client.On("disconnecting", handlers.HandleDisconnecting(roomService, client, self))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	fmt.Println("Socket server started")
}
