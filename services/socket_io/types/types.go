package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer is a struct that contains the socket.io server and a map of
// socket connections, keyed by socket id. Room membership is owned by the
// rooms service; this registry only answers "which live socket has this id"
// for unicasts (kick notifications and the like).
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track socket id -> socket connection
	Connections map[string]*socket.Socket
	mutex       sync.RWMutex
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(id string, client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.Connections[id] = client
}

func (s *SocketServer) RemoveConnection(id string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.Connections, id)
}

func (s *SocketServer) GetConnection(id string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	client, exists := s.Connections[id]
	return client, exists
}
