package rooms

import (
	"log"
	"sync"

	"Bolita/models"
)

// Service owns the room table and every mutation on it. One coarse mutex
// serializes all actions, so each action runs to completion before the next
// one touches any room. Handlers never hold room pointers outside the lock;
// anything returned to a caller is a copy.
type Service struct {
	mu    sync.Mutex
	rooms map[string]*models.Room
	// connection id -> room name. A connection sits in at most one room, and
	// this index is what enforces it: joining elsewhere first runs the leave
	// cascade on the previous room, atomically under the same lock.
	memberOf map[string]string
}

func NewService() *Service {
	return &Service{
		rooms:    make(map[string]*models.Room),
		memberOf: make(map[string]string),
	}
}

// getOrCreate must be called with s.mu held. The requested room type only
// matters on creation; for an existing room the first creator's choice sticks.
func (s *Service) getOrCreate(name, hostID string, roomType models.RoomType) (*models.Room, bool) {
	if room, ok := s.rooms[name]; ok {
		return room, false
	}
	if roomType == "" {
		roomType = models.TypeRoulette
	}
	room := models.NewRoom(name, hostID, roomType)
	s.rooms[name] = room
	log.Printf("[ROOM-CREATE] Room %s created (type=%s, host=%s)", name, roomType, hostID)
	return room, true
}

// get must be called with s.mu held.
func (s *Service) get(name string) (*models.Room, bool) {
	room, ok := s.rooms[name]
	return room, ok
}

// removeRoom must be called with s.mu held. Drops the room and every
// membership entry pointing at it.
func (s *Service) removeRoom(room *models.Room) {
	for _, p := range room.Participants {
		delete(s.memberOf, p.ID)
	}
	delete(s.rooms, room.Name)
	log.Printf("[ROOM-DELETE] Room %s removed", room.Name)
}

// Count reports how many rooms are live. Used by the liveness probe.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}

// Snapshot returns an atomic deep copy of the room, or ErrRoomNotFound.
func (s *Service) Snapshot(roomName string) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.get(roomName)
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room.Snapshot(), nil
}

// RoomInfo is the pre-join peek served over REST.
type RoomInfo struct {
	RoomName    string            `json:"room_name"`
	RoomType    models.RoomType   `json:"room_type"`
	Status      models.RoomStatus `json:"status"`
	PlayerCount int               `json:"player_count"`
	HostID      string            `json:"host_id"`
}

func (s *Service) Info(roomName string) (*RoomInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.get(roomName)
	if !ok {
		return nil, ErrRoomNotFound
	}
	return &RoomInfo{
		RoomName:    room.Name,
		RoomType:    room.RoomType,
		Status:      room.Status,
		PlayerCount: len(room.Participants),
		HostID:      room.HostID,
	}, nil
}
