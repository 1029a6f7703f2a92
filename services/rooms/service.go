package rooms

import (
	"log"
	"math/rand/v2"
	"time"

	"Bolita/models"
)

// JoinResult carries everything the join handler needs to emit: the joiner's
// host status plus copies of the room fields broadcast on entry. Left is set
// when the join pulled the connection out of a previous room.
type JoinResult struct {
	Created      bool
	IsHost       bool
	HostID       string
	GameMode     models.GameMode
	RoomType     models.RoomType
	Status       models.RoomStatus
	Betting      *models.BettingState
	Participants []models.Participant
	Joined       models.Participant
	Left         *Departure
}

// Join finds or lazily creates the room and appends the connection as a
// participant. The first joiner of a fresh room becomes its host. A connection
// is a participant in at most one room, so joining a different room first runs
// the full leave cascade on the old one (host leaving destroys it). Joining a
// room twice with the same connection id is a no-op append-wise but still
// returns the current state, so redundant join_room events stay harmless.
func (s *Service) Join(roomName, connID, userName string, roomType models.RoomType) (*JoinResult, error) {
	if roomType != "" && !roomType.Valid() {
		return nil, ErrInvalidRoomType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var left *Departure
	if prev, ok := s.memberOf[connID]; ok && prev != roomName {
		left = s.leave(prev, connID)
	}

	room, created := s.getOrCreate(roomName, connID, roomType)

	joined := models.Participant{ID: connID, Name: userName}
	if !room.HasParticipant(connID) {
		room.Participants = append(room.Participants, joined)
	}
	s.memberOf[connID] = roomName

	snap := room.Snapshot()
	return &JoinResult{
		Created:      created,
		IsHost:       room.IsHost(connID),
		HostID:       room.HostID,
		GameMode:     room.GameMode,
		RoomType:     room.RoomType,
		Status:       room.Status,
		Betting:      snap.Betting,
		Participants: snap.Participants,
		Joined:       joined,
		Left:         left,
	}, nil
}

// SetGameMode is host-only. The mode only matters to clients; the server just
// validates the enum and stores it.
func (s *Service) SetGameMode(roomName, requesterID string, mode models.GameMode) error {
	if !mode.Valid() {
		return ErrInvalidGameMode
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.get(roomName)
	if !ok {
		return ErrRoomNotFound
	}
	if !room.IsHost(requesterID) {
		return ErrNotHost
	}
	room.GameMode = mode
	return nil
}

// CreateRule appends one outcome bucket and returns the updated rule list.
func (s *Service) CreateRule(roomName, requesterID string, rule models.Rule) ([]models.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.get(roomName)
	if !ok {
		return nil, ErrRoomNotFound
	}
	if !room.IsHost(requesterID) {
		return nil, ErrNotHost
	}
	room.Rules = append(room.Rules, rule)
	return append([]models.Rule{}, room.Rules...), nil
}

// StartGame moves the room to playing and draws the shared seed every client
// feeds into its local simulation. Identical seed, identical outcome order.
func (s *Service) StartGame(roomName, requesterID string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.get(roomName)
	if !ok {
		return 0, ErrRoomNotFound
	}
	if !room.IsHost(requesterID) {
		return 0, ErrNotHost
	}
	if room.Status != models.StatusWaiting {
		// A playing or finished round holds its results until the explicit
		// reset; restarting over them would let stale entries swallow every
		// report of the new round.
		return 0, ErrAlreadyStarted
	}
	if len(room.Rules) == 0 {
		return 0, ErrNoRules
	}

	seed := rand.Float64()
	room.Status = models.StatusPlaying
	log.Printf("[GAME-START] Room %s playing, seed=%f", roomName, seed)
	return seed, nil
}

// ReportResult records one participant's outcome. Accepted while the round is
// playing, or from the host at any time (the host may backfill after the round
// nominally ends). Duplicate reports for the same participant are dropped, so
// every client racing to report the same detection stays idempotent.
func (s *Service) ReportResult(roomName, senderID string, result models.GameResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.get(roomName)
	if !ok {
		return ErrRoomNotFound
	}
	if room.Status != models.StatusPlaying && !room.IsHost(senderID) {
		return ErrNotPlaying
	}
	if room.HasResultFor(result.ParticipantID) {
		return nil
	}
	if result.Timestamp == 0 {
		result.Timestamp = time.Now().UnixMilli()
	}
	room.GameResults = append(room.GameResults, result)
	return nil
}

// ClearResults resets the room for a fresh round: back to waiting, results and
// drawings wiped. Rules survive; only this explicit reset path clears derived
// round state.
func (s *Service) ClearResults(roomName, requesterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.get(roomName)
	if !ok {
		return ErrRoomNotFound
	}
	if !room.IsHost(requesterID) {
		return ErrNotHost
	}
	room.Status = models.StatusWaiting
	room.GameResults = []models.GameResult{}
	room.Drawings = []interface{}{}
	log.Printf("[GAME-RESET] Room %s back to waiting", roomName)
	return nil
}

// FinishGame marks the round done without clearing anything. Late joiners then
// get the final results in their sync snapshot instead of a replay.
func (s *Service) FinishGame(roomName, requesterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.get(roomName)
	if !ok {
		return ErrRoomNotFound
	}
	if !room.IsHost(requesterID) {
		return ErrNotHost
	}
	if room.Status != models.StatusPlaying {
		return ErrNotPlaying
	}
	room.Status = models.StatusFinished
	return nil
}

// HostStatus answers the idempotent "am I the host" re-query from current
// state. Safe to call any number of times; this is what resolves the race
// between the join-time host_status unicast and the client's listener setup.
func (s *Service) HostStatus(roomName, connID string) (bool, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.get(roomName)
	if !ok {
		return false, "", ErrRoomNotFound
	}
	return room.IsHost(connID), room.HostID, nil
}

// KickResult carries the removed participant and the surviving list.
type KickResult struct {
	Removed      models.Participant
	Participants []models.Participant
}

// Kick removes a participant. Host-only, and the host cannot kick themselves.
func (s *Service) Kick(roomName, requesterID, targetID string) (*KickResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.get(roomName)
	if !ok {
		return nil, ErrRoomNotFound
	}
	if !room.IsHost(requesterID) {
		return nil, ErrNotHost
	}
	if targetID == requesterID {
		return nil, ErrKickSelf
	}

	removed, ok := removeParticipant(room, targetID)
	if !ok {
		return nil, ErrUserNotInRoom
	}
	delete(s.memberOf, targetID)
	log.Printf("[KICK] %s removed from room %s by host", targetID, roomName)
	return &KickResult{
		Removed:      removed,
		Participants: append([]models.Participant{}, room.Participants...),
	}, nil
}

// Destroy deletes the room outright. Host-only; the handler broadcasts
// room_destroyed before membership is torn down.
func (s *Service) Destroy(roomName, requesterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.get(roomName)
	if !ok {
		return ErrRoomNotFound
	}
	if !room.IsHost(requesterID) {
		return ErrNotHost
	}
	s.removeRoom(room)
	return nil
}

// Departure describes the effect of a connection leaving a room, however it
// left (disconnect or joining another room).
type Departure struct {
	RoomName      string
	RoomDestroyed bool
	Removed       models.Participant
	Participants  []models.Participant
}

// Disconnect handles a dropped connection, resolving its room from the
// membership index. A host disconnect destroys the room unconditionally,
// regardless of who is left; host authority never transfers. A non-host leave
// removes the participant, and the room is deleted if that made it empty.
// Connections that never joined a room come back as ErrRoomNotFound.
func (s *Service) Disconnect(connID string) (*Departure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roomName, ok := s.memberOf[connID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return s.leave(roomName, connID), nil
}

// leave must be called with s.mu held. Runs the full departure cascade for
// one connection.
func (s *Service) leave(roomName, connID string) *Departure {
	delete(s.memberOf, connID)

	room, ok := s.get(roomName)
	if !ok {
		return &Departure{RoomName: roomName}
	}

	if room.IsHost(connID) {
		s.removeRoom(room)
		log.Printf("[DISCONNECT] Host left, room %s destroyed", roomName)
		return &Departure{RoomName: roomName, RoomDestroyed: true}
	}

	removed, _ := removeParticipant(room, connID)
	if len(room.Participants) == 0 {
		s.removeRoom(room)
		return &Departure{RoomName: roomName, RoomDestroyed: true, Removed: removed}
	}
	return &Departure{
		RoomName:     roomName,
		Removed:      removed,
		Participants: append([]models.Participant{}, room.Participants...),
	}
}

// AddDrawing appends one opaque drawing annotation. The server never inspects
// drawings; they are rebroadcast live and replayed verbatim to late joiners.
func (s *Service) AddDrawing(roomName, senderID string, drawing interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.get(roomName)
	if !ok {
		return ErrRoomNotFound
	}
	if !room.HasParticipant(senderID) {
		return ErrNotParticipant
	}
	room.Drawings = append(room.Drawings, drawing)
	return nil
}

func removeParticipant(room *models.Room, id string) (models.Participant, bool) {
	for i, p := range room.Participants {
		if p.ID == id {
			room.Participants = append(room.Participants[:i], room.Participants[i+1:]...)
			return p, true
		}
	}
	return models.Participant{}, false
}
