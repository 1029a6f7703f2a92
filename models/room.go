package models

// RoomStatus is the lifecycle state of a room.
type RoomStatus string

const (
	StatusWaiting  RoomStatus = "waiting"
	StatusPlaying  RoomStatus = "playing"
	StatusFinished RoomStatus = "finished"
)

// GameMode governs how clients interpret reported outcomes. The server only
// stores and rebroadcasts it.
type GameMode string

const (
	ModeAllResults GameMode = "all_results"
	ModeWinnerOnly GameMode = "winner_only"
	ModeLoserOnly  GameMode = "loser_only"
)

func (m GameMode) Valid() bool {
	switch m {
	case ModeAllResults, ModeWinnerOnly, ModeLoserOnly:
		return true
	}
	return false
}

// RoomType is fixed at room creation and decides which action handlers apply.
type RoomType string

const (
	TypeRoulette RoomType = "roulette"
	TypeBetting  RoomType = "betting"
)

func (t RoomType) Valid() bool {
	return t == TypeRoulette || t == TypeBetting
}

// Participant identifies one joined connection. Identity is the socket id,
// names are not deduplicated.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Rule is one outcome bucket (prize/penalty/bet option). Weight is advisory,
// reserved for probability-weighted draws.
type Rule struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}

// GameResult is one participant's reported outcome for the current round.
type GameResult struct {
	ParticipantID   string `json:"participant_id"`
	ParticipantName string `json:"participant_name"`
	RuleID          string `json:"rule_id"`
	RuleLabel       string `json:"rule_label"`
	Order           int    `json:"order"`
	Timestamp       int64  `json:"timestamp"` // Unix millis
}

// Bet is a participant's pick of one rule before the winner is revealed.
type Bet struct {
	BettorID   string `json:"bettor_id"`
	BettorName string `json:"bettor_name"`
	RuleID     string `json:"rule_id"`
	Timestamp  int64  `json:"timestamp"` // Unix millis
}

// BettingState only exists on rooms of TypeBetting.
type BettingState struct {
	Bets          []Bet  `json:"bets"`
	BettingOpen   bool   `json:"betting_open"`
	WinningRuleID string `json:"winning_rule_id,omitempty"`
	BettingTitle  string `json:"betting_title"`
}

func NewBettingState() *BettingState {
	return &BettingState{
		Bets:        []Bet{},
		BettingOpen: true,
	}
}

// Room is the central aggregate. All mutation goes through the rooms service;
// nothing else writes these fields.
type Room struct {
	Name         string        `json:"room_name"`
	Participants []Participant `json:"participants"`
	Rules        []Rule        `json:"rules"`
	Status       RoomStatus    `json:"status"`
	HostID       string        `json:"host_id"`
	GameMode     GameMode      `json:"game_mode"`
	RoomType     RoomType      `json:"room_type"`
	Drawings     []interface{} `json:"drawings"`
	GameResults  []GameResult  `json:"game_results"`
	Betting      *BettingState `json:"betting_state,omitempty"`
}

func NewRoom(name, hostID string, roomType RoomType) *Room {
	r := &Room{
		Name:         name,
		Participants: []Participant{},
		Rules:        []Rule{},
		Status:       StatusWaiting,
		HostID:       hostID,
		GameMode:     ModeAllResults,
		RoomType:     roomType,
		Drawings:     []interface{}{},
		GameResults:  []GameResult{},
	}
	if roomType == TypeBetting {
		r.Betting = NewBettingState()
	}
	return r
}

func (r *Room) IsHost(id string) bool {
	return r.HostID == id
}

func (r *Room) HasParticipant(id string) bool {
	for _, p := range r.Participants {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (r *Room) HasResultFor(participantID string) bool {
	for _, res := range r.GameResults {
		if res.ParticipantID == participantID {
			return true
		}
	}
	return false
}

// Snapshot returns a deep copy so callers can read and serialize it outside
// the service lock without observing later mutations.
func (r *Room) Snapshot() *Room {
	cp := *r
	cp.Participants = append([]Participant{}, r.Participants...)
	cp.Rules = append([]Rule{}, r.Rules...)
	cp.Drawings = append([]interface{}{}, r.Drawings...)
	cp.GameResults = append([]GameResult{}, r.GameResults...)
	if r.Betting != nil {
		b := *r.Betting
		b.Bets = append([]Bet{}, r.Betting.Bets...)
		cp.Betting = &b
	}
	return &cp
}
