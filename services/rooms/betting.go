package rooms

import (
	"log"
	"time"

	"Bolita/models"

	"github.com/samber/lo"
)

// bettingRoom resolves the room and checks it actually runs betting rounds.
// Must be called with s.mu held.
func (s *Service) bettingRoom(roomName string) (*models.Room, error) {
	room, ok := s.get(roomName)
	if !ok {
		return nil, ErrRoomNotFound
	}
	if room.RoomType != models.TypeBetting || room.Betting == nil {
		return nil, ErrNotBettingRoom
	}
	return room, nil
}

// SetBettingTitle sets the free-text headline of the betting round. Host-only.
func (s *Service) SetBettingTitle(roomName, requesterID, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.bettingRoom(roomName)
	if err != nil {
		return err
	}
	if !room.IsHost(requesterID) {
		return ErrNotHost
	}
	room.Betting.BettingTitle = title
	return nil
}

// PlaceBet records the sender's pick. One active bet per bettor: a new bet
// replaces the previous one (filter then push). Rejected once betting closes.
func (s *Service) PlaceBet(roomName, bettorID, ruleID string) ([]models.Bet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.bettingRoom(roomName)
	if err != nil {
		return nil, err
	}
	if !room.HasParticipant(bettorID) {
		return nil, ErrNotParticipant
	}
	if !room.Betting.BettingOpen {
		return nil, ErrBettingClosed
	}

	var bettorName string
	for _, p := range room.Participants {
		if p.ID == bettorID {
			bettorName = p.Name
			break
		}
	}

	room.Betting.Bets = lo.Filter(room.Betting.Bets, func(b models.Bet, _ int) bool {
		return b.BettorID != bettorID
	})
	room.Betting.Bets = append(room.Betting.Bets, models.Bet{
		BettorID:   bettorID,
		BettorName: bettorName,
		RuleID:     ruleID,
		Timestamp:  time.Now().UnixMilli(),
	})
	return append([]models.Bet{}, room.Betting.Bets...), nil
}

// CloseBetting stops further bets. Host-only.
func (s *Service) CloseBetting(roomName, requesterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.bettingRoom(roomName)
	if err != nil {
		return err
	}
	if !room.IsHost(requesterID) {
		return ErrNotHost
	}
	room.Betting.BettingOpen = false
	return nil
}

// Settlement is the outcome of SelectWinner: current bettors partitioned by
// whether their pick matched the winning rule.
type Settlement struct {
	WinningRuleID string
	Winners       []models.Bet
	Losers        []models.Bet
}

// SelectWinner settles the round. Host-only, and only once betting is closed.
// The partition is computed against the live participant list, so a bettor who
// left the room contributes no entry to either side.
func (s *Service) SelectWinner(roomName, requesterID, ruleID string) (*Settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.bettingRoom(roomName)
	if err != nil {
		return nil, err
	}
	if !room.IsHost(requesterID) {
		return nil, ErrNotHost
	}
	if room.Betting.BettingOpen {
		return nil, ErrBettingStillOpen
	}

	room.Betting.WinningRuleID = ruleID

	present := lo.Filter(room.Betting.Bets, func(b models.Bet, _ int) bool {
		return room.HasParticipant(b.BettorID)
	})
	winners := lo.Filter(present, func(b models.Bet, _ int) bool {
		return b.RuleID == ruleID
	})
	losers := lo.Filter(present, func(b models.Bet, _ int) bool {
		return b.RuleID != ruleID
	})

	log.Printf("[BETTING-SETTLE] Room %s rule %s: %d winners, %d losers",
		roomName, ruleID, len(winners), len(losers))
	return &Settlement{WinningRuleID: ruleID, Winners: winners, Losers: losers}, nil
}

// ResetBetting opens a fresh round: bets cleared, betting open, winning rule
// forgotten. The title is the one thing that survives the reset.
func (s *Service) ResetBetting(roomName, requesterID string) (*models.BettingState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.bettingRoom(roomName)
	if err != nil {
		return nil, err
	}
	if !room.IsHost(requesterID) {
		return nil, ErrNotHost
	}

	fresh := models.NewBettingState()
	fresh.BettingTitle = room.Betting.BettingTitle
	room.Betting = fresh

	cp := *fresh
	cp.Bets = append([]models.Bet{}, fresh.Bets...)
	return &cp, nil
}
