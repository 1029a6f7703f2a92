package rooms

import (
	"testing"

	"Bolita/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBettingRoom(t *testing.T) *Service {
	t.Helper()
	svc := NewService()
	_, err := svc.Join("BET1", "host", "Helen", models.TypeBetting)
	require.NoError(t, err)
	_, err = svc.Join("BET1", "b1", "Bea", "")
	require.NoError(t, err)
	_, err = svc.Join("BET1", "b2", "Ben", "")
	require.NoError(t, err)
	return svc
}

func TestBettingActionsRejectedOnRouletteRoom(t *testing.T) {
	svc := NewService()
	svc.Join("R1", "a", "Alice", models.TypeRoulette)

	assert.ErrorIs(t, svc.SetBettingTitle("R1", "a", "Who wins?"), ErrNotBettingRoom)
	_, err := svc.PlaceBet("R1", "a", "1")
	assert.ErrorIs(t, err, ErrNotBettingRoom)
	assert.ErrorIs(t, svc.CloseBetting("R1", "a"), ErrNotBettingRoom)
}

func TestSetBettingTitleHostOnly(t *testing.T) {
	svc := newBettingRoom(t)

	assert.ErrorIs(t, svc.SetBettingTitle("BET1", "b1", "nope"), ErrNotHost)
	require.NoError(t, svc.SetBettingTitle("BET1", "host", "First to fall?"))

	snap, _ := svc.Snapshot("BET1")
	assert.Equal(t, "First to fall?", snap.Betting.BettingTitle)
}

func TestPlaceBetOverwritesOwnBet(t *testing.T) {
	svc := newBettingRoom(t)

	bets, err := svc.PlaceBet("BET1", "b1", "rule-red")
	require.NoError(t, err)
	require.Len(t, bets, 1)

	bets, err = svc.PlaceBet("BET1", "b2", "rule-blue")
	require.NoError(t, err)
	require.Len(t, bets, 2)

	// b1 changes their mind: previous bet is replaced, not duplicated
	bets, err = svc.PlaceBet("BET1", "b1", "rule-blue")
	require.NoError(t, err)
	require.Len(t, bets, 2)
	assert.Equal(t, "b2", bets[0].BettorID, "replaced bet goes to the back")
	assert.Equal(t, "b1", bets[1].BettorID)
	assert.Equal(t, "rule-blue", bets[1].RuleID)
	assert.Equal(t, "Bea", bets[1].BettorName)
}

func TestPlaceBetRejectedWhenClosedOrOutsider(t *testing.T) {
	svc := newBettingRoom(t)

	_, err := svc.PlaceBet("BET1", "ghost", "rule-red")
	assert.ErrorIs(t, err, ErrNotParticipant)

	require.NoError(t, svc.CloseBetting("BET1", "host"))
	_, err = svc.PlaceBet("BET1", "b1", "rule-red")
	assert.ErrorIs(t, err, ErrBettingClosed)
}

func TestCloseBettingHostOnly(t *testing.T) {
	svc := newBettingRoom(t)

	assert.ErrorIs(t, svc.CloseBetting("BET1", "b1"), ErrNotHost)
	require.NoError(t, svc.CloseBetting("BET1", "host"))

	snap, _ := svc.Snapshot("BET1")
	assert.False(t, snap.Betting.BettingOpen)
}

func TestSelectWinnerPartitionsLiveBettors(t *testing.T) {
	svc := newBettingRoom(t)

	svc.PlaceBet("BET1", "b1", "rule-red")
	svc.PlaceBet("BET1", "b2", "rule-blue")
	svc.PlaceBet("BET1", "host", "rule-red")

	// Settling before closing is rejected
	_, err := svc.SelectWinner("BET1", "host", "rule-red")
	assert.ErrorIs(t, err, ErrBettingStillOpen)

	require.NoError(t, svc.CloseBetting("BET1", "host"))

	// b2 leaves after betting: their bet must not appear on either side
	_, err = svc.Disconnect("b2")
	require.NoError(t, err)

	_, err = svc.SelectWinner("BET1", "b1", "rule-red")
	assert.ErrorIs(t, err, ErrNotHost)

	settlement, err := svc.SelectWinner("BET1", "host", "rule-red")
	require.NoError(t, err)
	assert.Equal(t, "rule-red", settlement.WinningRuleID)
	require.Len(t, settlement.Winners, 2)
	assert.Empty(t, settlement.Losers)

	ids := []string{settlement.Winners[0].BettorID, settlement.Winners[1].BettorID}
	assert.ElementsMatch(t, []string{"b1", "host"}, ids)

	snap, _ := svc.Snapshot("BET1")
	assert.Equal(t, "rule-red", snap.Betting.WinningRuleID)
}

func TestResetBettingKeepsTitle(t *testing.T) {
	svc := newBettingRoom(t)

	svc.SetBettingTitle("BET1", "host", "Round one")
	svc.PlaceBet("BET1", "b1", "rule-red")
	svc.CloseBetting("BET1", "host")
	svc.SelectWinner("BET1", "host", "rule-red")

	_, err := svc.ResetBetting("BET1", "b1")
	assert.ErrorIs(t, err, ErrNotHost)

	state, err := svc.ResetBetting("BET1", "host")
	require.NoError(t, err)
	assert.True(t, state.BettingOpen)
	assert.Empty(t, state.Bets)
	assert.Empty(t, state.WinningRuleID)
	assert.Equal(t, "Round one", state.BettingTitle)
}
