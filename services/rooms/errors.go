package rooms

import "errors"

// Every rejection an action can produce. Handlers forward the message to the
// offending client only; ErrRoomNotFound is the no-op marker and is never
// emitted (actions against unknown rooms are silently ignored).
var (
	ErrRoomNotFound     = errors.New("room does not exist")
	ErrNotHost          = errors.New("only the host can do that")
	ErrNoRules          = errors.New("cannot start a game without rules")
	ErrAlreadyStarted   = errors.New("a game has already been started")
	ErrNotPlaying       = errors.New("no game in progress")
	ErrKickSelf         = errors.New("the host cannot kick themselves")
	ErrNotParticipant   = errors.New("you must join the room first")
	ErrUserNotInRoom    = errors.New("that user is not in the room")
	ErrInvalidGameMode  = errors.New("unknown game mode")
	ErrInvalidRoomType  = errors.New("unknown room type")
	ErrNotBettingRoom   = errors.New("this room does not support betting")
	ErrBettingClosed    = errors.New("betting is already closed")
	ErrBettingStillOpen = errors.New("betting is still open")
)
