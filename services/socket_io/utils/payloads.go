package socketio_utils

import (
	"errors"
	"log"

	"Bolita/services/rooms"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/zishang520/socket.io/v2/socket"
)

var validate = validator.New()

// decodePayload maps the first socket.io event argument onto a typed payload
// and validates it. Weak typing is on because the engine.io parser hands every
// JSON number over as float64.
func decodePayload(args []interface{}, out interface{}) error {
	if len(args) < 1 {
		return errors.New("missing event payload")
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(args[0]); err != nil {
		return err
	}
	return validate.Struct(out)
}

// DecodeArgs decodes an event payload, reporting any failure to the sender as
// a unicast error.
func DecodeArgs(client *socket.Socket, args []interface{}, out interface{}) bool {
	if err := decodePayload(args, out); err != nil {
		log.Printf("[PAYLOAD-ERROR] Bad payload from socket %s: %v", client.Id(), err)
		client.Emit("error", gin.H{"error": "invalid event payload"})
		return false
	}
	return true
}

// EmitActionError reports an action rejection to the offending client only.
// Unknown-room references are a deliberate no-op: nothing is emitted, the
// rejection is just logged.
func EmitActionError(client *socket.Socket, event string, err error) {
	if errors.Is(err, rooms.ErrRoomNotFound) {
		log.Printf("[%s] Ignoring action against unknown room (socket %s)", event, client.Id())
		return
	}
	log.Printf("[%s] Rejected for socket %s: %v", event, client.Id(), err)
	client.Emit("error", gin.H{"error": err.Error()})
}

// Event payloads, client -> server. Field names follow the wire format.

type JoinRoomPayload struct {
	RoomName string `mapstructure:"room_name" validate:"required"`
	UserName string `mapstructure:"user_name" validate:"required"`
	RoomType string `mapstructure:"room_type"`
}

type RoomPayload struct {
	RoomName string `mapstructure:"room_name" validate:"required"`
}

type SetGameModePayload struct {
	RoomName string `mapstructure:"room_name" validate:"required"`
	GameMode string `mapstructure:"game_mode" validate:"required"`
}

type RulePayload struct {
	ID     string  `mapstructure:"id" validate:"required"`
	Label  string  `mapstructure:"label" validate:"required"`
	Weight float64 `mapstructure:"weight"`
}

type CreateRulePayload struct {
	RoomName string      `mapstructure:"room_name" validate:"required"`
	Rule     RulePayload `mapstructure:"rule" validate:"required"`
}

type ResultPayload struct {
	ParticipantID   string `mapstructure:"participant_id" validate:"required"`
	ParticipantName string `mapstructure:"participant_name"`
	RuleID          string `mapstructure:"rule_id"`
	RuleLabel       string `mapstructure:"rule_label"`
	Order           int    `mapstructure:"order"`
	Timestamp       int64  `mapstructure:"timestamp"`
}

type ReportResultPayload struct {
	RoomName string        `mapstructure:"room_name" validate:"required"`
	Result   ResultPayload `mapstructure:"result" validate:"required"`
}

type KickUserPayload struct {
	RoomName string `mapstructure:"room_name" validate:"required"`
	UserID   string `mapstructure:"user_id" validate:"required"`
}

type DrawingPayload struct {
	RoomName string      `mapstructure:"room_name" validate:"required"`
	Drawing  interface{} `mapstructure:"drawing" validate:"required"`
}

type BettingTitlePayload struct {
	RoomName string `mapstructure:"room_name" validate:"required"`
	Title    string `mapstructure:"title" validate:"required"`
}

type BetPayload struct {
	RoomName string `mapstructure:"room_name" validate:"required"`
	RuleID   string `mapstructure:"rule_id" validate:"required"`
}
