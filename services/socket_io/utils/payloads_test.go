package socketio_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJoinRoomPayload(t *testing.T) {
	var p JoinRoomPayload
	err := decodePayload([]interface{}{map[string]interface{}{
		"room_name": "ABC123",
		"user_name": "Alice",
		"room_type": "betting",
	}}, &p)
	require.NoError(t, err)
	assert.Equal(t, "ABC123", p.RoomName)
	assert.Equal(t, "Alice", p.UserName)
	assert.Equal(t, "betting", p.RoomType)
}

func TestDecodeRejectsMissingRequiredFields(t *testing.T) {
	var p JoinRoomPayload
	err := decodePayload([]interface{}{map[string]interface{}{
		"room_name": "ABC123",
	}}, &p)
	assert.Error(t, err, "user_name is required")
}

func TestDecodeRejectsEmptyArgs(t *testing.T) {
	var p RoomPayload
	assert.Error(t, decodePayload(nil, &p))
	assert.Error(t, decodePayload([]interface{}{}, &p))
}

// The engine.io parser delivers every JSON number as float64; weak typing has
// to coerce them into the int fields.
func TestDecodeCoercesJSONNumbers(t *testing.T) {
	var p ReportResultPayload
	err := decodePayload([]interface{}{map[string]interface{}{
		"room_name": "R1",
		"result": map[string]interface{}{
			"participant_id":   "A",
			"participant_name": "Alice",
			"rule_id":          "1",
			"rule_label":       "Pizza",
			"order":            float64(2),
			"timestamp":        float64(1700000000000),
		},
	}}, &p)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Result.Order)
	assert.Equal(t, int64(1700000000000), p.Result.Timestamp)
}

func TestDecodeRulePayloadWeight(t *testing.T) {
	var p CreateRulePayload
	err := decodePayload([]interface{}{map[string]interface{}{
		"room_name": "R1",
		"rule": map[string]interface{}{
			"id":     "1",
			"label":  "Pizza",
			"weight": float64(1.5),
		},
	}}, &p)
	require.NoError(t, err)
	assert.Equal(t, 1.5, p.Rule.Weight)
}

func TestDecodeDrawingStaysOpaque(t *testing.T) {
	stroke := map[string]interface{}{"points": []interface{}{1.0, 2.0}, "color": "#fff"}
	var p DrawingPayload
	err := decodePayload([]interface{}{map[string]interface{}{
		"room_name": "R1",
		"drawing":   stroke,
	}}, &p)
	require.NoError(t, err)
	assert.Equal(t, stroke, p.Drawing)
}
