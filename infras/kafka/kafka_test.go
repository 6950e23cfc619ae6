package kafka_test

import (
	"petcare/infras/kafka"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type completedWalk struct {
	AppointmentID string `json:"appointment_id"`
	WalkerID      string `json:"walker_id"`
}

func TestMessage_RoundTrip(t *testing.T) {
	message := kafka.Message{
		Key:     "a1",
		Value:   completedWalk{AppointmentID: "a1", WalkerID: "w1"},
		Headers: map[string]string{kafka.HeaderEventType: "appointment.completed"},
	}

	encoded, err := message.ToKafkaMessage()
	require.NoError(t, err)

	assert.Equal(t, []byte("a1"), encoded.Key)
	assert.JSONEq(t, `{"appointment_id":"a1","walker_id":"w1"}`, string(encoded.Value))
	assert.Equal(t, "appointment.completed", kafka.Header(encoded, kafka.HeaderEventType))
	assert.Empty(t, kafka.Header(encoded, "missing"))

	decoded, err := kafka.Decode[completedWalk](encoded)
	require.NoError(t, err)
	assert.Equal(t, completedWalk{AppointmentID: "a1", WalkerID: "w1"}, decoded)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := kafka.Decode[completedWalk](kafkaGo.Message{Value: []byte("not json")})
	require.Error(t, err)
}

func TestMessage_Unencodable(t *testing.T) {
	message := kafka.Message{Key: "a1", Value: func() {}}

	_, err := message.ToKafkaMessage()
	require.Error(t, err)
}
