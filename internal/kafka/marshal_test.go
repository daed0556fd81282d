package kafka

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapPayload(t *testing.T) {
	type payload struct {
		ProductID int64 `json:"product_id"`
	}

	got, err := UnwrapPayload[payload](json.RawMessage(`{"product_id":7}`))
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ProductID)

	_, err = UnwrapPayload[payload](json.RawMessage(`{"product_id":"x"}`))
	assert.ErrorContains(t, err, "decode payload")
}

func TestEventHeaders(t *testing.T) {
	hs := EventHeaders("SaleRecorded")
	require.Len(t, hs, 2)
	assert.Equal(t, "x-event-type", hs[0].Key)
	assert.Equal(t, "SaleRecorded", string(hs[0].Value))
	assert.Equal(t, "1", string(hs[1].Value))
}

func TestMustMarshalPanicsOnUnsupported(t *testing.T) {
	assert.Panics(t, func() { MustMarshal(make(chan int)) })
	assert.JSONEq(t, `{"a":1}`, string(MustMarshal(map[string]int{"a": 1})))
}
