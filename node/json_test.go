package node

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeJSON_RoundTripWithExtra(t *testing.T) {
	raw := []byte(`{
		"path": "Device.WiFi.Radio.1.Channel",
		"data_type": "int",
		"access": "read-write",
		"value": 6,
		"x_vendor_note": "custom field"
	}`)

	var n Node
	require.NoError(t, json.Unmarshal(raw, &n))
	assert.Equal(t, "custom field", n.Extra["x_vendor_note"])

	out, err := json.Marshal(&n)
	require.NoError(t, err)

	var roundtripped Node
	require.NoError(t, json.Unmarshal(out, &roundtripped))
	assert.Equal(t, n.Path, roundtripped.Path)
	assert.Equal(t, n.Extra, roundtripped.Extra)
}

func TestNodeJSON_NoExtraFastPath(t *testing.T) {
	n := &Node{Path: "Device.WiFi.Radio.1.Channel", DataType: DataTypeInt}
	out, err := json.Marshal(n)
	require.NoError(t, err)

	var roundtripped Node
	require.NoError(t, json.Unmarshal(out, &roundtripped))
	assert.Equal(t, n.Path, roundtripped.Path)
	assert.Nil(t, roundtripped.Extra)
}
