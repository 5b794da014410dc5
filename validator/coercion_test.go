package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tr181kit/compare/node"
)

func TestCoerceValue_Int(t *testing.T) {
	v, err := CoerceValue(node.DataTypeInt, "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	_, err = CoerceValue(node.DataTypeInt, "9999999999999999999999")
	assert.Error(t, err)

	_, err = CoerceValue(node.DataTypeInt, int64(1)<<40)
	assert.Error(t, err)
}

func TestCoerceValue_UnsignedInt(t *testing.T) {
	v, err := CoerceValue(node.DataTypeUnsignedInt, 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), v)

	_, err = CoerceValue(node.DataTypeUnsignedInt, -1)
	assert.Error(t, err)
}

func TestCoerceValue_Boolean(t *testing.T) {
	v, err := CoerceValue(node.DataTypeBoolean, "YES")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = CoerceValue(node.DataTypeBoolean, false)
	require.NoError(t, err)
	assert.Equal(t, false, v)

	_, err = CoerceValue(node.DataTypeBoolean, "maybe")
	assert.Error(t, err)
}

func TestCoerceValue_String(t *testing.T) {
	v, err := CoerceValue(node.DataTypeString, 5)
	require.NoError(t, err)
	assert.Equal(t, "5", v)
}

func TestCoerceValue_DateTime(t *testing.T) {
	v, err := CoerceValue(node.DataTypeDateTime, "2024-01-15T10:30:00Z")
	require.NoError(t, err)
	assert.NotNil(t, v)

	_, err = CoerceValue(node.DataTypeDateTime, "not-a-date")
	assert.Error(t, err)
}

func TestCoerceValue_Base64(t *testing.T) {
	_, err := CoerceValue(node.DataTypeBase64, "aGVsbG8=")
	assert.NoError(t, err)

	_, err = CoerceValue(node.DataTypeBase64, "!!!not base64!!!")
	assert.Error(t, err)
}

func TestCoerceValue_HexBinary(t *testing.T) {
	_, err := CoerceValue(node.DataTypeHexBinary, "deadbeef")
	assert.NoError(t, err)

	_, err = CoerceValue(node.DataTypeHexBinary, "zzzz")
	assert.Error(t, err)
}

func TestCoerceValue_UnknownDefaultsToString(t *testing.T) {
	v, err := CoerceValue(node.DataTypeUnknown, "anything")
	require.NoError(t, err)
	assert.Equal(t, "anything", v)
}
