package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataType_String(t *testing.T) {
	assert.Equal(t, "string", DataTypeUnknown.String())
	assert.Equal(t, "int", DataTypeInt.String())
	assert.Equal(t, "unsignedLong", DataTypeUnsignedLong.String())
}

func TestDataType_IsNumeric(t *testing.T) {
	assert.True(t, DataTypeInt.IsNumeric())
	assert.True(t, DataTypeUnsignedInt.IsNumeric())
	assert.True(t, DataTypeLong.IsNumeric())
	assert.True(t, DataTypeUnsignedLong.IsNumeric())
	assert.False(t, DataTypeString.IsNumeric())
	assert.False(t, DataTypeBoolean.IsNumeric())
}

func TestDataType_IsSigned(t *testing.T) {
	assert.True(t, DataTypeInt.IsSigned())
	assert.True(t, DataTypeLong.IsSigned())
	assert.False(t, DataTypeUnsignedInt.IsSigned())
	assert.False(t, DataTypeUnsignedLong.IsSigned())
}

func TestParseDataType(t *testing.T) {
	tests := []struct {
		in      string
		want    DataType
		wantOK  bool
	}{
		{"string", DataTypeString, true},
		{"int", DataTypeInt, true},
		{"hexBinary", DataTypeHexBinary, true},
		{"xsd:int", DataType("xsd:int"), false},
		{"", DataTypeUnknown, false},
	}
	for _, tt := range tests {
		got, ok := ParseDataType(tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.wantOK, ok)
	}
}
