package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tr181kit/compare/node"
)

func sampleNodes() []*node.Node {
	return []*node.Node{
		{Path: "Device.WiFi.Radio.1.Channel", DataType: node.DataTypeInt, Access: node.AccessReadWrite, Value: 6},
		{Path: "Device.WiFi.Radio.1.Enable", DataType: node.DataTypeBoolean, Access: node.AccessReadWrite, Value: true},
		{Path: "Device.WiFi.Radio.1.SSID", DataType: node.DataTypeString, Access: node.AccessReadWrite, Value: "home"},
		{Path: "Device.DeviceInfo.SerialNumber", DataType: node.DataTypeString, Access: node.AccessReadOnly, Value: "SN123"},
		{Path: "Device.WiFi.Radio.1.", IsObject: true},
	}
}

func TestCompare_IdempotentOnIdenticalInput(t *testing.T) {
	a := sampleNodes()

	report, err := Compare(a, a)
	require.NoError(t, err)

	assert.Empty(t, report.OnlyInSource1)
	assert.Empty(t, report.OnlyInSource2)
	assert.Empty(t, report.Differences)
	assert.True(t, report.Summary.IsIdentical())
	assert.Equal(t, len(a), report.Summary.TotalCommonPaths)
}

func TestCompare_IdempotentOnDeepCopy(t *testing.T) {
	a := sampleNodes()
	b := make([]*node.Node, len(a))
	for i, n := range a {
		b[i] = n.Clone()
	}

	report, err := Compare(a, b)
	require.NoError(t, err)
	assert.True(t, report.Summary.IsIdentical())
}
