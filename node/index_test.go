package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNodes() []*Node {
	return []*Node{
		{Path: "Device.WiFi.", IsObject: true},
		{Path: "Device.WiFi.Radio.", IsObject: true},
		{Path: "Device.WiFi.Radio.1.", IsObject: true},
		{Path: "Device.WiFi.Radio.1.Channel", DataType: DataTypeInt},
		{Path: "Device.WiFi.Radio.1.Enable", DataType: DataTypeBoolean},
		{Path: "Device.WiFi.Radio.2.", IsObject: true},
		{Path: "Device.WiFi.Radio.2.Channel", DataType: DataTypeInt},
	}
}

func TestPathIndex_Get(t *testing.T) {
	idx := NewPathIndex(sampleNodes())
	require.NotNil(t, idx.Get("Device.WiFi.Radio.1.Channel"))
	assert.Nil(t, idx.Get("Device.DoesNotExist"))
	assert.Equal(t, 7, idx.Len())
}

func TestPathIndex_Parent(t *testing.T) {
	idx := NewPathIndex(sampleNodes())
	leaf := idx.Get("Device.WiFi.Radio.1.Channel")
	parent := idx.Parent(leaf)
	require.NotNil(t, parent)
	assert.Equal(t, "Device.WiFi.Radio.1.", parent.Path)
}

func TestPathIndex_Parent_NotPresent(t *testing.T) {
	nodes := []*Node{{Path: "Device.WiFi.Radio.1.Channel", DataType: DataTypeInt}}
	idx := NewPathIndex(nodes)
	n := idx.Get("Device.WiFi.Radio.1.Channel")
	assert.Nil(t, idx.Parent(n), "implicit parent objects are valid per the spec invariant")
}

func TestPathIndex_Children(t *testing.T) {
	idx := NewPathIndex(sampleNodes())
	radio := idx.Get("Device.WiFi.Radio.")
	children := idx.Children(radio)
	require.Len(t, children, 2)
	assert.Equal(t, "Device.WiFi.Radio.1.", children[0].Path)
	assert.Equal(t, "Device.WiFi.Radio.2.", children[1].Path)
}

func TestPathIndex_Children_OfLeaf(t *testing.T) {
	idx := NewPathIndex(sampleNodes())
	leaf := idx.Get("Device.WiFi.Radio.1.Channel")
	assert.Nil(t, idx.Children(leaf))
}

func TestPathIndex_Paths_Sorted(t *testing.T) {
	idx := NewPathIndex(sampleNodes())
	paths := idx.Paths()
	for i := 1; i < len(paths); i++ {
		assert.LessOrEqual(t, paths[i-1], paths[i])
	}
}

func TestNode_Clone(t *testing.T) {
	min := 1.0
	n := &Node{
		Path:       "Device.WiFi.Radio.1.Channel",
		DataType:   DataTypeInt,
		ValueRange: &ValueRange{Min: &min},
		Events:     []EventDescriptor{{Name: "Changed"}},
	}
	clone := n.Clone()
	require.NotSame(t, n, clone)
	require.NotSame(t, n.ValueRange, clone.ValueRange)
	assert.Equal(t, n.ValueRange.Min, clone.ValueRange.Min)
	clone.ValueRange.Min = nil
	assert.NotNil(t, n.ValueRange.Min, "cloning must not mutate the original's ValueRange")
}
