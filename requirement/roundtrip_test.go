package requirement

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tr181kit/compare/internal/testutil"
	"github.com/tr181kit/compare/node"
)

func sampleDocument() *Document {
	return &Document{
		Nodes: []*node.Node{
			{
				Path:     "Device.WiFi.Radio.1.Channel",
				DataType: node.DataTypeInt,
				Access:   node.AccessReadWrite,
				ValueRange: &node.ValueRange{
					Min: testutil.Ptr(1.0), Max: testutil.Ptr(11.0),
				},
			},
			{
				Path:     "Device.WiFi.Radio.1.Enable",
				DataType: node.DataTypeBoolean,
				Access:   node.AccessReadWrite,
				Extra:    map[string]any{"x_vendor_note": "keep me"},
			},
		},
	}
}

func TestRoundTrip_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirement.yaml")

	doc := sampleDocument()
	require.NoError(t, Save(path, doc))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Nodes, 2)
	assert.Equal(t, doc.Nodes[0].Path, loaded.Nodes[0].Path)
	assert.Equal(t, *doc.Nodes[0].ValueRange.Min, *loaded.Nodes[0].ValueRange.Min)

	resaved := filepath.Join(dir, "requirement2.yaml")
	require.NoError(t, Save(resaved, loaded))
	reloaded, err := Load(resaved)
	require.NoError(t, err)
	assert.Equal(t, loaded.Nodes[0].Path, reloaded.Nodes[0].Path)
	assert.Equal(t, loaded.Nodes[1].Path, reloaded.Nodes[1].Path)
}

func TestRoundTrip_JSON_PreservesExtra(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirement.json")

	doc := sampleDocument()
	require.NoError(t, Save(path, doc))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me", loaded.Nodes[1].Extra["x_vendor_note"])
}

func TestLoad_RejectsDuplicatePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dupe.json")
	doc := &Document{Nodes: []*node.Node{
		{Path: "Device.WiFi.Radio.1.Channel", DataType: node.DataTypeInt},
		{Path: "Device.WiFi.Radio.1.Channel", DataType: node.DataTypeInt},
	}}
	require.NoError(t, Save(path, doc))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "badpath.json")
	doc := &Document{Nodes: []*node.Node{
		{Path: "NotDevice.WiFi", DataType: node.DataTypeInt},
	}}
	require.NoError(t, Save(path, doc))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsMalformedRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "badrange.json")
	doc := &Document{Nodes: []*node.Node{
		{
			Path: "Device.WiFi.Radio.1.Channel", DataType: node.DataTypeInt,
			ValueRange: &node.ValueRange{Min: testutil.Ptr(20.0), Max: testutil.Ptr(1.0)},
		},
	}}
	require.NoError(t, Save(path, doc))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_AllowsTemplatePlaceholders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.yaml")
	doc := &Document{Nodes: []*node.Node{
		{Path: "Device.WiFi.Radio.{i}.Channel", DataType: node.DataTypeInt},
	}}
	require.NoError(t, Save(path, doc))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, node.OriginRequirement, loaded.Nodes[0].Origin)
}

func TestDetectFormatFromContent(t *testing.T) {
	assert.Equal(t, FormatJSON, detectFormatFromContent([]byte(`{"nodes": []}`)))
	assert.Equal(t, FormatYAML, detectFormatFromContent([]byte("nodes:\n  - path: Device.\n")))
	assert.Equal(t, FormatUnknown, detectFormatFromContent(nil))
}
