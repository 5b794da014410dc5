package device

import "github.com/tr181kit/compare/node"

// typeNormalization maps a generic device API's raw type token to the
// normalized node.DataType it represents. A REST-facing device agent
// typically reports JSON-ish type names rather than CWMP's xsd: tokens.
var typeNormalization = map[string]node.DataType{
	"string":   node.DataTypeString,
	"text":     node.DataTypeString,
	"integer":  node.DataTypeInt,
	"int":      node.DataTypeInt,
	"uint":     node.DataTypeUnsignedInt,
	"long":     node.DataTypeLong,
	"ulong":    node.DataTypeUnsignedLong,
	"boolean":  node.DataTypeBoolean,
	"bool":     node.DataTypeBoolean,
	"datetime": node.DataTypeDateTime,
	"date":     node.DataTypeDateTime,
	"base64":   node.DataTypeBase64,
	"hex":      node.DataTypeHexBinary,
}

// accessNormalization maps a generic device API's raw access token to the
// normalized node.Access it represents.
var accessNormalization = map[string]node.Access{
	"r":          node.AccessReadOnly,
	"ro":         node.AccessReadOnly,
	"read":       node.AccessReadOnly,
	"readonly":   node.AccessReadOnly,
	"rw":         node.AccessReadWrite,
	"readwrite":  node.AccessReadWrite,
	"w":          node.AccessWriteOnly,
	"wo":         node.AccessWriteOnly,
	"writeonly":  node.AccessWriteOnly,
}

func normalizeType(raw string) (node.DataType, bool) {
	dt, ok := typeNormalization[raw]
	if !ok {
		return node.DataTypeString, false
	}
	return dt, true
}

func normalizeAccess(raw string) (node.Access, bool) {
	a, ok := accessNormalization[raw]
	return a, ok
}
