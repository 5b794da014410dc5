package cwmp

import "github.com/tr181kit/compare/node"

// typeNormalization maps a hook's raw CWMP type token to the normalized
// node.DataType it represents. Pinned as data per the coercion-table
// pattern shared with validator.coercionTable, rather than a type-switch.
var typeNormalization = map[string]node.DataType{
	"xsd:string":       node.DataTypeString,
	"string":           node.DataTypeString,
	"xsd:int":          node.DataTypeInt,
	"xsd:int32":        node.DataTypeInt,
	"int":              node.DataTypeInt,
	"xsd:unsignedInt":  node.DataTypeUnsignedInt,
	"unsignedInt":      node.DataTypeUnsignedInt,
	"xsd:long":         node.DataTypeLong,
	"long":             node.DataTypeLong,
	"xsd:unsignedLong": node.DataTypeUnsignedLong,
	"unsignedLong":     node.DataTypeUnsignedLong,
	"xsd:boolean":      node.DataTypeBoolean,
	"boolean":          node.DataTypeBoolean,
	"xsd:dateTime":     node.DataTypeDateTime,
	"dateTime":         node.DataTypeDateTime,
	"xsd:base64Binary": node.DataTypeBase64,
	"base64":           node.DataTypeBase64,
	"xsd:hexBinary":    node.DataTypeHexBinary,
	"hexBinary":        node.DataTypeHexBinary,
}

// accessNormalization maps a hook's raw CWMP access token to the
// normalized node.Access it represents.
var accessNormalization = map[string]node.Access{
	"read":       node.AccessReadOnly,
	"ro":         node.AccessReadOnly,
	"readonly":   node.AccessReadOnly,
	"read-only":  node.AccessReadOnly,
	"readwrite":  node.AccessReadWrite,
	"rw":         node.AccessReadWrite,
	"read-write": node.AccessReadWrite,
	"write":      node.AccessWriteOnly,
	"wo":         node.AccessWriteOnly,
	"writeonly":  node.AccessWriteOnly,
	"write-only": node.AccessWriteOnly,
}

// normalizeType maps raw into a node.DataType, reporting false (and
// defaulting to node.DataTypeString) when raw is not recognized.
func normalizeType(raw string) (node.DataType, bool) {
	dt, ok := typeNormalization[raw]
	if !ok {
		return node.DataTypeString, false
	}
	return dt, true
}

// normalizeAccess maps raw into a node.Access, reporting false when raw is
// not recognized.
func normalizeAccess(raw string) (node.Access, bool) {
	a, ok := accessNormalization[raw]
	return a, ok
}
