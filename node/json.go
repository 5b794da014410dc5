package node

import "encoding/json"

var nodeKnownJSONFields = map[string]bool{
	"path": true, "name": true, "data_type": true, "access": true,
	"value": true, "description": true, "is_object": true, "is_custom": true,
	"value_range": true, "events": true, "functions": true,
}

// MarshalJSON flattens Extra into the top-level object, since
// encoding/json has no equivalent of yaml's ",inline" map tag.
func (n *Node) MarshalJSON() ([]byte, error) {
	if len(n.Extra) == 0 {
		type alias Node
		return json.Marshal((*alias)(n))
	}

	m := map[string]any{"path": n.Path}
	setIfNotEmptyString(m, "name", n.Name)
	setIfNotEmptyString(m, "data_type", string(n.DataType))
	setIfNotEmptyString(m, "access", string(n.Access))
	if n.Value != nil {
		m["value"] = n.Value
	}
	setIfNotEmptyString(m, "description", n.Description)
	if n.IsObject {
		m["is_object"] = true
	}
	if n.IsCustom {
		m["is_custom"] = true
	}
	if n.ValueRange != nil {
		m["value_range"] = n.ValueRange
	}
	if len(n.Events) > 0 {
		m["events"] = n.Events
	}
	if len(n.Functions) > 0 {
		m["functions"] = n.Functions
	}
	for k, v := range n.Extra {
		m[k] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON captures any field not part of Node's declared schema into
// Extra, so an unrecognized requirement-document field survives a
// load/save round trip.
func (n *Node) UnmarshalJSON(data []byte) error {
	type alias Node
	aux := (*alias)(n)
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var extra map[string]any
	for k, v := range raw {
		if nodeKnownJSONFields[k] {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return err
		}
		extra[k] = val
	}
	n.Extra = extra
	return nil
}

func setIfNotEmptyString(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}
