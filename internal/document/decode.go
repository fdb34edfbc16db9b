package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DecodeJSON parses raw JSON into a Value, preserving object member order.
// The token-level decoder is used instead of unmarshalling into map[string]any
// because Go maps would scramble the order mapping suggestions depend on.
func DecodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return Null(), fmt.Errorf("parse document: %w", err)
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Null(), err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var members []Member
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Null(), err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Null(), fmt.Errorf("object key is %T, want string", keyTok)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return Null(), err
				}
				members = append(members, Member{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Null(), err
			}
			return Object(members...), nil
		case '[':
			var elems []Value
			for dec.More() {
				el, err := decodeJSONValue(dec)
				if err != nil {
					return Null(), err
				}
				elems = append(elems, el)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Null(), err
			}
			return Array(elems...), nil
		}
		return Null(), fmt.Errorf("unexpected delimiter %v", t)
	case bool:
		return Bool(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Null(), err
		}
		return Number(f), nil
	case string:
		return String(t), nil
	case nil:
		return Null(), nil
	}
	return Null(), fmt.Errorf("unexpected token %v", tok)
}

// DecodeYAML parses raw YAML into a Value. Some quoting gateways hand back
// YAML config-style payloads; yaml.Node keeps mapping order intact.
func DecodeYAML(data []byte) (Value, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return Null(), fmt.Errorf("parse document: %w", err)
	}
	return fromYAMLNode(&n)
}

func fromYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case 0:
		// zero Node: empty input
		return Null(), nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.MappingNode:
		members := make([]Member, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			val, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return Null(), err
			}
			members = append(members, Member{Key: n.Content[i].Value, Value: val})
		}
		return Object(members...), nil
	case yaml.SequenceNode:
		elems := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			el, err := fromYAMLNode(c)
			if err != nil {
				return Null(), err
			}
			elems = append(elems, el)
		}
		return Array(elems...), nil
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return Null(), nil
		case "!!bool":
			b, err := strconv.ParseBool(n.Value)
			if err != nil {
				return String(n.Value), nil
			}
			return Bool(b), nil
		case "!!int", "!!float":
			f, err := strconv.ParseFloat(n.Value, 64)
			if err != nil {
				return String(n.Value), nil
			}
			return Number(f), nil
		default:
			return String(n.Value), nil
		}
	}
	return Null(), fmt.Errorf("parse document: unsupported node kind %d", n.Kind)
}
