package tether

import (
	"bytes"
	"encoding/json"
	"encoding/xml"

	"gopkg.in/yaml.v3"
)

// Codec defines the deserialization contract for loaded sources.
// Implement this interface to use alternative formats like TOML, HCL, or custom binary formats.
type Codec interface {
	// Unmarshal deserializes bytes into a value.
	Unmarshal(data []byte, v any) error

	// ContentType returns the MIME type for observability and debugging.
	ContentType() string
}

// JSONCodec implements Codec using encoding/json.
type JSONCodec struct{}

// Unmarshal deserializes JSON bytes into v.
func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// ContentType returns the JSON MIME type.
func (JSONCodec) ContentType() string {
	return "application/json"
}

// YAMLCodec implements Codec using gopkg.in/yaml.v3.
type YAMLCodec struct{}

// Unmarshal deserializes YAML bytes into v.
func (YAMLCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// ContentType returns the YAML MIME type.
func (YAMLCodec) ContentType() string {
	return "application/x-yaml"
}

// XMLCodec implements Codec using encoding/xml.
type XMLCodec struct{}

// Unmarshal deserializes XML bytes into v.
func (XMLCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

// ContentType returns the XML MIME type.
func (XMLCodec) ContentType() string {
	return "application/xml"
}

// AutoCodec detects the format from the first significant byte:
// '{' or '[' is JSON, '<' is XML, anything else is YAML.
// It is the default codec of a Loader.
type AutoCodec struct{}

// Unmarshal detects the format of data and deserializes it into v.
func (AutoCodec) Unmarshal(data []byte, v any) error {
	return detect(data).Unmarshal(data, v)
}

// ContentType returns a generic MIME type; the concrete format is only known per payload.
func (AutoCodec) ContentType() string {
	return "application/octet-stream"
}

func detect(data []byte) Codec {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return YAMLCodec{}
	}
	switch trimmed[0] {
	case '{', '[':
		return JSONCodec{}
	case '<':
		return XMLCodec{}
	default:
		return YAMLCodec{}
	}
}

var (
	_ Codec = JSONCodec{}
	_ Codec = YAMLCodec{}
	_ Codec = XMLCodec{}
	_ Codec = AutoCodec{}
)
