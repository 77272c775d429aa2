// Package protobuf reads and writes proto messages in the encoding named by
// the file extension: .json (protojson), .pbtext (prototext) or anything
// else (binary wire format).
package protobuf

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
)

type marshaler func(m proto.Message) ([]byte, error)
type unmarshaler func(b []byte, m proto.Message) error

var prettyJSON = protojson.MarshalOptions{
	Multiline: true,
	Indent:    "  ",
}

var prettyText = prototext.MarshalOptions{
	Multiline: true,
	Indent:    "  ",
}

func unmarshalerForFilename(filename string) unmarshaler {
	switch filepath.Ext(filename) {
	case ".json":
		return protojson.Unmarshal
	case ".pbtext":
		return prototext.Unmarshal
	}
	return proto.Unmarshal
}

func marshalerForFilename(filename string) marshaler {
	switch filepath.Ext(filename) {
	case ".json":
		return prettyJSON.Marshal
	case ".pbtext":
		return prettyText.Marshal
	}
	return proto.Marshal
}

// ReadFile decodes the file into message.
func ReadFile(filename string, message proto.Message) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read %q: %w", filename, err)
	}
	if err := unmarshalerForFilename(filename)(data, message); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return nil
}

// WriteFile encodes message into the file.
func WriteFile(filename string, message proto.Message) error {
	data, err := marshalerForFilename(filename)(message)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// WriteTo encodes message to out using the encoding of filename.
func WriteTo(filename string, message proto.Message, out io.Writer) error {
	data, err := marshalerForFilename(filename)(message)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// StableJSON returns the indented JSON form of message.  protojson output
// whitespace is randomized between builds, so it is reformatted by
// encoding/json.
func StableJSON(message proto.Message) (string, error) {
	data, err := protojson.Marshal(message)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}
	var rm json.RawMessage = data
	data2, err := json.MarshalIndent(rm, "", " ")
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(data2), nil
}
