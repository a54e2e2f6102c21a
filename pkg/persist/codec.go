// Package persist provides codec-based file persistence for analysis results.
package persist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File extensions for supported codecs.
const (
	jsonExtension = ".json"
	yamlExtension = ".yaml"
)

// Default indentation for pretty-printed JSON.
const defaultIndent = "  "

// resultDirPerm is the permission mode for created result directories.
const resultDirPerm = 0o750

// Codec defines how a result is serialized and deserialized.
type Codec interface {
	// Encode writes the result to the writer.
	Encode(w io.Writer, result any) error
	// Decode reads the result from the reader.
	Decode(r io.Reader, result any) error
	// Extension returns the file extension for this codec (e.g., ".json", ".yaml").
	Extension() string
}

// JSONCodec implements Codec using JSON encoding with optional indentation.
type JSONCodec struct {
	// Indent specifies the indentation string. Empty string means compact JSON.
	Indent string
}

// NewJSONCodec creates a JSON codec with pretty-printing (2-space indent).
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: defaultIndent}
}

// Encode implements Codec.Encode using JSON encoding.
func (c *JSONCodec) Encode(w io.Writer, result any) error {
	encoder := json.NewEncoder(w)
	if c.Indent != "" {
		encoder.SetIndent("", c.Indent)
	}

	err := encoder.Encode(result)
	if err != nil {
		return fmt.Errorf("json encode: %w", err)
	}

	return nil
}

// Decode implements Codec.Decode using JSON decoding.
func (c *JSONCodec) Decode(r io.Reader, result any) error {
	decoder := json.NewDecoder(r)

	err := decoder.Decode(result)
	if err != nil {
		return fmt.Errorf("json decode: %w", err)
	}

	return nil
}

// Extension implements Codec.Extension for JSON files.
func (c *JSONCodec) Extension() string {
	return jsonExtension
}

// YAMLCodec implements Codec using YAML encoding.
type YAMLCodec struct{}

// NewYAMLCodec creates a YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Encode implements Codec.Encode using YAML encoding.
func (c *YAMLCodec) Encode(w io.Writer, result any) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()

	err := encoder.Encode(result)
	if err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}

	return nil
}

// Decode implements Codec.Decode using YAML decoding.
func (c *YAMLCodec) Decode(r io.Reader, result any) error {
	decoder := yaml.NewDecoder(r)

	err := decoder.Decode(result)
	if err != nil {
		return fmt.Errorf("yaml decode: %w", err)
	}

	return nil
}

// Extension implements Codec.Extension for YAML files.
func (c *YAMLCodec) Extension() string {
	return yamlExtension
}

// SaveResult saves the given result to a file in the specified directory,
// creating the directory if it does not exist. The filename is constructed
// from the basename and the codec's extension.
func SaveResult(dir, basename string, codec Codec, result any) error {
	mkErr := os.MkdirAll(dir, resultDirPerm)
	if mkErr != nil {
		return fmt.Errorf("create result dir: %w", mkErr)
	}

	filename := basename + codec.Extension()
	path := filepath.Join(dir, filename)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create result file: %w", err)
	}
	defer file.Close()

	err = codec.Encode(file, result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	return nil
}

// LoadResult loads a result from a file in the specified directory.
// The filename is constructed from the basename and the codec's extension.
// The result parameter must be a pointer to the target struct.
func LoadResult(dir, basename string, codec Codec, result any) error {
	filename := basename + codec.Extension()
	path := filepath.Join(dir, filename)

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open result file: %w", err)
	}
	defer file.Close()

	err = codec.Decode(file, result)
	if err != nil {
		return fmt.Errorf("decode result: %w", err)
	}

	return nil
}
