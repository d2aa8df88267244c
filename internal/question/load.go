package question

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed banks/*.yml
var embeddedBanks embed.FS

// DefaultBankName is the embedded bank served when no bank file is configured.
const DefaultBankName = "middle-earth.yml"

// Format selects the decoder for bank data.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnrecognizedBank indicates data that is neither a question list nor a bank object.
var ErrUnrecognizedBank = errors.New("bank data is not a list of questions")

// FormatFromPath picks a decoder based on the file extension.
func FormatFromPath(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// LoadBank reads and decodes a question bank file, or the embedded bank when path is empty.
func LoadBank(path string) (Bank, error) {
	data, format, err := ReadSource(path)
	if err != nil {
		return Bank{}, err
	}
	return Decode(data, format)
}

// ReadSource returns the raw bank data at path and its format. An empty path selects the embedded bank.
func ReadSource(path string) ([]byte, Format, error) {
	if path == "" {
		data, err := DefaultData()
		return data, FormatYAML, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read question bank: %w", err)
	}
	return data, FormatFromPath(path), nil
}

// Default decodes the embedded sample bank.
func Default() (Bank, error) {
	data, err := DefaultData()
	if err != nil {
		return Bank{}, err
	}
	return Decode(data, FormatYAML)
}

// DefaultData returns the raw embedded sample bank.
func DefaultData() ([]byte, error) {
	data, err := embeddedBanks.ReadFile("banks/" + DefaultBankName)
	if err != nil {
		return nil, fmt.Errorf("read embedded bank: %w", err)
	}
	return data, nil
}

// Decode parses bank data. Both a bank object and a bare list of questions are accepted.
func Decode(data []byte, format Format) (Bank, error) {
	if format == FormatJSON {
		return decodeJSONBank(data)
	}
	return decodeYAMLBank(data)
}

func decodeJSONBank(data []byte) (Bank, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Bank{}, ErrUnrecognizedBank
	}
	var bank Bank
	switch trimmed[0] {
	case '[':
		if err := decodeJSONDocument(trimmed, &bank.Questions); err != nil {
			return Bank{}, err
		}
	case '{':
		if err := decodeJSONDocument(trimmed, &bank); err != nil {
			return Bank{}, err
		}
	default:
		return Bank{}, ErrUnrecognizedBank
	}
	return bank, nil
}

func decodeJSONDocument(data []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse json: multiple documents are not supported")
		}
		return fmt.Errorf("parse json: %w", err)
	}
	return nil
}

func decodeYAMLBank(data []byte) (Bank, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Bank{}, fmt.Errorf("parse yaml: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return Bank{}, ErrUnrecognizedBank
	}
	var bank Bank
	switch root.Content[0].Kind {
	case yaml.SequenceNode:
		if err := decodeYAMLDocument(data, &bank.Questions); err != nil {
			return Bank{}, err
		}
	case yaml.MappingNode:
		if err := decodeYAMLDocument(data, &bank); err != nil {
			return Bank{}, err
		}
	default:
		return Bank{}, ErrUnrecognizedBank
	}
	return bank, nil
}

func decodeYAMLDocument(data []byte, target any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}
