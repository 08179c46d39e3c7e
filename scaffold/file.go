package scaffold

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/leetgen/docfmt"
)

// DefaultConfigFile is the project file looked up in the working directory.
const DefaultConfigFile = ".leetgen.yaml"

// ErrInvalidConfig is returned when a project file cannot be read or does
// not match [Schema].
var ErrInvalidConfig = errors.New("invalid config")

const durationPattern = `^([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$`

// FileConfig is the content of a project file. Every field is optional.
type FileConfig struct {
	OutDir       string   `json:"outDir,omitempty"       jsonschema:"directory generated solution files are written to"       yaml:"outDir,omitempty"`
	Language     string   `json:"language,omitempty"     jsonschema:"language of generated solution files"                     yaml:"language,omitempty"`
	HelperImport string   `json:"helperImport,omitempty" jsonschema:"module specifier the helper library is imported from"     yaml:"helperImport,omitempty"`
	HelperDir    string   `json:"helperDir,omitempty"    jsonschema:"directory the helper library is written to"              yaml:"helperDir,omitempty"`
	Timeout      string   `json:"timeout,omitempty"      jsonschema:"maximum run time of a solution file, as a duration"      yaml:"timeout,omitempty"`
	Endpoint     string   `json:"endpoint,omitempty"     jsonschema:"GraphQL endpoint problems are fetched from"              yaml:"endpoint,omitempty"`
	Command      []string `json:"command,omitempty"      jsonschema:"command and arguments that run a solution file"          yaml:"command,omitempty"`
	Width        int      `json:"width,omitempty"        jsonschema:"column width of generated documentation comments"        yaml:"width,omitempty"`
}

// TimeoutDuration parses Timeout. It returns zero when Timeout is unset.
func (fc *FileConfig) TimeoutDuration() (time.Duration, error) {
	if fc.Timeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(fc.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout: %w", ErrInvalidConfig, err)
	}

	return d, nil
}

// Schema returns the JSON Schema project files are validated against.
func Schema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[FileConfig](nil)
	if err != nil {
		return nil, fmt.Errorf("infer config schema: %w", err)
	}

	s.Schema = "https://json-schema.org/draft/2020-12/schema"
	s.Title = "leetgen project configuration"

	s.Properties["language"].Enum = []any{string(TypeScript), string(JavaScript)}
	s.Properties["timeout"].Pattern = durationPattern
	s.Properties["width"].Minimum = jsonschema.Ptr(float64(docfmt.PrefixWidth + 1))
	s.Properties["command"].MinItems = jsonschema.Ptr(1)

	return s, nil
}

// LoadFile reads and validates the project file at path. A missing file
// yields nil and no error when optional is set.
func LoadFile(path string, optional bool) (*FileConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Config path from CLI flag is expected.
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return nil, nil //nolint:nilnil // No file, no config.
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	fc, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return fc, nil
}

// ParseFile decodes and validates YAML project file content.
func ParseFile(data []byte) (*FileConfig, error) {
	fc := &FileConfig{}
	if len(bytes.TrimSpace(data)) == 0 {
		return fc, nil
	}

	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var instance any

	err = json.Unmarshal(raw, &instance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	schema, err := Schema()
	if err != nil {
		return nil, err
	}

	resolved, err := schema.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolve config schema: %w", err)
	}

	err = resolved.Validate(instance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	err = json.Unmarshal(raw, fc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return fc, nil
}
