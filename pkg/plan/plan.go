package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// projectFiles are the names LoadProject looks for, in order.
var projectFiles = []string{"plan.yaml", "plan.yml", "plan.toml", "plan.json"}

// Load reads a plan from a YAML, TOML or JSON file, chosen by extension.
func Load(path string) (*PlanDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return ParseYAML(data)
	}
}

// LoadProject loads a plan from a project directory. It looks for
// plan.yaml, plan.yml, plan.toml or plan.json in that order. A path that is
// a regular file is loaded directly.
func LoadProject(path string) (*PlanDescription, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan path: %w", err)
	}
	if !info.IsDir() {
		return Load(path)
	}
	for _, name := range projectFiles {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
	}
	return nil, fmt.Errorf("no plan file in %s (looked for %s)", path, strings.Join(projectFiles, ", "))
}

// ParseYAML decodes a YAML plan.
func ParseYAML(data []byte) (*PlanDescription, error) {
	var p PlanDescription
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan YAML: %w", err)
	}
	return &p, nil
}

// ParseTOML decodes a TOML plan.
func ParseTOML(data []byte) (*PlanDescription, error) {
	var p PlanDescription
	if _, err := toml.Decode(string(data), &p); err != nil {
		return nil, fmt.Errorf("parsing plan TOML: %w", err)
	}
	return &p, nil
}

// ParseJSON decodes a JSON plan.
func ParseJSON(data []byte) (*PlanDescription, error) {
	var p PlanDescription
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan JSON: %w", err)
	}
	return &p, nil
}

// MarshalYAML encodes a plan as YAML.
func MarshalYAML(p *PlanDescription) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding plan YAML: %w", err)
	}
	return data, nil
}
