package routing

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type RouteClass string

const (
	RouteClassAPI   RouteClass = "api"
	RouteClassOps   RouteClass = "ops"
	RouteClassOther RouteClass = "other"
)

//go:embed routes.yaml
var defaultRules []byte

type Rule struct {
	Prefix string     `yaml:"prefix"`
	Class  RouteClass `yaml:"class"`
}

type rulesFile struct {
	Version int    `yaml:"version"`
	Routes  []Rule `yaml:"routes"`
}

// LoadRules reads the route rules from path, or the built-in rules when path
// is empty.
func LoadRules(path string) ([]Rule, error) {
	raw := defaultRules
	if p := strings.TrimSpace(path); p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read route rules %s: %w", p, err)
		}
		raw = b
	}
	return ParseRules(raw)
}

func ParseRules(raw []byte) ([]Rule, error) {
	var file rulesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	if file.Version != 1 {
		return nil, fmt.Errorf("unsupported route rules version: %d", file.Version)
	}

	rules := file.Routes
	for i := range rules {
		rules[i].Prefix = strings.TrimSpace(rules[i].Prefix)
		if rules[i].Prefix == "" {
			return nil, fmt.Errorf("route rule[%d]: empty prefix", i)
		}
		if !strings.HasPrefix(rules[i].Prefix, "/") {
			return nil, fmt.Errorf("route rule[%d]: prefix must start with '/': %q", i, rules[i].Prefix)
		}
		switch rules[i].Class {
		case RouteClassAPI, RouteClassOps, RouteClassOther:
		default:
			return nil, fmt.Errorf("route rule[%d]: unknown class: %q", i, rules[i].Class)
		}
	}
	return rules, nil
}
