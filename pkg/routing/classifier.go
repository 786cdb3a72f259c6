package routing

import (
	"regexp"
	"sort"
	"strings"
)

var moduleAPIPrefixPattern = regexp.MustCompile(`^/[^/]+/api(?:/|$)`)

type Classifier struct {
	rules []Rule
}

// NewClassifier orders rules longest prefix first so the most specific rule
// wins.
func NewClassifier(rules []Rule) *Classifier {
	copied := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		rule.Prefix = strings.TrimSpace(rule.Prefix)
		if rule.Prefix == "" {
			continue
		}
		copied = append(copied, rule)
	}

	sort.SliceStable(copied, func(i, j int) bool {
		return len(copied[i].Prefix) > len(copied[j].Prefix)
	})

	return &Classifier{
		rules: copied,
	}
}

func (c *Classifier) Match(path string) (RouteClass, bool) {
	for _, rule := range c.rules {
		if HasPathPrefixOnBoundary(path, rule.Prefix) {
			return rule.Class, true
		}
	}
	return "", false
}

func (c *Classifier) Classify(path string) RouteClass {
	if class, ok := c.Match(path); ok {
		return class
	}
	if IsAPIPath(path) {
		return RouteClassAPI
	}
	return RouteClassOther
}

// Prefixes returns the rule prefixes registered for class.
func (c *Classifier) Prefixes(class RouteClass) []string {
	out := make([]string, 0, len(c.rules))
	for _, rule := range c.rules {
		if rule.Class == class {
			out = append(out, rule.Prefix)
		}
	}
	return out
}

// IsAPIPath reports whether path sits under a module's /<module>/api
// namespace.
func IsAPIPath(path string) bool {
	return moduleAPIPrefixPattern.MatchString(path)
}

func HasPathPrefixOnBoundary(path, prefix string) bool {
	if prefix == "" {
		return false
	}

	if prefix == "/" {
		return strings.HasPrefix(path, "/")
	}

	if !strings.HasPrefix(path, prefix) {
		return false
	}

	if len(path) == len(prefix) {
		return true
	}

	if strings.HasSuffix(prefix, "/") {
		return true
	}

	return path[len(prefix)] == '/'
}
