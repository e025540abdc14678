package orchestrator

import (
	"strings"
)

// AllObjects is the selection keyword that documents every discovered object.
const AllObjects = "all"

// Selection names the objects a run should document.
type Selection struct {
	All     bool
	Objects []string
}

// ParseSelection interprets a raw objects argument. "all" in any casing
// selects every object; anything else is a comma separated list whose items
// are trimmed, with empty items and repeats dropped.
func ParseSelection(raw string) Selection {
	if strings.EqualFold(strings.TrimSpace(raw), AllObjects) {
		return Selection{All: true}
	}
	return Objects(strings.Split(raw, ",")...)
}

// Objects builds an explicit selection, normalised like ParseSelection.
func Objects(names ...string) Selection {
	seen := make(map[string]struct{}, len(names))
	var objects []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		objects = append(objects, name)
	}
	return Selection{Objects: objects}
}

// Empty reports whether the selection names nothing.
func (s Selection) Empty() bool {
	return !s.All && len(s.Objects) == 0
}

func (s Selection) String() string {
	if s.All {
		return AllObjects
	}
	return strings.Join(s.Objects, ",")
}
