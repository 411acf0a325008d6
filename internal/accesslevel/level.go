package accesslevel

import (
	"strings"

	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/apperror"
)

// Level identifies one of the three user tiers. It doubles as the access level's id.
type Level int

const (
	Viewer    Level = 1
	Admin     Level = 2
	PowerUser Level = 3
)

// DefaultLevel is the tier assumed when none is named.
const DefaultLevel = Viewer

var levelNames = map[Level]string{
	Viewer:    "viewer",
	Admin:     "admin",
	PowerUser: "poweruser",
}

// Valid reports whether l is one of the defined tiers.
func (l Level) Valid() bool {
	_, ok := levelNames[l]
	return ok
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLevel converts an integer tag to a Level.
func ParseLevel(v int64) (Level, error) {
	l := Level(v)
	if int64(l) != v || !l.Valid() {
		return 0, apperror.InvalidArgument("accessLevelId invalid")
	}
	return l, nil
}

// ParseLevelName converts a tier name (case-insensitive) to a Level.
// An empty name yields DefaultLevel.
func ParseLevelName(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultLevel, nil
	}
	for l, n := range levelNames {
		if n == name {
			return l, nil
		}
	}
	return 0, apperror.InvalidArgument("access level name invalid")
}
