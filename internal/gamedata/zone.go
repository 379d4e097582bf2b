package gamedata

import (
	"regexp"
	"strconv"
	"strings"
)

// ZoneRecord describes a single game area.
type ZoneRecord struct {
	// ID is the unique area identifier, e.g. "1_1_7_2". The format is
	// difficulty_act_index with an optional sub-index.
	ID string `json:"id"`

	// Name is the display name shown in game, e.g. "Upper Prison".
	Name string `json:"name"`

	// MapName is an alternate display name used by the world map for
	// some areas. Empty when the area has no alternate name.
	MapName string `json:"map_name,omitempty"`
}

var areaIDPattern = regexp.MustCompile(`^[0-9a-z_]+$`)

// IsAreaID reports whether s is syntactically an area id rather than a
// display name. Display names always contain uppercase letters or
// spaces, so the character class is enough to tell them apart.
func IsAreaID(s string) bool {
	return areaIDPattern.MatchString(s)
}

// ActOf parses the act number encoded in an area id. The second
// underscore-separated component carries the act, e.g. "1_4_3_2" is an
// act 4 area. Returns 0 when the id does not encode an act.
func ActOf(id string) int {
	parts := strings.Split(id, "_")
	if len(parts) < 2 {
		return 0
	}
	act, err := strconv.Atoi(parts[1])
	if err != nil || act < 1 {
		return 0
	}
	return act
}
