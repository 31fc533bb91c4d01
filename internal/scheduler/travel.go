package scheduler

import "strings"

// Travel estimation is a stand-in for a real routing or distance API:
// locations map to zone offsets by keyword, and the estimate is a flat
// base plus the offset delta. Good enough to rank crews by rough
// proximity, nothing more.

const travelBaseMinutes = 15

// defaultZoneOffset is used when no keyword matches.
const defaultZoneOffset = 30

var zoneOffsets = []struct {
	keyword string
	offset  int
}{
	{"downtown", 0},
	{"midtown", 10},
	{"north", 5},
	{"south", 25},
	{"east", 15},
	{"west", 20},
}

func zoneOffset(location string) int {
	loc := strings.ToLower(location)
	for _, z := range zoneOffsets {
		if strings.Contains(loc, z.keyword) {
			return z.offset
		}
	}
	return defaultZoneOffset
}

// EstimateTravelMinutes estimates drive time between two location
// strings.
func EstimateTravelMinutes(from, to string) int {
	a, b := zoneOffset(from), zoneOffset(to)
	d := a - b
	if d < 0 {
		d = -d
	}
	return travelBaseMinutes + d
}
