package install

import (
	"fmt"
	"regexp"
	"strconv"
)

// Version is a major.minor.patch triple.
type Version [3]int

// Minimum versions whose scripting libraries the probe supports.
var (
	MinPrimaryVersion   = Version{23, 1, 0}
	MinSecondaryVersion = Version{35, 6, 2}
	InterpreterVersion  = Version{3, 11, 0}
)

var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// ParseVersion returns the first version found in s. A missing patch is 0.
func ParseVersion(s string) (Version, bool) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, false
	}
	var v Version
	for i := range 3 {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Version{}, false
		}
		v[i] = n
	}
	return v, true
}

// AtLeast reports whether v >= o.
func (v Version) AtLeast(o Version) bool {
	for i := range 3 {
		if v[i] != o[i] {
			return v[i] > o[i]
		}
	}
	return true
}

// SameMinor reports whether v and o share major and minor.
func (v Version) SameMinor(o Version) bool {
	return v[0] == o[0] && v[1] == o[1]
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
}
