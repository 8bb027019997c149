package updater

import (
	"fmt"
	"strconv"
	"strings"
)

// Semver is a release version. Build metadata is dropped; a pre-release
// tag sorts before the plain release.
type Semver struct {
	Major      int
	Minor      int
	Patch      int
	PreRelease string
}

// ParseSemver parses "1.2.3", "v1.2.3" or "1.2.3-rc.1+build".
func ParseSemver(s string) (Semver, error) {
	core := strings.TrimPrefix(strings.TrimSpace(s), "v")
	core, _, _ = strings.Cut(core, "+")
	core, pre, _ := strings.Cut(core, "-")

	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Semver{}, fmt.Errorf("invalid semver: %q", s)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Semver{}, fmt.Errorf("invalid semver %q: bad component %q", s, p)
		}
		nums[i] = n
	}

	return Semver{Major: nums[0], Minor: nums[1], Patch: nums[2], PreRelease: pre}, nil
}

// String returns the version without a leading "v".
func (v Semver) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.PreRelease != "" {
		s += "-" + v.PreRelease
	}
	return s
}

// Compare returns -1, 0 or 1. Pre-release tags compare lexically.
func (v Semver) Compare(other Semver) int {
	for _, d := range [...]int{v.Major - other.Major, v.Minor - other.Minor, v.Patch - other.Patch} {
		switch {
		case d < 0:
			return -1
		case d > 0:
			return 1
		}
	}
	switch {
	case v.PreRelease == other.PreRelease:
		return 0
	case v.PreRelease == "":
		return 1
	case other.PreRelease == "":
		return -1
	}
	return strings.Compare(v.PreRelease, other.PreRelease)
}

// LessThan returns true if v < other.
func (v Semver) LessThan(other Semver) bool {
	return v.Compare(other) < 0
}
