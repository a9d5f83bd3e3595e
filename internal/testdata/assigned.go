package testdata

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Unicode versions, newest first, package rangetable may carry assigned-tables for.
var assignedVersions = []string{
	"16.0.0", "15.1.0", "15.0.0", "14.0.0", "13.0.0", "12.0.0", "11.0.0", "10.0.0", "9.0.0",
}

// Assigned returns the table of code-points assigned in a Unicode version,
// together with the version the table belongs to. If package rangetable does
// not know version, the newest older version it knows is used instead.
// Assignments are never withdrawn, so the table then is a subset of the
// code-points assigned in version. Assigned returns nil if no older table is
// available.
func Assigned(version string) (*unicode.RangeTable, string) {
	if t := rangetable.Assigned(version); t != nil {
		return t, version
	}
	for _, v := range assignedVersions {
		if compareVersions(v, version) > 0 {
			continue
		}
		if t := rangetable.Assigned(v); t != nil {
			return t, v
		}
	}
	return nil, ""
}

// compareVersions compares two versions of the form major.minor.patch.
func compareVersions(a, b string) int {
	var va, vb [3]int
	fmt.Sscanf(a, "%d.%d.%d", &va[0], &va[1], &va[2])
	fmt.Sscanf(b, "%d.%d.%d", &vb[0], &vb[1], &vb[2])
	for i := range va {
		if va[i] != vb[i] {
			if va[i] < vb[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
