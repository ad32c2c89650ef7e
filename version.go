package util

import (
	"strconv"
	"strings"

	"github.com/laas/hpp-util/exception"
)

// Version is the compiled library version. Release builds set it with
//
//	-ldflags "-X github.com/laas/hpp-util.Version=4.1.0"
var Version = "4.0.0"

// VersionMismatch is the kind of the exception raised by MustCheckVersion.
var VersionMismatch = exception.NewKind("VersionMismatch")

// CheckVersion compares the version a consumer was built against with the
// compiled library version. It returns 0 if they are equal, 1 if the library
// is newer and -1 if the library is older. The last case is an error and the
// program should stop.
func CheckVersion(headerVersion string) int {
	return Compare(Version, headerVersion)
}

// MustCheckVersion panics if the library is older than headerVersion.
func MustCheckVersion(headerVersion string) {
	if CheckVersion(headerVersion) < 0 {
		panic(exception.Newf(VersionMismatch,
			"library version %s is older than required version %s", Version, headerVersion))
	}
}

// Compare compares two dot-separated versions component by component and
// returns -1, 0 or 1. The shorter version is padded with zero components, so
// "1.2" equals "1.2.0". Numeric components compare as numbers; other
// components compare as strings and sort after numeric ones.
func Compare(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := max(len(as), len(bs))
	for i := 0; i < n; i++ {
		if c := compareComponent(component(as, i), component(bs, i)); c != 0 {
			return c
		}
	}
	return 0
}

func component(parts []string, i int) string {
	if i < len(parts) && parts[i] != "" {
		return parts[i]
	}
	return "0"
}

func compareComponent(a, b string) int {
	an, aErr := strconv.ParseUint(a, 10, 64)
	bn, bErr := strconv.ParseUint(b, 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
		return 0
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}
	return strings.Compare(a, b)
}
