package httpcore

import "strconv"

// HTTPVersion identifies an HTTP protocol version as a (major, minor) pair
// with total lexicographic order: major first, minor on tie. It is a plain
// value type; == gives structural equality.
type HTTPVersion struct {
	Major int
	Minor int
}

// Well-known protocol versions.
var (
	Version09 = HTTPVersion{0, 9}
	Version10 = HTTPVersion{1, 0}
	Version11 = HTTPVersion{1, 1}
	Version20 = HTTPVersion{2, 0}
)

// Version normalizes a raw (major, minor) pair into an HTTPVersion.
func Version(major, minor int) HTTPVersion {
	return HTTPVersion{Major: major, Minor: minor}
}

// Compare returns -1, 0 or +1 as v sorts before, equal to or after o.
func (v HTTPVersion) Compare(o HTTPVersion) int {
	if v.Major != o.Major {
		if v.Major < o.Major {
			return -1
		}
		return 1
	}
	if v.Minor != o.Minor {
		if v.Minor < o.Minor {
			return -1
		}
		return 1
	}
	return 0
}

// ComparePair compares v against a raw (major, minor) pair.
func (v HTTPVersion) ComparePair(major, minor int) int {
	return v.Compare(Version(major, minor))
}

// EqualPair reports whether v equals the raw (major, minor) pair.
func (v HTTPVersion) EqualPair(major, minor int) bool {
	return v.Major == major && v.Minor == minor
}

// AtLeast reports whether v is the given version or newer. Connection
// persistence and transfer-encoding checks read as v.AtLeast(1, 1).
func (v HTTPVersion) AtLeast(major, minor int) bool {
	return v.ComparePair(major, minor) >= 0
}

// Pair returns the raw (major, minor) components.
func (v HTTPVersion) Pair() (major, minor int) {
	return v.Major, v.Minor
}

func (v HTTPVersion) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}
