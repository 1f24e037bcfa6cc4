package gl

import (
	"fmt"
	"regexp"
)

var (
	glVersionRE   = regexp.MustCompile(`^(\d+)\.(\d+)`)
	glESVersionRE = regexp.MustCompile(`^OpenGL ES (\d+)\.(\d+)`)
)

// ParseVersion parses a GL_VERSION string into a {major, minor} pair.
// It accepts both desktop strings ("4.1 Metal - 88") and embedded strings
// ("OpenGL ES 3.0 Mesa 23.1"). The second result is true for OpenGL ES.
func ParseVersion(version string) ([2]int, bool, error) {
	if m := glESVersionRE.FindStringSubmatch(version); m != nil {
		return [2]int{atoi(m[1]), atoi(m[2])}, true, nil
	}
	if m := glVersionRE.FindStringSubmatch(version); m != nil {
		return [2]int{atoi(m[1]), atoi(m[2])}, false, nil
	}
	return [2]int{}, false, fmt.Errorf("unrecognized GL version string %q", version)
}

// atoi converts a regexp-matched digit string. Matches are guaranteed to be
// decimal digits, so conversion cannot fail.
func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
