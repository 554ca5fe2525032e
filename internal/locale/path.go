// SPDX-License-Identifier: MIT
package locale

import "strings"

// Split decomposes a route path of the form /{locale}/{...rest}.
// When the first segment is not a supported locale the implied locale is
// English, rest is the full segment list and ok is false.
func Split(path string) (current Locale, rest []string, ok bool) {
	segments := segmentsOf(path)
	if len(segments) > 0 {
		if l, found := Parse(segments[0]); found && segments[0] == string(l) {
			return l, segments[1:], true
		}
	}
	return Default, segments, false
}

// LocalePath rebuilds path with target as its locale segment.
// Non-locale segments are kept verbatim and in order.
func LocalePath(path string, target Locale) string {
	_, rest, _ := Split(path)
	parts := make([]string, 0, len(rest)+1)
	parts = append(parts, string(target))
	parts = append(parts, rest...)
	return "/" + strings.Join(parts, "/")
}

// OppositeLocalePath switches path to the other locale.
func OppositeLocalePath(path string) string {
	current, _, _ := Split(path)
	return LocalePath(path, Opposite(current))
}

func segmentsOf(path string) []string {
	raw := strings.Split(path, "/")
	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
