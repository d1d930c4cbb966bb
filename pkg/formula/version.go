package formula

import "strings"

// versionMarker is the single character stripped from the front of a tag
const versionMarker = "v"

// DeriveVersion returns the tag with one leading "v" removed. Tags without
// the marker come back unchanged.
func DeriveVersion(tag string) string {
	return strings.TrimPrefix(tag, versionMarker)
}
