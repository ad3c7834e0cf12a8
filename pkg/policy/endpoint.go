// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause
package policy

import (
	"fmt"
	"regexp"
	"strings"
)

// PolicySource identifies a traffic origin by its router name.
type PolicySource struct {
	Router string
}

// NewPolicySource creates a source for the given router.
func NewPolicySource(router string) PolicySource {
	return PolicySource{Router: router}
}

// String returns the router name, which is the canonical rendering of a
// source.
func (s PolicySource) String() string {
	return s.Router
}

// Equal reports whether both sources name the same router.
func (s PolicySource) Equal(o PolicySource) bool {
	return s.Router == o.Router
}

// Compare orders sources lexicographically by router name.
func (s PolicySource) Compare(o PolicySource) int {
	return strings.Compare(s.Router, o.Router)
}

// PolicyDestination identifies a traffic endpoint as a (router, interface,
// subnet) triple.
type PolicyDestination struct {
	Router    string
	Interface string
	Subnet    string
}

// NewPolicyDestination creates a destination for the given triple.
func NewPolicyDestination(router, iface, subnet string) PolicyDestination {
	return PolicyDestination{Router: router, Interface: iface, Subnet: subnet}
}

// String returns the canonical text encoding "{router}:{interface} ({subnet})".
// ParseDestination is its strict inverse.
func (d PolicyDestination) String() string {
	return fmt.Sprintf("%s:%s (%s)", d.Router, d.Interface, d.Subnet)
}

// Equal reports whether all three fields match.
func (d PolicyDestination) Equal(o PolicyDestination) bool {
	return d.Router == o.Router && d.Interface == o.Interface && d.Subnet == o.Subnet
}

// Compare orders destinations by router name only. This is a partial order:
// destinations on the same router compare as 0 even when their interface or
// subnet differ. Destination lists are grouped by router, not fully sorted.
func (d PolicyDestination) Compare(o PolicyDestination) int {
	return strings.Compare(d.Router, o.Router)
}

// Grammar of the canonical encoding: router excludes ':', interface excludes
// space, subnet excludes ')'.
var destinationPattern = regexp.MustCompile(`^([^:]+):([^ ]+) \(([^)]+)\)$`)

// ParseDestination recovers a destination from its canonical encoding. The
// second return is false when the input does not match the grammar; malformed
// input never panics or errors.
func ParseDestination(s string) (PolicyDestination, bool) {
	m := destinationPattern.FindStringSubmatch(s)
	if m == nil {
		return PolicyDestination{}, false
	}
	return PolicyDestination{Router: m[1], Interface: m[2], Subnet: m[3]}, true
}
