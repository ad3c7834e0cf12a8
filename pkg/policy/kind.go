// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause
package policy

import (
	"fmt"
	"strings"
)

// PolicyType enumerates the supported policy kinds. The zero value is not a
// valid kind. Declaration order defines the rank used by Compare.
type PolicyType int

const (
	Reachability PolicyType = iota + 1
	Isolation
	Waypoint
	LoadBalancingSimple
	LoadBalancingEdgeDisjoint
	LoadBalancingNodeDisjoint
)

var kindNames = map[PolicyType]string{
	Reachability:              "Reachability",
	Isolation:                 "Isolation",
	Waypoint:                  "Waypoint",
	LoadBalancingSimple:       "LoadBalancingSimple",
	LoadBalancingEdgeDisjoint: "LoadBalancingEdgeDisjoint",
	LoadBalancingNodeDisjoint: "LoadBalancingNodeDisjoint",
}

// String returns the serialized token form, e.g. "PolicyType.Reachability".
// This is the form policy kinds survive as when policies pass through a
// textual medium; ParseKindToken is its inverse.
func (t PolicyType) String() string {
	if name, ok := kindNames[t]; ok {
		return "PolicyType." + name
	}
	return fmt.Sprintf("PolicyType.%d", int(t))
}

// Compare ranks policy types by declaration order. It returns -1 if t ranks
// before o, 0 if they are the same kind, and 1 if t ranks after o.
func (t PolicyType) Compare(o PolicyType) int {
	switch {
	case t < o:
		return -1
	case t > o:
		return 1
	default:
		return 0
	}
}

// ParseKindToken recovers a PolicyType from its serialized form. Both the
// token form "PolicyType.Reachability" and the bare member name
// "Reachability" are accepted, since tabular sources carry either. The
// second return is false for anything else.
func ParseKindToken(s string) (PolicyType, bool) {
	name := s
	if enum, member, ok := strings.Cut(s, "."); ok {
		if enum != "PolicyType" || strings.Contains(member, ".") {
			return 0, false
		}
		name = member
	}
	for t, n := range kindNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// EqualToken reports whether s is exactly the token form of t. Strings that
// do not split into exactly two dot-separated parts never match.
func (t PolicyType) EqualToken(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return false
	}
	return parts[0] == "PolicyType" && parts[1] == kindNames[t]
}
