// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause
package policy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allKinds = []PolicyType{
	Reachability,
	Isolation,
	Waypoint,
	LoadBalancingSimple,
	LoadBalancingEdgeDisjoint,
	LoadBalancingNodeDisjoint,
}

// TestPolicyTypeString tests the serialized token form
func TestPolicyTypeString(t *testing.T) {
	testCases := []struct {
		kind     PolicyType
		expected string
	}{
		{kind: Reachability, expected: "PolicyType.Reachability"},
		{kind: Isolation, expected: "PolicyType.Isolation"},
		{kind: Waypoint, expected: "PolicyType.Waypoint"},
		{kind: LoadBalancingSimple, expected: "PolicyType.LoadBalancingSimple"},
		{kind: LoadBalancingEdgeDisjoint, expected: "PolicyType.LoadBalancingEdgeDisjoint"},
		{kind: LoadBalancingNodeDisjoint, expected: "PolicyType.LoadBalancingNodeDisjoint"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.kind.String())
		})
	}
}

// TestPolicyTypeCompareTotality tests that exactly one of <, ==, > holds for
// every pair of kinds
func TestPolicyTypeCompareTotality(t *testing.T) {
	for _, a := range allKinds {
		for _, b := range allKinds {
			t.Run(fmt.Sprintf("%s_vs_%s", a, b), func(t *testing.T) {
				cmp := a.Compare(b)
				switch {
				case a == b:
					assert.Equal(t, 0, cmp)
				default:
					assert.NotEqual(t, 0, cmp)
					assert.Equal(t, -cmp, b.Compare(a))
				}
			})
		}
	}
}

// TestPolicyTypeCompareOrder tests declaration-order ranking
func TestPolicyTypeCompareOrder(t *testing.T) {
	assert.Equal(t, -1, Reachability.Compare(Isolation))
	assert.Equal(t, -1, Isolation.Compare(Waypoint))
	assert.Equal(t, -1, Waypoint.Compare(LoadBalancingSimple))
	assert.Equal(t, 1, LoadBalancingNodeDisjoint.Compare(Reachability))
	assert.Equal(t, 0, Waypoint.Compare(Waypoint))
}

// TestParseKindToken tests recovering kinds from serialized forms
func TestParseKindToken(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected PolicyType
		ok       bool
	}{
		{name: "token form", input: "PolicyType.Reachability", expected: Reachability, ok: true},
		{name: "token form isolation", input: "PolicyType.Isolation", expected: Isolation, ok: true},
		{name: "bare member name", input: "Reachability", expected: Reachability, ok: true},
		{name: "bare load balancing", input: "LoadBalancingSimple", expected: LoadBalancingSimple, ok: true},
		{name: "wrong enum name", input: "OtherType.Reachability", ok: false},
		{name: "unknown member", input: "PolicyType.Firewall", ok: false},
		{name: "too many parts", input: "PolicyType.Reachability.Extra", ok: false},
		{name: "garbage", input: "garbage", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kind, ok := ParseKindToken(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, kind)
			}
		})
	}
}

// TestParseKindTokenRoundTrip tests String/ParseKindToken round-trip
func TestParseKindTokenRoundTrip(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			parsed, ok := ParseKindToken(kind.String())
			assert.True(t, ok)
			assert.Equal(t, kind, parsed)
		})
	}
}

// TestEqualToken tests strict token equality including malformed strings
func TestEqualToken(t *testing.T) {
	testCases := []struct {
		name     string
		kind     PolicyType
		input    string
		expected bool
	}{
		{name: "matching token", kind: Reachability, input: "PolicyType.Reachability", expected: true},
		{name: "different member", kind: Reachability, input: "PolicyType.Isolation", expected: false},
		{name: "garbage", kind: Reachability, input: "garbage", expected: false},
		{name: "bare member name rejected", kind: Reachability, input: "Reachability", expected: false},
		{name: "three parts", kind: Reachability, input: "PolicyType.Reachability.X", expected: false},
		{name: "wrong enum", kind: Waypoint, input: "KindType.Waypoint", expected: false},
		{name: "empty", kind: Waypoint, input: "", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.kind.EqualToken(tc.input))
		})
	}
}
