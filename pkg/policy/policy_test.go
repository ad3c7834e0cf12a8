// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause
package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSources(routers ...string) []PolicySource {
	sources := make([]PolicySource, len(routers))
	for i, r := range routers {
		sources[i] = NewPolicySource(r)
	}
	return sources
}

func testDestinations(encodings ...string) []PolicyDestination {
	destinations := make([]PolicyDestination, len(encodings))
	for i, enc := range encodings {
		d, ok := ParseDestination(enc)
		if !ok {
			panic("bad test destination: " + enc)
		}
		destinations[i] = d
	}
	return destinations
}

// TestPolicyRendering tests the canonical rendering of each variant
func TestPolicyRendering(t *testing.T) {
	srcs := testSources("r1")
	dsts := testDestinations("r2:eth0 (10.0.0.0/24)")

	testCases := []struct {
		name     string
		policy   Policy
		expected string
	}{
		{
			name:     "reachability",
			policy:   NewReachabilityPolicy(srcs, dsts, false),
			expected: "reachability policy: {r1}->{r2:eth0 (10.0.0.0/24)}, negate=false",
		},
		{
			name:     "isolation",
			policy:   NewReachabilityPolicy(srcs, dsts, true),
			expected: "reachability policy: {r1}->{r2:eth0 (10.0.0.0/24)}, negate=true",
		},
		{
			name:     "waypoint",
			policy:   NewWaypointPolicy(srcs, dsts, "fw1"),
			expected: "waypoint policy: {r1}->{r2:eth0 (10.0.0.0/24)}, negate=false - Waypoints fw1",
		},
		{
			name:     "load balancing",
			policy:   NewLoadBalancingPolicy(srcs, dsts, 3),
			expected: "loadbalancing policy: {r1}->{r2:eth0 (10.0.0.0/24)}, negate=false - NumPaths 3",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.policy.String())
		})
	}
}

// TestPolicyRenderingMultipleEndpoints tests comma-joined member rendering
func TestPolicyRenderingMultipleEndpoints(t *testing.T) {
	p := NewReachabilityPolicy(
		testSources("r1", "r2"),
		testDestinations("r3:eth0 (10.0.0.0/24)", "r4:eth1 (10.0.1.0/24)"),
		false,
	)

	expected := "reachability policy: {r1, r2}->{r3:eth0 (10.0.0.0/24), r4:eth1 (10.0.1.0/24)}, negate=false"
	assert.Equal(t, expected, p.String())
}

// TestPolicyCoverage tests coverage = |sources| x |destinations|
func TestPolicyCoverage(t *testing.T) {
	testCases := []struct {
		name     string
		sources  []PolicySource
		dests    []PolicyDestination
		expected int
	}{
		{
			name:     "one by one",
			sources:  testSources("r1"),
			dests:    testDestinations("r2:eth0 (10.0.0.0/24)"),
			expected: 1,
		},
		{
			name:     "two by three",
			sources:  testSources("r1", "r2"),
			dests:    testDestinations("r3:eth0 (10.0.0.0/24)", "r4:eth0 (10.0.1.0/24)", "r5:eth0 (10.0.2.0/24)"),
			expected: 6,
		},
		{
			name:     "degenerate empty destinations",
			sources:  testSources("r1"),
			dests:    nil,
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewReachabilityPolicy(tc.sources, tc.dests, false)
			assert.Equal(t, tc.expected, p.Coverage())
		})
	}
}

// TestPolicyEqual tests structural equality per variant
func TestPolicyEqual(t *testing.T) {
	srcs := testSources("r1")
	dsts := testDestinations("r2:eth0 (10.0.0.0/24)")

	t.Run("reachability", func(t *testing.T) {
		a := NewReachabilityPolicy(srcs, dsts, false)
		b := NewReachabilityPolicy(srcs, dsts, false)
		negated := NewReachabilityPolicy(srcs, dsts, true)

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(negated))
	})

	t.Run("source order matters", func(t *testing.T) {
		a := NewReachabilityPolicy(testSources("r1", "r2"), dsts, false)
		b := NewReachabilityPolicy(testSources("r2", "r1"), dsts, false)
		assert.False(t, a.Equal(b))
	})

	t.Run("waypoint", func(t *testing.T) {
		a := NewWaypointPolicy(srcs, dsts, "fw1")
		b := NewWaypointPolicy(srcs, dsts, "fw1")
		c := NewWaypointPolicy(srcs, dsts, "fw2")

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})

	t.Run("load balancing", func(t *testing.T) {
		a := NewLoadBalancingPolicy(srcs, dsts, 2)
		b := NewLoadBalancingPolicy(srcs, dsts, 2)
		c := NewLoadBalancingPolicy(srcs, dsts, 3)

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})

	t.Run("cross variant is never equal", func(t *testing.T) {
		reach := NewReachabilityPolicy(srcs, dsts, false)
		wp := NewWaypointPolicy(srcs, dsts, "fw1")
		lb := NewLoadBalancingPolicy(srcs, dsts, 2)

		assert.False(t, reach.Equal(wp))
		assert.False(t, wp.Equal(lb))
		assert.False(t, lb.Equal(reach))
	})
}

// TestPolicyHashConsistency tests equal => equal hash and equal rendering
func TestPolicyHashConsistency(t *testing.T) {
	srcs := testSources("r1")
	dsts := testDestinations("r2:eth0 (10.0.0.0/24)")

	pairs := []struct {
		name string
		a, b Policy
	}{
		{
			name: "reachability",
			a:    NewReachabilityPolicy(srcs, dsts, false),
			b:    NewReachabilityPolicy(srcs, dsts, false),
		},
		{
			name: "waypoint",
			a:    NewWaypointPolicy(srcs, dsts, "fw1"),
			b:    NewWaypointPolicy(srcs, dsts, "fw1"),
		},
		{
			name: "load balancing",
			a:    NewLoadBalancingPolicy(srcs, dsts, 2),
			b:    NewLoadBalancingPolicy(srcs, dsts, 2),
		},
	}

	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, tc.a.Equal(tc.b))
			assert.Equal(t, tc.a.String(), tc.b.String())
			assert.Equal(t, Hash(tc.a), Hash(tc.b))
			assert.Equal(t, HashKey(tc.a), HashKey(tc.b))
		})
	}
}

// TestPolicyHashDistinguishesVariantFields tests that kind-specific fields
// reach the rendering and therefore the hash
func TestPolicyHashDistinguishesVariantFields(t *testing.T) {
	srcs := testSources("r1")
	dsts := testDestinations("r2:eth0 (10.0.0.0/24)")

	assert.NotEqual(t,
		Hash(NewWaypointPolicy(srcs, dsts, "fw1")),
		Hash(NewWaypointPolicy(srcs, dsts, "fw2")))
	assert.NotEqual(t,
		Hash(NewLoadBalancingPolicy(srcs, dsts, 2)),
		Hash(NewLoadBalancingPolicy(srcs, dsts, 3)))
	assert.NotEqual(t,
		Hash(NewReachabilityPolicy(srcs, dsts, false)),
		Hash(NewReachabilityPolicy(srcs, dsts, true)))
}

// TestMakeDispatch tests factory dispatch per kind
func TestMakeDispatch(t *testing.T) {
	srcs := testSources("r1")
	dsts := testDestinations("r2:eth0 (10.0.0.0/24)")

	t.Run("reachability", func(t *testing.T) {
		p := Make(Reachability, srcs, dsts, Specifics{})
		require.NotNil(t, p)
		assert.Equal(t, KindReachability, p.Kind())
		assert.False(t, p.Negated())
	})

	t.Run("isolation builds negated reachability", func(t *testing.T) {
		p := Make(Isolation, srcs, dsts, Specifics{})
		require.NotNil(t, p)
		assert.Equal(t, KindReachability, p.Kind())
		assert.True(t, p.Negated())
		_, ok := p.(*ReachabilityPolicy)
		assert.True(t, ok)
	})

	t.Run("waypoint", func(t *testing.T) {
		p := Make(Waypoint, srcs, dsts, LabelSpecifics("fw1"))
		require.NotNil(t, p)
		wp, ok := p.(*WaypointPolicy)
		require.True(t, ok)
		assert.Equal(t, "fw1", wp.Waypoints())
	})

	t.Run("load balancing simple", func(t *testing.T) {
		p := Make(LoadBalancingSimple, srcs, dsts, NumericSpecifics(2))
		require.NotNil(t, p)
		lb, ok := p.(*LoadBalancingPolicy)
		require.True(t, ok)
		assert.Equal(t, 2, lb.NumPaths())
	})

	t.Run("unsupported kinds yield nil", func(t *testing.T) {
		assert.Nil(t, Make(LoadBalancingEdgeDisjoint, srcs, dsts, NumericSpecifics(2)))
		assert.Nil(t, Make(LoadBalancingNodeDisjoint, srcs, dsts, NumericSpecifics(2)))
		assert.Nil(t, Make(PolicyType(0), srcs, dsts, Specifics{}))
	})
}

// TestParseSpecifics tests the numeric/label union resolution
func TestParseSpecifics(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		numeric bool
		num     int
		label   string
	}{
		{name: "digits", input: "3", numeric: true, num: 3},
		{name: "zero", input: "0", numeric: true, num: 0},
		{name: "multi digit", input: "42", numeric: true, num: 42},
		{name: "label", input: "fw1", label: "fw1"},
		{name: "signed is not all digits", input: "-3", label: "-3"},
		{name: "mixed", input: "3a", label: "3a"},
		{name: "empty", input: "", label: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := ParseSpecifics(tc.input)
			assert.Equal(t, tc.numeric, s.Numeric())
			if tc.numeric {
				assert.Equal(t, tc.num, s.Num())
			} else {
				assert.Equal(t, tc.label, s.Label())
			}
			assert.Equal(t, tc.input, s.String())
		})
	}
}
