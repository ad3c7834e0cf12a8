// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause
package policy

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Kind strings carried by concrete policies. Isolation is encoded as a
// negated reachability policy and shares its kind string.
const (
	KindReachability  = "reachability"
	KindWaypoint      = "waypoint"
	KindLoadBalancing = "loadbalancing"
)

// Policy is a declarative network-wide intent constraining traffic between a
// set of sources and a set of destinations. Policies are immutable after
// construction; callers must not mutate the slices returned by Sources and
// Destinations.
type Policy interface {
	// Kind returns the kind string ("reachability", "waypoint", ...).
	Kind() string

	// Sources returns the ordered source list. Order matters for equality
	// and the list is not deduplicated.
	Sources() []PolicySource

	// Destinations returns the ordered destination list.
	Destinations() []PolicyDestination

	// Negated reports whether the policy expresses the negation of its
	// nominal meaning. Only meaningful for the reachability family.
	Negated() bool

	// Coverage returns |sources| x |destinations|, a cheap proxy for how
	// many source-destination pairs the policy constrains. Computed on
	// demand, never cached.
	Coverage() int

	// Equal reports structural equality. Policies of different concrete
	// kinds are never equal.
	Equal(other Policy) bool

	// String returns the canonical human-readable rendering. Equal
	// policies render identically; Hash is derived from this rendering.
	String() string
}

// base carries the fields shared by every policy kind.
type base struct {
	kind         string
	sources      []PolicySource
	destinations []PolicyDestination
	negate       bool
}

func newBase(kind string, sources []PolicySource, destinations []PolicyDestination, negate bool) base {
	return base{
		kind:         kind,
		sources:      append([]PolicySource(nil), sources...),
		destinations: append([]PolicyDestination(nil), destinations...),
		negate:       negate,
	}
}

func (b *base) Kind() string {
	return b.kind
}

func (b *base) Sources() []PolicySource {
	return b.sources
}

func (b *base) Destinations() []PolicyDestination {
	return b.destinations
}

func (b *base) Negated() bool {
	return b.negate
}

func (b *base) Coverage() int {
	return len(b.sources) * len(b.destinations)
}

// render produces the shared rendering prefix:
// "<kind> policy: {src, ...}->{dst, ...}, negate=<bool>".
// Variant String methods append their kind-specific suffix to this.
func (b *base) render() string {
	srcs := make([]string, len(b.sources))
	for i, s := range b.sources {
		srcs[i] = s.String()
	}
	dsts := make([]string, len(b.destinations))
	for i, d := range b.destinations {
		dsts[i] = d.String()
	}
	return fmt.Sprintf("%s policy: {%s}->{%s}, negate=%t",
		b.kind, strings.Join(srcs, ", "), strings.Join(dsts, ", "), b.negate)
}

func (b *base) equalBase(o *base) bool {
	if b.kind != o.kind || b.negate != o.negate {
		return false
	}
	if len(b.sources) != len(o.sources) || len(b.destinations) != len(o.destinations) {
		return false
	}
	for i := range b.sources {
		if !b.sources[i].Equal(o.sources[i]) {
			return false
		}
	}
	for i := range b.destinations {
		if !b.destinations[i].Equal(o.destinations[i]) {
			return false
		}
	}
	return true
}

// Hash returns a 64-bit FNV-1a hash of the canonical rendering. Equal
// policies render identically, so equal policies hash identically by
// construction.
func Hash(p Policy) uint64 {
	h := fnv.New64a()
	h.Write([]byte(p.String()))
	return h.Sum64()
}

// HashKey returns the hash as a hex string, usable as a map key or API
// identifier.
func HashKey(p Policy) string {
	return strconv.FormatUint(Hash(p), 16)
}

// ReachabilityPolicy requires all declared source-destination pairs to be
// reachable, or, when negated, requires that no traffic from the sources may
// reach the destinations (isolation).
type ReachabilityPolicy struct {
	base
}

// NewReachabilityPolicy creates a reachability policy; negate turns it into
// an isolation requirement.
func NewReachabilityPolicy(sources []PolicySource, destinations []PolicyDestination, negate bool) *ReachabilityPolicy {
	return &ReachabilityPolicy{base: newBase(KindReachability, sources, destinations, negate)}
}

func (p *ReachabilityPolicy) String() string {
	return p.render()
}

func (p *ReachabilityPolicy) Equal(other Policy) bool {
	o, ok := other.(*ReachabilityPolicy)
	if !ok {
		return false
	}
	return p.equalBase(&o.base)
}

// WaypointPolicy requires traffic between sources and destinations to pass
// through the described transit points. The waypoint description is opaque
// to this model.
type WaypointPolicy struct {
	base
	waypoints string
}

// NewWaypointPolicy creates a waypoint policy.
func NewWaypointPolicy(sources []PolicySource, destinations []PolicyDestination, waypoints string) *WaypointPolicy {
	return &WaypointPolicy{
		base:      newBase(KindWaypoint, sources, destinations, false),
		waypoints: waypoints,
	}
}

// Waypoints returns the opaque waypoint description.
func (p *WaypointPolicy) Waypoints() string {
	return p.waypoints
}

func (p *WaypointPolicy) String() string {
	return fmt.Sprintf("%s - Waypoints %s", p.render(), p.waypoints)
}

func (p *WaypointPolicy) Equal(other Policy) bool {
	o, ok := other.(*WaypointPolicy)
	if !ok {
		return false
	}
	return p.equalBase(&o.base) && p.waypoints == o.waypoints
}

// LoadBalancingPolicy requires traffic between sources and destinations to
// be spread across at least NumPaths paths.
type LoadBalancingPolicy struct {
	base
	numPaths int
}

// NewLoadBalancingPolicy creates a load-balancing policy.
func NewLoadBalancingPolicy(sources []PolicySource, destinations []PolicyDestination, numPaths int) *LoadBalancingPolicy {
	return &LoadBalancingPolicy{
		base:     newBase(KindLoadBalancing, sources, destinations, false),
		numPaths: numPaths,
	}
}

// NumPaths returns the minimum number of paths traffic must be spread across.
func (p *LoadBalancingPolicy) NumPaths() int {
	return p.numPaths
}

func (p *LoadBalancingPolicy) String() string {
	return fmt.Sprintf("%s - NumPaths %d", p.render(), p.numPaths)
}

func (p *LoadBalancingPolicy) Equal(other Policy) bool {
	o, ok := other.(*LoadBalancingPolicy)
	if !ok {
		return false
	}
	return p.equalBase(&o.base) && p.numPaths == o.numPaths
}

// Make builds the concrete policy for kind. Waypoint policies consume the
// specifics as their waypoint description, simple load-balancing policies as
// their path count. Kinds without an implemented variant (both disjoint
// load-balancing kinds) yield nil.
func Make(kind PolicyType, sources []PolicySource, destinations []PolicyDestination, specifics Specifics) Policy {
	switch kind {
	case Reachability:
		return NewReachabilityPolicy(sources, destinations, false)
	case Isolation:
		return NewReachabilityPolicy(sources, destinations, true)
	case Waypoint:
		return NewWaypointPolicy(sources, destinations, specifics.String())
	case LoadBalancingSimple:
		return NewLoadBalancingPolicy(sources, destinations, specifics.Num())
	default:
		return nil
	}
}
