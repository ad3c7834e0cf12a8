// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause

// Package policy defines the vocabulary of network-wide intents used by the
// configuration verification pipeline: reachability, isolation, waypointing
// and load-balancing constraints between sets of network endpoints.
//
// It handles:
//   - The policy value model (types, sources, destinations, variants)
//   - Canonical string rendering and string-to-object parsing
//   - Ingestion of tabular policy records (CSV rows)
//   - A deduplicated policy set with optional SQLite persistence
//
// # Policy Model
//
// A policy is composed of:
//   - A kind (reachability, waypoint, loadbalancing)
//   - An ordered list of sources (router names)
//   - An ordered list of destinations (router, interface, subnet triples)
//   - A negate flag (isolation is a negated reachability policy)
//   - Kind-specific parameters (waypoint description, path count)
//
// All values are immutable once constructed. Equality is structural and
// order-sensitive; hashing is derived from the canonical rendering, so equal
// policies always hash identically.
//
// # Example Usage
//
//	src := policy.NewPolicySource("r1")
//	dst, ok := policy.ParseDestination("r2:eth0 (10.0.0.0/24)")
//	if !ok {
//	    log.Fatal("bad destination")
//	}
//
//	p := policy.Make(policy.Reachability,
//	    []policy.PolicySource{src},
//	    []policy.PolicyDestination{dst},
//	    policy.Specifics{})
//
//	fmt.Println(p)            // reachability policy: {r1}->{r2:eth0 (10.0.0.0/24)}, negate=false
//	fmt.Println(p.Coverage()) // 1
//
// # Ordering
//
// PolicyType carries a total order by declaration rank. PolicyDestination
// orders by router only, which is a partial order: two destinations on the
// same router compare as equal in rank while not being Equal. Destination
// lists are meant to be grouped by router, not fully sorted.
//
// # Thread Safety
//
// Policy values are immutable and safe to share. The Manager guards its set
// with a mutex and is safe for concurrent use.
package policy
