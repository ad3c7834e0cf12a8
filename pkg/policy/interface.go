// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause
package policy

// Store defines the policy-set operations the API layer depends on.
// This interface is useful for testing and dependency injection.
type Store interface {
	AddPolicy(p Policy) error
	RemovePolicy(key string) error
	GetPolicy(key string) (Policy, bool)
	ListPolicies() []Policy
	Count() int
	TotalCoverage() int
}

// Ensure Manager implements Store interface
var _ Store = (*Manager)(nil)
