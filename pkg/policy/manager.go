// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause
package policy

import (
	"fmt"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Manager maintains the deduplicated set of policies known to the system.
// Policies are keyed by the hash of their canonical rendering, so two equal
// policies occupy one slot regardless of how they were constructed. The
// policy values themselves are immutable; the manager is safe for concurrent
// use.
type Manager struct {
	mu       sync.RWMutex
	policies map[string]Policy
	storage  Storage
}

// NewManager creates a manager without persistence.
func NewManager() *Manager {
	return &Manager{
		policies: make(map[string]Policy),
	}
}

// NewManagerWithStorage creates a manager that writes through to storage.
func NewManagerWithStorage(storage Storage) *Manager {
	return &Manager{
		policies: make(map[string]Policy),
		storage:  storage,
	}
}

// LoadPersisted loads policies from persistent storage into the set.
func (m *Manager) LoadPersisted() error {
	if m.storage == nil {
		return fmt.Errorf("no storage configured")
	}

	policies, err := m.storage.LoadPolicies()
	if err != nil {
		return fmt.Errorf("failed to load policies from storage: %w", err)
	}

	m.mu.Lock()
	for _, p := range policies {
		m.policies[HashKey(p)] = p
	}
	total := len(m.policies)
	m.mu.Unlock()

	log.Infof("Restored %d policies from storage, %d in set", len(policies), total)
	return nil
}

// AddPolicy adds a policy to the set. Adding a policy equal to one already
// present is a no-op. Persistence failures are logged but do not fail the
// add; the in-memory set is the source of truth.
func (m *Manager) AddPolicy(p Policy) error {
	if p == nil {
		return fmt.Errorf("nil policy")
	}

	key := HashKey(p)

	m.mu.Lock()
	_, existed := m.policies[key]
	m.policies[key] = p
	m.mu.Unlock()

	if existed {
		log.Debugf("Policy already present: %s", p)
		return nil
	}

	if m.storage != nil {
		if err := m.storage.SavePolicy(p); err != nil {
			log.Warnf("Failed to persist policy %s: %v", key, err)
		}
	}

	log.Infof("Policy added: %s", p)
	return nil
}

// RemovePolicy removes the policy with the given hash key.
func (m *Manager) RemovePolicy(key string) error {
	m.mu.Lock()
	p, ok := m.policies[key]
	if ok {
		delete(m.policies, key)
	}
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("policy not found: %s", key)
	}

	if m.storage != nil {
		if err := m.storage.DeletePolicy(key); err != nil {
			log.Warnf("Failed to delete policy %s from storage: %v", key, err)
		}
	}

	log.Infof("Policy removed: %s", p)
	return nil
}

// GetPolicy returns the policy with the given hash key.
func (m *Manager) GetPolicy(key string) (Policy, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.policies[key]
	return p, ok
}

// ListPolicies returns all policies ordered by their canonical rendering,
// which groups them by kind.
func (m *Manager) ListPolicies() []Policy {
	m.mu.RLock()
	policies := make([]Policy, 0, len(m.policies))
	for _, p := range m.policies {
		policies = append(policies, p)
	}
	m.mu.RUnlock()

	sort.Slice(policies, func(i, j int) bool {
		return policies[i].String() < policies[j].String()
	})
	return policies
}

// Count returns the number of policies in the set.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.policies)
}

// TotalCoverage sums the coverage of every policy in the set, a sizing
// metric for how many source-destination pairs are constrained overall.
func (m *Manager) TotalCoverage() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := 0
	for _, p := range m.policies {
		total += p.Coverage()
	}
	return total
}
