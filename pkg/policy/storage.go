// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause
package policy

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
)

// Storage defines the interface for policy persistence
type Storage interface {
	// SavePolicy saves a policy to persistent storage
	SavePolicy(p Policy) error

	// DeletePolicy removes the policy with the given hash key
	DeletePolicy(key string) error

	// LoadPolicies loads all policies from persistent storage
	LoadPolicies() ([]Policy, error)

	// Close closes the storage connection
	Close() error
}

// SQLiteStorage implements Storage using SQLite. Rows hold the textual
// encodings owned by this package (kind token, comma-joined source routers,
// brace-delimited destination list), so loading a row exercises the same
// parsers the record ingestion path uses.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage creates a new SQLite storage instance
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	storage := &SQLiteStorage{db: db}

	if err := storage.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	log.Infof("Policy storage initialized: %s", dbPath)
	return storage, nil
}

// initSchema creates the policies table if it doesn't exist
func (s *SQLiteStorage) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS policies (
		hash TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		sources TEXT NOT NULL,
		destinations TEXT NOT NULL,
		specifics TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_type ON policies(type);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// encodePolicy maps a concrete policy back to its kind token and specifics
// string. Isolation is a negated reachability policy, so the token is
// recovered from the negate flag.
func encodePolicy(p Policy) (token, specifics string, err error) {
	switch v := p.(type) {
	case *ReachabilityPolicy:
		if v.Negated() {
			return Isolation.String(), "", nil
		}
		return Reachability.String(), "", nil
	case *WaypointPolicy:
		return Waypoint.String(), v.Waypoints(), nil
	case *LoadBalancingPolicy:
		return LoadBalancingSimple.String(), strconv.Itoa(v.NumPaths()), nil
	default:
		return "", "", fmt.Errorf("unsupported policy kind %q", p.Kind())
	}
}

// SavePolicy saves a policy to the database
func (s *SQLiteStorage) SavePolicy(p Policy) error {
	token, specifics, err := encodePolicy(p)
	if err != nil {
		return err
	}

	routers := make([]string, len(p.Sources()))
	for i, src := range p.Sources() {
		routers[i] = src.Router
	}

	query := `
	INSERT INTO policies (hash, type, sources, destinations, specifics)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(hash) DO UPDATE SET
		type = excluded.type,
		sources = excluded.sources,
		destinations = excluded.destinations,
		specifics = excluded.specifics
	`

	_, err = s.db.Exec(query,
		HashKey(p),
		token,
		strings.Join(routers, ", "),
		RenderDestinationList(p.Destinations()),
		specifics,
	)
	if err != nil {
		return fmt.Errorf("failed to save policy: %w", err)
	}

	log.Debugf("Policy saved to storage: %s", HashKey(p))
	return nil
}

// DeletePolicy removes a policy from the database
func (s *SQLiteStorage) DeletePolicy(key string) error {
	result, err := s.db.Exec(`DELETE FROM policies WHERE hash = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete policy: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("policy not found: %s", key)
	}

	log.Debugf("Policy deleted from storage: %s", key)
	return nil
}

// LoadPolicies loads all policies from the database. A row whose encodings
// no longer parse is a corrupt store and fails the load.
func (s *SQLiteStorage) LoadPolicies() ([]Policy, error) {
	rows, err := s.db.Query(`SELECT type, sources, destinations, specifics FROM policies ORDER BY type, hash`)
	if err != nil {
		return nil, fmt.Errorf("failed to query policies: %w", err)
	}
	defer rows.Close()

	var policies []Policy
	for rows.Next() {
		var token, sources, destinations, specifics string
		if err := rows.Scan(&token, &sources, &destinations, &specifics); err != nil {
			return nil, fmt.Errorf("failed to scan policy: %w", err)
		}

		p, err := decodeRow(token, sources, destinations, specifics)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating policies: %w", err)
	}

	log.Infof("Loaded %d policies from storage", len(policies))
	return policies, nil
}

func decodeRow(token, sources, destinations, specifics string) (Policy, error) {
	kind, ok := ParseKindToken(token)
	if !ok {
		return nil, fmt.Errorf("corrupt policy row: unknown type %q", token)
	}

	var srcs []PolicySource
	for _, router := range strings.Split(sources, ", ") {
		srcs = append(srcs, NewPolicySource(router))
	}

	dsts, err := ParseDestinationList(destinations)
	if err != nil {
		return nil, fmt.Errorf("corrupt policy row: %w", err)
	}

	p := Make(kind, srcs, dsts, ParseSpecifics(specifics))
	if p == nil {
		return nil, fmt.Errorf("corrupt policy row: unsupported type %s", kind)
	}
	return p, nil
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetPolicyCount returns the total number of policies in storage
func (s *SQLiteStorage) GetPolicyCount() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM policies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get policy count: %w", err)
	}
	return count, nil
}

// ClearAll removes all policies from storage (useful for testing)
func (s *SQLiteStorage) ClearAll() error {
	if _, err := s.db.Exec(`DELETE FROM policies`); err != nil {
		return fmt.Errorf("failed to clear policies: %w", err)
	}

	log.Info("All policies cleared from storage")
	return nil
}
