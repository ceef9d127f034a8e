// Package envinfo gathers best-effort diagnostic metadata about the running
// process for injection into normalized session contexts. Probing is
// read-only and never fails as a whole; fields that cannot be gathered are
// flagged instead of raising.
package envinfo

import (
	"os"
	"os/user"
)

// Field names reported in Snapshot.Missing and used as context keys.
const (
	FieldCWD      = "cwd"
	FieldUser     = "user"
	FieldHostname = "hostname"
)

// Snapshot is a partially-filled picture of the process environment.
// Missing lists the fields that could not be gathered.
type Snapshot struct {
	CWD      string
	User     string
	Hostname string
	Missing  []string
}

// Map renders the snapshot as a context sub-mapping containing only the
// fields that were available.
func (s Snapshot) Map() map[string]any {
	out := map[string]any{}
	if s.CWD != "" {
		out[FieldCWD] = s.CWD
	}
	if s.User != "" {
		out[FieldUser] = s.User
	}
	if s.Hostname != "" {
		out[FieldHostname] = s.Hostname
	}
	return out
}

// Provider supplies diagnostic environment metadata for context
// normalization. Implementations must be safe for concurrent use.
type Provider interface {
	Snapshot() Snapshot
}

// OSProvider reads the ambient process state: working directory, current
// user and hostname. Each field is gathered independently; one failing probe
// never aborts the others.
type OSProvider struct{}

// Snapshot implements Provider.
func (OSProvider) Snapshot() Snapshot {
	var s Snapshot
	if wd, err := os.Getwd(); err == nil {
		s.CWD = wd
	} else {
		s.Missing = append(s.Missing, FieldCWD)
	}
	if u, err := user.Current(); err == nil {
		s.User = u.Username
	} else {
		s.Missing = append(s.Missing, FieldUser)
	}
	if h, err := os.Hostname(); err == nil {
		s.Hostname = h
	} else {
		s.Missing = append(s.Missing, FieldHostname)
	}
	return s
}

// Static returns a fixed snapshot. Useful for tests and deterministic
// normalization.
type Static struct {
	S Snapshot
}

// Snapshot implements Provider.
func (p Static) Snapshot() Snapshot { return p.S }
