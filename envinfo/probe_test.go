package envinfo

import "testing"

func TestOSProvider_Snapshot(t *testing.T) {
	s := OSProvider{}.Snapshot()

	// Each field is either filled or flagged, never both.
	missing := map[string]bool{}
	for _, f := range s.Missing {
		missing[f] = true
	}
	if s.CWD == "" && !missing[FieldCWD] {
		t.Fatal("cwd neither gathered nor flagged")
	}
	if s.User == "" && !missing[FieldUser] {
		t.Fatal("user neither gathered nor flagged")
	}
	if s.Hostname == "" && !missing[FieldHostname] {
		t.Fatal("hostname neither gathered nor flagged")
	}
}

func TestSnapshot_Map(t *testing.T) {
	s := Snapshot{CWD: "/tmp", Missing: []string{FieldUser, FieldHostname}}
	m := s.Map()

	if m[FieldCWD] != "/tmp" {
		t.Fatalf("expected cwd in map, got %v", m)
	}
	if _, ok := m[FieldUser]; ok {
		t.Fatal("unavailable field must not appear in map")
	}
	if len(m) != 1 {
		t.Fatalf("expected only available fields, got %v", m)
	}
}

func TestStatic(t *testing.T) {
	p := Static{S: Snapshot{Hostname: "box-1"}}
	if got := p.Snapshot().Hostname; got != "box-1" {
		t.Fatalf("expected fixed snapshot, got %q", got)
	}
}
