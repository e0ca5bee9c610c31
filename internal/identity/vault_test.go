package identity

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testIdentity(name string) Identity {
	return Identity{Name: name, Version: "2c", Community: "public"}
}

func TestVaultCreateAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identities.enc")
	pw := []byte("s3cret")

	v, err := Open(path, pw)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if err := v.Add(testIdentity("core")); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	reopened, err := Open(path, pw)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	id, err := reopened.Get("core")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if id.Community != "public" {
		t.Errorf("expected community 'public', got %q", id.Community)
	}
}

func TestVaultWrongPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identities.enc")
	if _, err := Open(path, []byte("right")); err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if _, err := Open(path, []byte("wrong")); !errors.Is(err, ErrDecrypt) {
		t.Errorf("expected ErrDecrypt, got %v", err)
	}
}

func TestVaultFileIsEncrypted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identities.enc")
	v, _ := Open(path, nil)
	v.Add(Identity{Name: "edge", Version: "2c", Community: "very-private-community"})

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read vault: %v", err)
	}
	if strings.Contains(string(raw), "very-private-community") {
		t.Error("community string stored in plaintext")
	}
}

func TestVaultDuplicateAndRemove(t *testing.T) {
	v, err := Open(filepath.Join(t.TempDir(), "identities.enc"), nil)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	v.Add(testIdentity("b"))
	v.Add(testIdentity("a"))

	if err := v.Add(testIdentity("a")); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	list := v.List()
	if len(list) != 2 || list[0].Name != "a" || list[1].Name != "b" {
		t.Errorf("expected sorted [a b], got %v", list)
	}

	if err := v.Remove("a"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if _, err := v.Get("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := v.Remove("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second remove, got %v", err)
	}
}

func TestIdentityValidate(t *testing.T) {
	cases := []struct {
		id Identity
		ok bool
	}{
		{testIdentity("ok"), true},
		{Identity{Name: "nocomm", Version: "1"}, false},
		{Identity{Name: "v3", Version: "3", Username: "mon", AuthProto: "SHA", AuthPass: "x"}, true},
		{Identity{Name: "v3nouser", Version: "3"}, false},
		{Identity{Name: "privnoauth", Version: "3", Username: "mon", PrivProto: "AES"}, false},
		{Identity{Name: "v4", Version: "4"}, false},
		{Identity{Version: "2c", Community: "x"}, false},
	}
	for _, tc := range cases {
		err := tc.id.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.id.Name, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: expected error", tc.id.Name)
		}
	}
}

func TestIdentityStringHidesSecrets(t *testing.T) {
	id := Identity{Name: "v3", Version: "3", Username: "mon", AuthProto: "SHA", AuthPass: "authsecret", PrivProto: "AES", PrivPass: "privsecret"}
	s := id.String()
	if strings.Contains(s, "authsecret") || strings.Contains(s, "privsecret") {
		t.Errorf("String() leaks secrets: %s", s)
	}
}
