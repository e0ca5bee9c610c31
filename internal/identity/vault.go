package identity

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"golang.org/x/crypto/argon2"
)

var (
	ErrNotFound  = errors.New("identity not found")
	ErrDuplicate = errors.New("identity already exists")
	ErrDecrypt   = errors.New("cannot decrypt identity vault (wrong password?)")
)

// Argon2id parameters for the vault key.
const (
	saltLen      = 16
	keyLen       = 32
	argonTime    = 1
	argonMem     = 64 * 1024
	argonThreads = 4
)

type vaultFile struct {
	Salt []byte `json:"salt"`
	Data []byte `json:"data"`
}

// Vault is an AES-256-GCM encrypted file of identities. The key is derived
// from a password with Argon2id.
type Vault struct {
	mu         sync.RWMutex
	path       string
	salt       []byte
	key        []byte
	identities map[string]Identity
}

// Open decrypts the vault at path, or creates an empty one with a fresh salt
// when the file does not exist yet.
func Open(path string, password []byte) (*Vault, error) {
	v := &Vault{path: path, identities: make(map[string]Identity)}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		v.salt = make([]byte, saltLen)
		if _, err := io.ReadFull(rand.Reader, v.salt); err != nil {
			return nil, fmt.Errorf("generate salt: %w", err)
		}
		v.key = deriveKey(password, v.salt)
		return v, v.flush()
	}
	if err != nil {
		return nil, err
	}

	var vf vaultFile
	if err := json.Unmarshal(raw, &vf); err != nil {
		return nil, fmt.Errorf("corrupt identity vault: %w", err)
	}
	v.salt = vf.Salt
	v.key = deriveKey(password, vf.Salt)

	plain, err := unseal(v.key, vf.Data)
	if err != nil {
		return nil, ErrDecrypt
	}
	if err := json.Unmarshal(plain, &v.identities); err != nil {
		return nil, fmt.Errorf("corrupt identity data: %w", err)
	}
	return v, nil
}

// List returns all identities sorted by name.
func (v *Vault) List() []Identity {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]Identity, 0, len(v.identities))
	for _, id := range v.identities {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get returns the named identity or ErrNotFound.
func (v *Vault) Get(name string) (*Identity, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	id, ok := v.identities[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return &id, nil
}

// Add validates and stores a new identity.
func (v *Vault) Add(id Identity) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.identities[id.Name]; ok {
		return fmt.Errorf("%q: %w", id.Name, ErrDuplicate)
	}
	v.identities[id.Name] = id
	return v.flush()
}

// Remove deletes the named identity.
func (v *Vault) Remove(name string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.identities[name]; !ok {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	delete(v.identities, name)
	return v.flush()
}

// flush encrypts and writes the vault. Callers hold the write lock.
func (v *Vault) flush() error {
	plain, err := json.Marshal(v.identities)
	if err != nil {
		return err
	}
	sealed, err := seal(v.key, plain)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(vaultFile{Salt: v.salt, Data: sealed})
	if err != nil {
		return err
	}
	return os.WriteFile(v.path, raw, 0600)
}

func deriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMem, argonThreads, keyLen)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// seal returns nonce || ciphertext.
func seal(key, plain []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func unseal(key, data []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	n := gcm.NonceSize()
	if len(data) < n {
		return nil, errors.New("ciphertext too short")
	}
	return gcm.Open(nil, data[:n], data[n:], nil)
}
