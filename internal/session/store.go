package session

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/pbkdf2"

	"github.com/Devduttshar/eventPlanner/internal/errors"
	"github.com/Devduttshar/eventPlanner/internal/log"
)

// pbkdf2 parameters for deriving the AES key from the keyfile.
const (
	kdfIterations = 100000
	kdfKeyLen     = 32
)

var kdfSalt = []byte("eventplanner-session-store")

// MemoryStore is an in-memory Store for tests and non-persistent use.
type MemoryStore struct {
	mu   sync.RWMutex
	sess Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Set replaces the session.
func (m *MemoryStore) Set(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = s
	return nil
}

// Clear removes the session.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = Session{}
	return nil
}

// Get returns the current session.
func (m *MemoryStore) Get() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sess
}

// Token returns the bearer token.
func (m *MemoryStore) Token() string { return m.Get().Token }

// Role returns the session role.
func (m *MemoryStore) Role() Role { return m.Get().Role }

// IsAuthenticated reports whether a token is present.
func (m *MemoryStore) IsAuthenticated() bool { return !m.Get().IsZero() }

// FileStore persists the session across process runs.
//
// The session is stored AES-GCM encrypted at rest; the key is derived
// with PBKDF2 from a per-install random keyfile next to it. Writes go
// through a temp file plus rename so the file is never half-written.
//
// Read and decrypt failures degrade to the logged-out state instead of
// surfacing errors: a corrupt or unreadable session file behaves like
// no session at all. A failed write leaves the in-memory session set,
// so reads within the same process still reflect the mutation.
type FileStore struct {
	mu      sync.RWMutex
	path    string
	keyPath string
	logger  *log.Logger

	loaded bool
	sess   Session
}

// NewFileStore creates a file-backed store.
// The session is loaded lazily on first read.
func NewFileStore(path, keyPath string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &FileStore{
		path:    path,
		keyPath: keyPath,
		logger:  logger,
	}
}

// Set replaces the session, persisting all four fields together.
func (f *FileStore) Set(s Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sess = s
	f.loaded = true

	if err := f.persist(s); err != nil {
		f.logger.WithError(err).Warn("session not persisted; it will last until this process exits")
		return err
	}
	return nil
}

// Clear removes the session and its file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sess = Session{}
	f.loaded = true

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to remove session file", err)
	}
	return nil
}

// Get returns the current session, zero when logged out.
func (f *FileStore) Get() Session {
	f.mu.RLock()
	if f.loaded {
		defer f.mu.RUnlock()
		return f.sess
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.loaded {
		f.sess = f.load()
		f.loaded = true
	}
	return f.sess
}

// Token returns the bearer token.
func (f *FileStore) Token() string { return f.Get().Token }

// Role returns the session role.
func (f *FileStore) Role() Role { return f.Get().Role }

// IsAuthenticated reports whether a token is present.
func (f *FileStore) IsAuthenticated() bool { return !f.Get().IsZero() }

func (f *FileStore) persist(s Session) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to create session directory", err)
	}

	key, err := f.ensureKey()
	if err != nil {
		return err
	}

	plaintext, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionInvalid, "failed to encode session", err)
	}

	sealed, err := seal(key, plaintext)
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(base64.StdEncoding.EncodeToString(sealed)), 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to write session file", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to replace session file", err)
	}
	return nil
}

func (f *FileStore) load() Session {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.WithError(err).Debug("session file unreadable; treating as logged out")
		}
		return Session{}
	}

	key, err := f.readKey()
	if err != nil {
		f.logger.WithError(err).Debug("session keyfile unreadable; treating as logged out")
		return Session{}
	}

	sealed, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		f.logger.Debug("session file corrupt; treating as logged out")
		return Session{}
	}

	plaintext, err := open(key, sealed)
	if err != nil {
		f.logger.Debug("session file failed to decrypt; treating as logged out")
		return Session{}
	}

	var s Session
	if err := json.Unmarshal(plaintext, &s); err != nil {
		f.logger.Debug("session payload corrupt; treating as logged out")
		return Session{}
	}
	return s
}

// ensureKey reads the keyfile, generating it on first use.
func (f *FileStore) ensureKey() ([]byte, error) {
	key, err := f.readKey()
	if err == nil {
		return key, nil
	}

	material := make([]byte, 32)
	if _, err := rand.Read(material); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to generate session key", err)
	}
	encoded := base64.StdEncoding.EncodeToString(material)
	if err := os.WriteFile(f.keyPath, []byte(encoded), 0o600); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to write session keyfile", err)
	}
	return deriveKey(material), nil
}

func (f *FileStore) readKey() ([]byte, error) {
	raw, err := os.ReadFile(f.keyPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, "failed to read session keyfile", err)
	}
	material, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, "session keyfile is corrupt", err)
	}
	return deriveKey(material), nil
}

func deriveKey(material []byte) []byte {
	return pbkdf2.Key(material, kdfSalt, kdfIterations, kdfKeyLen, sha256.New)
}

func seal(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSessionInvalid, "failed to initialize cipher", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSessionInvalid, "failed to initialize GCM", err)
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSessionInvalid, "failed to generate nonce", err)
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func open(key, sealed []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSessionInvalid, "failed to initialize cipher", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSessionInvalid, "failed to initialize GCM", err)
	}
	if len(sealed) < gcm.NonceSize() {
		return nil, errors.New(errors.ErrCodeSessionInvalid, "session ciphertext too short")
	}
	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSessionInvalid, "failed to decrypt session", err)
	}
	return plaintext, nil
}
