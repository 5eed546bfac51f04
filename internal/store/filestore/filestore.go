// Package filestore persists POS data as pretty-printed JSON files in a
// single data directory. It is the default backend: a lounge counter runs
// fine off a handful of flat files, and the files stay hand-editable for
// the odd manual correction.
package filestore

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/playden/backend/internal/models"
)

const (
	gamesFile    = "games.json"
	usersFile    = "users.json"
	sessionsFile = "sessions.json"
	invoicesFile = "invoice_records.json"
	paymentsFile = "payments.json"
)

// FileStore keeps the small hot datasets (catalog, users, sessions) cached
// in memory and writes the whole file back on every mutation. History files
// are append-only and re-read per operation so they never pin memory.
type FileStore struct {
	mu      sync.Mutex
	dataDir string

	games    []models.Game
	users    map[string]models.User
	sessions map[string]models.Session
}

// New opens (or creates) the data directory and loads the cached datasets.
// Missing or unreadable files start empty rather than failing startup; a
// corrupt file is logged and treated as absent.
func New(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}

	fs := &FileStore{
		dataDir:  dataDir,
		users:    make(map[string]models.User),
		sessions: make(map[string]models.Session),
	}
	readJSON(fs.path(gamesFile), &fs.games)
	readJSON(fs.path(usersFile), &fs.users)
	readJSON(fs.path(sessionsFile), &fs.sessions)
	if fs.users == nil {
		fs.users = make(map[string]models.User)
	}
	if fs.sessions == nil {
		fs.sessions = make(map[string]models.Session)
	}
	return fs, nil
}

func (f *FileStore) path(name string) string {
	return filepath.Join(f.dataDir, name)
}

// LoadGames returns the cached catalog in saved order.
func (f *FileStore) LoadGames() ([]models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	games := make([]models.Game, len(f.games))
	copy(games, f.games)
	return games, nil
}

// SaveGames replaces the catalog cache and rewrites games.json.
func (f *FileStore) SaveGames(games []models.Game) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.games = make([]models.Game, len(games))
	copy(f.games, games)
	return writeJSON(f.path(gamesFile), f.games)
}

// LoadUsers returns a copy of the cached user set.
func (f *FileStore) LoadUsers() (map[string]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make(map[string]models.User, len(f.users))
	for mobile, user := range f.users {
		users[mobile] = user
	}
	return users, nil
}

// PutUser upserts one user and rewrites users.json.
func (f *FileStore) PutUser(user models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.Mobile] = user
	return writeJSON(f.path(usersFile), f.users)
}

// LoadSessions returns a copy of the cached active sessions.
func (f *FileStore) LoadSessions() (map[string]models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sessions := make(map[string]models.Session, len(f.sessions))
	for id, sess := range f.sessions {
		sessions[id] = sess
	}
	return sessions, nil
}

// PutSession upserts one active session and rewrites sessions.json.
func (f *FileStore) PutSession(session models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.ID] = session
	return writeJSON(f.path(sessionsFile), f.sessions)
}

// DeleteSession drops an ended session and rewrites sessions.json.
func (f *FileStore) DeleteSession(sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sessions[sessionID]; !ok {
		return nil
	}
	delete(f.sessions, sessionID)
	return writeJSON(f.path(sessionsFile), f.sessions)
}

// AppendInvoice appends one row to invoice_records.json.
func (f *FileStore) AppendInvoice(rec models.InvoiceRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var records []models.InvoiceRecord
	readJSON(f.path(invoicesFile), &records)
	records = append(records, rec)
	return writeJSON(f.path(invoicesFile), records)
}

// ListInvoices walks invoice_records.json newest first.
func (f *FileStore) ListInvoices(mobile string, limit int) ([]models.InvoiceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var records []models.InvoiceRecord
	readJSON(f.path(invoicesFile), &records)

	out := make([]models.InvoiceRecord, 0)
	for i := len(records) - 1; i >= 0; i-- {
		if mobile != "" && records[i].Mobile != mobile {
			continue
		}
		out = append(out, records[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// AppendPayment appends one row to payments.json.
func (f *FileStore) AppendPayment(rec models.PaymentRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var records []models.PaymentRecord
	readJSON(f.path(paymentsFile), &records)
	records = append(records, rec)
	return writeJSON(f.path(paymentsFile), records)
}

// readJSON fills dst from the named file. Absent files are normal (first
// run); anything else unreadable is logged and skipped so one bad file
// cannot take the counter down.
func readJSON(path string, dst any) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[STORE] Failed to read %s: %v", path, err)
		}
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("[STORE] Ignoring corrupt %s: %v", path, err)
	}
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
