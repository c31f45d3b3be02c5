// journal/autosave.go
package journal

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// EnvSessionPath overrides the autosave location when set.
const EnvSessionPath = "BARJOURNAL_SESSION_PATH"

const (
	sessionDir   = "sessions"
	sessionFile  = "session.json"
	fallbackFile = "barjournal_autosave.json"
)

// Autosaver persists the session as a directly-readable JSON file. It backs
// both sides of the store's persistence contract: Save after mutations, Load
// once at startup.
type Autosaver struct {
	path string
}

// NewAutosaver resolves the session file location through the fallback chain:
// explicit override (argument, then environment), ./sessions/session.json,
// then the OS temp directory.
func NewAutosaver(override string) *Autosaver {
	return &Autosaver{path: resolveSessionPath(override)}
}

func resolveSessionPath(override string) string {
	if override == "" {
		override = os.Getenv(EnvSessionPath)
	}
	if override != "" {
		if err := os.MkdirAll(filepath.Dir(override), 0o755); err == nil {
			return override
		}
		// Parent not creatable, fall through to the defaults.
	}
	dir := filepath.Join(".", sessionDir)
	if err := os.MkdirAll(dir, 0o755); err == nil {
		return filepath.Join(dir, sessionFile)
	}
	return filepath.Join(os.TempDir(), fallbackFile)
}

// Path returns the resolved session file location.
func (a *Autosaver) Path() string {
	return a.path
}

// Save overwrites the session file with the full session.
func (a *Autosaver) Save(s Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(a.path, data, 0o644)
}

// Load merges a saved session into dst. Only recognized bar keys are visited
// and only well-typed fields (ts string, category string lists) are copied;
// anything else in dst stays untouched. The boolean reports whether a session
// file was found and parsed.
func (a *Autosaver) Load(dst Session) (bool, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return false, err
	}

	now := time.Now()
	for _, key := range BarOrder {
		rec, ok := dst[key]
		if !ok {
			rec = newBarRecord(now)
			dst[key] = rec
		}
		blob, ok := raw[string(key)]
		if !ok {
			continue
		}
		var fields map[string]json.RawMessage
		if json.Unmarshal(blob, &fields) != nil {
			continue
		}
		if b, ok := fields["ts"]; ok {
			var ts string
			if json.Unmarshal(b, &ts) == nil {
				rec.TS = ts
			}
		}
		for _, cat := range Categories {
			b, ok := fields[string(cat)]
			if !ok {
				continue
			}
			var list []string
			if json.Unmarshal(b, &list) == nil && list != nil {
				rec.setList(cat, list)
			}
		}
	}
	return true, nil
}
