// Package teststatus implements the persistent phase status log for test cases.
package teststatus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/casebuild/internal/core/domain"
	"go.trai.ch/casebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Filename is the status log file inside a case directory.
const Filename = "TestStatus"

// Store implements ports.StatusStore.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Open loads the status log for the given case directory, creating an
// empty one in memory if none exists yet.
func (s *Store) Open(dir string) (ports.StatusRecorder, error) {
	r := &Recorder{
		path:    filepath.Join(dir, Filename),
		entries: make(map[domain.Phase]entry),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

type entry struct {
	status  domain.Status
	comment string
}

// Recorder holds one phase entry per line, in first-seen order.
// Updates rewrite the file in place, preserving unrelated entries.
type Recorder struct {
	path string

	mu      sync.Mutex
	order   []domain.Phase
	entries map[domain.Phase]entry
}

func (r *Recorder) load() error {
	data, err := os.ReadFile(r.path) //nolint:gosec // path is derived from the case root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read test status log")
	}

	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		phase := domain.Phase(fields[1])
		e := entry{status: domain.Status(fields[0])}
		if len(fields) > 2 {
			e.comment = strings.Join(fields[2:], " ")
		}
		if _, seen := r.entries[phase]; !seen {
			r.order = append(r.order, phase)
		}
		r.entries[phase] = e
	}
	return nil
}

// SetStatus updates the entry for the phase and writes the log through
// to disk before returning.
func (r *Recorder) SetStatus(phase domain.Phase, status domain.Status, comment string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, seen := r.entries[phase]; !seen {
		r.order = append(r.order, phase)
	}
	r.entries[phase] = entry{status: status, comment: comment}

	return r.save()
}

func (r *Recorder) save() error {
	var b strings.Builder
	for _, phase := range r.order {
		e := r.entries[phase]
		if e.comment == "" {
			fmt.Fprintf(&b, "%s %s\n", e.status, phase)
		} else {
			fmt.Fprintf(&b, "%s %s %s\n", e.status, phase, e.comment)
		}
	}

	if err := os.WriteFile(r.path, []byte(b.String()), 0o644); err != nil { //nolint:gosec // status log is world-readable
		return zerr.Wrap(err, "failed to write test status log")
	}
	return nil
}

// Close releases the recorder. Writes happen in SetStatus, so Close
// has nothing left to flush.
func (r *Recorder) Close() error {
	return nil
}
