// Package provenance records build provenance for reproducibility auditing.
package provenance

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.trai.ch/casebuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Dir is the provenance directory inside a case root.
const Dir = "provenance"

// Record is one persisted build provenance entry.
type Record struct {
	ID           string            `yaml:"id"`
	CreatedAt    time.Time         `yaml:"created_at"`
	CaseRoot     string            `yaml:"caseroot"`
	ConfigDigest string            `yaml:"config_digest"`
	Values       map[string]string `yaml:"values"`
}

// Save writes a provenance record for the case and returns its path.
func Save(cse ports.Case) (string, error) {
	values := cse.Values()

	rec := Record{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		CaseRoot:     cse.Root(),
		ConfigDigest: digest(values),
		Values:       values,
	}

	data, err := yaml.Marshal(&rec)
	if err != nil {
		return "", zerr.Wrap(err, "failed to marshal provenance record")
	}

	dir := filepath.Join(cse.Root(), Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec // case files are world-readable
		return "", zerr.Wrap(err, "failed to create provenance directory")
	}

	path := filepath.Join(dir, "build-"+rec.ID+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // case files are world-readable
		return "", zerr.Wrap(err, "failed to write provenance record")
	}

	return path, nil
}

// digest hashes the configuration as sorted key=value lines so the
// result is independent of map iteration order.
func digest(values map[string]string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	h := xxhash.New()
	for _, k := range keys {
		_, _ = h.WriteString(k + "=" + values[k] + "\n")
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
