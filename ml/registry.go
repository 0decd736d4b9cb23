package ml

import (
	"errors"
	"log/slog"
	"path/filepath"
	"sort"
)

// ErrModelUnavailable is returned by Lookup when a model's artifact
// failed to load at startup or was never configured.
var ErrModelUnavailable = errors.New("model unavailable")

// Handle pairs a loaded artifact with its ready-to-serve predictor.
type Handle struct {
	Artifact  *Artifact
	Predictor Predictor
}

// Registry holds the models loaded at process start. A model whose
// artifact is missing or corrupt is recorded as unavailable rather than
// aborting startup, so the rest of the site keeps serving. The registry
// is read-only after NewRegistry, so handlers may share it freely.
type Registry struct {
	handles map[string]*Handle
}

// NewRegistry loads each named artifact file from dir.
func NewRegistry(dir string, files map[string]string) *Registry {
	r := &Registry{handles: make(map[string]*Handle, len(files))}
	for name, file := range files {
		path := filepath.Join(dir, file)
		artifact, err := LoadArtifact(path)
		if err != nil {
			slog.Warn("model artifact unavailable", "model", name, "path", path, "error", err)
			r.handles[name] = nil
			continue
		}
		r.handles[name] = &Handle{Artifact: artifact, Predictor: artifact.Predictor()}
		slog.Info("model loaded",
			"model", name,
			"algorithm", artifact.Algorithm,
			"features", len(artifact.Features))
	}
	return r
}

// Lookup returns the handle for the named model.
func (r *Registry) Lookup(name string) (*Handle, error) {
	h, ok := r.handles[name]
	if !ok || h == nil {
		return nil, ErrModelUnavailable
	}
	return h, nil
}

// Available reports whether the named model loaded successfully.
func (r *Registry) Available(name string) bool {
	h, ok := r.handles[name]
	return ok && h != nil
}

// Names returns the configured model names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handles))
	for name := range r.handles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
