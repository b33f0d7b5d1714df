package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Workspace is the directory every generation stage reads from and writes to.
type Workspace struct {
	Dir string
}

// New returns a workspace rooted at dir. Nothing is created until Init.
func New(dir string) *Workspace {
	return &Workspace{Dir: dir}
}

// Path resolves an artifact name inside the workspace.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

// Init creates the workspace directory, copies the map extract and the
// default templates into it, and returns the local name of the map extract.
// An existing directory is reused, never cleared.
func (w *Workspace) Init(osmFile, defaultsDir string) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating workspace: %w", err)
	}
	if err := os.MkdirAll(w.Path(BuildingsDir), 0o755); err != nil {
		return "", fmt.Errorf("creating buildings directory: %w", err)
	}
	osmName := filepath.Base(osmFile)
	if err := copyFile(osmFile, w.Path(osmName)); err != nil {
		return "", fmt.Errorf("copying map extract: %w", err)
	}
	for _, name := range DefaultTemplates {
		if err := copyFile(filepath.Join(defaultsDir, name), w.Path(name)); err != nil {
			return "", fmt.Errorf("copying template %s: %w", name, err)
		}
	}
	return osmName, nil
}

// Require fails fast when any of the named artifacts is absent. It is called
// at every stage boundary so a stage never runs against missing inputs and a
// silently failing tool is caught right after its stage.
func (w *Workspace) Require(names ...string) error {
	for _, name := range names {
		if _, err := os.Stat(w.Path(name)); err != nil {
			return fmt.Errorf("missing artifact %q: %w", name, err)
		}
	}
	return nil
}

// RouteFiles returns the names of every route file in the workspace, sorted
// and deduplicated, so the assembled configuration is deterministic across
// platforms and repeated runs.
func (w *Workspace) RouteFiles() ([]string, error) {
	entries, err := os.ReadDir(w.Dir)
	if err != nil {
		return nil, fmt.Errorf("listing workspace: %w", err)
	}
	seen := make(map[string]bool)
	var routes []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.Contains(name, routeFileMarker) && !seen[name] {
			seen[name] = true
			routes = append(routes, name)
		}
	}
	sort.Strings(routes)
	return routes, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
