// Package manifest computes upgraded build manifests for the modules the
// project treats as security-sensitive: which version is currently required,
// which version an upgrade should target, and who depends on each of them.
package manifest

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/semver"

	f "github.com/ferrite-os/maintainers/pkg/functional"
)

// SensitivePackages is the fixed list of modules whose upgrades are tracked
// by the security manifest.
var SensitivePackages = []string{
	"github.com/ProtonMail/go-crypto",
	"github.com/go-jose/go-jose/v4",
	"github.com/golang-jwt/jwt/v5",
	"golang.org/x/crypto",
	"golang.org/x/net",
	"golang.org/x/oauth2",
	"google.golang.org/protobuf",
}

// Entry describes one security-sensitive module in the manifest.
type Entry struct {
	Module     string   `toml:"module"`
	Current    string   `toml:"current"`
	Target     string   `toml:"target"`
	Dependents []string `toml:"dependents,omitempty"`
}

// Manifest is the computed upgrade manifest.
type Manifest struct {
	Packages []Entry `toml:"package"`
}

// seam for tests
var runModGraph = func(dir string) ([]byte, error) {
	cmd := exec.Command("go", "mod", "graph")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("go mod graph: %w", err)
	}
	return out, nil
}

// Build reads dir's go.mod and module graph and computes the manifest.
// Overrides map module paths to target versions; modules without an override
// target their currently required version.
func Build(dir string, overrides map[string]string) (*Manifest, error) {
	modData, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return nil, err
	}
	graph, err := runModGraph(dir)
	if err != nil {
		return nil, err
	}
	return fromSources(modData, graph, overrides)
}

func fromSources(modData, graph []byte, overrides map[string]string) (*Manifest, error) {
	file, err := modfile.Parse("go.mod", modData, nil)
	if err != nil {
		return nil, err
	}
	current := make(map[string]string, len(file.Require))
	for _, req := range file.Require {
		current[req.Mod.Path] = req.Mod.Version
	}

	dependents, err := parseGraph(bytes.NewReader(graph))
	if err != nil {
		return nil, err
	}

	manifest := &Manifest{Packages: make([]Entry, 0, len(SensitivePackages))}
	for _, module := range SensitivePackages {
		version, required := current[module]
		if !required {
			continue
		}
		target := version
		if override, found := overrides[module]; found {
			if !semver.IsValid(override) {
				return nil, fmt.Errorf("invalid target version for %s: %s", module, override)
			}
			target = override
		}
		manifest.Packages = append(manifest.Packages, Entry{
			Module:     module,
			Current:    version,
			Target:     target,
			Dependents: dependents[module],
		})
	}
	return manifest, nil
}

// parseGraph reverses `go mod graph` output into module path -> sorted,
// deduplicated dependent module paths.
func parseGraph(r io.Reader) (map[string][]string, error) {
	dependents := make(map[string][]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parent, child, found := strings.Cut(line, " ")
		if !found {
			return nil, fmt.Errorf("malformed module graph line: %q", line)
		}
		childPath := modulePath(child)
		dependents[childPath] = append(dependents[childPath], modulePath(parent))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for path, deps := range dependents {
		deps = f.RemoveDuplicates(deps)
		slices.Sort(deps)
		dependents[path] = deps
	}
	return dependents, nil
}

func modulePath(node string) string {
	path, _, _ := strings.Cut(node, "@")
	return path
}

// UpgradedModFile rewrites the require directives of a go.mod for every
// module with an override and returns the formatted result.
func UpgradedModFile(modData []byte, overrides map[string]string) ([]byte, error) {
	file, err := modfile.Parse("go.mod", modData, nil)
	if err != nil {
		return nil, err
	}
	for _, req := range file.Require {
		override, found := overrides[req.Mod.Path]
		if !found || override == req.Mod.Version {
			continue
		}
		if !semver.IsValid(override) {
			return nil, fmt.Errorf("invalid target version for %s: %s", req.Mod.Path, override)
		}
		if err := file.AddRequire(req.Mod.Path, override); err != nil {
			return nil, err
		}
	}
	file.Cleanup()
	return file.Format()
}

// WriteTOML serializes the manifest.
func (m *Manifest) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(m)
}
