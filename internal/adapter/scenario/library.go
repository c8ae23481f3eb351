package scenario

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ecosim/internal/app/ports"
)

const (
	DefaultName = "valley"
	extension   = ".scn"
)

//go:embed scenarios/*.scn
var builtin embed.FS

var ErrInvalidScenarioName = fmt.Errorf("%w: scenario name", ports.ErrInvalidInput)

// Library serves scenario sources from Root, falling back to the built-in
// set. Files in Root shadow built-ins of the same name.
type Library struct {
	Root string
}

func (l Library) Names(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	builtins, err := fs.Glob(builtin, "scenarios/*"+extension)
	if err != nil {
		return nil, err
	}
	for _, p := range builtins {
		seen[strings.TrimSuffix(filepath.Base(p), extension)] = true
	}
	if l.Root != "" {
		entries, err := os.ReadDir(l.Root)
		if err != nil {
			return nil, fmt.Errorf("read scenario dir: %w", err)
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), extension) {
				seen[strings.TrimSuffix(e.Name(), extension)] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (l Library) Source(_ context.Context, name string) ([]byte, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), extension)
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, ErrInvalidScenarioName
	}
	if l.Root != "" {
		path, err := secureJoin(l.Root, name+extension)
		if err != nil {
			return nil, err
		}
		b, err := os.ReadFile(path)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	b, err := builtin.ReadFile("scenarios/" + name + extension)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("scenario %q: %w", name, ports.ErrNotFound)
	}
	return b, err
}

// Load reads and parses the named scenario.
func (l Library) Load(ctx context.Context, name string) (ports.Scenario, error) {
	src, err := l.Source(ctx, name)
	if err != nil {
		return ports.Scenario{}, err
	}
	return Parse(name+extension, string(src))
}

func (Library) Parse(filename, src string) (ports.Scenario, error) {
	return Parse(filename, src)
}

// Default returns the built-in valley scenario.
func Default() ports.Scenario {
	src, err := builtin.ReadFile("scenarios/" + DefaultName + extension)
	if err != nil {
		panic(err)
	}
	s, err := Parse(DefaultName+extension, string(src))
	if err != nil {
		panic(err)
	}
	return s
}

func secureJoin(root, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", ErrInvalidScenarioName
	}
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	target := filepath.Clean(filepath.Join(rootAbs, rel))
	prefix := rootAbs + string(filepath.Separator)
	if !strings.HasPrefix(target, prefix) {
		return "", ErrInvalidScenarioName
	}
	return target, nil
}
