package scenarios

import (
	"context"
	"fmt"

	"ecosim/internal/app/ports"
)

// Entry describes one scenario in the library index.
type Entry struct {
	Name   string  `json:"name"`
	Policy string  `json:"policy"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Seed   *uint64 `json:"seed,omitempty"`
}

type UseCase struct {
	Library ports.ScenarioLibrary
}

// Index lists every scenario the library can load. Entries that fail to
// parse are reported as errors rather than skipped.
func (u UseCase) Index(ctx context.Context) ([]Entry, error) {
	names, err := u.Library.Names(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(names))
	for _, name := range names {
		s, err := u.Library.Load(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", name, err)
		}
		e := Entry{Name: name, Policy: string(s.Policy), Height: len(s.Map)}
		if len(s.Map) > 0 {
			e.Width = len(s.Map[0])
		}
		if s.HasSeed {
			seed := s.Seed
			e.Seed = &seed
		}
		out = append(out, e)
	}
	return out, nil
}

func (u UseCase) File(ctx context.Context, name string) ([]byte, error) {
	return u.Library.Source(ctx, name)
}
