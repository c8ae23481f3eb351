package ecology

import (
	"strings"

	"github.com/zyedidia/generic/mapset"

	"ecosim/internal/domain/world"
)

// Policy selects how a world resolves actions.
type Policy string

const (
	// PolicyInert only relocates entities; energy never changes.
	PolicyInert Policy = "inert"
	// PolicyEnergy charges for movement, allows eating, growing and
	// reproduction, and starves entities that run out of energy.
	PolicyEnergy Policy = "energy"
)

func ParsePolicy(raw string) (Policy, bool) {
	switch Policy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", PolicyEnergy:
		return PolicyEnergy, true
	case PolicyInert:
		return PolicyInert, true
	default:
		return "", false
	}
}

type Config struct {
	Map    []string
	Legend Legend
	Policy Policy
	Rand   Rand
	// Diet defaults to DefaultDiet when Plant is zero.
	Diet Diet
}

type World struct {
	grid   *Grid
	legend Legend
	policy Policy
	spec   policySpec
	rng    Rand
	diet   Diet
	turn   int64
	nextID EntityID
}

// TurnReport tallies what happened during one Turn.
type TurnReport struct {
	Turn     int64 `json:"turn"`
	Acted    int   `json:"acted"`
	Moved    int   `json:"moved"`
	Ate      int   `json:"ate"`
	Grew     int   `json:"grew"`
	Born     int   `json:"born"`
	Died     int   `json:"died"`
	Rejected int   `json:"rejected"`
	Idle     int   `json:"idle"`
}

func (r *TurnReport) record(o Outcome) {
	switch o {
	case OutcomeIdle:
		r.Idle++
	case OutcomeMoved:
		r.Moved++
	case OutcomeAte:
		r.Ate++
	case OutcomeGrew:
		r.Grew++
	case OutcomeReproduced:
		r.Born++
	case OutcomeRejected:
		r.Rejected++
	case OutcomeDied:
		r.Died++
	}
}

// New validates the map and legend and populates a grid from them. Nothing
// is built when validation fails.
func New(cfg Config) (*World, error) {
	if cfg.Rand == nil {
		return nil, configErr("random source is required")
	}
	policy, ok := ParsePolicy(string(cfg.Policy))
	if !ok {
		return nil, configErr("unknown policy %q", cfg.Policy)
	}
	if err := cfg.Legend.validate(); err != nil {
		return nil, err
	}
	width, height, err := checkMap(cfg.Map, cfg.Legend)
	if err != nil {
		return nil, err
	}
	diet := cfg.Diet
	if diet.Plant == 0 {
		diet = DefaultDiet()
	}

	w := &World{
		grid:   NewGrid(width, height),
		legend: cfg.Legend.clone(),
		policy: policy,
		spec:   policyRegistry()[policy],
		rng:    cfg.Rand,
		diet:   diet,
	}
	for y, row := range cfg.Map {
		for x := 0; x < width; x++ {
			symbol := row[x]
			if symbol == SymbolEmpty {
				continue
			}
			w.place(world.Point{X: x, Y: y}, newEntity(w.legend[symbol], symbol, w.rng))
		}
	}
	return w, nil
}

func checkMap(rows []string, legend Legend) (int, int, error) {
	if len(rows) == 0 {
		return 0, 0, configErr("map has no rows")
	}
	width := len(rows[0])
	if width == 0 {
		return 0, 0, configErrAt(0, -1, "map rows must not be empty")
	}
	for y, row := range rows {
		if len(row) != width {
			return 0, 0, configErrAt(y, -1, "row length %d differs from %d", len(row), width)
		}
		for x := 0; x < width; x++ {
			symbol := row[x]
			if symbol == SymbolEmpty {
				continue
			}
			if _, ok := legend[symbol]; !ok {
				return 0, 0, configErrAt(y, x, "symbol %q is not in the legend", string(symbol))
			}
		}
	}
	return width, len(rows), nil
}

func (w *World) place(at world.Point, e *Entity) {
	w.nextID++
	e.ID = w.nextID
	w.grid.Set(at, e)
}

// Turn runs one row-major sweep in which every entity able to act does so at
// most once, even if it moved ahead of the sweep.
func (w *World) Turn() TurnReport {
	w.turn++
	report := TurnReport{Turn: w.turn}
	acted := mapset.New[EntityID]()
	w.grid.ForEachOccupied(func(e *Entity, at world.Point) {
		if !e.CanAct() || acted.Has(e.ID) {
			return
		}
		acted.Put(e.ID)
		report.Acted++
		a, ok := e.act(NewView(w.grid, at, w.rng), w.diet)
		report.record(w.resolve(e, at, a, ok))
	})
	return report
}

func (w *World) Grid() *Grid      { return w.grid }
func (w *World) Policy() Policy   { return w.policy }
func (w *World) TurnCount() int64 { return w.turn }

func (w *World) Legend() Legend {
	return w.legend.clone()
}

// Rows renders each grid row as a string of symbols, ' ' for empty cells.
func (w *World) Rows() []string {
	rows := make([]string, w.grid.Height())
	buf := make([]byte, w.grid.Width())
	for y := range rows {
		for x := range buf {
			buf[x] = symbolOf(w.grid.Get(world.Point{X: x, Y: y}))
		}
		rows[y] = string(buf)
	}
	return rows
}

// Render joins the rows with sep between them.
func (w *World) Render(sep string) string {
	return strings.Join(w.Rows(), sep)
}

func (w *World) String() string {
	return w.Render("\n")
}
