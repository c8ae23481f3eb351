// Package scenario reads world descriptions: a map, the legend that gives
// its symbols meaning, and optional policy, seed and diet settings.
//
//	world "name" {
//	  policy energy
//	  seed 42
//	  legend { "#" = wall  "*" = plant }
//	  diet { plant "*" prey "~" "O" }
//	  map { "####" "#* #" "####" }
//	}
//
// Strings take backslash escapes: "\"" is a quote, "\\" a backslash.
package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"ecosim/internal/app/ports"
	"ecosim/internal/domain/ecology"
)

var ErrInvalidScenario = fmt.Errorf("%w: scenario", ports.ErrInvalidInput)

type file struct {
	Name    string   `"world" @String "{"`
	Entries []*entry `@@* "}"`
}

type entry struct {
	Policy *string        `  "policy" @Ident`
	Seed   *string        `| "seed" @Int`
	Legend []*legendEntry `| "legend" "{" @@* "}"`
	Diet   *dietBlock     `| "diet" "{" @@ "}"`
	Rows   *mapBlock      `| "map" "{" @@ "}"`
}

type legendEntry struct {
	Symbol string `@String "="`
	Kind   string `@Ident`
}

type dietBlock struct {
	Plant string   `"plant" @String`
	Prey  []string `( "prey" @String+ )?`
}

type mapBlock struct {
	Rows []string `@String*`
}

var scenarioLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\\n])*"`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_-]*`},
	{Name: "Punct", Pattern: `[{}=]`},
})

var parser = participle.MustBuild[file](
	participle.Lexer(scenarioLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

func Parse(filename, src string) (ports.Scenario, error) {
	ast, err := parser.ParseString(filename, src)
	if err != nil {
		return ports.Scenario{}, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	return ast.build()
}

func (f *file) build() (ports.Scenario, error) {
	out := ports.Scenario{Name: unquote(f.Name), Policy: ecology.PolicyEnergy}
	rawLegend := map[string]string{}
	for _, e := range f.Entries {
		switch {
		case e.Policy != nil:
			policy, ok := ecology.ParsePolicy(*e.Policy)
			if !ok {
				return ports.Scenario{}, fmt.Errorf("%w: unknown policy %q", ErrInvalidScenario, *e.Policy)
			}
			out.Policy = policy
		case e.Seed != nil:
			seed, err := strconv.ParseUint(*e.Seed, 10, 64)
			if err != nil {
				return ports.Scenario{}, fmt.Errorf("%w: seed: %v", ErrInvalidScenario, err)
			}
			out.Seed, out.HasSeed = seed, true
		case e.Legend != nil:
			for _, le := range e.Legend {
				symbol := unquote(le.Symbol)
				if _, dup := rawLegend[symbol]; dup {
					return ports.Scenario{}, fmt.Errorf("%w: legend symbol %q defined twice", ErrInvalidScenario, symbol)
				}
				rawLegend[symbol] = le.Kind
			}
		case e.Diet != nil:
			diet, err := e.Diet.build()
			if err != nil {
				return ports.Scenario{}, err
			}
			out.Diet = diet
		case e.Rows != nil:
			for _, row := range e.Rows.Rows {
				out.Map = append(out.Map, unquote(row))
			}
		}
	}
	if len(out.Map) == 0 {
		return ports.Scenario{}, fmt.Errorf("%w: world %q has no map", ErrInvalidScenario, out.Name)
	}
	legend, err := ecology.ParseLegend(rawLegend)
	if err != nil {
		return ports.Scenario{}, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	out.Legend = legend
	return out, nil
}

func (d *dietBlock) build() (ecology.Diet, error) {
	plant, err := oneByte(d.Plant)
	if err != nil {
		return ecology.Diet{}, err
	}
	diet := ecology.Diet{Plant: plant}
	for _, raw := range d.Prey {
		prey, err := oneByte(raw)
		if err != nil {
			return ecology.Diet{}, err
		}
		diet.Prey = append(diet.Prey, prey)
	}
	return diet, nil
}

func oneByte(quoted string) (byte, error) {
	s := unquote(quoted)
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: diet symbol %q must be a single character", ErrInvalidScenario, s)
	}
	return s[0], nil
}

// unquote strips the quotes of a String token. A backslash takes the next
// byte literally, so "\"" is a quote and "\\" a backslash.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
