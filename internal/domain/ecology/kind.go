package ecology

import (
	"fmt"
	"sort"
	"strings"
)

// Kind is the closed set of entity variants a legend can name.
type Kind int

const (
	KindWall Kind = iota
	KindPlant
	KindBouncingCritter
	KindSnake
	KindPlantEater
	KindPredator
)

var kindNames = map[Kind]string{
	KindWall:            "wall",
	KindPlant:           "plant",
	KindBouncingCritter: "critter",
	KindSnake:           "snake",
	KindPlantEater:      "planteater",
	KindPredator:        "predator",
}

var kindAliases = map[string]Kind{
	"bouncingcritter": KindBouncingCritter,
	"tiger":           KindPredator,
	"herbivore":       KindPlantEater,
}

func Kinds() []Kind {
	return []Kind{KindWall, KindPlant, KindBouncingCritter, KindSnake, KindPlantEater, KindPredator}
}

func ParseKind(name string) (Kind, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	for k, n := range kindNames {
		if n == key {
			return k, true
		}
	}
	k, ok := kindAliases[key]
	return k, ok
}

func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// HasEnergy reports whether the variant tracks energy. Variants without it are
// inert: they never act, move, starve or get eaten.
func (k Kind) HasEnergy() bool {
	return k.Valid() && k != KindWall
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Legend maps a one-byte map symbol to the variant it instantiates.
type Legend map[byte]Kind

// ParseLegend converts a symbol -> kind-name table, as found in requests and
// scenario files.
func ParseLegend(raw map[string]string) (Legend, error) {
	out := make(Legend, len(raw))
	for symbol, name := range raw {
		if len(symbol) != 1 {
			return nil, configErr("legend symbol %q must be a single character", symbol)
		}
		kind, ok := ParseKind(name)
		if !ok {
			return nil, configErr("legend symbol %q: unknown kind %q", symbol, name)
		}
		out[symbol[0]] = kind
	}
	if err := out.validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func (l Legend) validate() error {
	if len(l) == 0 {
		return configErr("legend is empty")
	}
	for symbol, kind := range l {
		if symbol == SymbolEmpty {
			return configErr("the empty symbol %q cannot be a legend key", string(SymbolEmpty))
		}
		if !kind.Valid() {
			return configErr("legend symbol %q: unknown kind %d", string(symbol), int(kind))
		}
	}
	return nil
}

// Symbols returns the legend keys in ascending order.
func (l Legend) Symbols() []byte {
	out := make([]byte, 0, len(l))
	for s := range l {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (l Legend) clone() Legend {
	out := make(Legend, len(l))
	for s, k := range l {
		out[s] = k
	}
	return out
}
