package field

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

var ErrUnknownField = errors.New("field: unknown field")

type Field interface {
	Value(x, y float64) float64
}

type Func func(x, y float64) float64

func (f Func) Value(x, y float64) float64 { return f(x, y) }

// Params carries the construction parameters for every field kind; each
// kind reads only the members it needs.
type Params struct {
	Sources []PointSource
	Center  r2.Vec
	A, B, C float64
}

var registry = map[string]func(Params) Field{
	"metaballs": func(p Params) Field { return NewMetaballs(p.Sources) },
	"heart":     func(p Params) Field { return Heart{Center: p.Center} },
	"linear":    func(p Params) Field { return Linear{A: p.A, B: p.B, C: p.C} },
}

func New(kind string, p Params) (Field, error) {
	fn, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, kind)
	}
	return fn(p), nil
}

func Kinds() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
