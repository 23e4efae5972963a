package catalog

import (
	"fmt"
	"sort"

	"github.com/funvibe/unitguard/internal/config"
	"github.com/funvibe/unitguard/internal/diagnostics"
	"github.com/funvibe/unitguard/pkg/dimension"
)

// Entry is a resolved catalog dimension.
type Entry struct {
	Name string
	Doc  string
	// Unit is in canonical order.
	Unit dimension.Unit
	// AliasOf is set for Go aliases; Unit is then the target's unit.
	AliasOf string
	// Base marks the implicit entries (Scalar and the base dimensions).
	Base bool
}

// builtinNames lists the implicit entries: Scalar, then the base dimensions
// in canonical order.
func builtinNames() []string {
	names := []string{config.ScalarName}
	for _, b := range dimension.Bases() {
		names = append(names, b.String())
	}
	return names
}

func builtinEntries() []Entry {
	entries := []Entry{{
		Name: config.ScalarName,
		Doc:  "Scalar is the dimensionless unit.",
		Unit: dimension.Dimensionless,
		Base: true,
	}}
	for _, b := range dimension.Bases() {
		entries = append(entries, Entry{
			Name: b.String(),
			Doc:  fmt.Sprintf("%s is the base dimension %s.", b, b.Symbol()),
			Unit: dimension.Must(dimension.P(b, 1)),
			Base: true,
		})
	}
	return entries
}

// Resolve computes the unit of every entry, builtins first, then the
// config's dimensions in declaration order.
func (c *Config) Resolve() ([]Entry, error) {
	entries := builtinEntries()
	known := make(map[string]dimension.Unit, len(entries)+len(c.Dimensions))
	for _, e := range entries {
		known[e.Name] = e.Unit
	}

	for i, def := range c.Dimensions {
		pos := c.entryPos(i)
		e := Entry{Name: def.Name, Doc: def.Doc, AliasOf: def.AliasOf}

		if def.AliasOf != "" {
			u, ok := known[def.AliasOf]
			if !ok {
				return nil, diagnostics.NewError(diagnostics.ErrC003, pos, fmt.Sprintf("alias_of refers to unknown dimension %s", def.AliasOf))
			}
			e.Unit = u
		} else {
			u, err := c.resolveDef(pos, def, known)
			if err != nil {
				return nil, err
			}
			e.Unit = dimension.Canonicalize(u)
		}

		if e.Doc == "" {
			e.Doc = defaultDoc(e)
		}
		known[e.Name] = e.Unit
		entries = append(entries, e)
	}
	return entries, nil
}

func (c *Config) resolveDef(pos string, def Def, known map[string]dimension.Unit) (dimension.Unit, error) {
	var fromPowers, fromTerms dimension.Unit
	if len(def.Powers) > 0 {
		u, err := unitFromPowers(def.Powers)
		if err != nil {
			return dimension.Unit{}, diagnostics.Wrap(diagnostics.ErrC002, pos, err)
		}
		fromPowers = u
	}
	if len(def.Mul) == 0 && len(def.Div) == 0 {
		return fromPowers, nil
	}

	lookup := func(name string) (dimension.Unit, error) {
		u, ok := known[name]
		if !ok {
			return dimension.Unit{}, diagnostics.NewError(diagnostics.ErrC003, pos, fmt.Sprintf("unknown dimension %s (entries may only refer to earlier ones)", name))
		}
		return u, nil
	}
	for _, name := range def.Mul {
		u, err := lookup(name)
		if err != nil {
			return dimension.Unit{}, err
		}
		fromTerms = dimension.Multiply(fromTerms, u)
	}
	for _, name := range def.Div {
		u, err := lookup(name)
		if err != nil {
			return dimension.Unit{}, err
		}
		fromTerms = dimension.Divide(fromTerms, u)
	}

	if len(def.Powers) > 0 {
		if err := dimension.CheckEquivalent("define "+def.Name, fromPowers, fromTerms); err != nil {
			return dimension.Unit{}, diagnostics.Wrap(diagnostics.ErrC005, pos, err)
		}
	}
	return fromTerms, nil
}

// unitFromPowers builds a unit from a base-name -> exponent map. Keys are
// visited in sorted order so errors are reproducible.
func unitFromPowers(m map[string]int) (dimension.Unit, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ps := make([]dimension.Power, 0, len(keys))
	for _, k := range keys {
		b, err := dimension.ParseBase(k)
		if err != nil {
			return dimension.Unit{}, err
		}
		p, err := dimension.NewPower(b, m[k])
		if err != nil {
			return dimension.Unit{}, err
		}
		ps = append(ps, p)
	}
	return dimension.New(ps...)
}

func defaultDoc(e Entry) string {
	if e.AliasOf != "" {
		return fmt.Sprintf("%s is dimensionally identical to %s.", e.Name, e.AliasOf)
	}
	return fmt.Sprintf("%s is the %s dimension.", e.Name, e.Unit)
}

// Units maps every entry name to its unit.
func Units(entries []Entry) map[string]dimension.Unit {
	m := make(map[string]dimension.Unit, len(entries))
	for _, e := range entries {
		m[e.Name] = e.Unit
	}
	return m
}
