package dimcheck

import (
	"fmt"
	"go/token"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/funvibe/unitguard/internal/diagnostics"
	"github.com/funvibe/unitguard/pkg/dimension"

	"golang.org/x/tools/go/packages"
)

// D002 is recovered from the text of go/types error messages, which is not a
// stable API. The patterns match how the type checker prints instantiated
// types today ("quantity.Measure[float64, dim.Length]", or the generated
// alias "dim.LengthOf[float64]"); TestTypeErrorMessageFormat pins that.
var (
	// quantity.Measure[float64, dim.Length], possibly with a full import path.
	measureRef = regexp.MustCompile(`Measure\[[^,\[\]]+,\s*([\w./-]+)\]`)
	// dim.LengthOf[float64], the generated alias form.
	aliasRef = regexp.MustCompile(`([\w./-]+)Of\[[^\[\]]+\]`)
)

// typeErrorDiagnostic turns a compiler error mentioning two measures of
// known dimension types into a D002 diagnostic carrying both units.
func (c *Checker) typeErrorDiagnostic(e packages.Error) (Diagnostic, bool) {
	refs := measureRefs(e.Msg)
	var units []dimension.Unit
	for _, ref := range refs {
		u, ok := c.byPkgName[shortRef(ref)]
		if !ok {
			continue
		}
		units = append(units, u)
		if len(units) == 2 {
			break
		}
	}
	if len(units) < 2 {
		return Diagnostic{}, false
	}
	left, right := units[0], units[1]
	return Diagnostic{
		Pos:      parsePos(e.Pos),
		Code:     diagnostics.ErrD002,
		Message:  fmt.Sprintf("%s (dimension %s vs %s)", e.Msg, left, right),
		Left:     left,
		Right:    right,
		HasUnits: true,
	}, true
}

// measureRefs returns the dimension type references in msg in order of
// appearance.
func measureRefs(msg string) []string {
	type ref struct {
		at   int
		name string
	}
	var refs []ref
	for _, m := range measureRef.FindAllStringSubmatchIndex(msg, -1) {
		refs = append(refs, ref{m[0], msg[m[2]:m[3]]})
	}
	for _, m := range aliasRef.FindAllStringSubmatchIndex(msg, -1) {
		refs = append(refs, ref{m[0], msg[m[2]:m[3]]})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].at < refs[j].at })

	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.name
	}
	return names
}

// shortRef reduces "example.com/x/dim.Length" to "dim.Length".
func shortRef(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// parsePos parses the "file:line:col" form used by packages.Error.
func parsePos(s string) token.Position {
	var pos token.Position
	parts := strings.Split(s, ":")
	nums := 0
	for i := len(parts) - 1; i > 0 && nums < 2; i-- {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			break
		}
		if nums == 0 {
			pos.Column = n
		} else {
			pos.Line = n
		}
		nums++
	}
	switch nums {
	case 1:
		pos.Line, pos.Column = pos.Column, 0
	case 0:
		if s == "-" {
			s = ""
		}
		pos.Filename = s
		return pos
	}
	pos.Filename = strings.Join(parts[:len(parts)-nums], ":")
	return pos
}
