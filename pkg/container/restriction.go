package container

import (
	"strings"

	"github.com/cmmoran/srcgen/pkg/errors"
)

// WhiteSpace is the whitespace facet of a restricted value.
type WhiteSpace int

const (
	// Preserve leaves the value untouched.
	Preserve WhiteSpace = iota
	// Replace turns every tab, line feed and carriage return into a space.
	Replace
	// Collapse replaces, then folds runs of spaces and trims both ends.
	Collapse
)

func (w WhiteSpace) String() string {
	switch w {
	case Replace:
		return "replace"
	case Collapse:
		return "collapse"
	default:
		return "preserve"
	}
}

// ParseWhiteSpace reads "preserve", "replace" or "collapse". The empty string
// is preserve.
func ParseWhiteSpace(s string) (WhiteSpace, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "preserve":
		return Preserve, nil
	case "replace":
		return Replace, nil
	case "collapse":
		return Collapse, nil
	}
	return Preserve, errors.IllegalArgumentf("unknown whitespace mode %q", s)
}

func (w WhiteSpace) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

func (w *WhiteSpace) UnmarshalText(b []byte) error {
	v, err := ParseWhiteSpace(string(b))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// Restriction is the facet metadata of a member. Bounds keep their lexical
// form so the generated code can parse them with the member's own type.
type Restriction struct {
	Length         *int       `yaml:"length,omitempty"`
	MinLength      *int       `yaml:"minLength,omitempty"`
	MaxLength      *int       `yaml:"maxLength,omitempty"`
	MinInclusive   string     `yaml:"minInclusive,omitempty"`
	MaxInclusive   string     `yaml:"maxInclusive,omitempty"`
	MinExclusive   string     `yaml:"minExclusive,omitempty"`
	MaxExclusive   string     `yaml:"maxExclusive,omitempty"`
	TotalDigits    *int       `yaml:"totalDigits,omitempty"`
	FractionDigits *int       `yaml:"fractionDigits,omitempty"`
	Pattern        string     `yaml:"pattern,omitempty"`
	WhiteSpace     WhiteSpace `yaml:"whiteSpace,omitempty"`
	Enumeration    []string   `yaml:"enumeration,omitempty"`
}

// IsZero reports whether r carries no facet.
func (r *Restriction) IsZero() bool {
	return r == nil || (r.Length == nil && r.MinLength == nil && r.MaxLength == nil &&
		r.MinInclusive == "" && r.MaxInclusive == "" && r.MinExclusive == "" && r.MaxExclusive == "" &&
		r.TotalDigits == nil && r.FractionDigits == nil && r.Pattern == "" &&
		r.WhiteSpace == Preserve && len(r.Enumeration) == 0)
}

// Clone returns a deep copy of r.
func (r *Restriction) Clone() *Restriction {
	if r == nil {
		return nil
	}
	c := *r
	c.Length = cloneInt(r.Length)
	c.MinLength = cloneInt(r.MinLength)
	c.MaxLength = cloneInt(r.MaxLength)
	c.TotalDigits = cloneInt(r.TotalDigits)
	c.FractionDigits = cloneInt(r.FractionDigits)
	c.Enumeration = append([]string(nil), r.Enumeration...)
	return &c
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Int returns a pointer to v, for filling Restriction literals.
func Int(v int) *int { return &v }

// Overlay returns a copy of base with every facet set in r replacing the
// facet of base. Either side may be nil.
func (r *Restriction) Overlay(base *Restriction) *Restriction {
	if base.IsZero() {
		return r.Clone()
	}
	out := base.Clone()
	if r.IsZero() {
		return out
	}
	for dst, src := range map[**int]*int{
		&out.Length:         r.Length,
		&out.MinLength:      r.MinLength,
		&out.MaxLength:      r.MaxLength,
		&out.TotalDigits:    r.TotalDigits,
		&out.FractionDigits: r.FractionDigits,
	} {
		if src != nil {
			*dst = cloneInt(src)
		}
	}
	for dst, src := range map[*string]string{
		&out.MinInclusive: r.MinInclusive,
		&out.MaxInclusive: r.MaxInclusive,
		&out.MinExclusive: r.MinExclusive,
		&out.MaxExclusive: r.MaxExclusive,
		&out.Pattern:      r.Pattern,
	} {
		if src != "" {
			*dst = src
		}
	}
	if r.WhiteSpace != Preserve {
		out.WhiteSpace = r.WhiteSpace
	}
	if len(r.Enumeration) > 0 {
		out.Enumeration = append([]string(nil), r.Enumeration...)
	}
	return out
}
