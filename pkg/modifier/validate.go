package modifier

import (
	"fmt"

	"github.com/cmmoran/srcgen/pkg/errors"
)

// Kind identifies the declaration a modifier set is attached to.
type Kind int

const (
	KindClass Kind = iota
	KindInterface
	KindNestedInterface
	KindEnum
	KindField
	KindConstructor
	KindMethod
	KindInterfaceMethod
	KindParameter
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindNestedInterface:
		return "nested interface"
	case KindEnum:
		return "enum"
	case KindField:
		return "field"
	case KindConstructor:
		return "constructor"
	case KindMethod:
		return "method"
	case KindInterfaceMethod:
		return "interface method"
	case KindParameter:
		return "parameter"
	default:
		return "unknown"
	}
}

type rule struct {
	legal     Modifier
	conflicts []Modifier
}

var visibilityConflicts = []Modifier{Public | Protected, Public | Private, Protected | Private}

var rules = map[Kind]rule{
	KindClass: {
		legal:     Visibility | Static | Abstract | Final | Strict,
		conflicts: append([]Modifier{Abstract | Final}, visibilityConflicts...),
	},
	KindInterface: {
		legal:     Public | Abstract | Strict,
		conflicts: visibilityConflicts,
	},
	KindNestedInterface: {
		legal:     Visibility | Abstract | Static | Strict,
		conflicts: visibilityConflicts,
	},
	KindEnum: {
		legal:     Visibility | Static | Strict,
		conflicts: visibilityConflicts,
	},
	KindField: {
		legal:     Visibility | Static | Final | Transient | Volatile,
		conflicts: append([]Modifier{Final | Volatile}, visibilityConflicts...),
	},
	KindConstructor: {
		legal:     Visibility,
		conflicts: visibilityConflicts,
	},
	KindMethod: {
		legal:     Visibility | Abstract | Static | Final | Synchronized | Native | Strict,
		conflicts: visibilityConflicts,
	},
	KindInterfaceMethod: {
		legal:     Public | Abstract,
		conflicts: visibilityConflicts,
	},
	KindParameter: {
		legal: Final,
	},
}

// Legal returns every flag permitted for k.
func Legal(k Kind) Modifier {
	return rules[k].legal
}

// InvalidModifierError reports flags not permitted for a declaration kind.
type InvalidModifierError struct {
	Kind      Kind
	Modifiers Modifier
}

func (e *InvalidModifierError) Error() string {
	return fmt.Sprintf("invalid modifier(s) %q for %s", e.Modifiers.String(), e.Kind)
}

func (e *InvalidModifierError) Unwrap() error { return errors.ErrInvalidModifier }

// ConflictingModifierError reports two mutually exclusive flags set together.
type ConflictingModifierError struct {
	Kind      Kind
	Modifiers Modifier
}

func (e *ConflictingModifierError) Error() string {
	return fmt.Sprintf("conflicting modifiers %q for %s", e.Modifiers.String(), e.Kind)
}

func (e *ConflictingModifierError) Unwrap() error { return errors.ErrConflictingModifier }

// Validate checks m against the rule table of k. Illegal flags are reported
// before conflicts.
func Validate(m Modifier, k Kind) error {
	r, ok := rules[k]
	if !ok {
		return errors.IllegalArgumentf("unknown declaration kind %d", int(k))
	}
	if bad := m &^ r.legal; bad != 0 {
		return &InvalidModifierError{Kind: k, Modifiers: bad}
	}
	for _, pair := range r.conflicts {
		if m&pair == pair {
			return &ConflictingModifierError{Kind: k, Modifiers: pair}
		}
	}
	return nil
}
