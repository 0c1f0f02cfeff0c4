package loader

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/cmmoran/srcgen/pkg/container"
	"github.com/cmmoran/srcgen/pkg/errors"
)

// xmlTag is the parsed encoding/xml tag of a field.
type xmlTag struct {
	name   string
	attr   bool
	omit   bool
	hasTag bool
}

func parseXMLTag(tag reflect.StructTag) xmlTag {
	v, ok := tag.Lookup("xml")
	if !ok {
		return xmlTag{}
	}
	if v == "-" {
		return xmlTag{omit: true, hasTag: true}
	}
	parts := strings.Split(v, ",")
	return xmlTag{name: parts[0], attr: containsTagPart(strings.Join(parts[1:], ","), "attr"), hasTag: true}
}

// containsTagPart splits a tag value on common delimiters and reports whether
// any fragment matches the expected value.
func containsTagPart(tagVal, expected string) bool {
	if tagVal == "" {
		return false
	}
	for _, part := range strings.FieldsFunc(tagVal, func(r rune) bool {
		return r == ';' || r == ','
	}) {
		if part == expected {
			return true
		}
	}
	return false
}

// parseFacets reads a facets tag: semicolon separated key=value pairs with
// the facet names of XML Schema, enumeration values separated by "|".
//
//	facets:"maxLength=8;whiteSpace=collapse;enumeration=S|M|L"
func parseFacets(v string) (*container.Restriction, error) {
	if v == "" {
		return nil, nil
	}
	r := &container.Restriction{}
	for _, pair := range strings.Split(v, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, val, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errors.IllegalArgumentf("facet %q is not key=value", pair)
		}
		var err error
		switch key {
		case "length":
			r.Length, err = atoi(key, val)
		case "minLength":
			r.MinLength, err = atoi(key, val)
		case "maxLength":
			r.MaxLength, err = atoi(key, val)
		case "totalDigits":
			r.TotalDigits, err = atoi(key, val)
		case "fractionDigits":
			r.FractionDigits, err = atoi(key, val)
		case "minInclusive":
			r.MinInclusive = val
		case "maxInclusive":
			r.MaxInclusive = val
		case "minExclusive":
			r.MinExclusive = val
		case "maxExclusive":
			r.MaxExclusive = val
		case "pattern":
			r.Pattern = val
		case "whiteSpace":
			r.WhiteSpace, err = container.ParseWhiteSpace(val)
		case "enumeration":
			r.Enumeration = strings.Split(val, "|")
		default:
			err = errors.IllegalArgumentf("unknown facet %q", key)
		}
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

func atoi(key, val string) (*int, error) {
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return nil, errors.IllegalArgumentf("facet %s needs a non-negative integer, got %q", key, val)
	}
	return &n, nil
}
