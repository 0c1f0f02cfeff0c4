package classgen

import (
	"fmt"
	"strings"

	"github.com/cmmoran/srcgen/pkg/container"
	"github.com/cmmoran/srcgen/pkg/errors"
)

// Dialect selects the language of generated guard code.
type Dialect int

const (
	JavaDialect Dialect = iota
	CppDialect
)

// RestrictionHelper writes the statements that enforce the facets of a
// member inside its setter. The setter parameter carries the member name.
//
// Whitespace normalization comes first so every later check sees the
// normalized value. Each check throws when violated.
type RestrictionHelper struct {
	dialect Dialect
}

func NewRestrictionHelper(d Dialect) *RestrictionHelper {
	return &RestrictionHelper{dialect: d}
}

// Statements returns the guard code for m, whose type in the target language
// is typ. A member without facets yields "".
func (h *RestrictionHelper) Statements(m container.MemberVariable, typ string) (string, error) {
	r := m.Restriction
	if r.IsZero() {
		return "", nil
	}
	v := m.Name
	array := m.Kind == container.ElementArray
	str := isStringType(typ) && !array

	var out []string
	add := func(s string) { out = append(out, s) }

	if r.WhiteSpace != container.Preserve {
		if !str {
			return "", errors.CodeValidationf("whitespace facet on %s requires a string type, got %s", v, typ)
		}
		add(h.whiteSpace(v, r.WhiteSpace))
	}

	if r.Length != nil || r.MinLength != nil || r.MaxLength != nil {
		if !str && !array {
			return "", errors.CodeValidationf("length facet on %s requires a string or an array, got %s", v, typ)
		}
		size := h.size(v, array)
		if r.Length != nil {
			add(h.guard(fmt.Sprintf("%s != %d", size, *r.Length), fmt.Sprintf("%s: length must be %d", v, *r.Length)))
		}
		if r.MinLength != nil {
			add(h.guard(fmt.Sprintf("%s < %d", size, *r.MinLength), fmt.Sprintf("%s: length must be at least %d", v, *r.MinLength)))
		}
		if r.MaxLength != nil {
			add(h.guard(fmt.Sprintf("%s > %d", size, *r.MaxLength), fmt.Sprintf("%s: length must be at most %d", v, *r.MaxLength)))
		}
	}

	if len(r.Enumeration) > 0 {
		add(h.guard(h.notOneOf(v, typ, r.Enumeration),
			fmt.Sprintf("%s: value must be one of [%s]", v, strings.Join(r.Enumeration, ", "))))
	}

	if r.Pattern != "" {
		if !str {
			return "", errors.CodeValidationf("pattern facet on %s requires a string type, got %s", v, typ)
		}
		add(h.pattern(v, r.Pattern))
	}

	bounds := []struct {
		bound, op, text string
	}{
		{r.MinInclusive, "<", ">="},
		{r.MinExclusive, "<=", ">"},
		{r.MaxInclusive, ">", "<="},
		{r.MaxExclusive, ">=", "<"},
	}
	for _, b := range bounds {
		if b.bound == "" {
			continue
		}
		if !isNumericType(typ) || array {
			return "", errors.CodeValidationf("range facet on %s requires a numeric type, got %s", v, typ)
		}
		add(h.guard(h.compare(v, typ, b.op, b.bound), fmt.Sprintf("%s: must be %s %s", v, b.text, b.bound)))
	}

	if r.TotalDigits != nil || r.FractionDigits != nil {
		if !isNumericType(typ) || array {
			return "", errors.CodeValidationf("digits facet on %s requires a numeric type, got %s", v, typ)
		}
		add(h.digits(v, typ, r.TotalDigits, r.FractionDigits))
	}

	return strings.Join(out, "\n"), nil
}

func (h *RestrictionHelper) throw(msg string) string {
	if h.dialect == CppDialect {
		return "throw std::invalid_argument(" + quote(msg) + ");"
	}
	return "throw new IllegalArgumentException(" + quote(msg) + ");"
}

func (h *RestrictionHelper) guard(cond, msg string) string {
	return "if (" + cond + ") {\n    " + h.throw(msg) + "\n}"
}

func (h *RestrictionHelper) size(v string, array bool) string {
	switch {
	case h.dialect == CppDialect && array:
		return v + ".size()"
	case array:
		return v + ".length"
	default:
		return v + ".length()"
	}
}

func (h *RestrictionHelper) compare(v, typ, op, bound string) string {
	if h.dialect == JavaDialect {
		if isBigType(typ) {
			return fmt.Sprintf("%s.compareTo(%s) %s 0", v, javaLiteral(typ, bound), op)
		}
		bound = javaLiteral(typ, bound)
	}
	return fmt.Sprintf("%s %s %s", v, op, bound)
}

func (h *RestrictionHelper) notOneOf(v, typ string, values []string) string {
	parts := make([]string, len(values))
	for i, val := range values {
		switch {
		case h.dialect == JavaDialect && isStringType(typ):
			parts[i] = fmt.Sprintf("!%s.equals(%s)", quote(val), v)
		case h.dialect == JavaDialect && isBigType(typ):
			parts[i] = fmt.Sprintf("%s.compareTo(%s) != 0", v, javaLiteral(typ, val))
		case h.dialect == JavaDialect:
			parts[i] = fmt.Sprintf("%s != %s", v, javaLiteral(typ, val))
		case isStringType(typ):
			parts[i] = fmt.Sprintf("%s != %s", v, quote(val))
		default:
			parts[i] = fmt.Sprintf("%s != %s", v, val)
		}
	}
	return strings.Join(parts, " && ")
}

func (h *RestrictionHelper) whiteSpace(v string, mode container.WhiteSpace) string {
	if h.dialect == CppDialect {
		if mode == container.Replace {
			return fmt.Sprintf("std::replace_if(%[1]s.begin(), %[1]s.end(), [](char c) { return c == '\\t' || c == '\\n' || c == '\\r'; }, ' ');", v)
		}
		return strings.Join([]string{
			"{",
			"    std::string collapsed;",
			"    bool space = false;",
			"    for (char c : " + v + ") {",
			"        if (c == ' ' || c == '\\t' || c == '\\n' || c == '\\r') {",
			"            space = !collapsed.empty();",
			"            continue;",
			"        }",
			"        if (space) {",
			"            collapsed += ' ';",
			"            space = false;",
			"        }",
			"        collapsed += c;",
			"    }",
			"    " + v + " = collapsed;",
			"}",
		}, "\n")
	}
	if mode == container.Replace {
		return fmt.Sprintf(`%[1]s = %[1]s.replaceAll("[\\t\\n\\r]", " ");`, v)
	}
	return fmt.Sprintf(`%[1]s = %[1]s.replaceAll("[\\t\\n\\r ]+", " ").trim();`, v)
}

func (h *RestrictionHelper) pattern(v, pattern string) string {
	msg := fmt.Sprintf("%s: value does not match pattern %s", v, pattern)
	if h.dialect == CppDialect {
		return strings.Join([]string{
			"try {",
			fmt.Sprintf("    if (!std::regex_match(%s, std::regex(%s))) {", v, quote(pattern)),
			"        " + h.throw(msg),
			"    }",
			"} catch (const std::regex_error& e) {",
			fmt.Sprintf("    throw std::logic_error(std::string(%s) + e.what());",
				quote(fmt.Sprintf("%s: pattern %s is not a valid ECMAScript regular expression: ", v, pattern))),
			"}",
		}, "\n")
	}
	return strings.Join([]string{
		"try {",
		fmt.Sprintf("    if (!java.util.regex.Pattern.matches(%s, %s)) {", quote(pattern), v),
		"        " + h.throw(msg),
		"    }",
		"} catch (java.util.regex.PatternSyntaxException e) {",
		fmt.Sprintf("    throw new IllegalStateException(%s, e);",
			quote(fmt.Sprintf("%s: pattern %s is not a valid Java regular expression", v, pattern))),
		"}",
	}, "\n")
}

func (h *RestrictionHelper) digits(v, typ string, total, fraction *int) string {
	var lines []string
	if h.dialect == CppDialect {
		lines = []string{
			"{",
			"    std::ostringstream out;",
			"    out << " + v + ";",
			"    std::string digits = out.str();",
			"    if (!digits.empty() && digits[0] == '-') {",
			"        digits.erase(0, 1);",
			"    }",
			"    std::string::size_type point = digits.find('.');",
			"    std::string::size_type fraction = point == std::string::npos ? 0 : digits.size() - point - 1;",
			"    std::string::size_type total = digits.size() - (point == std::string::npos ? 0 : 1);",
		}
	} else {
		value := "String.valueOf(" + v + ")"
		if typ == "java.math.BigDecimal" {
			value = v + ".toPlainString()"
		}
		lines = []string{
			"{",
			"    String digits = " + value + ".replaceFirst(\"^-\", \"\");",
			"    int point = digits.indexOf('.');",
			"    int fraction = point < 0 ? 0 : digits.length() - point - 1;",
			"    int total = digits.length() - (point < 0 ? 0 : 1);",
		}
	}
	indent := func(s string) string {
		return "    " + strings.ReplaceAll(s, "\n", "\n    ")
	}
	if total != nil {
		lines = append(lines, indent(h.guard(fmt.Sprintf("total > %d", *total), fmt.Sprintf("%s: at most %d total digits", v, *total))))
	}
	if fraction != nil {
		lines = append(lines, indent(h.guard(fmt.Sprintf("fraction > %d", *fraction), fmt.Sprintf("%s: at most %d fraction digits", v, *fraction))))
	}
	return strings.Join(append(lines, "}"), "\n")
}
