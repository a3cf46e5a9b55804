package style

import (
	"fmt"
	"strings"
	"unicode"
)

// Predicate is a boolean condition over a class list.
type Predicate interface {
	// Matches reports whether the predicate holds for classes.
	Matches(classes []string) bool
	String() string
}

// Class matches when the class list contains the named class.
type Class string

// Matches implements Predicate.
func (c Class) Matches(classes []string) bool {
	for _, class := range classes {
		if class == string(c) {
			return true
		}
	}
	return false
}

func (c Class) String() string { return string(c) }

// And matches when both operands match.
type And struct {
	Left, Right Predicate
}

// Matches implements Predicate.
func (a And) Matches(classes []string) bool {
	return a.Left.Matches(classes) && a.Right.Matches(classes)
}

func (a And) String() string {
	return "(" + a.Left.String() + " & " + a.Right.String() + ")"
}

// Or matches when either operand matches.
type Or struct {
	Left, Right Predicate
}

// Matches implements Predicate.
func (o Or) Matches(classes []string) bool {
	return o.Left.Matches(classes) || o.Right.Matches(classes)
}

func (o Or) String() string {
	return "(" + o.Left.String() + " | " + o.Right.String() + ")"
}

// Query is a parsed class query.
type Query struct {
	// Source is the query text as written in the stylesheet.
	Source string
	// Predicate is the parsed condition.
	Predicate Predicate
}

// Matches reports whether the query selects classes.
func (q Query) Matches(classes []string) bool {
	return q.Predicate.Matches(classes)
}

// ParseQuery parses a class query.
//
// Terms are read left to right. Each new term wraps the predicate built so
// far: "& x" yields And(x, prev), "| x" yields Or(x, prev), and a bare term
// after the first behaves like "&". There is no operator precedence, so
// "a & b | c" parses as Or(c, And(b, a)).
func ParseQuery(s string) (Query, error) {
	var pred Predicate
	rest := s
	for {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			break
		}
		op := byte('&')
		if rest[0] == '&' || rest[0] == '|' {
			op = rest[0]
			rest = strings.TrimSpace(rest[1:])
		}
		end := strings.IndexFunc(rest, func(r rune) bool { return !isValidClassChar(r) })
		if end < 0 {
			end = len(rest)
		}
		if end == 0 {
			pos := len(s) - len(rest)
			if rest == "" {
				return Query{}, &QueryError{Query: s, Pos: pos, Reason: fmt.Sprintf("expected class name after %q", op)}
			}
			return Query{}, &QueryError{Query: s, Pos: pos, Reason: fmt.Sprintf("unexpected character %q", []rune(rest)[0])}
		}
		term := Class(rest[:end])
		rest = rest[end:]
		switch {
		case pred == nil:
			pred = term
		case op == '|':
			pred = Or{Left: term, Right: pred}
		default:
			pred = And{Left: term, Right: pred}
		}
	}
	if pred == nil {
		return Query{}, &QueryError{Query: s, Reason: "no query specified (empty / blank string)"}
	}
	return Query{Source: s, Predicate: pred}, nil
}

// isValidClassChar reports whether r may appear in a class name.
func isValidClassChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '(' || r == ')'
}

// IsValidClass reports whether name can be used as a class in a query.
func IsValidClass(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !isValidClassChar(r) {
			return false
		}
	}
	return true
}
