package query

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnsupportedMethod = errors.New("unsupported query method")
	ErrInvalidPredicate  = errors.New("invalid predicate")
)

// Query is an ordered list of predicates.
type Query []Predicate

// New builds a Query from predicates, preserving order.
func New(predicates ...Predicate) Query {
	return Query(predicates)
}

// Has reports whether any top-level predicate uses method.
func (q Query) Has(method Method) bool {
	for _, p := range q {
		if p.Method == method {
			return true
		}
	}
	return false
}

// Find returns the top-level predicates using method, in order.
func (q Query) Find(method Method) []Predicate {
	var out []Predicate
	for _, p := range q {
		if p.Method == method {
			out = append(out, p)
		}
	}
	return out
}

// Filters returns only the membership predicates. Count queries are built from these.
func (q Query) Filters() Query {
	var out Query
	for _, p := range q {
		if p.isFilter() {
			out = append(out, p)
		}
	}
	return out
}

// LimitValue returns the last limit in the query.
func (q Query) LimitValue() (int, bool) {
	return q.intValue(MethodLimit)
}

// OffsetValue returns the last offset in the query.
func (q Query) OffsetValue() (int, bool) {
	return q.intValue(MethodOffset)
}

func (q Query) intValue(method Method) (int, bool) {
	ps := q.Find(method)
	if len(ps) == 0 {
		return 0, false
	}
	n, ok := asInt(ps[len(ps)-1].Values[0])
	return n, ok
}

// Selected returns the projected attributes, or nil when the query selects everything.
func (q Query) Selected() []string {
	var attrs []string
	for _, p := range q.Find(MethodSelect) {
		for _, v := range p.Values {
			if s, ok := v.(string); ok {
				attrs = append(attrs, s)
			}
		}
	}
	return attrs
}

// Validate checks arity and argument types of every predicate.
func (q Query) Validate() error {
	for _, p := range q {
		if err := validate(p); err != nil {
			return err
		}
	}
	return nil
}

func validate(p Predicate) error {
	switch p.Method {
	case MethodAnd:
		if len(p.Queries) == 0 {
			return fmt.Errorf("%w: and() needs at least one predicate", ErrInvalidPredicate)
		}
		for _, sub := range p.Queries {
			if !sub.isFilter() {
				return fmt.Errorf("%w: and() accepts filters only, got %s", ErrInvalidPredicate, sub.Method)
			}
			if err := validate(sub); err != nil {
				return err
			}
		}
	case MethodEqual, MethodNotEqual, MethodGreaterThanEqual, MethodLessThan:
		if p.Attribute == "" || len(p.Values) != 1 {
			return fmt.Errorf("%w: %s", ErrInvalidPredicate, p)
		}
	case MethodContains:
		if p.Attribute == "" || len(p.Values) != 1 {
			return fmt.Errorf("%w: %s", ErrInvalidPredicate, p)
		}
		if _, ok := p.Values[0].(string); !ok {
			return fmt.Errorf("%w: contains() needs a string", ErrInvalidPredicate)
		}
	case MethodIsNull, MethodIsNotNull, MethodOrderAsc, MethodOrderDesc:
		if p.Attribute == "" {
			return fmt.Errorf("%w: %s needs an attribute", ErrInvalidPredicate, p.Method)
		}
	case MethodLimit, MethodOffset:
		n, ok := asInt(firstValue(p))
		if !ok || n < 0 {
			return fmt.Errorf("%w: %s needs a non-negative integer", ErrInvalidPredicate, p.Method)
		}
	case MethodSelect:
		if len(p.Values) == 0 {
			return fmt.Errorf("%w: select() needs at least one attribute", ErrInvalidPredicate)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedMethod, p.Method)
	}
	return nil
}

// Encode renders each predicate as a JSON string, the wire form used by
// document services that take queries as string arrays.
func (q Query) Encode() ([]string, error) {
	out := make([]string, 0, len(q))
	for _, p := range q {
		b, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("query: encode %s: %w", p.Method, err)
		}
		out = append(out, string(b))
	}
	return out, nil
}

func firstValue(p Predicate) any {
	if len(p.Values) == 0 {
		return nil
	}
	return p.Values[0]
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), float64(int(n)) == n
	}
	return 0, false
}
