// Package query holds the predicate grammar understood by the document store.
// Views compose these primitives into ordered lists; nothing outside this
// package inspects a predicate's method or values.
package query

import "fmt"

// Method names a predicate kind.
type Method string

const (
	MethodSelect           Method = "select"
	MethodEqual            Method = "equal"
	MethodNotEqual         Method = "notEqual"
	MethodIsNull           Method = "isNull"
	MethodIsNotNull        Method = "isNotNull"
	MethodGreaterThanEqual Method = "greaterThanEqual"
	MethodLessThan         Method = "lessThan"
	MethodContains         Method = "contains"
	MethodOrderAsc         Method = "orderAsc"
	MethodOrderDesc        Method = "orderDesc"
	MethodLimit            Method = "limit"
	MethodOffset           Method = "offset"
	MethodAnd              Method = "and"
)

// System attributes every document carries.
const (
	AttrID        = "$id"
	AttrCreatedAt = "$createdAt"
	AttrUpdatedAt = "$updatedAt"
)

// Predicate is one element of a query.
type Predicate struct {
	Method    Method      `json:"method"`
	Attribute string      `json:"attribute,omitempty"`
	Values    []any       `json:"values,omitempty"`
	Queries   []Predicate `json:"queries,omitempty"`
}

func (p Predicate) String() string {
	switch p.Method {
	case MethodAnd:
		return fmt.Sprintf("and(%v)", p.Queries)
	case MethodLimit, MethodOffset:
		return fmt.Sprintf("%s(%v)", p.Method, firstValue(p))
	case MethodSelect:
		return fmt.Sprintf("select(%v)", p.Values)
	}
	if len(p.Values) == 0 {
		return fmt.Sprintf("%s(%s)", p.Method, p.Attribute)
	}
	return fmt.Sprintf("%s(%s, %v)", p.Method, p.Attribute, p.Values)
}

// isFilter reports whether p restricts membership (as opposed to shaping the page).
func (p Predicate) isFilter() bool {
	switch p.Method {
	case MethodEqual, MethodNotEqual, MethodIsNull, MethodIsNotNull,
		MethodGreaterThanEqual, MethodLessThan, MethodContains, MethodAnd:
		return true
	}
	return false
}

// Select restricts the returned document fields.
func Select(attributes ...string) Predicate {
	values := make([]any, len(attributes))
	for i, a := range attributes {
		values[i] = a
	}
	return Predicate{Method: MethodSelect, Values: values}
}

func Equal(attribute string, value any) Predicate {
	return Predicate{Method: MethodEqual, Attribute: attribute, Values: []any{value}}
}

func NotEqual(attribute string, value any) Predicate {
	return Predicate{Method: MethodNotEqual, Attribute: attribute, Values: []any{value}}
}

func IsNull(attribute string) Predicate {
	return Predicate{Method: MethodIsNull, Attribute: attribute}
}

func IsNotNull(attribute string) Predicate {
	return Predicate{Method: MethodIsNotNull, Attribute: attribute}
}

// GreaterThanEqual is the inclusive lower bound of a range.
func GreaterThanEqual(attribute string, value any) Predicate {
	return Predicate{Method: MethodGreaterThanEqual, Attribute: attribute, Values: []any{value}}
}

// LessThan is the exclusive upper bound of a range.
func LessThan(attribute string, value any) Predicate {
	return Predicate{Method: MethodLessThan, Attribute: attribute, Values: []any{value}}
}

// Contains matches string attributes containing substring, ignoring case.
func Contains(attribute string, substring string) Predicate {
	return Predicate{Method: MethodContains, Attribute: attribute, Values: []any{substring}}
}

func OrderAsc(attribute string) Predicate {
	return Predicate{Method: MethodOrderAsc, Attribute: attribute}
}

func OrderDesc(attribute string) Predicate {
	return Predicate{Method: MethodOrderDesc, Attribute: attribute}
}

func Limit(n int) Predicate {
	return Predicate{Method: MethodLimit, Values: []any{n}}
}

func Offset(n int) Predicate {
	return Predicate{Method: MethodOffset, Values: []any{n}}
}

// And matches documents satisfying every nested filter.
func And(predicates ...Predicate) Predicate {
	return Predicate{Method: MethodAnd, Queries: predicates}
}
