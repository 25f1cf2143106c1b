package query

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Document is a flat attribute map. Null attributes are absent or nil.
type Document map[string]any

// ID returns the document's $id.
func (d Document) ID() string {
	id, _ := d[AttrID].(string)
	return id
}

// Match reports whether doc satisfies every filter in q. Non-filter
// predicates (select, order, limit) are ignored.
func Match(doc Document, q Query) (bool, error) {
	for _, p := range q {
		if !p.isFilter() {
			continue
		}
		ok, err := matchOne(doc, p)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func matchOne(doc Document, p Predicate) (bool, error) {
	if p.Method == MethodAnd {
		return Match(doc, Query(p.Queries))
	}

	v, present := doc[p.Attribute]
	isNull := !present || v == nil

	switch p.Method {
	case MethodIsNull:
		return isNull, nil
	case MethodIsNotNull:
		return !isNull, nil
	}
	if len(p.Values) != 1 {
		return false, fmt.Errorf("%w: %s", ErrInvalidPredicate, p)
	}
	if isNull {
		// Only notEqual matches a null attribute.
		return p.Method == MethodNotEqual, nil
	}
	want := p.Values[0]

	switch p.Method {
	case MethodEqual:
		c, ok := compare(v, want)
		return ok && c == 0, nil
	case MethodNotEqual:
		c, ok := compare(v, want)
		return !ok || c != 0, nil
	case MethodGreaterThanEqual:
		c, ok := compare(v, want)
		return ok && c >= 0, nil
	case MethodLessThan:
		c, ok := compare(v, want)
		return ok && c < 0, nil
	case MethodContains:
		s, ok := v.(string)
		sub, subOK := want.(string)
		if !ok || !subOK {
			return false, nil
		}
		return strings.Contains(strings.ToLower(s), strings.ToLower(sub)), nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnsupportedMethod, p.Method)
}

// Apply runs q over docs the way a document store would: filter, count,
// order, offset, limit, then project. total counts every match and does not
// depend on limit or offset. docs is not modified.
func Apply(docs []Document, q Query) ([]Document, int, error) {
	if err := q.Validate(); err != nil {
		return nil, 0, err
	}

	matched := make([]Document, 0, len(docs))
	for _, d := range docs {
		ok, err := Match(d, q)
		if err != nil {
			return nil, 0, err
		}
		if ok {
			matched = append(matched, d)
		}
	}
	total := len(matched)

	orders := orderPredicates(q)
	if len(orders) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			for _, o := range orders {
				c := compareNullable(matched[i][o.Attribute], matched[j][o.Attribute])
				if c == 0 {
					continue
				}
				if o.Method == MethodOrderDesc {
					return c > 0
				}
				return c < 0
			}
			return false
		})
	}

	if off, ok := q.OffsetValue(); ok {
		if off >= len(matched) {
			matched = matched[:0]
		} else {
			matched = matched[off:]
		}
	}
	if lim, ok := q.LimitValue(); ok && lim < len(matched) {
		matched = matched[:lim]
	}

	selected := q.Selected()
	page := make([]Document, len(matched))
	for i, d := range matched {
		page[i] = project(d, selected)
	}
	return page, total, nil
}

func orderPredicates(q Query) []Predicate {
	var out []Predicate
	for _, p := range q {
		if p.Method == MethodOrderAsc || p.Method == MethodOrderDesc {
			out = append(out, p)
		}
	}
	return out
}

// project copies the selected attributes; $id is always kept.
func project(d Document, selected []string) Document {
	out := make(Document, len(d))
	if len(selected) == 0 {
		for k, v := range d {
			out[k] = v
		}
		return out
	}
	out[AttrID] = d[AttrID]
	for _, attr := range selected {
		if v, ok := d[attr]; ok {
			out[attr] = v
		}
	}
	return out
}

// compareNullable orders nil before any value, matching SQLite's NULL ordering.
func compareNullable(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	c, _ := compare(a, b)
	return c
}

func compare(a, b any) (int, bool) {
	switch av := a.(type) {
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		return av.Compare(bv), true
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(av, bv), true
	case bool:
		bv, ok := b.(bool)
		if !ok {
			return 0, false
		}
		switch {
		case av == bv:
			return 0, true
		case !av:
			return -1, true
		default:
			return 1, true
		}
	}
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if !aok || !bok {
		return 0, false
	}
	switch {
	case af < bf:
		return -1, true
	case af > bf:
		return 1, true
	}
	return 0, true
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
