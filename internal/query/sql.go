package query

import (
	"fmt"
	"strings"
)

// Column maps a document attribute to a table column.
type Column struct {
	Attribute string
	Name      string
}

// Schema describes how a collection is laid out in a SQL table.
type Schema struct {
	Table   string
	Columns []Column
	// Encode converts predicate values into driver arguments (e.g. time to text).
	Encode func(v any) any
}

// Statement is a translated query. Where and Args cover filters only.
type Statement struct {
	table   string
	Columns []string
	Where   string
	Args    []any
	OrderBy string
	Limit   int
	Offset  int
	limited bool
}

func (s Schema) column(attr string) (string, error) {
	for _, c := range s.Columns {
		if c.Attribute == attr {
			return c.Name, nil
		}
	}
	return "", fmt.Errorf("%w: unknown attribute %q on %s", ErrInvalidPredicate, attr, s.Table)
}

// AttributeOf maps a column name back to its attribute.
func (s Schema) AttributeOf(column string) string {
	for _, c := range s.Columns {
		if c.Name == column {
			return c.Attribute
		}
	}
	return column
}

func (s Schema) encode(v any) any {
	if s.Encode == nil {
		return v
	}
	return s.Encode(v)
}

// Translate converts q into SQL fragments with positional (?) arguments.
func (s Schema) Translate(q Query) (Statement, error) {
	if err := q.Validate(); err != nil {
		return Statement{}, err
	}

	st := Statement{table: s.Table}

	var conds []string
	for _, p := range q.Filters() {
		cond, args, err := s.condition(p)
		if err != nil {
			return Statement{}, err
		}
		conds = append(conds, cond)
		st.Args = append(st.Args, args...)
	}
	if len(conds) > 0 {
		st.Where = strings.Join(conds, " AND ")
	}

	var orders []string
	for _, p := range orderPredicates(q) {
		col, err := s.column(p.Attribute)
		if err != nil {
			return Statement{}, err
		}
		dir := "ASC"
		if p.Method == MethodOrderDesc {
			dir = "DESC"
		}
		orders = append(orders, col+" "+dir)
	}
	// rowid keeps ties in insertion order, the store's natural order.
	orders = append(orders, "rowid ASC")
	st.OrderBy = strings.Join(orders, ", ")

	if n, ok := q.LimitValue(); ok {
		st.Limit, st.limited = n, true
	}
	if n, ok := q.OffsetValue(); ok {
		st.Offset = n
	}

	selected := q.Selected()
	if len(selected) == 0 {
		for _, c := range s.Columns {
			st.Columns = append(st.Columns, c.Name)
		}
	} else {
		idCol, err := s.column(AttrID)
		if err != nil {
			return Statement{}, err
		}
		st.Columns = append(st.Columns, idCol)
		for _, attr := range selected {
			if attr == AttrID {
				continue
			}
			col, err := s.column(attr)
			if err != nil {
				return Statement{}, err
			}
			st.Columns = append(st.Columns, col)
		}
	}

	return st, nil
}

func (s Schema) condition(p Predicate) (string, []any, error) {
	if p.Method == MethodAnd {
		parts := make([]string, 0, len(p.Queries))
		var args []any
		for _, sub := range p.Queries {
			cond, subArgs, err := s.condition(sub)
			if err != nil {
				return "", nil, err
			}
			parts = append(parts, cond)
			args = append(args, subArgs...)
		}
		return "(" + strings.Join(parts, " AND ") + ")", args, nil
	}

	col, err := s.column(p.Attribute)
	if err != nil {
		return "", nil, err
	}

	switch p.Method {
	case MethodIsNull:
		return col + " IS NULL", nil, nil
	case MethodIsNotNull:
		return col + " IS NOT NULL", nil, nil
	case MethodEqual:
		return col + " = ?", []any{s.encode(p.Values[0])}, nil
	case MethodNotEqual:
		// Null rows are not "not equal" under SQL three-valued logic; keep them.
		return "(" + col + " IS NULL OR " + col + " <> ?)", []any{s.encode(p.Values[0])}, nil
	case MethodGreaterThanEqual:
		return col + " >= ?", []any{s.encode(p.Values[0])}, nil
	case MethodLessThan:
		return col + " < ?", []any{s.encode(p.Values[0])}, nil
	case MethodContains:
		return "instr(lower(" + col + "), lower(?)) > 0", []any{p.Values[0]}, nil
	}
	return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, p.Method)
}

// SelectSQL renders the page query.
func (st Statement) SelectSQL() (string, []any) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", strings.Join(st.Columns, ", "), st.table)
	if st.Where != "" {
		sb.WriteString(" WHERE " + st.Where)
	}
	sb.WriteString(" ORDER BY " + st.OrderBy)

	args := append([]any{}, st.Args...)
	switch {
	case st.limited:
		sb.WriteString(" LIMIT ?")
		args = append(args, st.Limit)
	case st.Offset > 0:
		// SQLite needs LIMIT before OFFSET; -1 means unbounded.
		sb.WriteString(" LIMIT -1")
	}
	if st.Offset > 0 {
		sb.WriteString(" OFFSET ?")
		args = append(args, st.Offset)
	}
	return sb.String(), args
}

// CountSQL renders the total query: same filters, no order, no paging.
func (st Statement) CountSQL() (string, []any) {
	q := "SELECT COUNT(*) FROM " + st.table
	if st.Where != "" {
		q += " WHERE " + st.Where
	}
	return q, append([]any{}, st.Args...)
}
