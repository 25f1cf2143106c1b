// Package schedule defines the named task views (Inbox, Today, Upcoming,
// Completed, per-Project) as document queries, and the bucket rule they
// implement.
package schedule

import (
	"personal-task-management/internal/model"
	"personal-task-management/internal/query"
	"personal-task-management/pkg/datemath"
)

// countProjection is the field set of count-only queries.
var countProjection = query.Select(query.AttrID)

// projectListFields are the fields list screens render.
var projectListFields = []string{
	query.AttrID,
	model.AttrName,
	model.AttrColorName,
	model.AttrColorHex,
	query.AttrCreatedAt,
}

// Views builds the view queries. Owner scoping always comes first, then
// filters, then ordering, search and limit.
type Views struct {
	clock datemath.Clock
}

// NewViews creates Views reading "today" from clock.
func NewViews(clock datemath.Clock) Views {
	if clock == nil {
		clock = datemath.SystemClock{}
	}
	return Views{clock: clock}
}

// Window returns the current day window.
func (v Views) Window() datemath.Window {
	return datemath.Today(v.clock)
}

func owner(userID string) query.Predicate {
	return query.Equal(model.AttrUserID, userID)
}

func pending() query.Predicate {
	return query.Equal(model.AttrCompleted, false)
}

// Today: pending tasks due in [startOfToday, startOfTomorrow).
func (v Views) Today(userID string) query.Query {
	w := v.Window()
	return query.New(
		owner(userID),
		pending(),
		query.GreaterThanEqual(model.AttrDueDate, w.StartOfToday),
		query.LessThan(model.AttrDueDate, w.StartOfTomorrow),
	)
}

// TodayCount is Today projected to ids with limit 1; only the total is meaningful.
func (v Views) TodayCount(userID string) query.Query {
	return append(v.Today(userID), countProjection, query.Limit(1))
}

// Inbox: pending tasks with no project.
func (v Views) Inbox(userID string) query.Query {
	return query.New(
		owner(userID),
		pending(),
		query.IsNull(model.AttrProjectID),
	)
}

// InboxCount is Inbox projected to ids with limit 1.
func (v Views) InboxCount(userID string) query.Query {
	return append(v.Inbox(userID), countProjection, query.Limit(1))
}

// Completed: completed tasks, most recently updated first.
func (v Views) Completed(userID string) query.Query {
	return query.New(
		owner(userID),
		query.Equal(model.AttrCompleted, true),
		query.OrderDesc(query.AttrUpdatedAt),
	)
}

// Upcoming: pending tasks due today or later, soonest first.
func (v Views) Upcoming(userID string) query.Query {
	w := v.Window()
	return query.New(
		owner(userID),
		pending(),
		query.IsNotNull(model.AttrDueDate),
		query.GreaterThanEqual(model.AttrDueDate, w.StartOfToday),
		query.OrderAsc(model.AttrDueDate),
	)
}

// ProjectTasks: pending tasks of one project, soonest first. Ties keep store order.
func (v Views) ProjectTasks(userID, projectID string) query.Query {
	return query.New(
		owner(userID),
		pending(),
		query.Equal(model.AttrProjectID, projectID),
		query.OrderAsc(model.AttrDueDate),
	)
}

// AllProjectTasks matches every task of a project, completed or not.
func (v Views) AllProjectTasks(userID, projectID string) query.Query {
	return query.New(
		owner(userID),
		query.Equal(model.AttrProjectID, projectID),
	)
}

// ProjectListOptions narrows UserProjects.
type ProjectListOptions struct {
	Search string // empty means no name filter
	Limit  int    // 0 means no limit
}

// UserProjects lists the user's projects, newest first.
func (v Views) UserProjects(userID string, opt ProjectListOptions) query.Query {
	q := query.New(owner(userID))
	if opt.Search != "" {
		q = append(q, query.Contains(model.AttrName, opt.Search))
	}
	q = append(q,
		query.OrderDesc(query.AttrCreatedAt),
		query.Select(projectListFields...),
	)
	if opt.Limit > 0 {
		q = append(q, query.Limit(opt.Limit))
	}
	return q
}
