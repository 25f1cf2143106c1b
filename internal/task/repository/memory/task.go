package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"personal-task-management/internal/model"
	"personal-task-management/internal/query"
	"personal-task-management/internal/task/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	docs  []query.Document // insertion order is the natural order
	index map[string]int
	now   func() time.Time
}

// New creates an in-memory TaskRepository.
func New() repository.TaskRepository {
	return newRepository(time.Now)
}

func newRepository(now func() time.Time) *implRepository {
	return &implRepository{index: map[string]int{}, now: now}
}

func (r *implRepository) FindTaskByID(_ context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return model.TaskFromDocument(r.docs[i]), nil
}

func (r *implRepository) ListTasks(_ context.Context, q query.Query) (repository.TaskList, error) {
	r.mu.RLock()
	docs := make([]query.Document, len(r.docs))
	copy(docs, r.docs)
	r.mu.RUnlock()

	page, total, err := query.Apply(docs, q)
	if err != nil {
		return repository.TaskList{}, repository.ErrInvalidQuery
	}

	tasks := make([]model.Task, len(page))
	for i, d := range page {
		tasks[i] = model.TaskFromDocument(d)
	}
	return repository.TaskList{Total: total, Tasks: tasks}, nil
}

func (r *implRepository) CreateTask(_ context.Context, id string, opt repository.CreateTaskOptions) (model.Task, error) {
	if id == "" {
		id = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[id]; exists {
		return model.Task{}, repository.ErrFailedToInsert
	}
	now := r.now().UTC()
	t := model.Task{
		ID:        id,
		Content:   opt.Content,
		DueDate:   opt.DueDate,
		Completed: opt.Completed,
		ProjectID: opt.ProjectID,
		UserID:    opt.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.index[id] = len(r.docs)
	r.docs = append(r.docs, t.Document())
	return t, nil
}

func (r *implRepository) UpdateTask(_ context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}

	// documents are replaced, never mutated, so pages handed out stay stable
	doc := make(query.Document, len(r.docs[i]))
	for k, v := range r.docs[i] {
		doc[k] = v
	}
	for k, v := range opt.Fields() {
		doc[k] = v
	}
	doc[query.AttrUpdatedAt] = r.now().UTC()
	r.docs[i] = doc
	return model.TaskFromDocument(doc), nil
}

func (r *implRepository) DeleteTask(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return repository.ErrNotFound
	}
	r.docs = append(r.docs[:i], r.docs[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.docs); j++ {
		r.index[r.docs[j].ID()] = j
	}
	return nil
}
