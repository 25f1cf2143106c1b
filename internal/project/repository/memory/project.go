package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"personal-task-management/internal/model"
	"personal-task-management/internal/project/repository"
	"personal-task-management/internal/query"
)

type implRepository struct {
	mu    sync.RWMutex
	docs  []query.Document
	index map[string]int
	now   func() time.Time
}

// New creates an in-memory ProjectRepository.
func New() repository.ProjectRepository {
	return &implRepository{index: map[string]int{}, now: time.Now}
}

func (r *implRepository) FindProjectByID(_ context.Context, id string) (model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return model.Project{}, repository.ErrNotFound
	}
	return model.ProjectFromDocument(r.docs[i]), nil
}

func (r *implRepository) ListProjects(_ context.Context, q query.Query) (repository.ProjectList, error) {
	r.mu.RLock()
	docs := append([]query.Document(nil), r.docs...)
	r.mu.RUnlock()

	page, total, err := query.Apply(docs, q)
	if err != nil {
		return repository.ProjectList{}, repository.ErrInvalidQuery
	}
	projects := make([]model.Project, len(page))
	for i, d := range page {
		projects[i] = model.ProjectFromDocument(d)
	}
	return repository.ProjectList{Total: total, Projects: projects}, nil
}

func (r *implRepository) CreateProject(_ context.Context, id string, opt repository.CreateProjectOptions) (model.Project, error) {
	if id == "" {
		id = uuid.NewString()
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[id]; exists {
		return model.Project{}, repository.ErrFailedToInsert
	}
	now := r.now().UTC()
	p := model.Project{
		ID:        id,
		Name:      opt.Name,
		ColorName: opt.ColorName,
		ColorHex:  opt.ColorHex,
		UserID:    opt.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.index[id] = len(r.docs)
	r.docs = append(r.docs, p.Document())
	return p, nil
}

func (r *implRepository) UpdateProject(_ context.Context, id string, opt repository.UpdateProjectOptions) (model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return model.Project{}, repository.ErrNotFound
	}
	doc := make(query.Document, len(r.docs[i]))
	for k, v := range r.docs[i] {
		doc[k] = v
	}
	for k, v := range opt.Fields() {
		doc[k] = v
	}
	doc[query.AttrUpdatedAt] = r.now().UTC()
	r.docs[i] = doc
	return model.ProjectFromDocument(doc), nil
}

func (r *implRepository) DeleteProject(_ context.Context, id string) error {
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
