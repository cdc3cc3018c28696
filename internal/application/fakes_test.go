package application

import (
	"strconv"
	"time"

	"studentms/internal/domain/entity"
	"studentms/internal/domain/repository"
)

// In-memory repositories backing the service tests; they mimic the
// postgres implementations' contract (not-found errors, duplicate
// email, generated ids and timestamps).

type fakeUserRepo struct {
	users map[string]*entity.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.seq++
	u.ID = "user-" + strconv.Itoa(r.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) ListByRole(role entity.Role) ([]entity.User, error) {
	out := []entity.User{}
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) delete(id string) { delete(r.users, id) }

var _ repository.UserRepository = (*fakeUserRepo)(nil)

type fakeTaskRepo struct {
	tasks map[string]*entity.Task
	seq   int
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*entity.Task{}}
}

func (r *fakeTaskRepo) Create(t *entity.Task) error {
	r.seq++
	t.ID = "task-" + strconv.Itoa(r.seq)
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) GetByID(id string) (*entity.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTaskRepo) GetByIDForAssignee(id, assignedTo string) (*entity.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.AssignedTo != assignedTo {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTaskRepo) List() ([]entity.Task, error) {
	out := []entity.Task{}
	for _, t := range r.tasks {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTaskRepo) ListByAssignee(assignedTo string) ([]entity.Task, error) {
	out := []entity.Task{}
	for _, t := range r.tasks {
		if t.AssignedTo == assignedTo {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(t *entity.Task) error {
	if _, ok := r.tasks[t.ID]; !ok {
		return repository.ErrNotFound
	}
	t.UpdatedAt = time.Now()
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

var _ repository.TaskRepository = (*fakeTaskRepo)(nil)

// Failing repositories simulate storage outages: every call returns
// the configured error.

type failingUserRepo struct{ err error }

func (r *failingUserRepo) Create(*entity.User) error               { return r.err }
func (r *failingUserRepo) GetByID(string) (*entity.User, error)    { return nil, r.err }
func (r *failingUserRepo) GetByEmail(string) (*entity.User, error) { return nil, r.err }
func (r *failingUserRepo) ListByRole(entity.Role) ([]entity.User, error) {
	return nil, r.err
}

var _ repository.UserRepository = (*failingUserRepo)(nil)

type failingTaskRepo struct{ err error }

func (r *failingTaskRepo) Create(*entity.Task) error            { return r.err }
func (r *failingTaskRepo) GetByID(string) (*entity.Task, error) { return nil, r.err }
func (r *failingTaskRepo) GetByIDForAssignee(string, string) (*entity.Task, error) {
	return nil, r.err
}
func (r *failingTaskRepo) List() ([]entity.Task, error)                 { return nil, r.err }
func (r *failingTaskRepo) ListByAssignee(string) ([]entity.Task, error) { return nil, r.err }
func (r *failingTaskRepo) Update(*entity.Task) error                    { return r.err }

var _ repository.TaskRepository = (*failingTaskRepo)(nil)
