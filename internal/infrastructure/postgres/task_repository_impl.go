package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"studentms/internal/domain/entity"
	"studentms/internal/domain/repository"
)

const taskColumns = `id, title, description, assigned_to, created_by, due_date, status, attachment_url, created_at, updated_at`

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(t *entity.Task) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (title, description, assigned_to, created_by, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, t.Title, t.Description, t.AssignedTo, t.CreatedBy, t.DueDate, string(t.Status))

	return row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TaskRepository) GetByID(id string) (*entity.Task, error) {
	return r.getBy(`WHERE id = $1`, id)
}

func (r *TaskRepository) GetByIDForAssignee(id, assignedTo string) (*entity.Task, error) {
	return r.getBy(`WHERE id = $1 AND assigned_to = $2`, id, assignedTo)
}

func (r *TaskRepository) getBy(where string, args ...any) (*entity.Task, error) {
	ctx := context.Background()
	t := &entity.Task{}

	row := r.pool.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks `+where, args...)
	if err := scanTask(row, t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) List() ([]entity.Task, error) {
	return r.list(``)
}

func (r *TaskRepository) ListByAssignee(assignedTo string) ([]entity.Task, error) {
	return r.list(`WHERE assigned_to = $1`, assignedTo)
}

func (r *TaskRepository) list(where string, args ...any) ([]entity.Task, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `SELECT `+taskColumns+` FROM tasks `+where+` ORDER BY created_at`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []entity.Task{}
	for rows.Next() {
		var t entity.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) Update(t *entity.Task) error {
	ctx := context.Background()
	t.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET title = $1, description = $2, due_date = $3, status = $4, attachment_url = $5, updated_at = $6
		WHERE id = $7
	`, t.Title, t.Description, t.DueDate, string(t.Status), t.AttachmentURL, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func scanTask(row pgx.Row, t *entity.Task) error {
	var status string
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.AssignedTo, &t.CreatedBy,
		&t.DueDate, &status, &t.AttachmentURL, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return err
	}
	t.Status = entity.Status(status)
	return nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
