package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"studentms/internal/domain/entity"
	"studentms/internal/domain/repository"
	"studentms/pkg/helpers"
	"studentms/pkg/mailer"
	tpl "studentms/pkg/mailer/templates"
)

var (
	ErrEmailTaken      = errors.New("email already in use")
	ErrStudentNotFound = errors.New("student not found")
	ErrTaskNotFound    = errors.New("task not found")
)

// AdminService implements the admin-facing operations: student account
// management and task assignment.
type AdminService struct {
	Users  repository.UserRepository
	Tasks  repository.TaskRepository
	Logger *logrus.Logger

	// Assignment notifications (nil-safe)
	Pub         *helpers.RabbitPublisher
	MailEnabled bool

	// Student search (nil-safe)
	ES             *elasticsearch.Client
	ESStudentIndex string

	// Task attachments (nil-safe)
	GCS       *storage.Client
	GCSBucket string

	// Now is the time source; injectable for tests.
	Now func() time.Time
}

func NewAdminService(users repository.UserRepository, tasks repository.TaskRepository, logger *logrus.Logger) *AdminService {
	return &AdminService{Users: users, Tasks: tasks, Logger: logger, Now: time.Now}
}

type AddStudentInput struct {
	Name       string
	Email      string
	Department string
	Password   string
}

// AddStudent creates a student account. The email must be unique across
// all users.
func (s *AdminService) AddStudent(ctx context.Context, in AddStudentInput) (*entity.User, error) {
	existing, err := s.Users.GetByEmail(in.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Name:       in.Name,
		Email:      in.Email,
		Department: in.Department,
		Password:   hash,
		Role:       entity.RoleStudent,
	}
	if err := s.Users.Create(u); err != nil {
		// The unique index closes the check-then-create race.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	_ = s.indexStudent(ctx, u)
	return u, nil
}

// ListStudents returns all student accounts.
func (s *AdminService) ListStudents(ctx context.Context) ([]entity.User, error) {
	return s.Users.ListByRole(entity.RoleStudent)
}

type AssignTaskInput struct {
	Title       string
	Description string
	AssignedTo  string
	DueDate     time.Time
	CreatedBy   string
}

// TaskDetail pairs a task with its assignee for admin reads. Assignee
// is nil when the account no longer exists.
type TaskDetail struct {
	Task     entity.Task
	Assignee *entity.User
}

// AssignTask creates a task for a student. The assignee must exist and
// hold the student role.
func (s *AdminService) AssignTask(ctx context.Context, in AssignTaskInput) (*TaskDetail, error) {
	student, err := s.Users.GetByID(in.AssignedTo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if student.Role != entity.RoleStudent {
		return nil, ErrStudentNotFound
	}

	t := &entity.Task{
		Title:       in.Title,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
		CreatedBy:   in.CreatedBy,
		DueDate:     in.DueDate,
		Status:      entity.StatusPending,
	}
	if err := s.Tasks.Create(t); err != nil {
		return nil, err
	}

	s.notifyAssignment(ctx, student, t)
	return &TaskDetail{Task: *t, Assignee: student}, nil
}

// ListTasks returns every task with its assignee, overdue status
// corrected on read.
func (s *AdminService) ListTasks(ctx context.Context) ([]TaskDetail, error) {
	tasks, err := s.Tasks.List()
	if err != nil {
		return nil, err
	}
	return s.withAssignees(s.refreshAll(tasks))
}

// GetTask returns a single task by id with its assignee, overdue
// status corrected.
func (s *AdminService) GetTask(ctx context.Context, id string) (*TaskDetail, error) {
	t, err := s.Tasks.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	details, err := s.withAssignees([]entity.Task{s.refresh(*t)})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// withAssignees resolves each task's assignee, one lookup per distinct
// user. A deleted assignee yields a nil Assignee rather than an error.
func (s *AdminService) withAssignees(tasks []entity.Task) ([]TaskDetail, error) {
	cache := map[string]*entity.User{}
	out := make([]TaskDetail, len(tasks))
	for i, t := range tasks {
		u, seen := cache[t.AssignedTo]
		if !seen {
			var err error
			u, err = s.Users.GetByID(t.AssignedTo)
			if err != nil {
				if !errors.Is(err, repository.ErrNotFound) {
					return nil, err
				}
				u = nil
			}
			cache[t.AssignedTo] = u
		}
		out[i] = TaskDetail{Task: t, Assignee: u}
	}
	return out, nil
}

// AttachFile uploads a file to GCS and records its URL on the task.
func (s *AdminService) AttachFile(ctx context.Context, taskID string, r io.Reader, filename, contentType string) (*entity.Task, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, errors.New("gcs not configured")
	}
	t, err := s.Tasks.GetByID(taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("attachments", taskID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}

	t.AttachmentURL = url
	if err := s.Tasks.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// refresh applies lazy overdue correction and persists it best-effort,
// so stored state catches up with derived state on access.
func (s *AdminService) refresh(t entity.Task) entity.Task {
	evaluated := t.Evaluate(s.Now())
	if evaluated.Status != t.Status {
		if err := s.Tasks.Update(&evaluated); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("task_id", t.ID).Warn("persist overdue status failed")
		}
	}
	return evaluated
}

func (s *AdminService) refreshAll(tasks []entity.Task) []entity.Task {
	out := make([]entity.Task, len(tasks))
	for i, t := range tasks {
		out[i] = s.refresh(t)
	}
	return out
}

func (s *AdminService) notifyAssignment(ctx context.Context, student *entity.User, t *entity.Task) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       student.Email,
		Template: tpl.TaskAssigned,
		Data: map[string]any{
			"Name":        student.Name,
			"Title":       t.Title,
			"Description": t.Description,
			"DueDate":     t.DueDate.Format("02 January 2006, 15:04 MST"),
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("task_id", t.ID).Warn("enqueue assignment email failed")
	}
}

func (s *AdminService) indexStudent(ctx context.Context, u *entity.User) error {
	if s.ES == nil || s.ESStudentIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"department": u.Department,
		"created_at": u.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESStudentIndex, DocumentID: u.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("user_id", u.ID).Warn("es index response error")
	}
	return nil
}

// SearchStudents performs a multi_match search on name, email and
// department. Without a configured index it degrades to no results.
func (s *AdminService) SearchStudents(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESStudentIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "name", "department"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESStudentIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
