package handlers

import (
	"time"

	"studentms/internal/application"
	"studentms/internal/domain/entity"
)

// userJSON is the outward user shape; the password hash never leaves
// the process.
type userJSON struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toUserJSON(u *entity.User) userJSON {
	return userJSON{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role.String(),
		Department: u.Department,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func toUserList(users []entity.User) []userJSON {
	out := make([]userJSON, len(users))
	for i := range users {
		out[i] = toUserJSON(&users[i])
	}
	return out
}

type taskJSON struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	AssignedTo    string    `json:"assignedTo"`
	CreatedBy     string    `json:"createdBy"`
	DueDate       time.Time `json:"dueDate"`
	Status        string    `json:"status"`
	AttachmentURL string    `json:"attachmentUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toTaskJSON(t *entity.Task) taskJSON {
	return taskJSON{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		AssignedTo:    t.AssignedTo,
		CreatedBy:     t.CreatedBy,
		DueDate:       t.DueDate,
		Status:        string(t.Status),
		AttachmentURL: t.AttachmentURL,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toTaskList(tasks []entity.Task) []taskJSON {
	out := make([]taskJSON, len(tasks))
	for i := range tasks {
		out[i] = toTaskJSON(&tasks[i])
	}
	return out
}

// taskAssigneeJSON is the user summary embedded in admin task reads.
type taskAssigneeJSON struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department,omitempty"`
}

// adminTaskJSON is the admin view of a task: assignedTo carries the
// student's summary instead of a bare id, null when the account is
// gone.
type adminTaskJSON struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	AssignedTo    *taskAssigneeJSON `json:"assignedTo"`
	CreatedBy     string            `json:"createdBy"`
	DueDate       time.Time         `json:"dueDate"`
	Status        string            `json:"status"`
	AttachmentURL string            `json:"attachmentUrl,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

func toAdminTaskJSON(d *application.TaskDetail) adminTaskJSON {
	t := d.Task
	out := adminTaskJSON{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		CreatedBy:     t.CreatedBy,
		DueDate:       t.DueDate,
		Status:        string(t.Status),
		AttachmentURL: t.AttachmentURL,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
	if d.Assignee != nil {
		out.AssignedTo = &taskAssigneeJSON{
			ID:         d.Assignee.ID,
			Name:       d.Assignee.Name,
			Email:      d.Assignee.Email,
			Department: d.Assignee.Department,
		}
	}
	return out
}

func toAdminTaskList(details []application.TaskDetail) []adminTaskJSON {
	out := make([]adminTaskJSON, len(details))
	for i := range details {
		out[i] = toAdminTaskJSON(&details[i])
	}
	return out
}
