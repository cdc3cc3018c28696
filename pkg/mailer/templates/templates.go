package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template names known to the email worker.
const (
	TaskAssigned = "task_assigned"
)

var taskAssignedHTML = template.Must(template.New(TaskAssigned).Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>New task assigned</h2>
    <p>Hi {{.Name}},</p>
    <p>You have been assigned a new task:</p>
    <p><strong>{{.Title}}</strong></p>
    <p>{{.Description}}</p>
    <p>Due date: <strong>{{.DueDate}}</strong></p>
    <p>Log in to view the full details.</p>
  </body>
</html>`))

// Render produces subject, text and HTML bodies for the named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case TaskAssigned:
		var buf bytes.Buffer
		if err = taskAssignedHTML.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = fmt.Sprintf("New task: %v", data["Title"])
		text = fmt.Sprintf("You have been assigned a new task: %v (due %v)", data["Title"], data["DueDate"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown template %q", name)
	}
}
