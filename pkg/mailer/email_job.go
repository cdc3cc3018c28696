package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending
// email. Template selects one of the known templates; Data feeds it.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "task_assigned"
	Data     map[string]any `json:"data,omitempty"`
}
