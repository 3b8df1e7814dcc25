package mailer

// EmailJob is the JSON payload placed on the RabbitMQ queue. Template names
// a server-side template rendered by the worker; Text/HTML are used as-is
// when no template is set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

// WelcomeJob builds the post-registration welcome mail job.
func WelcomeJob(to, name string) EmailJob {
	return EmailJob{
		To:       to,
		Template: TemplateWelcome,
		Data:     map[string]any{"Name": name},
	}
}
