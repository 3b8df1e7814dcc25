package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateWelcome is sent once after a successful registration.
const TemplateWelcome = "welcome"

var welcomeHTML = template.Must(template.New(TemplateWelcome).Parse(`
<html>
  <body style="font-family: sans-serif; color: #1f2933;">
    <h2>Welcome to FitLife, {{.Name}}!</h2>
    <p>Your account is ready. Set up your profile to get workout and meal
    plans tailored to your goals.</p>
    <p>See you in the gym,<br>The FitLife team</p>
  </body>
</html>
`))

// RenderWelcome renders the welcome mail, returning subject, text and HTML
// bodies.
func RenderWelcome(data map[string]any) (subject, text, html string, err error) {
	var buf bytes.Buffer
	if err = welcomeHTML.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	name, _ := data["Name"].(string)
	subject = "Welcome to FitLife"
	text = fmt.Sprintf("Welcome to FitLife, %s! Your account is ready.", name)
	return subject, text, buf.String(), nil
}
