package usecase

import (
	"bytes"
	"fmt"
	"html/template"
)

type mail struct {
	subject string
	body    string
}

type mailData struct {
	Project  string
	FullName string
	Link     string
}

var (
	confirmationTemplate = template.Must(template.New("confirmation").Parse(`<p>Hello {{.FullName}},</p>
<p>Thanks for signing up to {{.Project}}. Please confirm your account by opening the link below:</p>
<p><a href="{{.Link}}">Confirm account</a></p>
<p>If you did not create an account you can ignore this email.</p>`))

	resetPasswordTemplate = template.Must(template.New("reset").Parse(`<p>Hello {{.FullName}},</p>
<p>We received a request to reset your password. Open the link below to choose a new one:</p>
<p><a href="{{.Link}}">Reset password</a></p>
<p>If you did not ask for this you can ignore this email.</p>`))

	changeEmailTemplate = template.Must(template.New("change-email").Parse(`<p>Hello {{.FullName}},</p>
<p>Please confirm this address as the new email of your account:</p>
<p><a href="{{.Link}}">Confirm email change</a></p>`))
)

// renderMail executes an HTML template. Names and links are escaped.
func renderMail(tmpl *template.Template, subject string, data mailData) (mail, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return mail{}, fmt.Errorf("render %s mail: %w", tmpl.Name(), err)
	}
	return mail{subject: subject, body: buf.String()}, nil
}

func confirmationMail(project, fullName, link string) (mail, error) {
	return renderMail(confirmationTemplate, fmt.Sprintf("Confirm your %s account", project),
		mailData{Project: project, FullName: fullName, Link: link})
}

func resetPasswordMail(project, fullName, link string) (mail, error) {
	return renderMail(resetPasswordTemplate, fmt.Sprintf("Reset your %s password", project),
		mailData{Project: project, FullName: fullName, Link: link})
}

func changeEmailMail(project, fullName, link string) (mail, error) {
	return renderMail(changeEmailTemplate, fmt.Sprintf("Confirm your new %s email address", project),
		mailData{Project: project, FullName: fullName, Link: link})
}
