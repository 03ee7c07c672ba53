// Package mailer turns account notifications into emails.
package mailer

import (
	"bytes"
	"fmt"
	htmpl "html/template"
	"sort"
	texttpl "text/template"

	"github.com/saffco/skincare-backend/internal/domain/service"
)

// Message is a rendered email.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

// Brand carries the sender identity shown in every email.
type Brand struct {
	CompanyName string
	SupportURL  string
}

type change struct {
	Field string
	Value string
}

type templateData struct {
	Brand
	Username string
	Changes  []change
}

var subjects = map[string]string{
	service.NotifyPasswordChanged: "Your password was changed",
	service.NotifyProfileUpdated:  "Your profile was updated",
}

var textTemplates = map[string]*texttpl.Template{
	service.NotifyPasswordChanged: texttpl.Must(texttpl.New("pwd_text").Parse(
		`Hi {{.Username}},

The password for your {{.CompanyName}} account was just reset.
If this was not you, contact us{{if .SupportURL}} at {{.SupportURL}}{{end}} right away.
`)),
	service.NotifyProfileUpdated: texttpl.Must(texttpl.New("profile_text").Parse(
		`Hi {{.Username}},

Your {{.CompanyName}} profile was updated:
{{range .Changes}}- {{.Field}}: {{.Value}}
{{end}}`)),
}

var htmlTemplates = map[string]*htmpl.Template{
	service.NotifyPasswordChanged: htmpl.Must(htmpl.New("pwd_html").Parse(
		`<p>Hi {{.Username}},</p>
<p>The password for your {{.CompanyName}} account was just reset.</p>
<p>If this was not you, {{if .SupportURL}}<a href="{{.SupportURL}}">contact support</a>{{else}}contact support{{end}} right away.</p>`)),
	service.NotifyProfileUpdated: htmpl.Must(htmpl.New("profile_html").Parse(
		`<p>Hi {{.Username}},</p>
<p>Your {{.CompanyName}} profile was updated:</p>
<ul>{{range .Changes}}<li><b>{{.Field}}</b>: {{.Value}}</li>{{end}}</ul>`)),
}

// Render builds the email for n. Unknown notification types are an error so
// the worker can dead-letter them.
func Render(n service.Notification, brand Brand) (Message, error) {
	subject, ok := subjects[n.Type]
	if !ok {
		return Message{}, fmt.Errorf("unknown notification type %q", n.Type)
	}
	data := templateData{Brand: brand, Username: n.Username, Changes: sortedChanges(n.Changes)}

	var text, html bytes.Buffer
	if err := textTemplates[n.Type].Execute(&text, data); err != nil {
		return Message{}, err
	}
	if err := htmlTemplates[n.Type].Execute(&html, data); err != nil {
		return Message{}, err
	}
	return Message{Subject: subject, Text: text.String(), HTML: html.String()}, nil
}

func sortedChanges(m map[string]string) []change {
	out := make([]change, 0, len(m))
	for k, v := range m {
		out = append(out, change{Field: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}
