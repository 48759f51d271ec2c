package notify

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
)

var ErrUnknownKind = errors.New("unknown message kind")

//go:embed templates/*.html
var templatesFS embed.FS

const (
	baseTemplate   = "templates/base.html"
	layoutName     = "base"
	defaultSubject = "New Message"
)

type Kind string

const (
	KindUserVerification Kind = "user_verification"
	KindPasswordReset    Kind = "password_reset"
	KindSignal           Kind = "signal"
	KindAccountScreening Kind = "account_screening_request"
	KindHelpSupport      Kind = "help_support_request"
	KindAccountUpgrade   Kind = "account_upgrade_payment_request"
)

// Descriptor is the static content of one message kind.
type Descriptor struct {
	Subject string
	From    string
	Body    string
	file    string
	tmpl    *template.Template
}

var descriptors = map[Kind]Descriptor{
	KindUserVerification: {
		Subject: "Verify your Zedasignal account",
		Body:    "Use the verification code in this email to verify your account.",
		file:    "user_verification.html",
	},
	KindPasswordReset: {
		Subject: "Reset your Zedasignal password",
		Body:    "Use the token in this email to reset your password.",
		file:    "password_reset.html",
	},
	KindSignal: {
		Subject: "New trading signal",
		Body:    "A new trading signal has been published.",
		file:    "signal.html",
	},
	KindAccountScreening: {
		Subject: "New account screening request",
		file:    "account_screening_request.html",
	},
	KindHelpSupport: {
		Subject: "New help and support request",
		file:    "help_support_request.html",
	},
	KindAccountUpgrade: {
		Subject: "New account upgrade payment request",
		file:    "account_upgrade_payment_request.html",
	},
}

type Registry struct {
	kinds    map[Kind]*Descriptor
	fallback *template.Template
}

// NewRegistry parses the template of every known kind. Any kind without a
// parseable template fails the whole registry.
func NewRegistry(defaultFrom string) (*Registry, error) {
	fallback, err := template.ParseFS(templatesFS, baseTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse base template: %w", err)
	}

	kinds := make(map[Kind]*Descriptor, len(descriptors))
	for kind, d := range descriptors {
		tmpl, err := template.ParseFS(templatesFS, baseTemplate, "templates/"+d.file)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", kind, err)
		}

		desc := d
		desc.tmpl = tmpl
		if desc.Subject == "" {
			desc.Subject = defaultSubject
		}
		if desc.From == "" {
			desc.From = defaultFrom
		}
		kinds[kind] = &desc
	}

	return &Registry{kinds: kinds, fallback: fallback}, nil
}

func (r *Registry) Lookup(kind Kind) (*Descriptor, error) {
	d, ok := r.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return d, nil
}

// Render executes the kind template with data. Empty data renders the plain
// layout with the kind subject and body.
func (r *Registry) Render(d *Descriptor, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if len(data) == 0 {
		if err := r.fallback.ExecuteTemplate(&buf, layoutName, map[string]any{"subject": d.Subject, "body": d.Body}); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	if err := d.tmpl.ExecuteTemplate(&buf, layoutName, withSubject(data, d.Subject)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func withSubject(data map[string]any, subject string) map[string]any {
	if _, ok := data["subject"]; ok {
		return data
	}

	res := make(map[string]any, len(data)+1)
	for k, v := range data {
		res[k] = v
	}
	res["subject"] = subject
	return res
}
