package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/muhammadheryan/vastu-shakti/cmd/config"
	"github.com/muhammadheryan/vastu-shakti/constant"
	"github.com/muhammadheryan/vastu-shakti/model"
)

var funcs = template.FuncMap{
	"date": func(t time.Time) string { return t.Format("02 Jan 2006") },
	"datetime": func(t time.Time) string {
		return t.Format("02 Jan 2006 15:04 MST")
	},
	"stars":     func(n int) string { return strings.Repeat("★", n) },
	"orDefault": orDefault,
}

var templates = template.Must(template.New("email").Funcs(funcs).Parse(`
{{define "consultation_admin"}}<h2>New Consultation Booking</h2>
<p><strong>Name:</strong> {{.C.Name}}</p>
<p><strong>Email:</strong> {{.C.Email}}</p>
<p><strong>Mobile:</strong> {{.C.Mobile}}</p>
<p><strong>State:</strong> {{.C.State}}</p>
<p><strong>Occupation:</strong> {{.C.Occupation}}</p>
<p><strong>Consultation Type:</strong> {{.C.ConsultationType}}</p>
<p><strong>Preferred Date:</strong> {{date .C.PreferredDate}}</p>
<p><strong>Preferred Time:</strong> {{.C.PreferredTime}}</p>
<p><strong>Message:</strong> {{orDefault .C.Message "N/A"}}</p>
<p><strong>Booked At:</strong> {{datetime .At}}</p>{{end}}

{{define "consultation_user"}}<h2>Thank You for Booking a Consultation!</h2>
<p>Dear {{.C.Name}},</p>
<p>Your consultation has been successfully booked. Our team will contact you shortly to confirm the appointment.</p>
<h3>Booking Details:</h3>
<p><strong>Consultation Type:</strong> {{.C.ConsultationType}}</p>
<p><strong>Preferred Date:</strong> {{date .C.PreferredDate}}</p>
<p><strong>Preferred Time:</strong> {{.C.PreferredTime}}</p>
<p>If you have any questions, please contact us at:</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Email:</strong> {{.ContactEmail}}</p>
<p>Best regards,<br>Vastu Shakti Team</p>{{end}}

{{define "enquiry_admin"}}<h2>New Contact Enquiry</h2>
<p><strong>Name:</strong> {{.E.Name}}</p>
<p><strong>Email:</strong> {{.E.Email}}</p>
<p><strong>Mobile:</strong> {{.E.Mobile}}</p>
<p><strong>Subject:</strong> {{.E.Subject}}</p>
<p><strong>Message:</strong> {{.E.Message}}</p>
<p><strong>Submitted At:</strong> {{datetime .At}}</p>{{end}}

{{define "enquiry_user"}}<h2>Thank You for Contacting Us!</h2>
<p>Dear {{.E.Name}},</p>
<p>We have received your enquiry and our team will get back to you within 24 hours.</p>
<p><strong>Your Message:</strong><br>{{.E.Message}}</p>
<p>If you need immediate assistance, please call us at {{.Phone}}</p>
<p>Best regards,<br>Vastu Shakti Team</p>{{end}}

{{define "feedback_admin"}}<h2>New Customer Feedback</h2>
<p><strong>Name:</strong> {{orDefault .F.Name "Anonymous"}}</p>
<p><strong>Email:</strong> {{orDefault .F.Email "N/A"}}</p>
<p><strong>Rating:</strong> {{stars .F.Rating}} ({{.F.Rating}}/5)</p>
<p><strong>Service:</strong> {{orDefault .F.Service "General"}}</p>
<p><strong>Comments:</strong> {{.F.Comments}}</p>
<p><strong>Submitted At:</strong> {{datetime .At}}</p>{{end}}
`))

type templateData struct {
	C            *model.Consultation
	E            *model.Contact
	F            *model.Feedback
	At           time.Time
	Phone        string
	ContactEmail string
}

// Renderer turns a notification into the emails it should produce.
type Renderer struct {
	business config.BusinessConfig
}

func NewRenderer(business config.BusinessConfig) *Renderer {
	return &Renderer{business: business}
}

// Render returns the admin email first, followed by the submitter confirmation when
// the kind has one and the submitter left an address.
func (r *Renderer) Render(n *model.Notification) ([]*model.Email, error) {
	data := templateData{
		C:            n.Consultation,
		E:            n.Enquiry,
		F:            n.Feedback,
		At:           n.CreatedAt,
		Phone:        r.business.ContactPhone,
		ContactEmail: r.business.ContactEmail,
	}
	if data.At.IsZero() {
		data.At = time.Now()
	}

	switch n.Kind {
	case constant.NotificationConsultation:
		if n.Consultation == nil {
			return nil, fmt.Errorf("consultation notification without payload")
		}
		return r.pair(data,
			fmt.Sprintf("New Consultation Booking - %s", n.Consultation.ConsultationType), "consultation_admin",
			n.Consultation.Email, "Consultation Booking Confirmation - Vastu Shakti", "consultation_user")
	case constant.NotificationEnquiry:
		if n.Enquiry == nil {
			return nil, fmt.Errorf("enquiry notification without payload")
		}
		return r.pair(data,
			fmt.Sprintf("New Enquiry - %s", n.Enquiry.Subject), "enquiry_admin",
			n.Enquiry.Email, "We received your enquiry - Vastu Shakti", "enquiry_user")
	case constant.NotificationFeedback:
		if n.Feedback == nil {
			return nil, fmt.Errorf("feedback notification without payload")
		}
		return r.pair(data,
			fmt.Sprintf("New Feedback - %d Stars", n.Feedback.Rating), "feedback_admin",
			"", "", "")
	default:
		return nil, fmt.Errorf("unknown notification kind %q", n.Kind)
	}
}

func (r *Renderer) pair(data templateData, adminSubject, adminTmpl, userTo, userSubject, userTmpl string) ([]*model.Email, error) {
	var emails []*model.Email
	if r.business.ContactEmail != "" {
		html, err := execute(adminTmpl, data)
		if err != nil {
			return nil, err
		}
		emails = append(emails, &model.Email{To: r.business.ContactEmail, Subject: adminSubject, HTML: html})
	}
	if userTo != "" && userTmpl != "" {
		html, err := execute(userTmpl, data)
		if err != nil {
			return nil, err
		}
		emails = append(emails, &model.Email{To: userTo, Subject: userSubject, HTML: html})
	}
	return emails, nil
}

func execute(name string, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
