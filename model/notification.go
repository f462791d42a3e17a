package model

import (
	"time"

	"github.com/muhammadheryan/vastu-shakti/constant"
)

// Notification is the unit handed to the dispatcher and, when queued, the RabbitMQ
// message body. Exactly one payload matches Kind.
type Notification struct {
	Kind         constant.NotificationKind `json:"kind"`
	Consultation *Consultation             `json:"consultation,omitempty"`
	Enquiry      *Contact                  `json:"enquiry,omitempty"`
	Feedback     *Feedback                 `json:"feedback,omitempty"`
	CreatedAt    time.Time                 `json:"createdAt"`
}

// Email is one rendered outbound message.
type Email struct {
	To      string
	Subject string
	HTML    string
}
