package constant

type NotificationKind string

const (
	NotificationConsultation NotificationKind = "consultation"
	NotificationEnquiry      NotificationKind = "enquiry"
	NotificationFeedback     NotificationKind = "feedback"
)
