package constant

type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "pending"
	ConsultationStatusConfirmed ConsultationStatus = "confirmed"
	ConsultationStatusCompleted ConsultationStatus = "completed"
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
)

// ConsultationTypes is the fixed set of life domains a booking can be filed under.
var ConsultationTypes = []string{
	"house", "office", "career", "wealth", "health", "marriage", "education", "relationship",
}

const (
	ConsultationPageSizeDefault = 20
	MyConsultationsPageSizeMax  = 20
	AdminPageSizeMax            = 100
)

func (s ConsultationStatus) IsValid() bool {
	switch s {
	case ConsultationStatusPending, ConsultationStatusConfirmed, ConsultationStatusCompleted, ConsultationStatusCancelled:
		return true
	}
	return false
}
