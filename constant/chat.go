package constant

type ChatIntent string

const (
	ChatIntentGreeting    ChatIntent = "greeting"
	ChatIntentAppointment ChatIntent = "appointment"
	ChatIntentPricing     ChatIntent = "pricing"
	ChatIntentContact     ChatIntent = "contact"
	ChatIntentGeneral     ChatIntent = "general"
)

// ChatHistoryLimit bounds one transcript read.
const ChatHistoryLimit = 200
