package chat

import (
	"strings"

	"github.com/muhammadheryan/vastu-shakti/constant"
)

type rule struct {
	intent     constant.ChatIntent
	keywords   []string
	confidence float64
}

// rules are checked in order; the first rule with a keyword contained in the message wins.
var rules = []rule{
	{constant.ChatIntentGreeting, []string{"hello", "hi", "namaste"}, 0.9},
	{constant.ChatIntentAppointment, []string{"book", "appointment", "consult"}, 0.9},
	{constant.ChatIntentPricing, []string{"price", "fee", "charge"}, 0.9},
	{constant.ChatIntentContact, []string{"contact", "phone", "email"}, 0.9},
	{constant.ChatIntentAppointment, []string{"vastu"}, 0.6},
}

const generalConfidence = 0.3

var replies = map[constant.ChatIntent]map[string]string{
	constant.ChatIntentGreeting: {
		constant.LanguageEnglish: "Hello! How can I help you today? You can ask about booking, pricing, or contact.",
		constant.LanguageHindi:   "नमस्ते! आज मैं आपकी कैसे मदद कर सकता हूं? आप बुकिंग, शुल्क या संपर्क के बारे में पूछ सकते हैं।",
	},
	constant.ChatIntentAppointment: {
		constant.LanguageEnglish: "To book a free consultation, click Book Consultation and submit your details. We’ll contact you to confirm.",
		constant.LanguageHindi:   "मुफ्त परामर्श बुक करने के लिए 'Book Consultation' पर क्लिक करें और विवरण सबमिट करें। हम पुष्टि के लिए आपसे संपर्क करेंगे।",
	},
	constant.ChatIntentPricing: {
		constant.LanguageEnglish: "Initial consultation is free. For detailed analysis, email vastu.shakti1@gmail.com or call +91 84487 50725.",
		constant.LanguageHindi:   "प्रारंभिक परामर्श मुफ्त है। विस्तृत विश्लेषण के लिए vastu.shakti1@gmail.com पर ईमेल करें या +91 84487 50725 पर कॉल करें।",
	},
	constant.ChatIntentContact: {
		constant.LanguageEnglish: "Call +91 84487 50725 or email vastu.shakti1@gmail.com (Mon–Sat, 9 AM–8 PM).",
		constant.LanguageHindi:   "सोम–शनि, 9 AM–8 PM: +91 84487 50725 पर कॉल करें या vastu.shakti1@gmail.com पर ईमेल करें।",
	},
	constant.ChatIntentGeneral: {
		constant.LanguageEnglish: "I can help with booking, pricing, Vastu services, and contact details. What would you like to know?",
		constant.LanguageHindi:   "मैं बुकिंग, शुल्क, वास्तु सेवाओं और संपर्क विवरण में मदद कर सकता हूं। आप क्या जानना चाहेंगे?",
	},
}

// Reply is the canned-response matcher. It is pure: the same message and language always
// produce the same answer, and anything unmatched is answered as general.
func Reply(message, language string) (constant.ChatIntent, string, float64) {
	lang := constant.LanguageEnglish
	if language == constant.LanguageHindi {
		lang = constant.LanguageHindi
	}

	intent, confidence := detectIntent(message)
	return intent, replies[intent][lang], confidence
}

func detectIntent(message string) (constant.ChatIntent, float64) {
	m := strings.ToLower(message)
	if strings.TrimSpace(m) == "" {
		return constant.ChatIntentGeneral, generalConfidence
	}
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(m, k) {
				return r.intent, r.confidence
			}
		}
	}
	return constant.ChatIntentGeneral, generalConfidence
}
