package constant

type contextKey string

const UserIdentityKey contextKey = "user_identity"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

const (
	LanguageEnglish = "en"
	LanguageHindi   = "hi"
)

// BcryptCost is the work factor for stored password hashes.
const BcryptCost = 12
