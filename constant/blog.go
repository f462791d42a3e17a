package constant

var BlogCategories = []string{
	"tips", "house", "office", "career", "wealth", "health", "marriage", "education", "general",
}

const (
	BlogPageSizeDefault = 10
	BlogPageSizeMax     = 50
)
