package gemini

// suggestionPromptData is the data passed to the gift suggestion prompt template.
type suggestionPromptData struct {
	Count        int
	Age          string
	Gender       string
	Interests    string // comma-joined
	Personality  string
	Budget       string
	Occasion     string
	Relationship string
}

// cardPromptData is the data passed to the card message prompt template.
type cardPromptData struct {
	GiftTitle       string
	GiftDescription string
	RecipientName   string
	Occasion        string
	Relationship    string
	Sender          string
}

// suggestionSchema is the expected shape of a single element of the model's
// JSON array response.
type suggestionSchema struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Reasoning   string `json:"reasoning"`
}
