package models

// WordRequest represents an add or update word request coming from the form or the JSON API
type WordRequest struct {
	English     string `json:"english"`
	Russian     string `json:"russian"`
	Category    string `json:"category"`
	NewCategory string `json:"new_category,omitempty"` // Takes precedence over Category when set
}

// DeleteWordRequest represents a JSON API delete request.
// An empty English removes the whole category.
type DeleteWordRequest struct {
	Category string `json:"category"`
	English  string `json:"english,omitempty"`
}

// AnswerRequest represents a quiz answer submission
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// WordEntry is a stored word together with its category
type WordEntry struct {
	Category    string `json:"category"`
	Term        string `json:"english"`
	Translation string `json:"russian"`
}
