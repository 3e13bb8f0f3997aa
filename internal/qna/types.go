package qna

// MsgNoAnswer is shown when the knowledge base has no candidate.
const MsgNoAnswer = "No answer found."

// AskInput is one user question.
type AskInput struct {
	Question string `json:"question"`
}

// Answer is one candidate answer.
type Answer struct {
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// AskOutput is the ranked list of answers for a question.
type AskOutput struct {
	Question string   `json:"question"`
	Answers  []Answer `json:"answers"`
	Cached   bool     `json:"cached"`
}
