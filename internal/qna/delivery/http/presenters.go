package http

import "language-assistant/internal/qna"

type askReq struct {
	Question string `json:"question" binding:"required,max=1000"`
}

func (r askReq) toInput() qna.AskInput {
	return qna.AskInput{Question: r.Question}
}

type answerResp struct {
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

type askResp struct {
	Question string       `json:"question"`
	Answers  []answerResp `json:"answers"`
	Message  string       `json:"message,omitempty"`
	Cached   bool         `json:"cached"`
}

func (h *handler) newAskResp(out qna.AskOutput) askResp {
	answers := make([]answerResp, 0, len(out.Answers))
	for _, a := range out.Answers {
		answers = append(answers, answerResp(a))
	}

	resp := askResp{
		Question: out.Question,
		Answers:  answers,
		Cached:   out.Cached,
	}
	if len(answers) == 0 {
		resp.Message = qna.MsgNoAnswer
	}
	return resp
}
