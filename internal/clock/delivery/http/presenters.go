package http

import (
	"time"

	"language-assistant/internal/clock"
	"language-assistant/pkg/response"
)

// --- Request DTOs ---

type askReq struct {
	Text string `json:"text" binding:"required,max=1000"`
}

func (r askReq) toInput() clock.AskInput {
	return clock.AskInput{Text: r.Text}
}

// --- Response DTOs ---

type entityResp struct {
	Category   string  `json:"category"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

type askResp struct {
	Query      string            `json:"query"`
	TopIntent  string            `json:"top_intent"`
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Entities   []entityResp      `json:"entities"`
	Label      string            `json:"label,omitempty"`
	Answer     string            `json:"answer"`
	AnsweredAt response.DateTime `json:"answered_at"`
}

func (h *handler) newAskResp(out clock.AskOutput) askResp {
	c := out.Classification
	entities := make([]entityResp, 0, len(c.Entities))
	for _, e := range c.Entities {
		entities = append(entities, entityResp{
			Category:   string(e.Category),
			Text:       e.Text,
			Confidence: e.Confidence,
		})
	}

	return askResp{
		Query:      out.Query,
		TopIntent:  c.RawIntent,
		Intent:     string(c.TopIntent),
		Confidence: c.Confidence,
		Entities:   entities,
		Label:      out.Reply.Label,
		Answer:     out.Reply.Text,
		AnsweredAt: response.DateTime(time.Now()),
	}
}
