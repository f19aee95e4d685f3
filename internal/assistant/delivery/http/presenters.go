package http

import (
	"pedidos-rapidisimos/internal/assistant"
)

// --- Request DTOs ---

type queryReq struct {
	Query string `json:"query" form:"query"`
}

func (r queryReq) validate() error { return nil }

func (r queryReq) toInput() assistant.AskInput {
	return assistant.AskInput{Query: r.Query}
}

// --- Response DTOs ---

type entityResp struct {
	Category        string  `json:"category"`
	Text            string  `json:"text"`
	ConfidenceScore float64 `json:"confidence_score"`
}

type replyResp struct {
	IntentLine    string `json:"intent_line"`
	EntitiesBlock string `json:"entities_block"`
	ActionLine    string `json:"action_line"`
}

type queryResp struct {
	Skipped   bool         `json:"skipped"`
	TopIntent string       `json:"top_intent,omitempty"`
	Intent    string       `json:"intent,omitempty"`
	Entities  []entityResp `json:"entities"`
	Action    string       `json:"action,omitempty"`
	Reply     *replyResp   `json:"reply,omitempty"`
}

func (h *handler) newQueryResp(out assistant.AskOutput) queryResp {
	entities := make([]entityResp, len(out.Prediction.Entities))
	for i, e := range out.Prediction.Entities {
		entities[i] = entityResp{
			Category:        e.Category,
			Text:            e.Text,
			ConfidenceScore: e.ConfidenceScore,
		}
	}
	if out.Skipped {
		return queryResp{Skipped: true, Entities: entities}
	}

	return queryResp{
		TopIntent: out.Prediction.TopIntent,
		Intent:    string(out.Intent),
		Entities:  entities,
		Action:    out.Action,
		Reply: &replyResp{
			IntentLine:    out.Reply.IntentLine,
			EntitiesBlock: out.Reply.EntitiesBlock,
			ActionLine:    out.Reply.ActionLine,
		},
	}
}

// --- Page view model ---

type alertView struct {
	Kind    string
	Title   string
	Message string
}

type pageData struct {
	Title      string
	QueryLabel string
	Query      string
	Reply      *assistant.Reply
	Alert      *alertView
}

func newPageData(query string) pageData {
	return pageData{
		Title:      PageTitle,
		QueryLabel: QueryLabel,
		Query:      query,
	}
}
