package chat

import "github.com/abhisek/moneypath/internal/llm"

// replySchema is the structured reply the assistant asks for.
var replySchema = &llm.Schema{
	Name:        "moneypath-chat-reply",
	Description: "A short answer to a learner's personal finance question plus suggested follow-up questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply": map[string]any{
				"type":        "string",
				"description": "The answer in plain language, at most three short paragraphs",
			},
			"follow_ups": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"maxItems":    maxFollowUps,
				"description": "Up to three questions the learner could ask next",
			},
		},
		"required":             []any{"reply", "follow_ups"},
		"additionalProperties": false,
	},
}

const maxFollowUps = 3

const systemPrompt = `You are the MoneyPath study assistant. You help adults learn personal finance: budgeting, saving, credit, debt and investing basics.

Rules:
- Answer in the learner's language (%s).
- Be concrete and brief. Prefer a worked example with round numbers over theory.
- You are not a licensed advisor. Never recommend a specific security, lender or product.
- If the question is unrelated to personal finance, say so in one sentence and steer back to the lesson.
- Suggest follow-up questions that build on the current lesson.`
