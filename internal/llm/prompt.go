package llm

import (
	"fmt"
	"strings"

	"github.com/LightDevCoder/iPurseLight/internal/model"
)

const parseSystemPrompt = "You are a financial transaction parser. You MUST respond with ONLY a valid JSON object. Do not include any explanatory text, markdown formatting, or commentary before or after the JSON. Start your response directly with { and end with }."

const adviseSystemPrompt = "You are a helpful financial assistant."

// buildParsePrompt asks for the strict parse JSON, whitelisting the fixed
// category and channel enumerations.
func buildParsePrompt(text string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task: extract bookkeeping data from natural language text.\n")
	fmt.Fprintf(&b, "Text: %q\n\n", text)
	b.WriteString("Return pure JSON following these rules strictly:\n\n")
	b.WriteString("1. amount (number): the amount, digits only.\n")
	fmt.Fprintf(&b, "2. type (string): exactly %q or %q.\n", TypeExpense, TypeIncome)
	fmt.Fprintf(&b, "3. channel (string): must be one of %s. Credit, debit or named bank cards map to \"Bank Card\"; physical money maps to \"Cash\"; wallet apps map to their platform; if no payment method is mentioned, default to \"WeChat\"; anything else maps to \"Other\".\n",
		quotedList(model.SuggestedChannels))
	fmt.Fprintf(&b, "4. category (string): must be one of %s, classified by meaning. Anything that fits nothing maps to \"Other\".\n",
		quotedList(model.SuggestedCategories))
	b.WriteString("5. note (string): keep the original description.\n\n")
	b.WriteString(`JSON example: {"amount": 28.5, "category": "Transport", "type": "Expense", "channel": "Bank Card", "note": "taxi to the airport"}`)
	return b.String()
}

// buildAdvisePrompt wraps a report digest in the advisor request.
func buildAdvisePrompt(digest string) string {
	return fmt.Sprintf("As a financial advisor, analyze:\n%s\nProvide: 1. Spending Evaluation 2. Abnormal Alerts 3. Saving Tips. Concise bullet points.", digest)
}

func quotedList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
