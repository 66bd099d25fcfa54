package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/LightDevCoder/iPurseLight/internal/common"
	"github.com/LightDevCoder/iPurseLight/internal/model"
)

// Parse type values.
const (
	TypeExpense = "Expense"
	TypeIncome  = "Income"
)

// cleanMarkdownWrapper strips markdown code fences that models wrap around
// JSON despite being told not to.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		if idx := strings.Index(content, "\n"); idx >= 0 {
			content = content[idx+1:]
		} else {
			content = strings.TrimPrefix(content, "```json")
			content = strings.TrimPrefix(content, "```")
		}
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

// parseTransactionJSON decodes a provider's parse response into a
// ParsedTransaction, enforcing the strict JSON contract.
func parseTransactionJSON(content string) (ParsedTransaction, error) {
	content = cleanMarkdownWrapper(content)

	var parsed ParsedTransaction
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return ParsedTransaction{}, fmt.Errorf("%w: invalid JSON: %w", common.ErrParseFailed, err)
	}
	if parsed.Amount == 0 {
		return ParsedTransaction{}, fmt.Errorf("%w: zero amount", common.ErrParseFailed)
	}
	if parsed.Type != TypeExpense && parsed.Type != TypeIncome {
		return ParsedTransaction{}, fmt.Errorf("%w: unknown type %q", common.ErrParseFailed, parsed.Type)
	}
	return parsed, nil
}

// Normalize returns a copy with out-of-enumeration category and channel
// values replaced by the caller-supplied priors. The model is prompted with
// the fixed taxonomies but can still hallucinate; the user's previous choice
// is a better guess than an invented label.
func (p ParsedTransaction) Normalize(priorCategory, priorChannel string) ParsedTransaction {
	out := p
	if !model.IsSuggestedCategory(out.Category) {
		out.Category = priorCategory
	}
	if !model.IsSuggestedChannel(out.Channel) {
		out.Channel = priorChannel
	}
	return out
}

// SignedAmount maps the parse result onto the stored sign convention:
// expenses negative, income positive.
func (p ParsedTransaction) SignedAmount() float64 {
	amount := p.Amount
	if amount < 0 {
		amount = -amount
	}
	if p.Type == TypeExpense {
		return -amount
	}
	return amount
}
