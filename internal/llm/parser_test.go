package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LightDevCoder/iPurseLight/internal/common"
)

func TestCleanMarkdownWrapper(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "plain JSON untouched",
			content: `{"amount": 10}`,
			want:    `{"amount": 10}`,
		},
		{
			name:    "json fence stripped",
			content: "```json\n{\"amount\": 10}\n```",
			want:    `{"amount": 10}`,
		},
		{
			name:    "bare fence stripped",
			content: "```\n{\"amount\": 10}\n```",
			want:    `{"amount": 10}`,
		},
		{
			name:    "surrounding whitespace trimmed",
			content: "  \n{\"amount\": 10}\n  ",
			want:    `{"amount": 10}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanMarkdownWrapper(tt.content))
		})
	}
}

func TestParseTransactionJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    ParsedTransaction
		wantErr bool
	}{
		{
			name:    "valid expense",
			content: `{"amount": 28.5, "category": "Transport", "type": "Expense", "channel": "Bank Card", "note": "taxi"}`,
			want: ParsedTransaction{
				Amount: 28.5, Category: "Transport", Type: TypeExpense, Channel: "Bank Card", Note: "taxi",
			},
		},
		{
			name:    "fenced income",
			content: "```json\n{\"amount\": 5000, \"category\": \"Work\", \"type\": \"Income\", \"channel\": \"Bank Card\", \"note\": \"salary\"}\n```",
			want: ParsedTransaction{
				Amount: 5000, Category: "Work", Type: TypeIncome, Channel: "Bank Card", Note: "salary",
			},
		},
		{
			name:    "unknown type rejected",
			content: `{"amount": 10, "category": "Food", "type": "Transfer", "channel": "Cash", "note": ""}`,
			wantErr: true,
		},
		{
			name:    "zero amount rejected",
			content: `{"amount": 0, "category": "Food", "type": "Expense", "channel": "Cash", "note": ""}`,
			wantErr: true,
		},
		{
			name:    "not JSON at all",
			content: "I could not parse that, sorry!",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTransactionJSON(tt.content)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrParseFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsedTransaction_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		parsed       ParsedTransaction
		wantCategory string
		wantChannel  string
	}{
		{
			name:         "in-enumeration values kept",
			parsed:       ParsedTransaction{Category: "Food", Channel: "Alipay"},
			wantCategory: "Food",
			wantChannel:  "Alipay",
		},
		{
			name:         "invented category falls back to prior",
			parsed:       ParsedTransaction{Category: "Groceries", Channel: "Cash"},
			wantCategory: "Daily",
			wantChannel:  "Cash",
		},
		{
			name:         "invented channel falls back to prior",
			parsed:       ParsedTransaction{Category: "Food", Channel: "PayPal"},
			wantCategory: "Food",
			wantChannel:  "WeChat",
		},
		{
			name:         "case mismatch is out of enumeration",
			parsed:       ParsedTransaction{Category: "food", Channel: "alipay"},
			wantCategory: "Daily",
			wantChannel:  "WeChat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.parsed.Normalize("Daily", "WeChat")
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.wantChannel, got.Channel)
		})
	}
}

func TestParsedTransaction_SignedAmount(t *testing.T) {
	tests := []struct {
		name   string
		parsed ParsedTransaction
		want   float64
	}{
		{"expense becomes negative", ParsedTransaction{Amount: 28.5, Type: TypeExpense}, -28.5},
		{"income stays positive", ParsedTransaction{Amount: 5000, Type: TypeIncome}, 5000},
		{"model-returned negative expense normalized", ParsedTransaction{Amount: -30, Type: TypeExpense}, -30},
		{"model-returned negative income normalized", ParsedTransaction{Amount: -30, Type: TypeIncome}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.parsed.SignedAmount())
		})
	}
}
