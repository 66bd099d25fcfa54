package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LightDevCoder/iPurseLight/internal/model"
)

func TestParseBillFilename(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		wantYear  int
		wantMonth time.Month
		wantOK    bool
	}{
		{
			name:      "abbreviated month",
			filename:  "PersonalBill-Jan.2026.csv",
			wantYear:  2026,
			wantMonth: time.January,
			wantOK:    true,
		},
		{
			name:      "full month name",
			filename:  "PersonalBill-September.2025.csv",
			wantYear:  2025,
			wantMonth: time.September,
			wantOK:    true,
		},
		{
			name:     "no pattern",
			filename: "transactions.csv",
			wantOK:   false,
		},
		{
			name:     "unknown month name",
			filename: "PersonalBill-Smarch.2025.csv",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			override, ok := ParseBillFilename(tt.filename)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantYear, override.Year)
			assert.Equal(t, tt.wantMonth, override.Month)
		})
	}
}

func TestParseCSV(t *testing.T) {
	input := strings.Join([]string{
		"date,kind,category,channel,amount,note",
		"2025-03-10 12:00:00,Expense,Food,WeChat,25.50,lunch",
		"2025/03/15 09:30,Income,Work,Bank Card,\"5,000.00\",salary",
		"2025年03月20日 18:00,支出,Transport,Alipay,12.00,metro",
		"20250322,收入,Other,Cash,80,refund",
		"not-a-date,Expense,Food,Cash,10,skipped row",
		"2025-03-25,Expense,Food,Cash,zero?,bad amount",
	}, "\n")

	txns, err := ParseCSV(strings.NewReader(input), nil, time.UTC)
	require.NoError(t, err)
	require.Len(t, txns, 4)

	assert.Equal(t, -25.5, txns[0].Amount)
	assert.Equal(t, "Food", txns[0].Category)
	assert.Equal(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), txns[0].Date)

	// Quoted amount with thousands separator, income stays positive.
	assert.Equal(t, 5000.0, txns[1].Amount)
	assert.Equal(t, "Bank Card", txns[1].Channel)

	// Chinese kind labels from original exports.
	assert.Equal(t, -12.0, txns[2].Amount)
	assert.Equal(t, 80.0, txns[3].Amount)
	assert.Equal(t, time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC), txns[3].Date)

	// Every row gets a fresh unique ID.
	seen := make(map[string]bool)
	for _, txn := range txns {
		require.NotEmpty(t, txn.ID)
		require.False(t, seen[txn.ID])
		seen[txn.ID] = true
	}
}

func TestParseCSV_PeriodOverride(t *testing.T) {
	input := strings.Join([]string{
		"date,kind,category,channel,amount,note",
		"2024-12-10 08:00:00,Expense,Food,WeChat,10,breakfast",
	}, "\n")

	override := &PeriodOverride{Year: 2026, Month: time.January}
	txns, err := ParseCSV(strings.NewReader(input), override, time.UTC)
	require.NoError(t, err)
	require.Len(t, txns, 1)

	// Year and month come from the filename, day and time from the row.
	assert.Equal(t, time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC), txns[0].Date)
}

func TestParseCSV_KindSignAnomaly(t *testing.T) {
	input := strings.Join([]string{
		"date,kind,category,channel,amount,note",
		"2025-03-10,Income,Work,Cash,-100,already negative income",
		"2025-03-11,Expense,Food,Cash,-20,already negative expense",
		"2025-03-12,Transfer,Other,Cash,-15,unknown kind follows sign",
	}, "\n")

	txns, err := ParseCSV(strings.NewReader(input), nil, time.UTC)
	require.NoError(t, err)
	require.Len(t, txns, 3)

	// The declared kind wins over the written sign.
	assert.Equal(t, 100.0, txns[0].Amount)
	assert.Equal(t, -20.0, txns[1].Amount)

	// Unknown kind labels fall back to the sign.
	assert.Equal(t, -15.0, txns[2].Amount)
	kind, err := txns[2].Kind()
	require.NoError(t, err)
	assert.Equal(t, model.KindExpense, kind)
}

func TestParseCSV_EmptyAndHeaderOnly(t *testing.T) {
	txns, err := ParseCSV(strings.NewReader(""), nil, time.UTC)
	require.NoError(t, err)
	assert.Empty(t, txns)

	txns, err = ParseCSV(strings.NewReader("date,kind,category,channel,amount,note\n"), nil, time.UTC)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestParseCSV_Timezone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	input := strings.Join([]string{
		"date,kind,category,channel,amount,note",
		"2025-03-10 12:00:00,Expense,Food,Cash,10,lunch",
	}, "\n")

	txns, err := ParseCSV(strings.NewReader(input), nil, loc)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, loc, txns[0].Date.Location())
}
