package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LightDevCoder/iPurseLight/internal/model"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20250315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20250301120000[0:GMT]
<DTEND>20250331120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20250310120000[0:GMT]
<TRNAMT>-25.50
<FITID>2025031001
<NAME>POS PURCHASE COFFEE SHOP
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20250315120000[0:GMT]
<TRNAMT>5000.00
<FITID>2025031501
<NAME>PAYROLL DEPOSIT
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20250331120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestOFXParser_ParseOFX(t *testing.T) {
	parser := NewOFXParser()

	txns, err := parser.ParseOFX(strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, txns, 2)

	// Debits stay negative, credits positive; OFX signs already match.
	assert.Equal(t, -25.5, txns[0].Amount)
	kind, err := txns[0].Kind()
	require.NoError(t, err)
	assert.Equal(t, model.KindExpense, kind)

	assert.Equal(t, 5000.0, txns[1].Amount)
	assert.Equal(t, "2025031501", txns[1].ID)
	assert.Equal(t, "Bank Card", txns[1].Channel)
	assert.Equal(t, "Other", txns[1].Category)
	assert.Equal(t, "PAYROLL DEPOSIT", txns[1].Note)

	// Generic prefixes stripped from notes.
	assert.Equal(t, "COFFEE SHOP", txns[0].Note)

	assert.Equal(t, 2025, txns[0].Date.Year())
	assert.Equal(t, time.March, txns[0].Date.Month())
}

func TestOFXParser_PreprocessFixesSeverityCase(t *testing.T) {
	parser := NewOFXParser()

	broken := strings.ReplaceAll(sampleBankOFX, "<SEVERITY>INFO", "<SEVERITY>Info")
	txns, err := parser.ParseOFX(strings.NewReader(broken))
	require.NoError(t, err)
	assert.Len(t, txns, 2)
}

func TestOFXParser_InvalidFile(t *testing.T) {
	parser := NewOFXParser()

	_, err := parser.ParseOFX(strings.NewReader("this is not OFX data"))
	require.Error(t, err)
}
