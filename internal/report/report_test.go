package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/realwage/internal/models"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "26086.96", FormatMoney(26086.956521))
	assert.Equal(t, "34500.00", FormatMoney(34500))
	assert.Equal(t, "0.13", FormatMoney(0.125))
}

func TestWriteSeries(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSeries(&buf, []models.AdjustedSalary{
		{Year: 2015, ReferenceYear: 2015, Salary: 30000, ErodedSalary: 30000, TargetSalary: 30000},
		{Year: 2020, ReferenceYear: 2015, Salary: 30000, ErodedSalary: 26086.9565, TargetSalary: 34500},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "2020")
	assert.Contains(t, out, "26086.96")
	assert.Contains(t, out, "34500.00")
}

func TestWriteCPI(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCPI(&buf, []models.CPIRecord{{Year: 1988, IndexValue: 48.4}}))

	out := buf.String()
	assert.Contains(t, out, "1988")
	assert.Contains(t, out, "48.4")
}

func TestWriteConversion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteConversion(&buf, Conversion{
		Label: "Adjusted", Amount: 30000, FromYear: 2015, ToYear: 2020, Result: 34500,
	}))

	out := buf.String()
	assert.Contains(t, out, "30000.00")
	assert.Contains(t, out, "34500.00")
}
