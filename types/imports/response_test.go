package imports_test

import (
	"testing"

	"github.com/fiosdk/fiogo/types/imports"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ackOK = `<?xml version="1.0" encoding="UTF-8"?>
<responseImport xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <result>
    <errorCode>0</errorCode>
    <idInstruction>1234567</idInstruction>
    <status>ok</status>
    <sums>
      <sum id="CZK">
        <sumCredit>0</sumCredit>
        <sumDebet>100.50</sumDebet>
      </sum>
    </sums>
  </result>
</responseImport>`

const ackError = `<?xml version="1.0" encoding="UTF-8"?>
<responseImport>
  <result>
    <errorCode>11</errorCode>
    <status>error</status>
  </result>
</responseImport>`

func TestParseResponseOK(t *testing.T) {
	resp, err := imports.ParseResponse(ackOK)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.ErrorCode)
	assert.Equal(t, "1234567", resp.IDInstruction)
	assert.Equal(t, "ok", resp.Status)
	require.NotNil(t, resp.SumDebet)
	assert.True(t, resp.SumDebet.Equal(decimal.RequireFromString("100.50")))
	require.NotNil(t, resp.SumCredit)
	assert.True(t, resp.SumCredit.IsZero())
}

func TestParseResponseError(t *testing.T) {
	resp, err := imports.ParseResponse(ackError)
	require.NoError(t, err)
	assert.Equal(t, 11, resp.ErrorCode)
	assert.Equal(t, "error", resp.Status)
	assert.Empty(t, resp.IDInstruction)
	assert.Nil(t, resp.SumDebet)
	assert.Nil(t, resp.SumCredit)
}

func TestParseResponseGarbage(t *testing.T) {
	_, err := imports.ParseResponse("not xml at all")
	assert.Error(t, err)
}
