package merchant_test

import (
	"encoding/json"
	"testing"

	"github.com/fiosdk/fiogo/types/merchant"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMerchant = `{
  "info": {
    "accountId": "2345678901",
    "bankId": "2010",
    "currency": "CZK",
    "iban": "CZ1220100000002345678901",
    "bic": "FIOBCZPPXXX",
    "dateStart": "2024-01-01",
    "dateEnd": "2024-02-01"
  },
  "transactionList": {
    "transaction": [
      {
        "operationId": 123456,
        "orderId": 654321,
        "date": "2024-01-15",
        "amount": 250.00,
        "cardNumber": "516872******1234",
        "cardIssuer": "MASTERCARD",
        "type": "DOMESTIC",
        "totalFees": -2.75,
        "settlement": true
      },
      {
        "operationId": 123457,
        "orderId": 654322,
        "date": "2024-01-16",
        "amount": 99.90
      }
    ]
  }
}`

func TestMerchantStatementDecode(t *testing.T) {
	var st merchant.MerchantStatement
	require.NoError(t, json.Unmarshal([]byte(sampleMerchant), &st))

	assert.Equal(t, "2345678901", st.Info.AccountID)
	assert.Equal(t, "FIOBCZPPXXX", st.Info.BIC)
	require.Len(t, st.TransactionList.Transaction, 2)

	full := st.TransactionList.Transaction[0]
	assert.Equal(t, int64(123456), full.OperationID)
	assert.True(t, full.Amount.Equal(decimal.RequireFromString("250.00")))
	require.NotNil(t, full.CardIssuer)
	assert.Equal(t, "MASTERCARD", *full.CardIssuer)
	require.NotNil(t, full.TransactionType)
	assert.Equal(t, "DOMESTIC", *full.TransactionType)
	require.NotNil(t, full.TotalFees)
	assert.True(t, full.TotalFees.Equal(decimal.RequireFromString("-2.75")))
	require.NotNil(t, full.Settlement)
	assert.True(t, *full.Settlement)

	bare := st.TransactionList.Transaction[1]
	assert.Equal(t, int64(123457), bare.OperationID)
	assert.Nil(t, bare.CardNumber)
	assert.Nil(t, bare.TotalFees)
	assert.Nil(t, bare.Settlement)
}
