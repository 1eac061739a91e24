// Package merchant contains the card settlement types returned by the
// merchant (POS terminal / payment gateway) endpoint.
package merchant

import "github.com/shopspring/decimal"

// MerchantStatement wraps the merchant transaction response.
type MerchantStatement struct {
	Info            MerchantInfo            `json:"info"`
	TransactionList MerchantTransactionList `json:"transactionList"`
}

// MerchantInfo describes the settlement account and the selected period.
type MerchantInfo struct {
	AccountID string `json:"accountId"`
	BankID    string `json:"bankId"`
	Currency  string `json:"currency"`
	IBAN      string `json:"iban"`
	BIC       string `json:"bic"`
	DateStart string `json:"dateStart"`
	DateEnd   string `json:"dateEnd"`
}

// MerchantTransactionList holds the card transactions in bank order.
type MerchantTransactionList struct {
	Transaction []MerchantTransaction `json:"transaction"`
}

// MerchantTransaction is one card transaction with its settlement and fee
// breakdown. Everything beyond the batch identification is optional.
type MerchantTransaction struct {
	OperationID         int64            `json:"operationId"`
	OrderID             int64            `json:"orderId"`
	Date                string           `json:"date"`
	Amount              decimal.Decimal  `json:"amount"`
	Note                *string          `json:"note,omitempty"`
	BranchName          *string          `json:"branchName,omitempty"`
	TransactionID       *string          `json:"transactionId,omitempty"`
	DeviceID            *string          `json:"deviceId,omitempty"`
	TransactionDateTime *string          `json:"transactionDateTime,omitempty"`
	// The bank spells "authorization" without the h on the wire.
	AutorizationNumber  *string          `json:"autorizationNumber,omitempty"`
	CardNumber          *string          `json:"cardNumber,omitempty"`
	TransactionAmount   *decimal.Decimal `json:"transactionAmount,omitempty"`
	TransactionCurrency *string          `json:"transactionCurrency,omitempty"`
	// ON_US, DOMESTIC or FOREIGN depending on the card's issuer bank.
	TransactionType     *string          `json:"type,omitempty"`
	CardIssuer          *string          `json:"cardIssuer,omitempty"`
	TotalFees           *decimal.Decimal `json:"totalFees,omitempty"`
	FioFee              *decimal.Decimal `json:"fioFee,omitempty"`
	InterchangeFee      *decimal.Decimal `json:"interchangeFee,omitempty"`
	// "asosiation" is the bank's own spelling of the association fee key.
	CardAsosiationFee   *decimal.Decimal `json:"cardAsosiationFee,omitempty"`
	FlexibleCommission  *decimal.Decimal `json:"flexibleCommission,omitempty"`
	Settlement          *bool            `json:"settlement,omitempty"`
	SettlementDate      *string          `json:"settlementDate,omitempty"`
	VS                  *string          `json:"vs,omitempty"`
}
