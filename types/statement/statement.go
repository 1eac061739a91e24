// Package statement contains the account statement and movement types
// returned by the bank's JSON endpoints.
package statement

import (
	"encoding/json"
	"strings"

	"github.com/fiosdk/fiogo/apperrors"
	"github.com/shopspring/decimal"
)

// Statement is the top-level holder returned by the movement and statement
// endpoints.
type Statement struct {
	AccountStatement AccountStatement `json:"accountStatement"`
}

// AccountStatement pairs the account info with the listed movements.
type AccountStatement struct {
	Info            Info            `json:"info"`
	TransactionList TransactionList `json:"transactionList"`
}

// Info describes the account and the period the statement covers.
type Info struct {
	AccountID      string          `json:"accountId"`
	BankID         string          `json:"bankId"`
	Currency       string          `json:"currency"`
	IBAN           string          `json:"iban"`
	BIC            string          `json:"bic"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	DateStart      string          `json:"dateStart"`
	DateEnd        string          `json:"dateEnd"`
	YearList       json.RawMessage `json:"yearList"`
	IDList         *int64          `json:"idList"`
	IDFrom         *int64          `json:"idFrom"`
	IDTo           *int64          `json:"idTo"`
	IDLastDownload *int64          `json:"idLastDownload"`
}

// TransactionList holds the movements in the order the bank returned them.
// Each row maps a bank column key (e.g. "column22") to its cell, which may be
// null for columns with no value.
type TransactionList struct {
	Transaction []map[string]*TransactionData `json:"transaction"`
}

// TransactionData is one self-describing cell of a movement row.
type TransactionData struct {
	Value Value  `json:"value"`
	Name  string `json:"name"`
	ID    int64  `json:"id"`
}

// LastStatementID identifies the newest official statement of an account.
type LastStatementID struct {
	Year string
	ID   string
}

// ParseLastStatementID splits the bank's bare "<year>,<id>" line on the first
// comma. Anything without a comma is an invalid response.
func ParseLastStatementID(body string) (LastStatementID, error) {
	year, id, found := strings.Cut(body, ",")
	if !found {
		return LastStatementID{}, &apperrors.InvalidResponseError{Detail: "not enough elements returned"}
	}
	return LastStatementID{Year: year, ID: id}, nil
}
