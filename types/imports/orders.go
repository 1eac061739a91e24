// Package imports models the payment orders accepted by the bank's import
// endpoint and their XML wire encoding.
package imports

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DomesticPaymentType selects the processing mode of a domestic order.
type DomesticPaymentType string

const (
	// DomesticStandard is a standard domestic payment.
	DomesticStandard DomesticPaymentType = "431001"
	// DomesticPriority is a priority (same-day) domestic payment.
	DomesticPriority DomesticPaymentType = "431005"
	// DomesticDirectDebit is a domestic direct debit instruction.
	DomesticDirectDebit DomesticPaymentType = "431022"
)

// EuroPaymentType selects the processing mode of a euro (T2) order.
type EuroPaymentType string

const (
	// EuroStandard is a standard SEPA payment.
	EuroStandard EuroPaymentType = "431001"
	// EuroPriority is a priority SEPA payment.
	EuroPriority EuroPaymentType = "431005"
	// EuroInstant is an instant SEPA payment.
	EuroInstant EuroPaymentType = "431014"
)

// DetailsOfCharges says who carries the fees of a foreign order.
type DetailsOfCharges string

const (
	// ChargesSender means the sender pays all fees (OUR).
	ChargesSender DetailsOfCharges = "470501"
	// ChargesReceiver means the beneficiary pays all fees (BEN).
	ChargesReceiver DetailsOfCharges = "470502"
	// ChargesShared splits the fees between both parties (SHA).
	ChargesShared DetailsOfCharges = "470503"
)

// DomesticOrder is a payment between two Czech accounts. Optional string
// fields left empty emit no XML element.
type DomesticOrder struct {
	AccountFrom         string              `validate:"required"`
	Currency            string              `validate:"required,len=3"`
	Amount              decimal.Decimal     `validate:"required"`
	AccountTo           string              `validate:"required"`
	BankCode            string              `validate:"required,len=4,numeric"`
	KS                  string              `validate:"omitempty,numeric,max=4"`
	VS                  string              `validate:"omitempty,numeric,max=10"`
	SS                  string              `validate:"omitempty,numeric,max=10"`
	Date                string              `validate:"required"`
	MessageForRecipient string              `validate:"omitempty,max=140"`
	Comment             string              `validate:"omitempty,max=255"`
	PaymentReason       string              `validate:"omitempty,len=3,numeric"`
	PaymentType         DomesticPaymentType `validate:"omitempty,oneof=431001 431005 431022"`
}

// EuroOrder is a euro-area (T2) payment order.
type EuroOrder struct {
	AccountFrom     string          `validate:"required"`
	Currency        string          `validate:"required,len=3"`
	Amount          decimal.Decimal `validate:"required"`
	AccountTo       string          `validate:"required"`
	BIC             string          `validate:"omitempty,min=8,max=11"`
	KS              string          `validate:"omitempty,numeric,max=4"`
	VS              string          `validate:"omitempty,numeric,max=10"`
	SS              string          `validate:"omitempty,numeric,max=10"`
	Date            string          `validate:"required"`
	BenefName       string          `validate:"required"`
	BenefStreet     string
	BenefCity       string
	BenefCountry    string
	RemittanceInfo1 string
	RemittanceInfo2 string
	RemittanceInfo3 string
	Comment         string          `validate:"omitempty,max=255"`
	PaymentReason   string          `validate:"omitempty,len=3,numeric"`
	PaymentType     EuroPaymentType `validate:"omitempty,oneof=431001 431005 431014"`
}

// ForeignOrder is a payment outside the euro area. Beneficiary address and
// the first remittance line are mandatory for these.
type ForeignOrder struct {
	AccountFrom      string           `validate:"required"`
	Currency         string           `validate:"required,len=3"`
	Amount           decimal.Decimal  `validate:"required"`
	AccountTo        string           `validate:"required"`
	BIC              string           `validate:"required,min=8,max=11"`
	Date             string           `validate:"required"`
	BenefName        string           `validate:"required"`
	BenefStreet      string           `validate:"required"`
	BenefCity        string           `validate:"required"`
	BenefCountry     string           `validate:"required"`
	RemittanceInfo1  string           `validate:"required"`
	RemittanceInfo2  string
	RemittanceInfo3  string
	RemittanceInfo4  string
	Comment          string           `validate:"omitempty,max=255"`
	PaymentReason    string           `validate:"required"`
	DetailsOfCharges DetailsOfCharges `validate:"required,oneof=470501 470502 470503"`
}

// Order is one payment order of any kind. The set of implementations is
// closed: DomesticOrder, EuroOrder and ForeignOrder.
type Order interface {
	isOrder()
}

func (DomesticOrder) isOrder() {}
func (EuroOrder) isOrder()     {}
func (ForeignOrder) isOrder()  {}

// Import is an immutable batch of orders ready for submission. Orders are
// grouped by kind: domestic first, then euro, then foreign.
type Import struct {
	Orders []Order
}

var validate = validator.New()
