package imports

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	xmlProlog = `<?xml version="1.0" encoding="UTF-8"?>`
	xmlRoot   = `<Import xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:noNamespaceSchemaLocation="http://www.fio.cz/schema/importIB.xsd">`
)

// ToXML renders the batch as the bank's import document. The output is
// deterministic: fixed prolog and root, one <Orders> wrapper, all domestic
// orders, then all euro, then all foreign, each with its child elements in
// schema order and absent optional fields elided entirely.
//
// Field values are interpolated verbatim. Free-text fields (comment, message,
// remittance lines) are NOT XML-escaped; the bank endpoint expects the raw
// text and rejecting or escaping here would change the wire bytes. Callers
// that accept untrusted input in those fields must sanitize it themselves.
func (i Import) ToXML() string {
	var b strings.Builder
	b.WriteString(xmlProlog)
	b.WriteString(xmlRoot)
	b.WriteString("<Orders>")
	for _, o := range i.Orders {
		if t, ok := o.(DomesticOrder); ok {
			writeDomestic(&b, t)
		}
	}
	for _, o := range i.Orders {
		if t, ok := o.(EuroOrder); ok {
			writeEuro(&b, t)
		}
	}
	for _, o := range i.Orders {
		if t, ok := o.(ForeignOrder); ok {
			writeForeign(&b, t)
		}
	}
	b.WriteString("</Orders>")
	b.WriteString("</Import>")
	return b.String()
}

func writeDomestic(b *strings.Builder, t DomesticOrder) {
	b.WriteString("<DomesticTransaction>")
	elem(b, "accountFrom", t.AccountFrom)
	elem(b, "currency", t.Currency)
	amount(b, t.Amount)
	elem(b, "accountTo", t.AccountTo)
	elem(b, "bankCode", t.BankCode)
	optional(b, "ks", t.KS)
	optional(b, "vs", t.VS)
	optional(b, "ss", t.SS)
	elem(b, "date", t.Date)
	optional(b, "messageForRecipient", t.MessageForRecipient)
	optional(b, "comment", t.Comment)
	optional(b, "paymentReason", t.PaymentReason)
	optional(b, "paymentType", string(t.PaymentType))
	b.WriteString("</DomesticTransaction>")
}

func writeEuro(b *strings.Builder, t EuroOrder) {
	b.WriteString("<T2Transaction>")
	elem(b, "accountFrom", t.AccountFrom)
	elem(b, "currency", t.Currency)
	amount(b, t.Amount)
	elem(b, "accountTo", t.AccountTo)
	optional(b, "bic", t.BIC)
	optional(b, "ks", t.KS)
	optional(b, "vs", t.VS)
	optional(b, "ss", t.SS)
	elem(b, "date", t.Date)
	elem(b, "benefName", t.BenefName)
	optional(b, "benefStreet", t.BenefStreet)
	optional(b, "benefCity", t.BenefCity)
	optional(b, "benefCountry", t.BenefCountry)
	optional(b, "remittanceInfo1", t.RemittanceInfo1)
	optional(b, "remittanceInfo2", t.RemittanceInfo2)
	optional(b, "remittanceInfo3", t.RemittanceInfo3)
	optional(b, "comment", t.Comment)
	optional(b, "paymentReason", t.PaymentReason)
	optional(b, "paymentType", string(t.PaymentType))
	b.WriteString("</T2Transaction>")
}

func writeForeign(b *strings.Builder, t ForeignOrder) {
	b.WriteString("<ForeignTransaction>")
	elem(b, "accountFrom", t.AccountFrom)
	elem(b, "currency", t.Currency)
	amount(b, t.Amount)
	elem(b, "accountTo", t.AccountTo)
	elem(b, "bic", t.BIC)
	elem(b, "date", t.Date)
	elem(b, "benefName", t.BenefName)
	elem(b, "benefStreet", t.BenefStreet)
	elem(b, "benefCity", t.BenefCity)
	elem(b, "benefCountry", t.BenefCountry)
	elem(b, "remittanceInfo1", t.RemittanceInfo1)
	optional(b, "remittanceInfo2", t.RemittanceInfo2)
	optional(b, "remittanceInfo3", t.RemittanceInfo3)
	optional(b, "remittanceInfo4", t.RemittanceInfo4)
	optional(b, "comment", t.Comment)
	elem(b, "paymentReason", t.PaymentReason)
	elem(b, "detailsOfCharges", string(t.DetailsOfCharges))
	b.WriteString("</ForeignTransaction>")
}

func elem(b *strings.Builder, name, value string) {
	b.WriteString("<")
	b.WriteString(name)
	b.WriteString(">")
	b.WriteString(value)
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}

func optional(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	elem(b, name, value)
}

// amount renders the exact decimal representation, never a float. The scale
// is preserved: an order built from "100.50" emits 100.50, not the trimmed
// 100.5 that Decimal.String would produce.
func amount(b *strings.Builder, d decimal.Decimal) {
	if d.Exponent() < 0 {
		elem(b, "amount", d.StringFixed(-d.Exponent()))
		return
	}
	elem(b, "amount", d.String())
}
