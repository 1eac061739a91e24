package imports_test

import (
	"strings"
	"testing"

	"github.com/fiosdk/fiogo/types/imports"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXMLEmptyImport(t *testing.T) {
	xml := imports.Import{}.ToXML()
	assert.True(t, strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, xml, `xsi:noNamespaceSchemaLocation="http://www.fio.cz/schema/importIB.xsd"`)
	assert.Contains(t, xml, "<Orders></Orders>")
}

func TestXMLDomesticMinimal(t *testing.T) {
	imp := imports.Import{Orders: []imports.Order{domesticFixture()}}
	xml := imp.ToXML()

	assert.Contains(t, xml, "<DomesticTransaction>")
	assert.Contains(t, xml, "<accountFrom>2345678901</accountFrom>")
	assert.Contains(t, xml, "<currency>CZK</currency>")
	assert.Contains(t, xml, "<amount>500</amount>")
	assert.Contains(t, xml, "<accountTo>1098765432</accountTo>")
	assert.Contains(t, xml, "<bankCode>0800</bankCode>")
	assert.Contains(t, xml, "<date>2024-01-01</date>")

	for _, absent := range []string{"<ks>", "<vs>", "<ss>", "<messageForRecipient>", "<comment>", "<paymentReason>", "<paymentType>"} {
		assert.NotContains(t, xml, absent)
	}
}

func TestXMLDomesticOptionalFields(t *testing.T) {
	o := domesticFixture()
	o.VS = "1234567890"
	o.MessageForRecipient = "Rent for January"
	o.PaymentType = imports.DomesticPriority

	xml := imports.Import{Orders: []imports.Order{o}}.ToXML()
	assert.Contains(t, xml, "<vs>1234567890</vs>")
	assert.Contains(t, xml, "<messageForRecipient>Rent for January</messageForRecipient>")
	assert.Contains(t, xml, "<paymentType>431005</paymentType>")
	assert.NotContains(t, xml, "<ks>")
}

func TestXMLEuro(t *testing.T) {
	o := euroFixture()
	o.RemittanceInfo1 = "Invoice 7"
	o.PaymentType = imports.EuroInstant

	xml := imports.Import{Orders: []imports.Order{o}}.ToXML()
	assert.Contains(t, xml, "<T2Transaction>")
	assert.Contains(t, xml, "<bic>COBADEFFXXX</bic>")
	assert.Contains(t, xml, "<benefName>Beneficiary</benefName>")
	assert.Contains(t, xml, "<remittanceInfo1>Invoice 7</remittanceInfo1>")
	assert.Contains(t, xml, "<paymentType>431014</paymentType>")
	assert.NotContains(t, xml, "<benefStreet>")
	assert.NotContains(t, xml, "<remittanceInfo2>")
}

func TestXMLForeignChargeCodes(t *testing.T) {
	tests := []struct {
		charges imports.DetailsOfCharges
		code    string
	}{
		{imports.ChargesSender, "470501"},
		{imports.ChargesReceiver, "470502"},
		{imports.ChargesShared, "470503"},
	}

	for _, tt := range tests {
		o := foreignFixture()
		o.DetailsOfCharges = tt.charges
		xml := imports.Import{Orders: []imports.Order{o}}.ToXML()
		assert.Contains(t, xml, "<detailsOfCharges>"+tt.code+"</detailsOfCharges>")
	}
}

func TestXMLForeignRequiredAddress(t *testing.T) {
	xml := imports.Import{Orders: []imports.Order{foreignFixture()}}.ToXML()
	assert.Contains(t, xml, "<ForeignTransaction>")
	assert.Contains(t, xml, "<benefStreet>Main St 1</benefStreet>")
	assert.Contains(t, xml, "<benefCity>New York</benefCity>")
	assert.Contains(t, xml, "<benefCountry>US</benefCountry>")
	assert.Contains(t, xml, "<remittanceInfo1>Invoice 42</remittanceInfo1>")
	assert.Contains(t, xml, "<paymentReason>110</paymentReason>")
	assert.NotContains(t, xml, "<remittanceInfo2>")
}

func TestXMLGroupsKindsRegardlessOfInsertion(t *testing.T) {
	b := imports.NewBuilder()
	require.NoError(t, b.Foreign(foreignFixture()))
	require.NoError(t, b.Domestic(domesticFixture()))
	require.NoError(t, b.Euro(euroFixture()))

	xml := b.Build().ToXML()
	d := strings.Index(xml, "<DomesticTransaction>")
	e := strings.Index(xml, "<T2Transaction>")
	f := strings.Index(xml, "<ForeignTransaction>")
	require.NotEqual(t, -1, d)
	require.NotEqual(t, -1, e)
	require.NotEqual(t, -1, f)
	assert.Less(t, d, e)
	assert.Less(t, e, f)
}

func TestXMLAmountExactDecimal(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"1234.56", "<amount>1234.56</amount>"},
		{"500", "<amount>500</amount>"},
		{"100.50", "<amount>100.50</amount>"},
		{"1.00", "<amount>1.00</amount>"},
		{"0.10", "<amount>0.10</amount>"},
	}

	for _, tt := range tests {
		o := domesticFixture()
		o.Amount = decimal.RequireFromString(tt.amount)
		xml := imports.Import{Orders: []imports.Order{o}}.ToXML()
		assert.Contains(t, xml, tt.want)
	}
}

func TestXMLFieldOrderWithinDomestic(t *testing.T) {
	o := domesticFixture()
	o.KS = "0308"
	o.VS = "42"
	xml := imports.Import{Orders: []imports.Order{o}}.ToXML()

	order := []string{"<accountFrom>", "<currency>", "<amount>", "<accountTo>", "<bankCode>", "<ks>", "<vs>", "<date>"}
	last := -1
	for _, tag := range order {
		idx := strings.Index(xml, tag)
		require.NotEqual(t, -1, idx, "missing %s", tag)
		assert.Greater(t, idx, last, "%s out of order", tag)
		last = idx
	}
}
