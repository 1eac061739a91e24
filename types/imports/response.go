package imports

import (
	"encoding/xml"
	"fmt"

	"github.com/shopspring/decimal"
)

// Response is the parsed form of the XML acknowledgment the bank returns
// after an import POST. Error codes: 0 ok, 1 validation error, 2 warning,
// 11 syntax error, 12 empty import, 13 file too large, 14 empty file.
type Response struct {
	ErrorCode     int
	IDInstruction string
	Status        string
	SumDebet      *decimal.Decimal
	SumCredit     *decimal.Decimal
}

type responseImport struct {
	XMLName       xml.Name `xml:"responseImport"`
	ErrorCode     int      `xml:"result>errorCode"`
	IDInstruction string   `xml:"result>idInstruction"`
	Status        string   `xml:"result>status"`
	SumDebet      string   `xml:"result>sums>sum>sumDebet"`
	SumCredit     string   `xml:"result>sums>sum>sumCredit"`
}

// ParseResponse decodes an import acknowledgment body. ImportOrders and
// ImportRaw return the body unparsed; this is a convenience for callers that
// want the error code without hand-rolling XML handling.
func ParseResponse(body string) (*Response, error) {
	var ack responseImport
	if err := xml.Unmarshal([]byte(body), &ack); err != nil {
		return nil, fmt.Errorf("decoding import response: %w", err)
	}
	resp := &Response{
		ErrorCode:     ack.ErrorCode,
		IDInstruction: ack.IDInstruction,
		Status:        ack.Status,
	}
	if ack.SumDebet != "" {
		d, err := decimal.NewFromString(ack.SumDebet)
		if err != nil {
			return nil, fmt.Errorf("decoding import response sumDebet: %w", err)
		}
		resp.SumDebet = &d
	}
	if ack.SumCredit != "" {
		d, err := decimal.NewFromString(ack.SumCredit)
		if err != nil {
			return nil, fmt.Errorf("decoding import response sumCredit: %w", err)
		}
		resp.SumCredit = &d
	}
	return resp, nil
}
