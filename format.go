package fiogo

// ExportFormat selects the serialization of movement and statement downloads.
// The token is embedded directly in the request path as the file extension.
// Not every endpoint accepts every format; the bank documents the supported
// set per endpoint and rejects the rest server-side.
type ExportFormat string

const (
	// FormatJSON is the bank's JSON shape, the only format this client parses.
	FormatJSON ExportFormat = "json"
	// FormatXML is the bank's proprietary XML.
	FormatXML ExportFormat = "xml"
	// FormatCSV is semicolon-separated UTF-8.
	FormatCSV ExportFormat = "csv"
	// FormatGPC is the fixed-width GPC format in Windows-1250.
	FormatGPC ExportFormat = "gpc"
	// FormatHTML is a printable HTML page.
	FormatHTML ExportFormat = "html"
	// FormatOFX is Open Financial Exchange.
	FormatOFX ExportFormat = "ofx"
	// FormatPDF is available for statements only.
	FormatPDF ExportFormat = "pdf"
	// FormatMT940 is the SWIFT MT940 statement format, token "sta".
	FormatMT940 ExportFormat = "sta"
	// FormatCBAXML is the Czech national CAMT.053 dialect, statements only.
	FormatCBAXML ExportFormat = "cba_xml"
	// FormatSBAXML is the Slovak national CAMT.053 dialect, statements only.
	FormatSBAXML ExportFormat = "sba_xml"
)
