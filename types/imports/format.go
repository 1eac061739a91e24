package imports

// Format is the wire format token sent in the multipart "type" field of an
// import POST. Only FormatXML payloads are modeled by this package; the other
// tokens are for caller-supplied raw bodies.
type Format string

const (
	// FormatXML is the bank's own import schema, produced by Import.ToXML.
	FormatXML Format = "xml"
	// FormatABO is the Czech national ABO batch format.
	FormatABO Format = "abo"
	// FormatPain001 is SEPA pain.001 (credit transfer initiation).
	FormatPain001 Format = "pain001_xml"
	// FormatPain008 is SEPA pain.008 (direct debit initiation).
	FormatPain008 Format = "pain008_xml"
)
