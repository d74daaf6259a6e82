package record

// Versioned is implemented by records that carry an opaque concurrency
// token. A non-empty token is sent as an If-Match precondition on updates.
type Versioned interface {
	ConcurrencyToken() string
}

// Base carries the server-assigned fields common to all NAV records.
// Embed it in every page record type.
type Base struct {
	// Key is the SOAP record bookmark assigned by the server. It addresses
	// the record in Update and Delete calls on the SOAP path.
	Key string `xml:"Key,omitempty" json:"-"`
	// ETag is the OData concurrency token returned with every read.
	ETag string `xml:"-" json:"@odata.etag,omitempty"`
}

// ConcurrencyToken implements Versioned.
func (b Base) ConcurrencyToken() string {
	return b.ETag
}
