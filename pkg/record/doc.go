/*
Package record defines the base shape shared by all NAV entity records.

A page record embeds Base to pick up the server-assigned fields every NAV
entity carries: the SOAP Key bookmark and the OData ETag concurrency token.

	type Customer struct {
	    record.Base
	    No   string `xml:"No" json:"No,omitempty"`
	    Name string `xml:"Name" json:"Name,omitempty"`
	}

Records carrying a concurrency token implement Versioned; the OData client
uses it to emit an If-Match precondition on updates. The capability is
decided at compile time through the interface rather than by runtime
introspection of the record type.
*/
package record
