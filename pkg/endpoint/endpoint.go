package endpoint

import (
	"fmt"
	"net/url"
)

// Protocol selects the wire protocol used to reach the server.
type Protocol string

const (
	// ODataV4 addresses the JSON/REST surface of the server.
	ODataV4 Protocol = "ODataV4"
	// SOAP addresses the XML web-service surface of the server.
	SOAP Protocol = "SOAP"
)

// ObjectType selects the kind of SOAP web service being addressed.
type ObjectType string

const (
	// Page services expose entity CRUD operations.
	Page ObjectType = "Page"
	// Codeunit services expose remote procedure invocations.
	Codeunit ObjectType = "Codeunit"
)

// AuthKind selects how credentials are presented to the server.
type AuthKind string

const (
	// AuthBasic sends an HTTP Basic Authorization header.
	AuthBasic AuthKind = "basic"
	// AuthBearer sends a Bearer token Authorization header.
	AuthBearer AuthKind = "bearer"
	// AuthAmbient sends no Authorization header; authentication is
	// expected to happen at the transport or network level.
	AuthAmbient AuthKind = "ambient"
)

// Credentials holds the authentication material for an endpoint.
type Credentials struct {
	Kind     AuthKind
	Username string
	Password string
	Token    string
}

// Endpoint describes one NAV/BC server endpoint. It is constructed once and
// not mutated afterwards; all clients derive their request URLs from it.
type Endpoint struct {
	Host     string
	Port     int
	Instance string
	Company  string
	Protocol Protocol
	// ObjectType applies to SOAP endpoints only. Empty means Page.
	ObjectType  ObjectType
	UseTLS      bool
	Credentials Credentials
}

// BaseURL returns the base address all requests against this endpoint are
// prefixed with. The shape depends on the protocol:
//
//	OData V4: {scheme}://{host}:{port}/{instance}/ODataV4/Company('{company}')/
//	SOAP:     {scheme}://{host}:{port}/{instance}/WS/{company}/{objectType}/
func (e *Endpoint) BaseURL() string {
	scheme := "http"
	if e.UseTLS {
		scheme = "https"
	}

	if e.Protocol == ODataV4 {
		return fmt.Sprintf("%s://%s:%d/%s/ODataV4/Company('%s')/",
			scheme, e.Host, e.Port, e.Instance, url.PathEscape(e.Company))
	}

	objectType := e.ObjectType
	if objectType == "" {
		objectType = Page
	}
	return fmt.Sprintf("%s://%s:%d/%s/WS/%s/%s/",
		scheme, e.Host, e.Port, e.Instance, url.PathEscape(e.Company), objectType)
}

// Validate reports whether the endpoint carries everything needed to build
// requests against it.
func (e *Endpoint) Validate() error {
	if e.Host == "" {
		return fmt.Errorf("endpoint host is required")
	}
	if e.Port <= 0 || e.Port > 65535 {
		return fmt.Errorf("endpoint port %d is out of range", e.Port)
	}
	if e.Instance == "" {
		return fmt.Errorf("endpoint server instance is required")
	}
	if e.Company == "" {
		return fmt.Errorf("endpoint company is required")
	}
	switch e.Protocol {
	case ODataV4, SOAP:
	default:
		return fmt.Errorf("endpoint protocol must be %q or %q, got %q", ODataV4, SOAP, e.Protocol)
	}
	switch e.ObjectType {
	case "", Page, Codeunit:
	default:
		return fmt.Errorf("endpoint object type must be %q or %q, got %q", Page, Codeunit, e.ObjectType)
	}
	switch e.Credentials.Kind {
	case "", AuthAmbient:
	case AuthBasic:
		if e.Credentials.Username == "" {
			return fmt.Errorf("basic credentials require a username")
		}
	case AuthBearer:
		if e.Credentials.Token == "" {
			return fmt.Errorf("bearer credentials require a token")
		}
	default:
		return fmt.Errorf("unknown credential kind %q", e.Credentials.Kind)
	}
	return nil
}
