package soap

import "strings"

// Namespace constants for the SOAP 1.1 wire format and the NAV schema space.
const (
	// NsEnvelope is the SOAP 1.1 envelope namespace.
	NsEnvelope = "http://schemas.xmlsoap.org/soap/envelope/"
	// NsDynamics prefixes every NAV service namespace and SOAPAction value.
	NsDynamics = "urn:microsoft-dynamics-schemas/"
)

// PageNamespace derives the document namespace of a page service from the
// entity type name. NAV lower-cases the name:
//
//	PageNamespace("Customer") == "urn:microsoft-dynamics-schemas/page/customer"
func PageNamespace(entity string) string {
	return NsDynamics + "page/" + strings.ToLower(entity)
}

// CodeunitNamespace derives the document namespace of a codeunit service.
// Unlike page namespaces, the codeunit name keeps its casing.
func CodeunitNamespace(name string) string {
	return NsDynamics + "codeunit/" + name
}

// PageSOAPAction returns the SOAPAction header value for a page verb.
func PageSOAPAction(verb string) string {
	return NsDynamics + "page/" + verb
}

// CodeunitSOAPAction returns the SOAPAction header value for a codeunit
// service. Codeunit addressing carries the service name, not the method.
func CodeunitSOAPAction(service string) string {
	return NsDynamics + "codeunit/" + service
}
