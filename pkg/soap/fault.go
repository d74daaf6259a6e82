package soap

import (
	"bytes"
	"strings"

	"github.com/beevik/etree"
)

// FaultError reports a SOAP fault carried inside an otherwise successful
// response.
type FaultError struct {
	Fault string
}

func (e *FaultError) Error() string {
	if e.Fault == "" {
		return "SOAP fault in response"
	}
	return "SOAP fault: " + e.Fault
}

// HasFaultMarkers reports whether a response body contains SOAP fault
// markers despite a success status.
func HasFaultMarkers(body []byte) bool {
	return bytes.Contains(body, []byte("<faultcode>")) ||
		bytes.Contains(body, []byte("<Fault>"))
}

// Fault scans a response body for a human-readable fault message. The scan
// is best effort: a body that does not parse as XML reports no fault rather
// than an error. The faultstring element wins over detail, qualified or not.
func Fault(body []byte) (string, bool) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return "", false
	}
	for _, tag := range []string{"faultstring", "detail"} {
		if el := doc.FindElement("//" + tag); el != nil {
			return strings.TrimSpace(el.Text()), true
		}
	}
	return "", false
}
