package soap

import (
	"fmt"

	"github.com/beevik/etree"
)

// Envelope wraps a body element in a SOAP 1.1 envelope with an empty header
// and serializes it. The body contents are taken as-is.
func Envelope(body *etree.Element) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	env := doc.CreateElement("soap:Envelope")
	env.CreateAttr("xmlns:soap", NsEnvelope)
	env.CreateElement("soap:Header")
	env.CreateElement("soap:Body").AddChild(body)

	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializing envelope: %w", err)
	}
	return data, nil
}

// RequestBody builds the single body element for a request: the verb or
// method name carrying the service namespace as its default namespace, with
// the caller-supplied XML fragment grafted underneath. The fragment is not
// validated beyond being well-formed.
func RequestBody(name, namespace, fragment string) (*etree.Element, error) {
	el := etree.NewElement(name)
	el.CreateAttr("xmlns", namespace)
	if fragment != "" {
		if err := appendFragment(el, fragment); err != nil {
			return nil, err
		}
	}
	return el, nil
}

func appendFragment(parent *etree.Element, fragment string) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<x>" + fragment + "</x>"); err != nil {
		return fmt.Errorf("parsing XML fragment: %w", err)
	}
	for _, child := range doc.Root().ChildElements() {
		parent.AddChild(child.Copy())
	}
	return nil
}
