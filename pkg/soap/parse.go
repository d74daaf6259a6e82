package soap

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/beevik/etree"
)

// ParseList extracts the records of a ReadMultiple response. The wrapper may
// be absent and may nest an inner ReadMultiple_Result; both a missing wrapper
// and a wrapper without entity children parse to an empty slice.
func ParseList[T any](body []byte, entity string) ([]T, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, fmt.Errorf("parsing ReadMultiple response: %w", err)
	}

	records := []T{}
	wrapper := doc.FindElement("//ReadMultiple_Result")
	if wrapper == nil {
		return records, nil
	}
	if inner := wrapper.SelectElement("ReadMultiple_Result"); inner != nil {
		wrapper = inner
	}

	for _, el := range wrapper.ChildElements() {
		if el.Tag != entity {
			continue
		}
		var rec T
		if err := unmarshalElement(el, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s record: %w", entity, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseEntity extracts the single entity element nested under the first
// <verb>_Result wrapper that resolves. A response carrying none of the
// probed wrappers, or a wrapper without the entity child, yields nil without
// an error; the caller decides whether absence is acceptable.
func ParseEntity[T any](body []byte, entity string, verbs ...string) (*T, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", entity, err)
	}

	for _, verb := range verbs {
		wrapper := doc.FindElement("//" + verb + "_Result")
		if wrapper == nil {
			continue
		}
		el := wrapper.SelectElement(entity)
		if el == nil {
			continue
		}
		var rec T
		if err := unmarshalElement(el, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s record: %w", entity, err)
		}
		return &rec, nil
	}
	return nil, nil
}

// ParseDelete reports whether a delete response acknowledges the deletion.
// NAV acknowledges with an empty Delete_Result element; the check is a raw
// substring match over the body, faithful to the service's behavior of not
// returning any structured payload.
func ParseDelete(body []byte) bool {
	return bytes.Contains(body, []byte("Delete_Result"))
}

// unmarshalElement binds one entity element to a record. Child elements map
// to fields by local name; unknown elements are ignored and absent ones
// leave the field at its zero value.
func unmarshalElement(el *etree.Element, v any) error {
	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	data, err := doc.WriteToBytes()
	if err != nil {
		return err
	}
	return xml.Unmarshal(data, v)
}
