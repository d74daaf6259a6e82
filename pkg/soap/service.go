package soap

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/beevik/etree"

	"github.com/ternsoft/go-dynamics/pkg/endpoint"
	"github.com/ternsoft/go-dynamics/pkg/transport"
)

// Page verbs understood by every NAV page service.
const (
	VerbReadMultiple = "ReadMultiple"
	VerbRead         = "Read"
	VerbCreate       = "Create"
	VerbUpdate       = "Update"
	VerbDelete       = "Delete"
)

// Service is a typed client for one page web service. The service name is
// also the entity element name in requests and responses.
type Service[T any] struct {
	transport *transport.Client
	endpoint  *endpoint.Endpoint
	name      string
	namespace string
}

// NewService binds a page service to a record type.
func NewService[T any](tr *transport.Client, ep *endpoint.Endpoint, name string) *Service[T] {
	return &Service[T]{
		transport: tr,
		endpoint:  ep,
		name:      name,
		namespace: PageNamespace(name),
	}
}

// ReadMultiple returns all records matching the caller-supplied filter
// fragment. setSize caps the number of records; zero means no cap. A
// response without records is an empty slice, not an error.
func (s *Service[T]) ReadMultiple(ctx context.Context, filter string, setSize int) ([]T, error) {
	fragment := filter + fmt.Sprintf("<setSize>%d</setSize>", setSize)
	raw, err := s.call(ctx, VerbReadMultiple, fragment)
	if err != nil {
		return nil, err
	}
	return ParseList[T](raw, s.name)
}

// Read returns the record addressed by the caller-supplied key fragment, or
// nil when the server returns no record.
func (s *Service[T]) Read(ctx context.Context, key string) (*T, error) {
	raw, err := s.call(ctx, VerbRead, key)
	if err != nil {
		return nil, err
	}
	return ParseEntity[T](raw, s.name, VerbRead)
}

// Create inserts the record and returns the server's echo of it, which
// carries the assigned key. A response that echoes nothing is a failure.
func (s *Service[T]) Create(ctx context.Context, rec *T) (*T, error) {
	return s.write(ctx, VerbCreate, rec, VerbCreate, VerbUpdate)
}

// Update modifies the record addressed by its key bookmark and returns the
// server's echo of it. A response that echoes nothing is a failure.
func (s *Service[T]) Update(ctx context.Context, rec *T) (*T, error) {
	return s.write(ctx, VerbUpdate, rec, VerbUpdate, VerbCreate)
}

// Delete removes the record addressed by its key bookmark and reports
// whether the server acknowledged the deletion.
func (s *Service[T]) Delete(ctx context.Context, key string) (bool, error) {
	body, err := RequestBody(VerbDelete, s.namespace, "")
	if err != nil {
		return false, err
	}
	body.CreateElement("Key").SetText(key)

	raw, err := s.dispatchBody(ctx, VerbDelete, body)
	if err != nil {
		return false, err
	}
	return ParseDelete(raw), nil
}

func (s *Service[T]) write(ctx context.Context, verb string, rec *T, probe ...string) (*T, error) {
	entity, err := marshalEntity(rec, s.name)
	if err != nil {
		return nil, err
	}
	raw, err := s.call(ctx, verb, entity)
	if err != nil {
		return nil, err
	}
	echoed, err := ParseEntity[T](raw, s.name, probe...)
	if err != nil {
		return nil, err
	}
	if echoed == nil {
		return nil, fmt.Errorf("%s response did not echo a %s record", verb, s.name)
	}
	return echoed, nil
}

func (s *Service[T]) call(ctx context.Context, verb, fragment string) ([]byte, error) {
	body, err := RequestBody(verb, s.namespace, fragment)
	if err != nil {
		return nil, err
	}
	return s.dispatchBody(ctx, verb, body)
}

func (s *Service[T]) dispatchBody(ctx context.Context, verb string, body *etree.Element) ([]byte, error) {
	env, err := Envelope(body)
	if err != nil {
		return nil, err
	}
	url := s.endpoint.BaseURL() + s.name
	return dispatch(ctx, s.transport, url, PageSOAPAction(verb), env)
}

// dispatch POSTs one envelope and applies the shared failure rules: wrapped
// network errors, StatusError with fault text on non-success statuses, and
// FaultError when a success response still carries fault markers.
func dispatch(ctx context.Context, tr *transport.Client, url, action string, envelope []byte) ([]byte, error) {
	header := http.Header{}
	header.Set("Content-Type", `text/xml; charset=utf-8`)
	header.Set("SOAPAction", action)

	resp, err := tr.Do(ctx, http.MethodPost, url, header, envelope)
	if err != nil {
		return nil, fmt.Errorf("dispatching %s: %w", action, err)
	}
	if !resp.Success() {
		fault, _ := Fault(resp.Body)
		return nil, &transport.StatusError{StatusCode: resp.StatusCode, Detail: fault}
	}
	if HasFaultMarkers(resp.Body) {
		fault, _ := Fault(resp.Body)
		return nil, &FaultError{Fault: fault}
	}
	return resp.Body, nil
}

// marshalEntity serializes a record as an element named after the entity.
// The element inherits the page namespace from the request body it is
// grafted into.
func marshalEntity(v any, name string) (string, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeElement(v, start); err != nil {
		return "", fmt.Errorf("encoding %s record: %w", name, err)
	}
	if err := enc.Flush(); err != nil {
		return "", fmt.Errorf("encoding %s record: %w", name, err)
	}
	return buf.String(), nil
}
