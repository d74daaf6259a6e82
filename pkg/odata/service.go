package odata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ternsoft/go-dynamics/pkg/record"
	"github.com/ternsoft/go-dynamics/pkg/transport"
)

// ErrNotFound is returned by Get when no record matches the filter. List
// treats the same situation as an empty result instead.
var ErrNotFound = errors.New("no matching record found")

// listEnvelope is the OData V4 collection shape.
type listEnvelope[T any] struct {
	Context string `json:"@odata.context"`
	Value   []T    `json:"value"`
}

// Service is a typed CRUD client for one entity set.
type Service[T any] struct {
	client    *Client
	entitySet string
}

// NewService binds an entity set to a record type.
func NewService[T any](c *Client, entitySet string) *Service[T] {
	return &Service[T]{client: c, entitySet: entitySet}
}

// List returns all records matching the filter expressions. All non-empty
// expressions are joined with " and " into a single $filter. No matches is
// an empty slice, not an error.
func (s *Service[T]) List(ctx context.Context, filter string, extra ...string) ([]T, error) {
	u := s.client.url(s.entitySet)
	if combined := CombineFilters(filter, extra...); combined != "" {
		u += "?$filter=" + url.QueryEscape(combined)
	}

	resp, err := s.client.transport.Do(ctx, http.MethodGet, u, s.jsonHeader(), nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.entitySet, err)
	}
	if !resp.Success() {
		return nil, &transport.StatusError{StatusCode: resp.StatusCode, Detail: failureDetail(resp.Body)}
	}

	var env listEnvelope[T]
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return nil, fmt.Errorf("decoding %s list: %w", s.entitySet, err)
	}
	if env.Value == nil {
		return []T{}, nil
	}
	return env.Value, nil
}

// Get returns the first record matching the filter expressions. No match is
// an ErrNotFound failure, unlike List.
func (s *Service[T]) Get(ctx context.Context, filter string, extra ...string) (*T, error) {
	records, err := s.List(ctx, filter, extra...)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s matching %q: %w", s.entitySet, CombineFilters(filter, extra...), ErrNotFound)
	}
	return &records[0], nil
}

// Create inserts the record and returns the server's echo of it. A success
// status without an echoed record is a failure: the creation cannot be
// confirmed.
func (s *Service[T]) Create(ctx context.Context, rec *T) (*T, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encoding %s record: %w", s.entitySet, err)
	}

	resp, err := s.client.transport.Do(ctx, http.MethodPost, s.client.url(s.entitySet), s.jsonHeader(), payload)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", s.entitySet, err)
	}
	return s.echoedRecord(resp, "create")
}

// Update patches the record addressed by key. When the record carries a
// concurrency token it is sent as an If-Match precondition. Like Create,
// the server must echo the updated record back.
func (s *Service[T]) Update(ctx context.Context, key string, rec *T) (*T, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encoding %s record: %w", s.entitySet, err)
	}

	header := s.jsonHeader()
	if v, ok := any(*rec).(record.Versioned); ok {
		if token := v.ConcurrencyToken(); token != "" {
			header.Set("If-Match", token)
		}
	}

	resp, err := s.client.transport.Do(ctx, http.MethodPatch, s.keyedURL(key), header, payload)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", s.entitySet, err)
	}
	return s.echoedRecord(resp, "update")
}

// Delete removes the record addressed by key. Success carries no payload
// requirement.
func (s *Service[T]) Delete(ctx context.Context, key string) error {
	resp, err := s.client.transport.Do(ctx, http.MethodDelete, s.keyedURL(key), s.jsonHeader(), nil)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", s.entitySet, err)
	}
	if !resp.Success() {
		return &transport.StatusError{StatusCode: resp.StatusCode, Detail: failureDetail(resp.Body)}
	}
	return nil
}

func (s *Service[T]) keyedURL(key string) string {
	return s.client.url(s.entitySet + "(" + key + ")")
}

func (s *Service[T]) jsonHeader() http.Header {
	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set("Content-Type", "application/json")
	return header
}

func (s *Service[T]) echoedRecord(resp *transport.Response, op string) (*T, error) {
	if !resp.Success() {
		return nil, &transport.StatusError{StatusCode: resp.StatusCode, Detail: failureDetail(resp.Body)}
	}
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil, fmt.Errorf("%s of %s returned no record to confirm it", op, s.entitySet)
	}

	var rec T
	if err := json.Unmarshal(resp.Body, &rec); err != nil {
		return nil, fmt.Errorf("decoding %s record: %w", s.entitySet, err)
	}
	return &rec, nil
}
