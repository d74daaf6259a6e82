package odata

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternsoft/go-dynamics/pkg/endpoint"
	"github.com/ternsoft/go-dynamics/pkg/record"
	"github.com/ternsoft/go-dynamics/pkg/transport"
)

type customer struct {
	record.Base
	No      string `json:"No,omitempty"`
	Name    string `json:"Name,omitempty"`
	City    string `json:"City,omitempty"`
	Country string `json:"Country_Region_Code,omitempty"`
}

func newTestService(t *testing.T, handler http.HandlerFunc) *Service[customer] {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	ep := &endpoint.Endpoint{
		Host:     u.Hostname(),
		Port:     port,
		Instance: "BC210",
		Company:  "CRONUS",
		Protocol: endpoint.ODataV4,
	}
	tr := transport.NewClient(nil, endpoint.Credentials{})
	return NewService[customer](NewClient(tr, ep), "Customer")
}

func TestListFilterEncoding(t *testing.T) {
	var gotPath, gotFilter string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFilter = r.URL.Query().Get("$filter")
		io.WriteString(w, `{"@odata.context":"ctx","value":[]}`)
	})

	_, err := svc.List(context.Background(), "Country_Region_Code eq 'US'", "Balance gt 0")
	require.NoError(t, err)

	assert.Equal(t, "/BC210/ODataV4/Company('CRONUS')/Customer", gotPath)
	assert.Equal(t, "Country_Region_Code eq 'US' and Balance gt 0", gotFilter)
}

func TestListNoFilterSendsNoQuery(t *testing.T) {
	var gotQuery string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `{"value":[]}`)
	})

	_, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestListDecodesRecords(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"@odata.context":"ctx","value":[`+
			`{"@odata.etag":"W/\"etag1\"","No":"10000","Name":"Adatum Corporation"},`+
			`{"No":"20000","Name":"Trey Research"}]}`)
	})

	records, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "10000", records[0].No)
	assert.Equal(t, `W/"etag1"`, records[0].ETag)
	assert.Equal(t, "Trey Research", records[1].Name)
}

func TestListAbsentValueArray(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"@odata.context":"ctx"}`)
	})

	records, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestGetNotFoundIsError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"value":[]}`)
	})

	// The same empty response that List reports as an empty slice must be
	// an explicit failure for Get.
	records, err := svc.List(context.Background(), "Country_Region_Code eq 'US'")
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = svc.Get(context.Background(), "Country_Region_Code eq 'US'")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Country_Region_Code eq 'US'")
}

func TestGetReturnsFirstMatch(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"value":[{"No":"10000"},{"No":"20000"}]}`)
	})

	rec, err := svc.Get(context.Background(), "City eq 'Atlanta'")
	require.NoError(t, err)
	assert.Equal(t, "10000", rec.No)
}

func TestCreate(t *testing.T) {
	var gotMethod, gotBody string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"@odata.etag":"W/\"new\"","No":"30000","Name":"School of Fine Art"}`)
	})

	created, err := svc.Create(context.Background(), &customer{No: "30000", Name: "School of Fine Art"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.JSONEq(t, `{"No":"30000","Name":"School of Fine Art"}`, gotBody)
	assert.Equal(t, "30000", created.No)
	assert.Equal(t, `W/"new"`, created.ETag)
}

func TestCreateEmptyEchoIsFailure(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	_, err := svc.Create(context.Background(), &customer{No: "30000"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no record to confirm")
}

func TestCreateNonSuccessStatus(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"code":"BadRequest_RequiredFieldMissing","message":"No. must have a value."}}`)
	})

	_, err := svc.Create(context.Background(), &customer{})
	var statusErr *transport.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "No. must have a value.", statusErr.Detail)
}

func TestUpdateSendsIfMatch(t *testing.T) {
	var gotMethod, gotPath, gotIfMatch string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotIfMatch = r.Header.Get("If-Match")
		io.WriteString(w, `{"@odata.etag":"W/\"next\"","No":"10000"}`)
	})

	rec := customer{No: "10000"}
	rec.ETag = `W/"current"`
	updated, err := svc.Update(context.Background(), "'10000'", &rec)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/BC210/ODataV4/Company('CRONUS')/Customer('10000')", gotPath)
	assert.Equal(t, `W/"current"`, gotIfMatch)
	assert.Equal(t, `W/"next"`, updated.ETag)
}

func TestUpdateWithoutTokenOmitsIfMatch(t *testing.T) {
	var sawIfMatch bool
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_, sawIfMatch = r.Header["If-Match"]
		io.WriteString(w, `{"No":"10000"}`)
	})

	_, err := svc.Update(context.Background(), "'10000'", &customer{No: "10000"})
	require.NoError(t, err)
	assert.False(t, sawIfMatch)
}

func TestUpdatePreconditionFailed(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPreconditionFailed)
		io.WriteString(w, `{"error":{"message":"Another user has already changed the record."}}`)
	})

	rec := customer{No: "10000"}
	rec.ETag = `W/"stale"`
	_, err := svc.Update(context.Background(), "'10000'", &rec)
	var statusErr *transport.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusPreconditionFailed, statusErr.StatusCode)
}

func TestDelete(t *testing.T) {
	var gotMethod, gotPath string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	err := svc.Delete(context.Background(), "'10000'")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/BC210/ODataV4/Company('CRONUS')/Customer('10000')", gotPath)
}

func TestDeleteNonSuccess(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":{"message":"The Customer does not exist."}}`)
	})

	err := svc.Delete(context.Background(), "'99999'")
	var statusErr *transport.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "The Customer does not exist.", statusErr.Detail)
}
