package soap

import (
	"context"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/ternsoft/go-dynamics/pkg/endpoint"
	"github.com/ternsoft/go-dynamics/pkg/transport"
)

// Result is the outcome of a codeunit invocation. Invoke always yields a
// Result for responses that came back cleanly; a missing return value marks
// the Result failed instead of raising an error.
type Result struct {
	Success     bool
	Message     string
	ReturnValue string
}

// Codeunit is a client for one codeunit web service.
type Codeunit struct {
	transport *transport.Client
	endpoint  *endpoint.Endpoint
	name      string
	namespace string
}

// NewCodeunit binds a codeunit service by name.
func NewCodeunit(tr *transport.Client, ep *endpoint.Endpoint, name string) *Codeunit {
	return &Codeunit{
		transport: tr,
		endpoint:  ep,
		name:      name,
		namespace: CodeunitNamespace(name),
	}
}

// Invoke calls a codeunit method with the caller-supplied argument fragment
// and returns its outcome. Transport and fault failures surface as errors;
// a response without the expected return_value element yields a failed
// Result with an explanatory message.
func (c *Codeunit) Invoke(ctx context.Context, method, args string) (*Result, error) {
	body, err := RequestBody(method, c.namespace, args)
	if err != nil {
		return nil, err
	}
	env, err := Envelope(body)
	if err != nil {
		return nil, err
	}

	// Codeunit services live under /Codeunit/ where page services live
	// under /Page/.
	url := strings.Replace(c.endpoint.BaseURL()+c.name, "/Page/", "/Codeunit/", 1)

	raw, err := dispatch(ctx, c.transport, url, CodeunitSOAPAction(c.name), env)
	if err != nil {
		return nil, err
	}
	return parseInvocation(raw, method)
}

func parseInvocation(body []byte, method string) (*Result, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", method, err)
	}

	var returnValue *etree.Element
	if wrapper := doc.FindElement("//" + method + "_Result"); wrapper != nil {
		returnValue = wrapper.SelectElement("return_value")
	}
	if returnValue == nil {
		return &Result{
			Success: false,
			Message: fmt.Sprintf("response carries no %s_Result/return_value element", method),
		}, nil
	}
	return &Result{Success: true, ReturnValue: returnValue.Text()}, nil
}
