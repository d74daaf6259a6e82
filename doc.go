/*
Package godynamics is a client library for Microsoft Dynamics NAV and
Business Central web services.

# Overview

go-dynamics translates typed CRUD calls and codeunit invocations into wire
requests against a NAV/BC instance and parses the typed responses back. Two
parallel transports are supported: OData V4 (JSON over REST) and the classic
SOAP web services (XML over HTTP). The library issues exactly one request
per call: no retries, no caching, no connection management beyond the
standard library's HTTP client pooling.

# Package Structure

	github.com/ternsoft/go-dynamics/pkg/endpoint  - Endpoint descriptor and base-address derivation
	github.com/ternsoft/go-dynamics/pkg/record    - Shared record base shape and concurrency token
	github.com/ternsoft/go-dynamics/pkg/transport - HTTP dispatch, credentials, correlation ids
	github.com/ternsoft/go-dynamics/pkg/soap      - SOAP envelopes, faults, and the NAV result grammar
	github.com/ternsoft/go-dynamics/pkg/odata     - OData V4 CRUD client

# Quick Start

Describe the endpoint, create a transport, then bind services to record
types:

	ep := &endpoint.Endpoint{
	    Host:     "bc.example.com",
	    Port:     7047,
	    Instance: "BC210",
	    Company:  "CRONUS",
	    Protocol: endpoint.SOAP,
	    Credentials: endpoint.Credentials{
	        Kind:     endpoint.AuthBasic,
	        Username: "svc-integration",
	        Password: os.Getenv("BC_PASSWORD"),
	    },
	}

	tr := transport.NewClient(transport.DefaultConfig(), ep.Credentials)
	customers := soap.NewService[Customer](tr, ep, "Customer")
	list, err := customers.ReadMultiple(ctx, "", 0)

See examples/basic for a complete program.
*/
package godynamics
