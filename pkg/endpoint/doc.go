/*
Package endpoint describes a Dynamics NAV / Business Central service endpoint.

An Endpoint captures everything needed to address one server instance: host,
port, server instance name, company, the protocol to speak (OData V4 or SOAP),
the SOAP object type (Page or Codeunit) and the credentials to present.

The endpoint is constructed once and treated as immutable; every client in
this library derives its request URLs from BaseURL:

	ep := &endpoint.Endpoint{
	    Host:     "bc.example.com",
	    Port:     7047,
	    Instance: "BC210",
	    Company:  "CRONUS International Ltd.",
	    Protocol: endpoint.SOAP,
	    UseTLS:   true,
	}
	base := ep.BaseURL()
	// https://bc.example.com:7047/BC210/WS/CRONUS%20International%20Ltd./Page/

Base address conventions follow the NAV web-service layout:

	OData V4: {host}:{port}/{instance}/ODataV4/Company('{company}')/
	SOAP:     {host}:{port}/{instance}/WS/{company}/{Page|Codeunit}/
*/
package endpoint
