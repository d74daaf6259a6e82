/*
Package soap implements the SOAP web-service path to Dynamics NAV / Business
Central: envelope construction, request dispatch with page and codeunit
addressing, fault detection, and parsing of the NAV result grammar.

# Services

A Service binds one page web service to a record type and exposes the five
page verbs:

	customers := soap.NewService[Customer](tr, ep, "Customer")
	list, err := customers.ReadMultiple(ctx, `<filter><Field>No</Field><Criteria>1*</Criteria></filter>`, 0)
	one, err := customers.Read(ctx, `<No>10000</No>`)
	created, err := customers.Create(ctx, &rec)
	updated, err := customers.Update(ctx, &rec)
	ok, err := customers.Delete(ctx, rec.Key)

Filter and key arguments are raw XML fragments; the library wraps them
structurally but neither validates nor sanitizes them.

A Codeunit invokes a server-side procedure and always yields a Result, even
when the response carries no return value:

	cu := soap.NewCodeunit(tr, ep, "SalesOrderMgt")
	res, err := cu.Invoke(ctx, "PostOrder", "<orderNo>104001</orderNo>")

# Result grammar

Every NAV response nests its payload inside a <Verb>_Result wrapper: a list
read carries an inner ReadMultiple_Result with repeated entity elements, a
single read/create/update carries one entity-named element, a delete is
acknowledged by the bare presence of Delete_Result, and a codeunit call
carries a return_value element. Missing list wrappers parse to an empty
slice; a missing codeunit return value yields a failed Result rather than
an error.

# Faults

A non-success status fails with the status code and any fault text found in
the body. A success status whose body still contains <faultcode> or <Fault>
markers fails as a FaultError carrying the extracted faultstring or detail
text.
*/
package soap
