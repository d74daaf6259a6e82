/*
Package odata implements the OData V4 path to Dynamics NAV / Business
Central: plain REST CRUD against the entity sets the server exposes under
.../ODataV4/Company('<company>')/.

A Service binds one entity set to a record type:

	client := odata.NewClient(tr, ep)
	customers := odata.NewService[Customer](client, "Customer")

	all, err := customers.List(ctx, "Country_Region_Code eq 'US'")
	one, err := customers.Get(ctx, "No eq '10000'")
	created, err := customers.Create(ctx, &rec)
	updated, err := customers.Update(ctx, "'10000'", &rec)
	err = customers.Delete(ctx, "'10000'")

List and Get share the same filter handling: all non-empty filter
expressions are joined with " and " and sent URL-encoded as $filter. They
differ on empty results: List returns an empty slice, Get fails with
ErrNotFound.

Updates send the record's concurrency token as an If-Match precondition
when the record carries one (see the record package); the server then
rejects lost updates with 412 Precondition Failed.
*/
package odata
