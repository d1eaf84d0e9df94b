// Package mpapi provides types, interfaces, and helpers for working with the
// marketplace platform's Data API and Search API.
//
// # Overview
//
// The mpapi package defines the domain types (e.g., Service, Supplier, User,
// Brief) and the interfaces for resource-oriented clients (e.g.,
// ServicesClient, SuppliersClient). Concrete implementations are provided by
// the mpclient package, which wires configuration, transport, and
// authentication. Most consumers should import mpclient to construct a client
// and then interact with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fairground-io/mpapi/pkg/mpapi"
//	  "github.com/fairground-io/mpapi/pkg/mpclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := mpclient.New(&mpapi.Config{
//	    APIEndpoint: "https://api.example.com",
//	    AccessToken: "auth-token",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Fetch one service
//	  svc, err := cli.Services().Get(ctx, "1234567890123456")
//	  if err != nil { log.Fatal(err) }
//	  _ = svc
//	}
//
// # Queries and pagination
//
// Use QueryParams for list options (page and resource filters). Collection
// endpoints return pages whose items sit under a resource-specific key, with
// an optional links object carrying the next-page URL. PageIterator flattens
// the linked pages into one lazy sequence:
//
//	it := mpapi.NewPageIterator(ctx, cli.Services(), "/services", nil)
//	for it.HasNext() {
//	  svc, err := it.Next()
//	  if err != nil { break }
//	  _ = svc
//	}
//
// or fetch everything at once:
//
//	all, err := mpapi.FetchAllPages(ctx, cli.Services(), "/services", nil, nil)
//	if err != nil { /* handle error */ }
//	_ = all
//
// # Errors
//
// Every failure is an *APIError tagged with an ErrorKind: a generic non-2xx
// response, a 404, a 400 with field errors, or a transport failure with no
// status code. Helpers such as IsNotFound and IsRequestFailed make it easy to
// branch on the common cases:
//
//	svc, err := cli.Services().Get(ctx, id)
//	if mpapi.IsNotFound(err) {
//	  // absent resource, often non-fatal
//	}
package mpapi
