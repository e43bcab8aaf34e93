// Package graph provides types, interfaces, and helpers for working with the
// social graph HTTP API.
//
// # Overview
//
// The graph package defines the Client interface, the request Options
// mapping, the normalized response values (Object, Array, Key), and the error
// taxonomy returned by every operation. A concrete implementation is provided
// by the hypergraph package, which wires configuration, transport, and TLS
// policy. Most consumers should import hypergraph to construct a client and
// then use the Client interface exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/hypergraph/pkg/graph"
//	  "github.com/fivetwenty-io/hypergraph/pkg/hypergraph"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := hypergraph.NewWithToken("user-access-token")
//	  if err != nil { log.Fatal(err) }
//
//	  me, err := cli.Fetch(ctx, "me", graph.Options{"fields": "id,name"})
//	  if err != nil { log.Fatal(err) }
//	  _ = me
//	}
//
// # Normalized responses
//
// Every JSON response is normalized before it is returned:
//
//   - object keys become Key values inside an Object
//   - a string "id" holding a decimal integer becomes an int64
//   - keys ending in "_time" become time.Time values
//   - objects carrying a "data" key are replaced by the value under it
//   - an "error" key anywhere in the payload aborts with *Error
//
// # Errors
//
// Operations return *Error when the server reports an application failure,
// *TransportError when the request could not be completed, *ParseError when the
// body could not be decoded, and *StatusError for non-2xx responses when
// Config.StrictStatus is enabled.
//
//	_, err := cli.Fetch(ctx, "me", nil)
//	if graph.IsOAuthError(err) {
//	  // token expired or revoked
//	}
package graph
