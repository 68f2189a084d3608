// Package burgers provides types, interfaces, and helpers for working with the
// Apitizing Burger API, a simple API to manage burgers and orders in a
// restaurant.
//
// # Overview
//
// The burgers package defines the domain types (Burger, Order and their
// create/update payloads), the interfaces for the two resource clients
// (BurgerClient, OrderClient) and the Configuration they share. A concrete
// implementation is provided by the burgersclient package, which resolves the
// configuration and wires the resource clients. Most consumers should import
// burgersclient to construct a client and then use the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/burgers/pkg/burgers"
//	  "github.com/fivetwenty-io/burgers/pkg/burgersclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := burgersclient.New(&burgers.Config{
//	    ServerURL: "https://{region}.burgers.example.com",
//	    URLParams: map[string]string{"region": "eu"},
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  all, err := cli.Burger().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = all
//	}
//
// # Servers
//
// Without an explicit ServerURL the client talks to ServerList[ServerIndex].
// An explicit ServerURL always wins. When URLParams is non-nil every {name}
// placeholder in ServerURL is replaced by the mapped value; a placeholder
// without a value is reported as a *TemplateError when the client is built,
// never on the first request. When URLParams is nil the URL is used verbatim.
//
// # Errors
//
// Non-2xx responses are returned as *APIError. IsNotFound and
// IsValidationError cover the two error responses the API documents.
// Configuration problems wrap ErrInvalidConfiguration and request payloads
// rejected before sending wrap ErrInvalidRequest.
package burgers
