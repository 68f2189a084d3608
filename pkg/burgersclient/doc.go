// Package burgersclient provides the main entry point for constructing an
// Apitizing Burger API client that implements the burgers.Client interface.
//
// It resolves the server configuration, sets up the HTTP transport and wires
// the resource clients defined in the burgers package. Most applications
// import burgersclient to build a client and then use the returned
// burgers.Client to reach Burger() and Order().
//
// Quick start
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
//
//	  // Defaults: the first entry of burgers.ServerList and a pooled client.
//	  cli, err := burgersclient.New(nil)
//	  if err != nil { log.Fatal(err) }
//
//	  // Or a templated server URL:
//	  cli, err = burgersclient.New(&burgers.Config{
//	    ServerURL: "https://{region}.burgers.example.com",
//	    URLParams: map[string]string{"region": "eu"},
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  menu, err := cli.Burger().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = menu
//	}
//
// # Helpers
//
// NewWithServerURL, NewWithServerIndex and NewWithHTTPClient wrap New with
// the matching configuration.
package burgersclient
