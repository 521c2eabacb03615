// Package esigclient provides the entry point for constructing an e-signature
// platform client that implements the esig.Client interface.
//
// It normalizes the configuration and wires the HTTP transport and the shape
// registries of the selected API version behind the resource interfaces
// defined in the esig package.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/esig/pkg/esig"
//	  "github.com/fivetwenty-io/esig/pkg/esigclient"
//	)
//
//	func example() {
//	  cli, err := esigclient.NewWithPassword("company.connective.eu", "api-user", "secret")
//	  if err != nil { log.Fatal(err) }
//
//	  pkg, err := cli.Packages().Create(context.Background(), &esig.CreatePackageInput{
//	    Name:      "Contract",
//	    Initiator: "initiator@example.com",
//	    Status:    esig.PackageStatusDraft,
//	  })
//	  if err != nil { log.Fatal(err) }
//	  log.Println(pkg.ID)
//	}
//
// Inputs are checked against their shape before anything is sent: an element
// with both a Marker and a FieldID, a package mixing template and non-template
// fields, or an actor with a RedirectType but no RedirectURL fails with an
// error from the shape package and no request is made.
//
// Set Config.APIVersion to esig.APIVersionV3 for the legacy API. Such a client
// only serves Legacy().
package esigclient
