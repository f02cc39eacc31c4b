// Package client provides the Kuverta Go SDK for authenticating against the
// Kuverta sender API and managing tenants, recipients and content delivery.
//
// A Client authenticates with the OAuth2 client-credentials flow and caches
// the resulting token in a tokenstore.Store, keyed by the configured storage
// name. Authentication is lazy: the first operation (or an explicit
// EnsureAuthenticated) fetches a token, and subsequent operations reuse it
// until it expires or the base URL changes.
//
//	c, err := client.New(client.Config{
//	    ClientID:     "id",
//	    ClientSecret: "secret",
//	})
//	if err != nil {
//	    ...
//	}
//	tenants, err := c.ListTenants(ctx, "")
//
// Every operation checks the granted scopes before dispatching and returns a
// *ScopeError when the token does not cover the call.
package client
