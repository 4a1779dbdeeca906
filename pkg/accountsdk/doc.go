// Package accountsdk is a Go client for the passport account service.
//
// The package also owns the wire types shared by the server and the client,
// so request and response shapes cannot drift between the two.
//
// Unauthenticated calls live on SDKClient:
//
//	client := accountsdk.NewSDKClient("http://localhost:8090")
//	err := client.Register(ctx, accountsdk.RegisterRequest{
//		Name: "Ada", Email: "ada@example.com", Password: "secret1",
//	})
//	session, err := client.Login(ctx, "ada@example.com", "secret1")
//
// A Session carries the bearer token returned by login and exposes the
// account operations:
//
//	_ = session.AddFavorite(ctx, "AUS")
//	favs, _ := session.Favorites(ctx)
//
// Failures returned by the service are *APIError values and can be matched
// with errors.Is against the predefined errors in this package:
//
//	if errors.Is(err, accountsdk.ErrFavoriteExists) { ... }
//
// Sessions do not refresh. Once the token expires every call returns
// ErrUnauthorized and the caller must log in again.
package accountsdk
