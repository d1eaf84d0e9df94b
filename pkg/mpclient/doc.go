// Package mpclient constructs clients for the marketplace platform APIs.
//
// New builds a Data API client and NewSearch a Search API client; both take
// the same mpapi.Config. The endpoint is normalized (https assumed, trailing
// slash trimmed) and the bearer token is attached to every request. Tokens
// are issued out of band; the client never fetches or refreshes them.
//
//	cli, err := mpclient.New(&mpapi.Config{
//	  APIEndpoint: "api.example.com",
//	  AccessToken: "auth-token",
//	  UpdatedBy:   "ops@example.com",
//	})
//
// Searching:
//
//	search, err := mpclient.NewSearch(&mpapi.Config{
//	  APIEndpoint: "search-api.example.com",
//	  AccessToken: "search-token",
//	})
package mpclient
