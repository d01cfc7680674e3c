// Package common contains shared constants and sentinel errors used across
// portfolio API components.
package common

// AuthorizationHeaderName is the HTTP header that carries the access token
// on inbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the authorization scheme expected in the header value.
// Matching is case-insensitive on input.
const BearerScheme = "Bearer"
