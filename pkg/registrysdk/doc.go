// Package registrysdk is a Go client for the client-registry admin API.
// It mirrors the HTTP surface one-to-one: list, get, create, update and
// delete client records, plus the health endpoints. The server side reuses
// the request/response types defined here so the wire format has a single
// source of truth.
package registrysdk
