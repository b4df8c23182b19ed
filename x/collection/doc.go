/*
Package collection implements the token registry of a fixed supply
collection.

Each token is identified by an ID from a dense sequence starting with 1. The
supply cap is set in the genesis and cannot be changed once the chain is
running. This package registers no message handlers. Tokens are created
through the Controller interface by extensions that implement a sale or
another distribution scheme.
*/
package collection
