// Package tycoon provides a client for the Kyoto Tycoon key-value server
// over its HTTP RPC interface.
//
// Requests and responses are tab-separated values. Each column is sent
// Base64 encoded by default; plain and URL encodings can be selected with
// WithEncoding.
//
// Example:
//
//	client, err := tycoon.New(tycoon.WithHost("127.0.0.1"), tycoon.WithPort(1978))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = client.Set(ctx, "foo", "bar")
//	val, ok, err := client.Get(ctx, "foo")
package tycoon
