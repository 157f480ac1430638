// Package pocket is a thin client for the Pocket v3 API. A Connection signs
// every request body with the consumer key and access token and hands back
// the raw response envelope; interpreting status codes and decoding bodies is
// left to the caller.
package pocket
