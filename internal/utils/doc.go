// Package utils provides small helpers shared by the memo client packages:
// the resty-based HTTP client wrapper and the request ID generator.
package utils
