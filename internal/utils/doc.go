// Package utils provides general-purpose helpers shared by the deck builder
// packages: password hashing, JSON responses and redirects, the outbound
// HTTP client and id generation.
package utils
