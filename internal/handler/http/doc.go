// Package http implements the page-oriented HTTP surface of the deck
// builder.
//
// Every page handler either answers with the JSON view model a template
// layer would render or redirects. Requests pass through recovery, trace
// id, access logging, compression, timeout and session loading middleware
// before they reach a handler. Workflow failures funnel into a single
// boundary that logs the error kind and redirects to the error page.
package http
