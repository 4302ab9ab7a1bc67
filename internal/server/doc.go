// Package server runs the deck builder's HTTP listener until a stop signal
// arrives and then shuts it down gracefully.
package server
