// Package middleware provides HTTP middleware for the relay server:
// request ID generation, structured request logging, and panic recovery.
//
// Middleware is applied outermost-to-innermost as recovery, request ID,
// then logging, so every logged request carries an ID and panics are
// caught around the whole chain.
package middleware
