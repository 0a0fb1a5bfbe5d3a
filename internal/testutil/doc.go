// Package testutil contains helper handlers used across tests to reduce
// boilerplate when registering branches and asserting which branch ran.
// These helpers are intentionally minimal. They are not intended for
// production usage.
package testutil
