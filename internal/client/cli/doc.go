// Package cli provides the interactive studentboard terminal client.
//
// It prompts for credentials (the password is read without echo), logs in
// against the dashboard server and then runs a small REPL:
//
//	summary          print the counters
//	page N           show page N
//	next / prev      move one page
//	all              print every page in order
//	logout           end the session and exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
