// Package ui implements the console shown when tracy runs as a server only.
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern. It polls the
// server's request counters on a short tick and listens for the server stopping, so the console
// always reflects whether the front-end can still reach the token endpoints.
//
// Any of q, enter or ctrl+c quits, which stops the server with it.
package ui
