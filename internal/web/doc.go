// Package web serves tracy's front-end and its two token endpoints.
//
// # Routes
//
//	/, /app.html → app.html
//	/theme.css   → theme.css
//	/app.js      → app.js
//	/keys.js     → keys.js
//	/windows     → windows.html
//	/getToken    → stored token, or "failed"
//	/saveToken   → store request body, answer "saved" or "failed"
//	anything else → 404 "No resource found"
//
// Paths match exactly; query strings are ignored.
//
// # Assets
//
// [Embedded] serves the copy compiled into the binary. [Dir] reads the files live from a
// development folder on every request, so edits show up on reload. A file missing from the
// folder yields a 500 whose body names the I/O error.
//
// # Token endpoints
//
// Errors never leave the handler: any failure to read or write the token collapses to the
// "failed" sentinel with a 200 status, the same answer the front-end already handles.
package web
