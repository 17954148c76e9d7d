// Package token persists the single opaque token tracy keeps for the front-end.
//
// The token lives in a plain file (tracy.conf) inside the per-user configuration
// directory. [Store.Ensure] creates the directory and an empty file on first run and
// never truncates an existing one. [Store.Save] overwrites the file wholesale and
// [Store.Get] reads it back wholesale; the last writer wins.
//
// The token carries no schema. When the front-end stores a JSON-encoded OAuth2 token,
// [Inspect] can decode it for display on the command line.
package token
