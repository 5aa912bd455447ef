// Package cli implements the interactive BirthdayBook terminal client.
//
// The CLI is a thin presentation collaborator: it prompts for input,
// validates client forms before handing them to the store (the store itself
// trusts its callers), and renders the store's derived queries. All state
// changes go through the auth service and the store; the CLI holds no data
// of its own beyond the logged-in user.
package cli
