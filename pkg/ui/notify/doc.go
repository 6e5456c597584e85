// Package notify writes styled one-line notifications for docdiff users.
//
// Message types include success (✔), error (✗), warning (⚠), info (ℹ),
// activity (►) and plain lines without a symbol.
package notify
