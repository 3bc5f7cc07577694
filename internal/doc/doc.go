// Package doc defines the contract between the viewer core and the
// document backend: opening and saving documents, page geometry, text
// extraction, outline extraction, and annotation creation.
//
// The core never talks to a concrete PDF library directly. It consumes
// the Backend interface, which a backend package implements for the
// libraries it actually supports. Backends may be partial: operations a
// backend cannot perform return ErrUnsupported and the core degrades
// (a page renders blank, a command no-ops with a log line).
package doc
