// Package mdfmt contains basic markdown reformatting functionality.
//
// Use this package to write CLI help text as markdown and get nicely-rendered terminal output.
package mdfmt
