// Package workspace rewrites the environment variables of the run
// configurations stored in an IDE workspace.xml file.
//
// The patching algorithm only sees the Tree and Node interfaces; the
// XML library behind them is an implementation detail of this package.
package workspace
