// Package diagnostic collects structured errors and warnings found while
// validating signature files, each tied to the signature and argument it
// concerns and optionally carrying suggested fixes.
package diagnostic
