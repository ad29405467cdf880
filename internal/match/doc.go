// Package match finds the closest known name for a misspelled one, so
// signature diagnostics can say "did you mean ...".
//
// Key functions:
//   - Normalize: folds an identifier for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the best candidate within a distance budget
package match
