// Package newsletter implements issue publication: loading the confirmed
// subscriber set and sending the issue to each address sequentially.
// Rows with unparseable stored emails are skipped with a warning; a
// delivery failure stops the batch.
package newsletter
