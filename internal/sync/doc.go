// Package sync transfers unsynced records to the configured collector
// endpoint in a single batch.
//
// The collector is a Google Apps Script web app that appends every posted
// record to a spreadsheet. The contract is deliberately loose: the batch is
// JSON in a text/plain body (Apps Script web apps reject preflighted
// requests), and a transfer counts as delivered as soon as the transport
// completes, whatever the response status or body says. The endpoint
// appends rather than deduplicates, so re-sending a batch after a failed
// transfer is harmless.
package sync
