// Package httputil provides shared HTTP plumbing for the vpic library:
// retry with exponential backoff and the retryable-error marker used to
// classify transient transport failures.
//
// Retry policy lives entirely in this package so the mapping core stays
// free of transport concerns; the core treats any transport failure as
// opaque and propagates it.
package httputil
