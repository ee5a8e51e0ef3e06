// SPDX-License-Identifier: MIT

// Package request is the file and batch boundary of seqmem.
//
// A Request names one recognition run: the sequence (inline text or a
// synthetic draw) plus optional overrides of the memory.Options defaults.
// Requests are read from YAML or JSON files, selected by glob patterns,
// and executed one at a time (Execute) or on a bounded worker pool
// (ExecuteAll) that preserves input order.
package request
