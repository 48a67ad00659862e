// Package safety implements the configurable static/dynamic checks layered
// over the result and sema packages: parser delimiter-balance validation,
// pattern-match exhaustiveness/redundancy detection, and structural
// type-identity verification of result.Any values and slice headers.
//
// A process-wide Config, built with functional options the way
// eventloop.LoopOption builds loopOptions, gates each check independently;
// when a check is off, it reports "valid" trivially rather than skipping
// work with a different code path. Violations flow through a Sink that
// throttles repeats with a catrate.Limiter and batches deliveries to the
// registered report callback with a microbatch.Batcher, so a tight loop
// re-triggering the same static check does not flood the sink.
package safety
