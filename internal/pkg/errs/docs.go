// Package errs provides the typed errors shared across sensorcoverage.
//
// Every error kind follows the same shape:
//   - a sentinel (e.g. ErrLineIsMalformed) usable with errors.Is
//   - a struct carrying the details
//   - constructors with and without a cause
//   - Error() for the message and Unwrap() returning the sentinel
//
// The kinds map onto the failures the tool can report:
//   - ValueIsRequiredError: a missing argument or an unconstructed value
//   - ValueIsInvalidError: a value that cannot be interpreted (e.g. a non-integer row)
//   - ValueIsOutOfRangeError: a value outside its allowed bounds
//   - ObjectNotFoundError: a report file that does not exist
//   - SourceIsUnreadableError: a report source that exists but cannot be read
//   - LineIsMalformedError: a report line that does not match the sensor format
package errs
