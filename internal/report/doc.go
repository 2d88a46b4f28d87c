// Package report converts a YouTube "traffic sources" CSV export into a
// static JavaScript data module for the dashboard front end.
//
// # Pipeline
//
// A conversion is a single synchronous pass:
//
//  1. [Load] reads the file and rejects missing or blank input
//  2. [SniffDelimiter] guesses the separator from the first [SniffSampleSize] bytes
//  3. [Decode] drops a UTF-8 BOM and replaces invalid sequences
//  4. [Parse] splits the text into a header and raw records
//  5. [NormalizeHeaders] and [NormalizeRows] trim names and values and drop blank rows
//  6. [MissingColumns] reports required columns the file lacks (a warning only)
//  7. [Coerce] turns each row into an [OutputRecord]
//  8. [WriteFile] renders the module with [WriteModule]
//
// [Converter] wires the steps together and logs diagnostics.
//
// # Numeric fallback
//
// Absent and empty numeric cells count as zero. A cell that holds text which
// is not a finite number makes the whole record fall back: every numeric field
// of that record is written as zero. Downstream charts rely on this being
// all-or-nothing per row.
package report
