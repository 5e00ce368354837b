// Package dataset reads tabular files into a domain.Dataset and writes
// annotated datasets back out as CSV.
//
// Readers are chosen by file extension: .csv (encoding/csv), .xlsx
// (excelize) and .xls (extrame/xls). Output is always CSV with a header row
// and no index column, written next to the source file under a name that
// never overwrites an existing file.
package dataset
