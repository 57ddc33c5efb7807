// Package sheet reads school exports into raw tables and writes
// reconciliation results back out as workbooks.
//
// Supported inputs are Excel workbooks (.xlsx, .xlsm, .xltx; first sheet
// only) and delimited text (.csv, .tsv). The first row is the header.
package sheet
