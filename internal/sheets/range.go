package sheets

import "fmt"

// A1-notation range builders. Sheet names are used as-is; tabs with spaces
// or quotes are not supported by this service's configuration surface.

// ColumnRange returns an open-ended single-column range like "Records!A2:A".
func ColumnRange(sheet, col string, startRow int) string {
	return fmt.Sprintf("%s!%s%d:%s", sheet, col, startRow, col)
}

// TableRange returns an open-ended table range like "Records!A2:K".
func TableRange(sheet, startCol, endCol string, startRow int) string {
	return fmt.Sprintf("%s!%s%d:%s", sheet, startCol, startRow, endCol)
}

// RowRange returns a single-row range like "Records!A5:K5".
func RowRange(sheet, startCol, endCol string, row int) string {
	return fmt.Sprintf("%s!%s%d:%s%d", sheet, startCol, row, endCol, row)
}

// Cell returns a single-cell range like "Records!J5".
func Cell(sheet, col string, row int) string {
	return fmt.Sprintf("%s!%s%d", sheet, col, row)
}
