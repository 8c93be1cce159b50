package protocol

import (
	"fmt"
	"strings"
)

// Tabs separate columns, so they are never trimmed from a body or a line.
const blankCutset = " \r\n\v\f"

// Table is the row/column shape of a TSV payload. Rows may differ in length.
type Table [][]string

// Serialize encodes every column with enc, joins columns with tabs and rows
// with line feeds.
func Serialize(rows Table, enc Encoding) string {
	var sb strings.Builder

	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, col := range row {
			if j > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(enc.encodeColumn(col))
		}
	}

	return sb.String()
}

// Deserialize decodes a TSV body whose column encoding is named by
// contentType.
//
// Surrounding blanks are trimmed from the body and CRLF line endings are
// treated as LF. Reading stops at the first blank line.
func Deserialize(contentType, body string) (Table, error) {
	enc, err := ResolveEncoding(contentType)
	if err != nil {
		return nil, err
	}

	body = strings.ReplaceAll(strings.Trim(body, blankCutset), "\r\n", "\n")
	rows := Table{}
	if body == "" {
		return rows, nil
	}

	for i, line := range strings.Split(body, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.Trim(line, blankCutset) == "" {
			break
		}

		cols := strings.Split(line, "\t")
		row := make([]string, len(cols))
		for j, col := range cols {
			v, err := enc.decodeColumn(col)
			if err != nil {
				return nil, fmt.Errorf("decode row %d column %d: %w", i, j, err)
			}
			row[j] = v
		}

		rows = append(rows, row)
	}

	return rows, nil
}
