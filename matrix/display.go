// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Display writes m to w row-major: one line per row, values separated by a
// single space, each line terminated by '\n'. A row with no columns is an
// empty line.
func (m *Matrix) Display(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, r := range m.rows {
		first := true
		for x := range r.Values() {
			if !first {
				_ = bw.WriteByte(' ')
			}
			_, _ = bw.WriteString(strconv.Itoa(x))
			first = false
		}
		_ = bw.WriteByte('\n')
	}

	// bufio keeps the first write error and reports it here.
	return bw.Flush()
}

// String implements fmt.Stringer using the Display layout.
func (m *Matrix) String() string {
	var sb strings.Builder
	_ = m.Display(&sb) // strings.Builder never fails

	return sb.String()
}
