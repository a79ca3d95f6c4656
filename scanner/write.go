// SPDX-License-Identifier: MIT

package scanner

import (
	"bufio"
	"fmt"
	"io"
)

// Write renders scanners in the format Parse reads, blocks separated by a
// blank line.
func Write(w io.Writer, scanners []Scanner) error {
	bw := bufio.NewWriter(w)
	for i, s := range scanners {
		if i > 0 {
			if _, err := bw.WriteString("\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "%s%d%s\n", headerPrefix, s.ID, headerSuffix); err != nil {
			return err
		}
		for _, p := range s.Beacons {
			if _, err := fmt.Fprintln(bw, p.String()); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
