package report

import (
	"fmt"
	"io"
	"time"

	"github.com/alvmarrod/webcloud/internal/crawler"
)

// PrintResults writes one line per crawled page followed by a summary line
func PrintResults(w io.Writer, rs *crawler.ResultSet, elapsed time.Duration) {
	writef := func(format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }

	for _, r := range rs.Results() {
		writef("%s: %s\n", r.URL, r.Table)
	}
	writef("Crawled %d urls in %.3f seconds\n", rs.Len(), elapsed.Seconds())
}
