package tour

import (
	"context"
	"strings"

	"github.com/domonda/go-types/charset"
	fs "github.com/ungerik/go-fs"
)

// LoadScript reads a CQL statement script from a file
// and returns its statements in order.
//
// The file content may start with a UTF-8 byte order mark,
// which is trimmed before parsing.
func LoadScript(ctx context.Context, file fs.File) ([]string, error) {
	data, err := file.ReadAllContext(ctx)
	if err != nil {
		return nil, err
	}
	data = charset.TrimBOM(data, charset.BOMUTF8)
	return SplitStatements(string(data)), nil
}

// SplitStatements splits script text into single CQL statements.
// Line comments starting with -- are dropped, statements are
// separated by semicolons, and empty statements are skipped.
//
// Semicolons inside string literals are not supported, the
// scripts this tour ships don't need them.
func SplitStatements(script string) []string {
	var b strings.Builder
	for _, line := range strings.Split(script, "\n") {
		if i := strings.Index(line, "--"); i >= 0 {
			line = line[:i]
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	var statements []string
	for _, stmt := range strings.Split(b.String(), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}
