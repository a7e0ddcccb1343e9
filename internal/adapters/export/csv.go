// Package export renders query results as a delimited text table for
// download. It is a pure formatting layer over the query engine's
// output and holds no roster state.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	model "github.com/okian/talentpulse/internal/domain/model"
)

// defaultTagSeparator joins a record's tags into one CSV cell.
const defaultTagSeparator = ";"

// header is the fixed column layout.
var header = []string{"Name", "Email", "Role", "Submitted", "Submission Date", "Tags"} //nolint:gochecknoglobals // fixed column layout

// Exporter renders CSV documents.
type Exporter struct {
	tagSeparator string
}

// Option applies a configuration option to the Exporter.
type Option func(*Exporter)

// WithTagSeparator sets the separator used to join tags.
func WithTagSeparator(sep string) Option {
	return func(e *Exporter) {
		if sep != "" {
			e.tagSeparator = sep
		}
	}
}

// New creates an Exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{tagSeparator: defaultTagSeparator}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CSV renders the records in the order given. Fields containing the
// delimiter or a quote are quoted with embedded quotes doubled, per
// RFC 4180.
func (e *Exporter) CSV(records []model.Employee) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Name,
			rec.Email,
			rec.Role,
			submittedCell(rec.AssessmentSubmitted),
			rec.SubmissionDate,
			strings.Join(rec.Tags, e.tagSeparator),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	return buf.Bytes(), nil
}

func submittedCell(submitted bool) string {
	if submitted {
		return "Yes"
	}
	return "No"
}
