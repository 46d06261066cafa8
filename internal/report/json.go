package report

import (
	"encoding/json"
	"io"

	"gym_page_auditor/internal/domain/models"
)

// JSONWriter writes the report pretty-printed with two-space indentation.
type JSONWriter struct {
	baseWriter
}

func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter{output: output}}
}

func (w *JSONWriter) Write(report *models.Report) (int, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return 0, err
	}
	return w.output.Write(append(data, '\n'))
}
