package output

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Verify validates the PDF at path and returns its page count.
func Verify(path string) (int, error) {
	conf := model.NewDefaultConfiguration()
	if err := api.ValidateFile(path, conf); err != nil {
		return 0, &ExternalToolError{Tool: "pdfcpu validate", Err: err}
	}
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, &ExternalToolError{Tool: "pdfcpu pagecount", Err: err}
	}
	return n, nil
}
