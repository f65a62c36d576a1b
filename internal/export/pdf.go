// Package export converts rendered markdown reports into other formats by
// shelling out to external tools.
package export

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"benchtab/internal/logger"
)

// ErrConverterMissing is returned when the external document converter is
// not installed.
var ErrConverterMissing = errors.New("document converter not found")

// Converter drives an external markdown-to-PDF tool such as pandoc.
type Converter struct {
	tool string
	log  *logger.Logger
}

// NewConverter creates a converter using the named external tool.
func NewConverter(tool string, log *logger.Logger) *Converter {
	return &Converter{
		tool: tool,
		log:  log,
	}
}

// MarkdownPath returns the markdown twin of an output path, replacing its
// extension with .md.
func MarkdownPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".md"
}

// ToPDF converts the markdown file at mdPath into pdfPath. The markdown
// file is left in place next to the PDF.
func (c *Converter) ToPDF(mdPath, pdfPath string) error {
	tool, err := exec.LookPath(c.tool)
	if err != nil {
		return fmt.Errorf("%w: %s is not installed, unable to create pdf", ErrConverterMissing, c.tool)
	}

	c.log.Debug("converting report", "tool", tool, "input", mdPath, "output", pdfPath)

	cmd := exec.Command(tool, mdPath, "-o", pdfPath)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w: %s", c.tool, err, strings.TrimSpace(string(output)))
	}

	return nil
}
