package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/slidegrid/pkg/document"
)

// readDocument loads a document from path, or from stdin when path is "-".
// A non-empty syntax overrides the one inferred from the file extension.
func readDocument(path, syntax string) ([]byte, document.Syntax, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		if syntax == "" {
			syntax = string(document.SyntaxTOML)
		}
		s, err := document.ParseSyntax(syntax)
		return data, s, err
	}

	if syntax == "" {
		return document.ReadFile(path)
	}
	s, err := document.ParseSyntax(syntax)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	return data, s, nil
}
