package cmd

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/derickschaefer/structuredtext"
	"github.com/derickschaefer/structuredtext/internal/log"
)

// readDocument decodes the document named by fileName; "-" reads stdin.
func readDocument(cmd *cobra.Command, fileName string) (structuredtext.Document, error) {
	var data []byte

	if fileName == "-" {
		var err error
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrap(err, "failed to read from stdin")
		}
	} else {
		f, err := os.Open(fileName)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open file %q", fileName)
		}
		defer f.Close()
		data, err = io.ReadAll(f)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read from file %q", fileName)
		}
	}

	doc, err := structuredtext.DecodeWithOptions(bytes.NewReader(data), structuredtext.ParseOptions{
		Logger: log.Get(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %q", fileName)
	}
	return doc, nil
}

func resolver() structuredtext.LinkResolver {
	return structuredtext.ResolveWith(linkPattern)
}
