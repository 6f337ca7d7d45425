package outputproviders

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/haystacksec/kustodian/internal/message"
	"github.com/haystacksec/kustodian/pkg/types"
)

type JsonFileProvider struct {
	OutputPath string
	FileName   string
}

func NewJsonFileProvider(outputPath string) types.OutputProvider {
	return &JsonFileProvider{
		OutputPath: outputPath,
		FileName:   "",
	}
}

func (fp *JsonFileProvider) Write(result types.Result) error {
	var filename string

	if _, ok := result.Data.(types.MarkdownTable); ok {
		// Skip if not the correct type
		slog.Info("JSON provider is skipping markdown table output")
		return nil
	}

	if result.Filename == "" {
		filename = fp.DefaultFileName(result.Tool)
	} else {
		filename = result.Filename
	}
	fullpath := GetFullPath(filename, fp.OutputPath)

	err := writeFileAtomic(fullpath, func(w io.Writer) error {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result.Data)
	})
	if err != nil {
		return err
	}

	message.Success("Output written to %s", fullpath)

	return nil
}

func (fp *JsonFileProvider) DefaultFileName(prefix string) string {
	return DefaultFileName(prefix, "json")
}
