package outputproviders

import (
	"fmt"
	"io"

	"github.com/haystacksec/kustodian/internal/logs"
	"github.com/haystacksec/kustodian/pkg/types"
)

type MarkdownFileProvider struct {
	OutputPath string
	FileName   string
}

func NewMarkdownFileProvider(outputPath string) types.OutputProvider {
	return &MarkdownFileProvider{
		OutputPath: outputPath,
		FileName:   "",
	}
}

func (fp *MarkdownFileProvider) Write(result types.Result) error {
	// Result.Data needs to be of type MarkdownTable for this provider to work
	table, ok := result.Data.(types.MarkdownTable)
	if !ok {
		return fmt.Errorf("incoming result 'Data' not of type MarkdownTable instead received %T", result.Data)
	}
	var filename string
	if result.Filename == "" {
		filename = fp.DefaultFileName(result.Tool)
	} else {
		filename = result.Filename
	}
	fullpath := GetFullPath(filename, fp.OutputPath)

	err := writeFileAtomic(fullpath, func(w io.Writer) error {
		_, err := io.WriteString(w, table.ToString()+"\n")
		return err
	})
	if err != nil {
		return err
	}

	logs.ConsoleLogger().Info("Markdown table written", "path", fullpath)
	return nil
}

func (fp *MarkdownFileProvider) DefaultFileName(prefix string) string {
	return DefaultFileName(prefix, "md")
}
