package outputproviders

import (
	"io"

	"github.com/haystacksec/kustodian/internal/message"
	"github.com/haystacksec/kustodian/pkg/types"
)

type PlainFileProvider struct {
	OutputPath string
	FileName   string
}

func NewPlainFileProvider(outputPath, fileName string) types.OutputProvider {
	return &PlainFileProvider{
		OutputPath: outputPath,
		FileName:   fileName,
	}
}

func (fp *PlainFileProvider) Write(result types.Result) error {
	filename := fp.FileName
	if filename == "" {
		filename = result.Filename
	}
	if filename == "" {
		filename = fp.DefaultFileName(result.Tool)
	}
	fullpath := GetFullPath(filename, fp.OutputPath)

	err := writeFileAtomic(fullpath, func(w io.Writer) error {
		_, err := io.WriteString(w, result.String())
		return err
	})
	if err != nil {
		return err
	}

	message.Success("Output written to %s", fullpath)

	return nil
}

func (fp *PlainFileProvider) DefaultFileName(prefix string) string {
	return DefaultFileName(prefix, "txt")
}
