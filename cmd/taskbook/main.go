// Package main is the entry point for the taskbook CLI: it reads a
// taskbook document, extracts tasks, answers, and the table of
// contents, and writes them to an Excel workbook.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dgallion1/taskbook/internal/config"
	"github.com/dgallion1/taskbook/internal/extract"
	"github.com/dgallion1/taskbook/internal/sink"
	"github.com/dgallion1/taskbook/internal/source"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "taskbook <документ>",
	Short: "Парсинг документа с задачами в Excel таблицу",
	Long: `taskbook извлекает пронумерованные задачи, их варианты, ответы и
оглавление из документа (.docx) и сохраняет их в Excel таблицу.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		runExtract(args[0])
	},
}

// runExtract performs the whole extraction. Expected input problems
// (missing file, wrong format) and unexpected failures alike produce a
// one-line message and a normal exit; this is an end-user tool, not a
// pipeline stage.
func runExtract(path string) {
	cfg := config.Load()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Ошибка: Файл %s не существует!\n", path)
		return
	}
	if !source.IsSupportedExtension(path) {
		fmt.Printf("Ошибка: Файл %s должен быть в формате .docx!\n", path)
		return
	}

	tasks, toc, err := extractFile(path, cfg)
	if err != nil {
		fmt.Printf("Непредвиденная ошибка при обработке файла: %v\n", err)
		return
	}

	if err := sink.WriteWorkbook(cfg.OutputPath, tasks, toc); err != nil {
		fmt.Printf("Непредвиденная ошибка при обработке файла: %v\n", err)
		return
	}

	fmt.Printf("Извлечено %d задач(и) и %d пунктов оглавления, сохранено в %s\n",
		len(tasks), len(toc), cfg.OutputPath)
}

func extractFile(path string, cfg config.Config) ([]extract.TaskRecord, []extract.OutlineNode, error) {
	src, err := source.ForFile(path)
	if err != nil {
		return nil, nil, err
	}
	if p, ok := src.(*source.PDFSource); ok {
		p.FallbackPdftotext = cfg.PDFFallbackPdftotext
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	lines, err := src.Lines(f, filepath.Base(path))
	if err != nil {
		return nil, nil, err
	}

	return extract.Tasks(lines), extract.Outline(lines), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
