// Package sink writes extracted records to their tabular destination.
// The workbook schema is a contract: sheet names, column names, and
// column order stay fixed even when a record set is empty.
package sink

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dgallion1/taskbook/internal/extract"
)

var (
	taskColumns    = []interface{}{"id_tasks_book", "task", "answer", "classes", "topic_id", "level"}
	authorColumns  = []interface{}{"name", "author", "description", "topic_id", "classes"}
	outlineColumns = []interface{}{"id", "name", "parent"}
)

// WriteWorkbook writes the tasks, author, and table_of_contents sheets
// to an xlsx file at path. The author sheet is schema-only: header
// row, no data rows.
func WriteWorkbook(path string, tasks []extract.TaskRecord, toc []extract.OutlineNode) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), "tasks"); err != nil {
		return fmt.Errorf("rename tasks sheet: %w", err)
	}
	if err := f.SetSheetRow("tasks", "A1", &taskColumns); err != nil {
		return fmt.Errorf("write tasks header: %w", err)
	}
	for i, t := range tasks {
		row := []interface{}{t.ID, t.Task, t.Answer, t.Classes, t.TopicID, t.Level}
		if err := setRow(f, "tasks", i+2, &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet("author"); err != nil {
		return fmt.Errorf("create author sheet: %w", err)
	}
	if err := f.SetSheetRow("author", "A1", &authorColumns); err != nil {
		return fmt.Errorf("write author header: %w", err)
	}

	if _, err := f.NewSheet("table_of_contents"); err != nil {
		return fmt.Errorf("create table_of_contents sheet: %w", err)
	}
	if err := f.SetSheetRow("table_of_contents", "A1", &outlineColumns); err != nil {
		return fmt.Errorf("write table_of_contents header: %w", err)
	}
	for i, n := range toc {
		row := []interface{}{n.ID, n.Name, n.Parent}
		if err := setRow(f, "table_of_contents", i+2, &row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values *[]interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
