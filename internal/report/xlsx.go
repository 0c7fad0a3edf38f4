package report

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// SheetName is the worksheet that holds the leads in XLSX reports.
const SheetName = "Leads"

// WriteXLSX writes the same columns as WriteCSV to a single worksheet.
func WriteXLSX(path string, leads []model.EnrichedLead) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(SheetName)
	if err != nil {
		return eris.Wrap(err, "report: add sheet")
	}

	addRow(sheet, Columns)
	for _, l := range leads {
		addRow(sheet, Row(l))
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "report: save xlsx")
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, cells []string) {
	row := sheet.AddRow()
	for _, v := range cells {
		row.AddCell().SetString(v)
	}
}
