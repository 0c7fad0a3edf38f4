package report

import (
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// WriteCSV writes the header and one row per lead as UTF-8 comma-delimited
// text. An empty lead list still produces the header row.
func WriteCSV(path string, leads []model.EnrichedLead) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "report: create csv")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = eris.Wrap(cerr, "report: close csv")
		}
	}()

	w := csv.NewWriter(f)

	if err := w.Write(Columns); err != nil {
		return eris.Wrap(err, "report: write header")
	}

	for _, l := range leads {
		if err := w.Write(Row(l)); err != nil {
			return eris.Wrapf(err, "report: write row %q", l.Name)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "report: flush csv")
	}
	return nil
}
