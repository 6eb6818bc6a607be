package mortgage

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"mortgage-compare/internal/model"
)

// WriteScheduleCSV writes one row per month.
func WriteScheduleCSV(w io.Writer, rows []model.AmortizationRow) error {
	cw := csv.NewWriter(w)

	header := []string{
		"month",
		"payment",
		"principal",
		"interest",
		"balance",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Month),
			fmtAmount(r.Payment),
			fmtAmount(r.Principal),
			fmtAmount(r.Interest),
			fmtAmount(r.Balance),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteScheduleCSVFile creates path and writes the schedule into it.
func WriteScheduleCSVFile(path string, rows []model.AmortizationRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteScheduleCSV(f, rows)
}

func fmtAmount(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
