package export

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"study-planner-be/pkg/store"
)

const xlsxSheet = "Schedule"

// XLSX renders the schedule as a spreadsheet with the same columns as the
// CSV export.
func XLSX(schedule *store.Schedule) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := []interface{}{"Date", "Day", "Start", "End", "Subject", "Topic", "Minutes"}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return nil, err
	}

	row := 2
	for _, day := range schedule.Days {
		for _, s := range day.Sessions {
			minutes := int(math.Round(s.DurationHours * 60))
			cells := []interface{}{
				day.Date, day.DayOfWeek, s.StartTime, endTime(s.StartTime, minutes),
				s.Subject, s.Title, minutes,
			}
			cell := fmt.Sprintf("A%d", row)
			if err := f.SetSheetRow(xlsxSheet, cell, &cells); err != nil {
				return nil, err
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
