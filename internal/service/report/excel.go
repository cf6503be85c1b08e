package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/villacare/timekeeper-backend-go/internal/domain/report"
)

var reportColumns = []string{
	"Employee ID", "Name", "Worked (h)", "Night (h)",
	"OT Diurnal (h)", "OT Nocturnal (h)", "OT Paid (h)",
	"Absences", "Paid Leave", "Unpaid Leave", "Days Worked", "Errors",
}

// BuildWorkbook renders one sheet per report with a header row, one row per
// employee and a totals row at the bottom.
func BuildWorkbook(rep report.MonthlyReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("%04d-%02d", rep.PeriodYear, rep.PeriodMonth)
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 38)
	f.SetColWidth(sheet, "B", "B", 26)
	f.SetColWidth(sheet, "C", "L", 13)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, col := range reportColumns {
		name, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, name, col)
	}
	last, _ := excelize.CoordinatesToCellName(len(reportColumns), 1)
	f.SetCellStyle(sheet, "A1", last, headerStyle)

	var totalWorked, totalNight, totalOTPaid float64
	row := 2
	for _, emp := range rep.Employees {
		if emp.Error != nil {
			f.SetCellValue(sheet, cell(1, row), emp.EmployeeID)
			f.SetCellValue(sheet, cell(2, row), emp.FullName)
			f.SetCellValue(sheet, cell(12, row), *emp.Error)
			row++
			continue
		}

		values := []interface{}{
			emp.EmployeeID, emp.FullName,
			emp.WorkedHours, emp.NightHours,
			emp.OvertimeDiurnalHours, emp.OvertimeNocturnalHours, emp.OvertimePaidHours,
			emp.Absences, emp.PaidLeaveDays, emp.UnpaidLeaveDays, emp.DaysWorked, emp.DayErrorCount,
		}
		for i, v := range values {
			f.SetCellValue(sheet, cell(i+1, row), v)
		}

		totalWorked += emp.WorkedHours
		totalNight += emp.NightHours
		totalOTPaid += emp.OvertimePaidHours
		row++
	}

	f.SetCellValue(sheet, cell(2, row), "Total")
	f.SetCellValue(sheet, cell(3, row), totalWorked)
	f.SetCellValue(sheet, cell(4, row), totalNight)
	f.SetCellValue(sheet, cell(7, row), totalOTPaid)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
