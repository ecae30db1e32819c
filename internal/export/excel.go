// Package export builds xlsx booking reports for the dashboard.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"stayline/internal/models"
)

var reportColumns = []string{
	"ID", "Guest", "Check-in", "Check-out", "Nights",
	"Room type", "Room", "Adults", "Children", "Total", "Status",
}

// WriteBookingsReport writes a single-sheet workbook with one row per
// booking.
func WriteBookingsReport(w io.Writer, hotelID string, bookings []models.BookingRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Bookings"
	if len(hotelID) > 0 {
		sheet = fmt.Sprintf("Bookings %s", hotelID)
		// Excel caps sheet names at 31 chars.
		if len(sheet) > 31 {
			sheet = sheet[:31]
		}
	}
	f.SetSheetName("Sheet1", sheet)

	if err := writeHeader(f, sheet); err != nil {
		return err
	}

	for i, b := range bookings {
		row := []any{
			b.ID, b.GuestName,
			b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"),
			b.Nights(), b.RoomType, b.RoomNumber,
			b.Adults, b.Children, b.TotalAmount, b.Status,
		}
		for col, val := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func writeHeader(f *excelize.File, sheet string) error {
	for i, col := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(reportColumns), 1)
		_ = f.SetCellStyle(sheet, "A1", endCell, style)
	}
	return nil
}
