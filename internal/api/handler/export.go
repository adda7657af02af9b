package handler

import (
	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// exportSeriesXLSX gera uma planilha com uma linha por balde e o total no final
func exportSeriesXLSX(period domain.Period, points []domain.SalesPoint) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Vendas"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	header := []string{"Período", "Rótulo", "Valor"}
	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, v)
	}

	total := 0.0
	for r, point := range points {
		row := r + 2
		amount := money(point.Amount)
		total += amount

		values := []any{string(period), point.Label, amount}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	totalRow := len(points) + 2
	labelCell, _ := excelize.CoordinatesToCellName(2, totalRow)
	totalCell, _ := excelize.CoordinatesToCellName(3, totalRow)
	_ = f.SetCellValue(sheet, labelCell, "Total")
	_ = f.SetCellValue(sheet, totalCell, total)

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 12)
	_ = f.SetColWidth(sheet, "C", "C", 16)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D1FAE5"}, Pattern: 1},
	})
	_ = f.SetCellStyle(sheet, "A1", "C1", style)
	_ = f.SetCellStyle(sheet, labelCell, totalCell, style)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
