package payroll

import (
	"context"

	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const registerSheet = "Register"

var registerHeader = []any{
	"Employee No.", "Employee", "Basic Salary", "Overtime Minutes", "Overtime Pay",
	"Benefits", "Gross Income", "SSS", "PhilHealth", "Pag-IBIG",
	"Withholding Tax", "Total Deduction", "Net Salary",
}

// ExportRegister renders every payroll of the period as one spreadsheet row
// followed by a totals row.
func (s *service) ExportRegister(ctx context.Context, payPeriodID string) ([]byte, error) {
	if _, err := s.loadPeriod(ctx, payPeriodID); err != nil {
		return nil, err
	}
	payrolls, err := s.repo.ListByPeriod(ctx, payPeriodID)
	if err != nil {
		return nil, err
	}
	if len(payrolls) == 0 {
		return nil, payrollerrors.ErrNoPayrollsForPeriod
	}

	out, err := buildRegister(payrolls)
	if err != nil {
		s.logger.Error("build payroll register failed", zap.String("pay_period_id", payPeriodID), zap.Error(err))
		return nil, payrollerrors.ErrRegisterExport.With(err)
	}
	return out, nil
}

func buildRegister(payrolls []Payroll) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", registerSheet); err != nil {
		return nil, err
	}
	sw, err := f.NewStreamWriter(registerSheet)
	if err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := sw.SetColWidth(1, 2, 24); err != nil {
		return nil, err
	}
	if err := sw.SetColWidth(3, len(registerHeader), 16); err != nil {
		return nil, err
	}

	if err := sw.SetRow("A1", registerHeader, excelize.RowOpts{StyleID: bold}); err != nil {
		return nil, err
	}

	var totals registerTotals
	row := 2
	for _, p := range payrolls {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := sw.SetRow(cell, registerRow(p)); err != nil {
			return nil, err
		}
		totals.add(p)
		row++
	}

	cell, _ := excelize.CoordinatesToCellName(1, row)
	if err := sw.SetRow(cell, totals.row(), excelize.RowOpts{StyleID: bold}); err != nil {
		return nil, err
	}

	if err := sw.Flush(); err != nil {
		return nil, err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// registerRow lists the cells of one payroll in registerHeader order.
func registerRow(p Payroll) []any {
	number, name := "", p.EmployeeID.String()
	if p.Employee != nil {
		number, name = p.Employee.EmployeeNumber, p.Employee.FullName
	}
	return []any{
		number,
		name,
		p.BasicSalary.InexactFloat64(),
		p.OvertimeMinutes,
		p.OvertimePay.InexactFloat64(),
		p.TotalBenefit.InexactFloat64(),
		p.GrossIncome.InexactFloat64(),
		p.SSS.InexactFloat64(),
		p.PhilHealth.InexactFloat64(),
		p.PagIbig.InexactFloat64(),
		p.WithholdingTax.InexactFloat64(),
		p.TotalDeduction.InexactFloat64(),
		p.NetSalary.InexactFloat64(),
	}
}

type registerTotals struct {
	basicSalary     decimal.Decimal
	overtimeMinutes int64
	overtimePay     decimal.Decimal
	benefits        decimal.Decimal
	grossIncome     decimal.Decimal
	sss             decimal.Decimal
	philHealth      decimal.Decimal
	pagIbig         decimal.Decimal
	withholdingTax  decimal.Decimal
	totalDeduction  decimal.Decimal
	netSalary       decimal.Decimal
}

func (t *registerTotals) add(p Payroll) {
	t.basicSalary = t.basicSalary.Add(p.BasicSalary)
	t.overtimeMinutes += p.OvertimeMinutes
	t.overtimePay = t.overtimePay.Add(p.OvertimePay)
	t.benefits = t.benefits.Add(p.TotalBenefit)
	t.grossIncome = t.grossIncome.Add(p.GrossIncome)
	t.sss = t.sss.Add(p.SSS)
	t.philHealth = t.philHealth.Add(p.PhilHealth)
	t.pagIbig = t.pagIbig.Add(p.PagIbig)
	t.withholdingTax = t.withholdingTax.Add(p.WithholdingTax)
	t.totalDeduction = t.totalDeduction.Add(p.TotalDeduction)
	t.netSalary = t.netSalary.Add(p.NetSalary)
}

func (t registerTotals) row() []any {
	return []any{
		"",
		"TOTAL",
		t.basicSalary.InexactFloat64(),
		t.overtimeMinutes,
		t.overtimePay.InexactFloat64(),
		t.benefits.InexactFloat64(),
		t.grossIncome.InexactFloat64(),
		t.sss.InexactFloat64(),
		t.philHealth.InexactFloat64(),
		t.pagIbig.InexactFloat64(),
		t.withholdingTax.InexactFloat64(),
		t.totalDeduction.InexactFloat64(),
		t.netSalary.InexactFloat64(),
	}
}
