package payslip

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const textWidth = 44

type row struct {
	label string
	value string
}

type section struct {
	title string
	rows  []row
}

var (
	title   = cases.Title(language.English)
	printer = message.NewPrinter(language.English)
)

func amount(d decimal.Decimal) string {
	return printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func sections(p Payslip) []section {
	employee := row{"Employee", p.EmployeeID.String()}
	if p.Employee != nil {
		employee.value = fmt.Sprintf("%s (%s)", p.Employee.FullName, p.Employee.EmployeeNumber)
	}
	period := row{"Pay period", p.PayPeriodID.String()}
	if p.PayPeriod != nil {
		period.value = fmt.Sprintf("%s to %s", p.PayPeriod.StartDate.Format("2006-01-02"), p.PayPeriod.EndDate.Format("2006-01-02"))
	}

	return []section{
		{title: "employee", rows: []row{employee, period}},
		{title: "earnings", rows: []row{
			{"Basic salary", amount(p.BasicSalary)},
			{"Daily rate", amount(p.DailyRate)},
			{"Days worked", fmt.Sprintf("%d", p.DaysWorked)},
			{"Overtime", fmt.Sprintf("%s (%d min)", amount(p.OvertimePay), p.OvertimeMinutes)},
		}},
		{title: "benefits", rows: []row{
			{"Rice subsidy", amount(p.RiceSubsidy)},
			{"Phone allowance", amount(p.PhoneAllowance)},
			{"Clothing allowance", amount(p.ClothingAllowance)},
			{"Total benefits", amount(p.TotalBenefit)},
		}},
		{title: "deductions", rows: []row{
			{"SSS", amount(p.SSS)},
			{"PhilHealth", amount(p.PhilHealth)},
			{"Pag-IBIG", amount(p.PagIbig)},
			{"Withholding tax", amount(p.WithholdingTax)},
			{"Total deductions", amount(p.TotalDeduction)},
		}},
		{title: "summary", rows: []row{
			{"Gross income", amount(p.GrossIncome)},
			{"Take home pay", amount(p.TakeHomePay)},
		}},
	}
}

// FormatText renders a fixed width plain text payslip.
func FormatText(p Payslip) string {
	var b strings.Builder
	rule := strings.Repeat("=", textWidth)

	b.WriteString(rule + "\n")
	b.WriteString(center(title.String("payslip")) + "\n")
	b.WriteString(rule + "\n")
	for _, s := range sections(p) {
		b.WriteString("\n" + title.String(s.title) + "\n")
		b.WriteString(strings.Repeat("-", textWidth) + "\n")
		for _, r := range s.rows {
			pad := textWidth - len(r.label) - len(r.value)
			if pad < 1 {
				pad = 1
			}
			b.WriteString(r.label + strings.Repeat(" ", pad) + r.value + "\n")
		}
	}
	b.WriteString(rule + "\n")
	return b.String()
}

func center(s string) string {
	pad := (textWidth - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
