package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/enrollpay/enrollpay-backend/models"
	"github.com/enrollpay/enrollpay-backend/utils"
)

// ExcelService handles financial report export
type ExcelService struct {
	receiptService        *ReceiptService
	expenseService        *ExpenseService
	dashboardService      *DashboardService
	reconciliationService *ReconciliationService
}

// NewExcelService creates a new Excel service
func NewExcelService(receiptService *ReceiptService, expenseService *ExpenseService, dashboardService *DashboardService, reconciliationService *ReconciliationService) *ExcelService {
	return &ExcelService{
		receiptService:        receiptService,
		expenseService:        expenseService,
		dashboardService:      dashboardService,
		reconciliationService: reconciliationService,
	}
}

// ExportFinancialReport generates the business-office workbook: a summary
// sheet, a receipts sheet, an expenses sheet and a reconciliation sheet.
func (s *ExcelService) ExportFinancialReport() (*excelize.File, string, error) {
	stats, err := s.dashboardService.GetStats()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get dashboard stats: %v", err)
	}

	receipts, err := s.receiptService.ListReceipts()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get receipts: %v", err)
	}

	expenses, err := s.expenseService.ListExpenses()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get expenses: %v", err)
	}

	summary, err := s.reconciliationService.Summary()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get reconciliation summary: %v", err)
	}

	f := excelize.NewFile()

	if err := s.createSummarySheet(f, stats, summary); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}
	if err := s.createReceiptSheet(f, receipts); err != nil {
		return nil, "", fmt.Errorf("failed to create receipt sheet: %v", err)
	}
	if err := s.createExpenseSheet(f, expenses); err != nil {
		return nil, "", fmt.Errorf("failed to create expense sheet: %v", err)
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("Financial_Report_%s.xlsx", time.Now().Format("2006-01-02"))
	return f, filename, nil
}

// createSummarySheet creates Sheet 1: Summary
func (s *ExcelService) createSummarySheet(f *excelize.File, stats *models.DashboardStats, summary *models.ReconciliationSummary) error {
	sheetName := "Summary"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})

	lines := [][2]interface{}{
		{"Collections Total", utils.FormatMoney(stats.CollectionsTotal)},
		{"Expenses Total", utils.FormatMoney(stats.ExpensesTotal)},
		{"Net", stats.Net},
		{"Pending Payments", stats.PendingPayments},
		{"Completed Payments", stats.CompletedPayments},
	}

	f.SetCellValue(sheetName, "A1", "Overview")
	f.SetCellStyle(sheetName, "A1", "B1", headerStyle)
	for i, line := range lines {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), line[0])
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), line[1])
	}

	reconStartRow := len(lines) + 4
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", reconStartRow), "Reconciliation")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", reconStartRow), fmt.Sprintf("B%d", reconStartRow), headerStyle)

	reconLines := [][2]interface{}{
		{"Bank Transactions", summary.TotalBankTransactions},
		{"System Payments", summary.TotalSystemPayments},
		{"Matched", summary.MatchedCount},
		{"Percent Matched", summary.PercentMatched},
		{"Bank Amount", utils.FormatMoney(summary.TotalBankAmount)},
		{"System Amount", utils.FormatMoney(summary.TotalSystemAmount)},
		{"Variance", summary.Variance},
	}
	for i, line := range reconLines {
		row := reconStartRow + 1 + i
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), line[0])
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), line[1])
	}

	f.SetColWidth(sheetName, "A", "B", 22)
	return nil
}

// createReceiptSheet creates Sheet 2: Receipts
func (s *ExcelService) createReceiptSheet(f *excelize.File, receipts []models.Receipt) error {
	sheetName := "Receipts"
	f.NewSheet(sheetName)

	headers := []string{"Receipt Number", "Payment ID", "Student ID", "Total", "Method", "Issued At"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle)

	for i, receipt := range receipts {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), receipt.ReceiptNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), receipt.PaymentID)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), receipt.StudentID)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), utils.FormatMoney(receipt.Total))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), receipt.Method)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), receipt.IssuedAt.Format("2006-01-02 15:04"))
	}

	f.SetColWidth(sheetName, "A", "F", 20)
	return nil
}

// createExpenseSheet creates Sheet 3: Expenses
func (s *ExcelService) createExpenseSheet(f *excelize.File, expenses []models.Expense) error {
	sheetName := "Expenses"
	f.NewSheet(sheetName)

	headers := []string{"Date", "Category", "Title", "Amount", "Notes"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle)

	var total float64
	for i, expense := range expenses {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), expense.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expense.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), utils.FormatMoney(expense.Amount))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), expense.Notes)
		total += expense.Amount
	}

	totalRow := len(expenses) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", totalRow), "Total")
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", totalRow), utils.FormatMoney(total))

	f.SetColWidth(sheetName, "A", "E", 18)
	return nil
}
