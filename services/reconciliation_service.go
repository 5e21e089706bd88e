package services

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/enrollpay/enrollpay-backend/models"
	"github.com/enrollpay/enrollpay-backend/repository"
	"github.com/enrollpay/enrollpay-backend/utils"
)

// DefaultMatchTolerance is the maximum amount difference (in currency
// units) accepted between a bank row and a system payment.
const DefaultMatchTolerance = 0.01

// ReconciliationService imports bank statements and matches them against
// system payments.
type ReconciliationService struct {
	bankRepo    *repository.BankTransactionRepository
	paymentRepo *repository.PaymentRepository
	tolerance   float64
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(bankRepo *repository.BankTransactionRepository, paymentRepo *repository.PaymentRepository) *ReconciliationService {
	return &ReconciliationService{
		bankRepo:    bankRepo,
		paymentRepo: paymentRepo,
		tolerance:   DefaultMatchTolerance,
	}
}

// ImportStatement parses an uploaded XLSX bank statement and persists its
// rows. Expected columns: reference, description, amount, date
// (YYYY-MM-DD); the first row is treated as a header. Returns the stored
// transactions and the number of rows skipped for missing cells.
func (s *ReconciliationService) ImportStatement(file io.Reader) ([]models.BankTransaction, int, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, 0, utils.NewBadRequestError("Could not read statement file")
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, 0, utils.NewBadRequestError("Could not read statement rows")
	}
	if len(rows) < 2 {
		return nil, 0, utils.NewBadRequestError("Statement has no data rows")
	}

	txns, skipped, err := parseStatementRows(rows[1:])
	if err != nil {
		return nil, 0, err
	}
	if len(txns) == 0 {
		return nil, 0, utils.NewBadRequestError("Statement has no data rows")
	}

	if err := s.bankRepo.CreateBankTransactions(txns); err != nil {
		return nil, 0, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return txns, skipped, nil
}

// parseStatementRows converts statement data rows into bank transactions.
// Blank rows are ignored; rows with some but not all of the four expected
// cells are counted as skipped so the caller can report them. A row with
// a malformed amount or date aborts the import.
func parseStatementRows(rows [][]string) ([]models.BankTransaction, int, error) {
	var txns []models.BankTransaction
	skipped := 0
	for i, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if len(row) < 4 {
			skipped++
			continue
		}

		amount, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, 0, utils.NewBadRequestError(fmt.Sprintf("Row %d: invalid amount %q", i+2, row[2]))
		}
		date, err := time.Parse("2006-01-02", strings.TrimSpace(row[3]))
		if err != nil {
			return nil, 0, utils.NewBadRequestError(fmt.Sprintf("Row %d: invalid date %q", i+2, row[3]))
		}

		txns = append(txns, models.BankTransaction{
			ID:          uuid.NewString(),
			Reference:   strings.TrimSpace(row[0]),
			Description: strings.TrimSpace(row[1]),
			Amount:      utils.Round(amount),
			Date:        date,
			ImportedAt:  time.Now(),
		})
	}
	return txns, skipped, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// AutoMatch runs the matching engine over all imported bank rows and all
// completed payments, persists the matches, and returns the result.
func (s *ReconciliationService) AutoMatch() (*models.MatchResult, error) {
	txns, err := s.bankRepo.ListBankTransactions()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	payments, err := s.paymentRepo.GetCompletedPayments()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	if err := s.bankRepo.ClearMatches(); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	result := MatchPayments(txns, payments, s.tolerance)

	for _, pair := range result.Pairs {
		if err := s.bankRepo.MarkMatched(pair.BankTransaction.ID, pair.Payment.ID); err != nil {
			return nil, utils.NewInternalError(utils.ErrFailedToStore)
		}
	}
	return result, nil
}

// MatchPayments matches bank rows to system payments one-to-one. Rows are
// bucketed by calendar date; each payment (in paid-at order, for
// determinism) takes the nearest-amount candidate from its date bucket,
// provided the difference is within the tolerance. A consumed candidate
// is not offered again. Leftovers on either side are reported unmatched.
func MatchPayments(txns []models.BankTransaction, payments []models.Payment, tolerance float64) *models.MatchResult {
	buckets := make(map[string][]models.BankTransaction)
	for _, txn := range txns {
		key := txn.Date.Format("2006-01-02")
		buckets[key] = append(buckets[key], txn)
	}

	ordered := make([]models.Payment, len(payments))
	copy(ordered, payments)
	sort.SliceStable(ordered, func(i, j int) bool {
		return paymentTime(ordered[i]).Before(paymentTime(ordered[j]))
	})

	result := &models.MatchResult{
		Pairs:             []models.MatchedPair{},
		UnmatchedBank:     []models.BankTransaction{},
		UnmatchedPayments: []models.Payment{},
	}

	for _, payment := range ordered {
		key := paymentTime(payment).Format("2006-01-02")
		candidates := buckets[key]

		bestIdx := -1
		var bestDiff float64
		for i, candidate := range candidates {
			diff := math.Abs(payment.Amount - candidate.Amount)
			if diff > tolerance {
				continue
			}
			if bestIdx == -1 || diff < bestDiff {
				bestIdx = i
				bestDiff = diff
			}
		}

		if bestIdx == -1 {
			result.UnmatchedPayments = append(result.UnmatchedPayments, payment)
			continue
		}

		chosen := candidates[bestIdx]
		buckets[key] = append(candidates[:bestIdx], candidates[bestIdx+1:]...)

		result.Pairs = append(result.Pairs, models.MatchedPair{
			BankTransaction: chosen,
			Payment:         payment,
			Difference:      utils.Round(bestDiff),
		})
	}

	for _, remaining := range buckets {
		result.UnmatchedBank = append(result.UnmatchedBank, remaining...)
	}
	sort.Slice(result.UnmatchedBank, func(i, j int) bool {
		return result.UnmatchedBank[i].Date.Before(result.UnmatchedBank[j].Date)
	})

	return result
}

// Summary aggregates the current match state for the dashboard
func (s *ReconciliationService) Summary() (*models.ReconciliationSummary, error) {
	txns, err := s.bankRepo.ListBankTransactions()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	payments, err := s.paymentRepo.GetCompletedPayments()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	matched := 0
	var bankTotal float64
	for _, txn := range txns {
		if txn.Matched {
			matched++
		}
		bankTotal += txn.Amount
	}

	var systemTotal float64
	for _, payment := range payments {
		systemTotal += payment.Amount
	}

	return Summarize(len(txns), len(payments), matched, bankTotal, systemTotal), nil
}

// Summarize computes the reconciliation arithmetic: percentage matched is
// taken against the bank side, variance is bank total minus system total.
func Summarize(totalBank, totalSystem, matched int, bankAmount, systemAmount float64) *models.ReconciliationSummary {
	var percent float64
	if totalBank > 0 {
		percent = float64(matched) / float64(totalBank) * 100
	}

	return &models.ReconciliationSummary{
		TotalBankTransactions: totalBank,
		TotalSystemPayments:   totalSystem,
		MatchedCount:          matched,
		UnmatchedBankCount:    totalBank - matched,
		UnmatchedSystemCount:  totalSystem - matched,
		PercentMatched:        utils.Round(percent),
		TotalBankAmount:       utils.Round(bankAmount),
		TotalSystemAmount:     utils.Round(systemAmount),
		Variance:              utils.Round(bankAmount - systemAmount),
	}
}

func paymentTime(payment models.Payment) time.Time {
	if payment.PaidAt != nil {
		return *payment.PaidAt
	}
	return payment.CreatedAt
}
