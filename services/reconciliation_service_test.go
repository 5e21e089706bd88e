package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/enrollpay/enrollpay-backend/models"
	"github.com/enrollpay/enrollpay-backend/utils"
)

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func completedPayment(id string, amount float64, paidAt string) models.Payment {
	at := mustDate(paidAt)
	return models.Payment{
		ID:     id,
		Amount: amount,
		Status: utils.StatusCompleted,
		PaidAt: &at,
	}
}

func TestMatchPayments_ExactMatchSameDay(t *testing.T) {
	txns := []models.BankTransaction{
		{ID: "B1", Reference: "DEP-001", Amount: 5000, Date: mustDate("2026-08-03")},
		{ID: "B2", Reference: "DEP-002", Amount: 1200, Date: mustDate("2026-08-03")},
	}
	payments := []models.Payment{
		completedPayment("P1", 5000, "2026-08-03"),
		completedPayment("P2", 1200, "2026-08-03"),
	}

	result := MatchPayments(txns, payments, DefaultMatchTolerance)

	assert.Len(t, result.Pairs, 2)
	assert.Empty(t, result.UnmatchedBank)
	assert.Empty(t, result.UnmatchedPayments)
	assert.Equal(t, "B1", result.Pairs[0].BankTransaction.ID)
	assert.Equal(t, "P1", result.Pairs[0].Payment.ID)
}

func TestMatchPayments_NearestAmountWithinTolerance(t *testing.T) {
	txns := []models.BankTransaction{
		{ID: "B1", Amount: 999.99, Date: mustDate("2026-08-04")},
		{ID: "B2", Amount: 1000.00, Date: mustDate("2026-08-04")},
	}
	payments := []models.Payment{
		completedPayment("P1", 1000.00, "2026-08-04"),
	}

	result := MatchPayments(txns, payments, DefaultMatchTolerance)

	assert.Len(t, result.Pairs, 1)
	assert.Equal(t, "B2", result.Pairs[0].BankTransaction.ID)
	assert.Equal(t, 0.0, result.Pairs[0].Difference)
	assert.Len(t, result.UnmatchedBank, 1)
	assert.Equal(t, "B1", result.UnmatchedBank[0].ID)
}

func TestMatchPayments_OutsideToleranceUnmatched(t *testing.T) {
	txns := []models.BankTransaction{
		{ID: "B1", Amount: 1050, Date: mustDate("2026-08-05")},
	}
	payments := []models.Payment{
		completedPayment("P1", 1000, "2026-08-05"),
	}

	result := MatchPayments(txns, payments, DefaultMatchTolerance)

	assert.Empty(t, result.Pairs)
	assert.Len(t, result.UnmatchedBank, 1)
	assert.Len(t, result.UnmatchedPayments, 1)
}

func TestMatchPayments_DifferentDateNotMatched(t *testing.T) {
	txns := []models.BankTransaction{
		{ID: "B1", Amount: 1000, Date: mustDate("2026-08-06")},
	}
	payments := []models.Payment{
		completedPayment("P1", 1000, "2026-08-07"),
	}

	result := MatchPayments(txns, payments, DefaultMatchTolerance)

	assert.Empty(t, result.Pairs)
	assert.Len(t, result.UnmatchedBank, 1)
	assert.Len(t, result.UnmatchedPayments, 1)
}

func TestMatchPayments_CandidateConsumedOnce(t *testing.T) {
	txns := []models.BankTransaction{
		{ID: "B1", Amount: 500, Date: mustDate("2026-08-08")},
	}
	payments := []models.Payment{
		completedPayment("P1", 500, "2026-08-08"),
		completedPayment("P2", 500, "2026-08-08"),
	}

	result := MatchPayments(txns, payments, DefaultMatchTolerance)

	assert.Len(t, result.Pairs, 1)
	assert.Len(t, result.UnmatchedPayments, 1)
	assert.Equal(t, "P2", result.UnmatchedPayments[0].ID)
}

func TestParseStatementRows_SkipsShortRowsAndReportsThem(t *testing.T) {
	rows := [][]string{
		{"DEP-001", "Tuition deposit", "5000.00", "2026-08-03"},
		{"DEP-002", "orphan row"},
		{"", "", "", ""},
		{"DEP-003", "Lab fee", "1200.50", "2026-08-04"},
	}

	txns, skipped, err := parseStatementRows(rows)

	assert.NoError(t, err)
	assert.Len(t, txns, 2)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, "DEP-001", txns[0].Reference)
	assert.Equal(t, 5000.0, txns[0].Amount)
	assert.Equal(t, mustDate("2026-08-04"), txns[1].Date)
}

func TestParseStatementRows_MalformedAmountAborts(t *testing.T) {
	rows := [][]string{
		{"DEP-001", "ok", "5000.00", "2026-08-03"},
		{"DEP-002", "bad", "five thousand", "2026-08-03"},
	}

	_, _, err := parseStatementRows(rows)

	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Contains(t, appErr.Message, "invalid amount")
}

func TestParseStatementRows_MalformedDateAborts(t *testing.T) {
	rows := [][]string{
		{"DEP-001", "bad", "5000.00", "03/08/2026"},
	}

	_, _, err := parseStatementRows(rows)

	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Contains(t, appErr.Message, "invalid date")
}

func TestSummarize_PercentAndVariance(t *testing.T) {
	summary := Summarize(4, 3, 3, 10500.50, 10000.25)

	assert.Equal(t, 4, summary.TotalBankTransactions)
	assert.Equal(t, 3, summary.MatchedCount)
	assert.Equal(t, 1, summary.UnmatchedBankCount)
	assert.Equal(t, 0, summary.UnmatchedSystemCount)
	assert.Equal(t, 75.0, summary.PercentMatched)
	assert.Equal(t, 500.25, summary.Variance)
}

func TestSummarize_NoBankTransactions(t *testing.T) {
	summary := Summarize(0, 2, 0, 0, 3000)

	assert.Equal(t, 0.0, summary.PercentMatched)
	assert.Equal(t, -3000.0, summary.Variance)
}
