package commission

import (
	"time"

	"github.com/google/uuid"

	"github.com/voltara/merchant-api/internal/commission"
)

type lineItemResponse struct {
	Code           string    `json:"code"`
	Customer       string    `json:"customer"`
	Date           time.Time `json:"date"`
	OriginalAmount int64     `json:"original_amount"`
	BalanceUsed    int64     `json:"balance_used"`
	ChargedAmount  int64     `json:"charged_amount"`
	CommissionOwed int64     `json:"commission_owed"`
	Discounted     bool      `json:"discounted"`
}

type summaryResponse struct {
	Count            int   `json:"count"`
	OriginalTotal    int64 `json:"original_total"`
	BalanceUsedTotal int64 `json:"balance_used_total"`
	ChargedTotal     int64 `json:"charged_total"`
	CommissionTotal  int64 `json:"commission_total"`
}

type statementResponse struct {
	Items   []lineItemResponse `json:"items"`
	Summary summaryResponse    `json:"summary"`
}

func toStatementResponse(stmt *commission.Statement) statementResponse {
	items := make([]lineItemResponse, len(stmt.Items))
	for i, it := range stmt.Items {
		items[i] = lineItemResponse{
			Code:           it.Code,
			Customer:       it.Customer,
			Date:           it.Date,
			OriginalAmount: it.OriginalAmount,
			BalanceUsed:    it.BalanceUsed,
			ChargedAmount:  it.ChargedAmount,
			CommissionOwed: it.CommissionOwed,
			Discounted:     it.Discounted,
		}
	}

	return statementResponse{
		Items: items,
		Summary: summaryResponse{
			Count:            stmt.Summary.Count,
			OriginalTotal:    stmt.Summary.OriginalTotal,
			BalanceUsedTotal: stmt.Summary.BalanceUsedTotal,
			ChargedTotal:     stmt.Summary.ChargedTotal,
			CommissionTotal:  stmt.Summary.CommissionTotal,
		},
	}
}

type submissionResponse struct {
	ID             uuid.UUID         `json:"id"`
	StoreID        uuid.UUID         `json:"store_id"`
	TransactionIDs []uuid.UUID       `json:"transaction_ids"`
	Amount         int64             `json:"amount"`
	Method         commission.Method `json:"method"`
	Reference      string            `json:"reference,omitempty"`
	ProofRef       string            `json:"proof_ref"`
	Note           string            `json:"note,omitempty"`
	Status         commission.Status `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
}

func toSubmissionResponse(sub *commission.Submission) submissionResponse {
	return submissionResponse{
		ID:             sub.ID,
		StoreID:        sub.StoreID,
		TransactionIDs: sub.TransactionIDs,
		Amount:         sub.Amount,
		Method:         sub.Method,
		Reference:      sub.Reference,
		ProofRef:       sub.ProofRef,
		Note:           sub.Note,
		Status:         sub.Status,
		CreatedAt:      sub.CreatedAt,
	}
}
