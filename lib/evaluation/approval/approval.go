package approval

import (
	"strings"
	"time"

	"hr-evaluation-backend/models"
)

// Signatures подписи сторон оценки
type Signatures struct {
	EmployeeSignature   string
	EmployeeApprovedAt  *time.Time
	EvaluatorSignature  string
	EvaluatorApprovedAt *time.Time
}

func (s Signatures) EmployeeSigned() bool {
	return strings.TrimSpace(s.EmployeeSignature) != "" || s.EmployeeApprovedAt != nil
}

func (s Signatures) EvaluatorSigned() bool {
	return strings.TrimSpace(s.EvaluatorSignature) != "" || s.EvaluatorApprovedAt != nil
}

// Derive статус согласования по наличию подписей (нужны обе подписи).
// Сохраненный ранее статус не учитывается.
func Derive(s Signatures) models.ApprovalStatus {
	return DeriveWithPolicy(s, models.PolicyDualSignature)
}

// DeriveWithPolicy при PolicyEmployeeFinal подпись сотрудника без подписи оценщика
// считается завершенным согласованием
func DeriveWithPolicy(s Signatures, policy models.ApprovalPolicy) models.ApprovalStatus {
	employee := s.EmployeeSigned()
	evaluator := s.EvaluatorSigned()
	switch {
	case employee && evaluator:
		return models.ApprovalFullyApproved
	case employee:
		if policy == models.PolicyEmployeeFinal {
			return models.ApprovalFullyApproved
		}
		return models.ApprovalEmployeeApproved
	default:
		return models.ApprovalPending
	}
}
