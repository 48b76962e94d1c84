package approval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"hr-evaluation-backend/models"
)

func TestDerive(t *testing.T) {
	now := time.Now()

	t.Run(`no signatures`, func(t *testing.T) {
		require.Equal(t, models.ApprovalPending, Derive(Signatures{}))
		require.Equal(t, models.ApprovalPending, DeriveWithPolicy(Signatures{}, models.PolicyEmployeeFinal))
	})

	t.Run(`both signatures`, func(t *testing.T) {
		s := Signatures{EmployeeSignature: "Иванов", EvaluatorSignature: "Петров"}
		require.Equal(t, models.ApprovalFullyApproved, Derive(s))
		require.Equal(t, models.ApprovalFullyApproved, DeriveWithPolicy(s, models.PolicyEmployeeFinal))
	})

	t.Run(`employee only, dual signature policy`, func(t *testing.T) {
		s := Signatures{EmployeeSignature: "Иванов", EmployeeApprovedAt: &now}
		require.Equal(t, models.ApprovalEmployeeApproved, Derive(s))
	})

	t.Run(`employee only, employee final policy`, func(t *testing.T) {
		s := Signatures{EmployeeSignature: "Иванов", EmployeeApprovedAt: &now}
		require.Equal(t, models.ApprovalFullyApproved, DeriveWithPolicy(s, models.PolicyEmployeeFinal))
	})

	t.Run(`evaluator only`, func(t *testing.T) {
		s := Signatures{EvaluatorSignature: "Петров"}
		require.Equal(t, models.ApprovalPending, Derive(s))
		require.Equal(t, models.ApprovalPending, DeriveWithPolicy(s, models.PolicyEmployeeFinal))
	})

	t.Run(`timestamp without signature text counts as signed`, func(t *testing.T) {
		s := Signatures{EmployeeApprovedAt: &now, EvaluatorApprovedAt: &now}
		require.Equal(t, models.ApprovalFullyApproved, Derive(s))
	})

	t.Run(`blank signature is absent`, func(t *testing.T) {
		s := Signatures{EmployeeSignature: "   "}
		require.Equal(t, models.ApprovalPending, Derive(s))
	})
}
