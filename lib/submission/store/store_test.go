package submissionstore

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hr-evaluation-backend/models"
)

func TestStatusCondition(t *testing.T) {
	t.Run(`dual signature policy`, func(t *testing.T) {
		require.Equal(t, "NOT "+employeeSignedCond, StatusCondition(models.ApprovalPending, models.PolicyDualSignature))
		require.Equal(t, employeeSignedCond+" AND NOT "+evaluatorSignedCond,
			StatusCondition(models.ApprovalEmployeeApproved, models.PolicyDualSignature))
		require.Equal(t, employeeSignedCond+" AND "+evaluatorSignedCond,
			StatusCondition(models.ApprovalFullyApproved, models.PolicyDualSignature))
	})

	t.Run(`employee final policy`, func(t *testing.T) {
		require.Equal(t, noRowsCond, StatusCondition(models.ApprovalEmployeeApproved, models.PolicyEmployeeFinal))
		require.Equal(t, employeeSignedCond, StatusCondition(models.ApprovalFullyApproved, models.PolicyEmployeeFinal))
	})

	t.Run(`rejected is never derived`, func(t *testing.T) {
		require.Equal(t, noRowsCond, StatusCondition(models.ApprovalRejected, models.PolicyDualSignature))
	})
}
