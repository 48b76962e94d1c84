package models

type ApprovalStatus string

const (
	ApprovalPending          ApprovalStatus = "pending"
	ApprovalEmployeeApproved ApprovalStatus = "employee_approved"
	ApprovalFullyApproved    ApprovalStatus = "fully_approved"
	// ApprovalRejected допустимое значение фильтра, вычислением не выдается
	ApprovalRejected ApprovalStatus = "rejected"
)

var approvalStatusHumanName = map[ApprovalStatus]string{
	ApprovalPending:          "Ожидает подписи",
	ApprovalEmployeeApproved: "Подписано сотрудником",
	ApprovalFullyApproved:    "Согласовано",
	ApprovalRejected:         "Отклонено",
}

func (s ApprovalStatus) ToHuman() string {
	if human, exist := approvalStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApprovalStatus) IsValid() bool {
	_, ok := approvalStatusHumanName[s]
	return ok
}

// ApprovalPolicy правило вычисления статуса при подписи только сотрудника
type ApprovalPolicy string

const (
	// PolicyDualSignature нужны обе подписи
	PolicyDualSignature ApprovalPolicy = "DUAL_SIGNATURE"
	// PolicyEmployeeFinal подпись сотрудника завершает согласование
	PolicyEmployeeFinal ApprovalPolicy = "EMPLOYEE_FINAL"
)

func ParseApprovalPolicy(value string) ApprovalPolicy {
	if ApprovalPolicy(value) == PolicyEmployeeFinal {
		return PolicyEmployeeFinal
	}
	return PolicyDualSignature
}

// Highlight подсветка строки оценки в списке
type Highlight string

const (
	HighlightApproved Highlight = "approved"
	HighlightNew      Highlight = "new"
	HighlightRecent   Highlight = "recent"
	HighlightOld      Highlight = "old"
)
