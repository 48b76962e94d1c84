package models

type SuspensionStatus string

const (
	SuspensionActive        SuspensionStatus = "suspended"
	SuspensionPendingReview SuspensionStatus = "pending_review"
	SuspensionReinstated    SuspensionStatus = "reinstated"
)

var suspensionStatusHumanName = map[SuspensionStatus]string{
	SuspensionActive:        "Отстранен",
	SuspensionPendingReview: "На рассмотрении",
	SuspensionReinstated:    "Восстановлен",
}

func (s SuspensionStatus) ToHuman() string {
	if human, exist := suspensionStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s SuspensionStatus) IsValid() bool {
	_, ok := suspensionStatusHumanName[s]
	return ok
}

// IsOpen запись еще не закрыта восстановлением
func (s SuspensionStatus) IsOpen() bool {
	return s == SuspensionActive || s == SuspensionPendingReview
}
