package models

type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

var registrationStatusHumanName = map[RegistrationStatus]string{
	RegistrationPending:  "Ожидает рассмотрения",
	RegistrationApproved: "Одобрена",
	RegistrationRejected: "Отклонена",
}

func (s RegistrationStatus) ToHuman() string {
	if human, exist := registrationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}
