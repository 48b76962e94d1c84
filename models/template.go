package models

type EvaluationTemplateData struct {
	EmployeeName  string
	EvaluatorName string
	ReviewPeriod  string
	OverallRating float64
}

type RegistrationTemplateData struct {
	Name         string
	Email        string
	RoleName     string
	RejectReason string
}

// File изображение для вставки в pdf
type File struct {
	FileName    string
	ContentType string
	Body        []byte
}
