package messagetemplate

import (
	"bytes"
	"text/template"

	"github.com/pkg/errors"
	"hr-evaluation-backend/models"
)

const (
	evaluationAwaitingTitle   = "Оценка ожидает подписи"
	evaluationSignedTitle     = "Оценка подписана"
	registrationApprovedTitle = "Регистрация одобрена"
	registrationRejectedTitle = "Регистрация отклонена"
)

const evaluationAwaitingTpl = `Здравствуйте, {{.EmployeeName}}!

{{.EvaluatorName}} провел(а) оценку вашей работы за период «{{.ReviewPeriod}}».
Итоговая оценка: {{printf "%.1f" .OverallRating}} из 5.

Ознакомьтесь с результатами и подпишите оценку в личном кабинете.`

const evaluationSignedTpl = `Здравствуйте, {{.EvaluatorName}}!

{{.EmployeeName}} подписал(а) оценку за период «{{.ReviewPeriod}}».
Для завершения согласования подпишите оценку со своей стороны.`

const registrationApprovedTpl = `Здравствуйте, {{.Name}}!

Ваша заявка на регистрацию одобрена. Роль: {{.RoleName}}.
Для входа используйте адрес {{.Email}} и пароль, указанный при регистрации.`

const registrationRejectedTpl = `Здравствуйте, {{.Name}}!

Ваша заявка на регистрацию отклонена.{{if .RejectReason}}
Причина: {{.RejectReason}}{{end}}`

var templates = template.Must(template.New("root").Parse(""))

func init() {
	template.Must(templates.New("evaluation_awaiting").Parse(evaluationAwaitingTpl))
	template.Must(templates.New("evaluation_signed").Parse(evaluationSignedTpl))
	template.Must(templates.New("registration_approved").Parse(registrationApprovedTpl))
	template.Must(templates.New("registration_rejected").Parse(registrationRejectedTpl))
}

func BuildEvaluationAwaitingMsg(data models.EvaluationTemplateData) (title, msg string, err error) {
	msg, err = execute("evaluation_awaiting", data)
	return evaluationAwaitingTitle, msg, err
}

func BuildEvaluationSignedMsg(data models.EvaluationTemplateData) (title, msg string, err error) {
	msg, err = execute("evaluation_signed", data)
	return evaluationSignedTitle, msg, err
}

func BuildRegistrationApprovedMsg(data models.RegistrationTemplateData) (title, msg string, err error) {
	msg, err = execute("registration_approved", data)
	return registrationApprovedTitle, msg, err
}

func BuildRegistrationRejectedMsg(data models.RegistrationTemplateData) (title, msg string, err error) {
	msg, err = execute("registration_rejected", data)
	return registrationRejectedTitle, msg, err
}

func execute(name string, data any) (string, error) {
	buf := new(bytes.Buffer)
	if err := templates.ExecuteTemplate(buf, name, data); err != nil {
		return "", errors.Wrapf(err, "ошибка формирования шаблона %s", name)
	}
	return buf.String(), nil
}
