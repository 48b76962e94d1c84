package registrationhandler

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-evaluation-backend/db"
	employeestore "hr-evaluation-backend/lib/employee/store"
	messagetemplate "hr-evaluation-backend/lib/message-template"
	registrationstore "hr-evaluation-backend/lib/registration/store"
	"hr-evaluation-backend/lib/smtp"
	authutils "hr-evaluation-backend/lib/utils/auth-utils"
	"hr-evaluation-backend/lib/utils/helpers"
	initchecker "hr-evaluation-backend/lib/utils/init-checker"
	connectionhub "hr-evaluation-backend/lib/ws/hub/connection-hub"
	"hr-evaluation-backend/models"
	registrationapimodels "hr-evaluation-backend/models/api/registration"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Submit(request registrationapimodels.RegistrationRequest) (id string, hMsg string, err error)
	ListPending() (list []registrationapimodels.RegistrationView, err error)
	ListProcessed(status models.RegistrationStatus) (list []registrationapimodels.RegistrationView, err error)
	Approve(actorID, id string) (hMsg string, err error)
	Reject(actorID, id, reason string) (hMsg string, err error)
}

type mailer interface {
	SendEMail(to, subject, message string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:         registrationstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		mail:          smtp.Instance,
		hub:           connectionhub.Instance,
		now:           time.Now,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employeeStore", instance.employeeStore,
		"mail", instance.mail,
		"hub", instance.hub,
	)
	Instance = instance
}

type impl struct {
	store         registrationstore.Provider
	employeeStore employeestore.Provider
	mail          mailer
	hub           connectionhub.Provider
	now           func() time.Time
}

func (i impl) Submit(request registrationapimodels.RegistrationRequest) (id string, hMsg string, err error) {
	email := helpers.NormalizeEmail(request.Email)
	logger := log.WithField("email", email)
	hMsg, err = i.checkEmail(email)
	if err != nil || hMsg != "" {
		return "", hMsg, err
	}
	pending, err := i.store.FindPendingByEmail(email)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка проверки заявок на регистрацию")
	}
	if pending != nil {
		return "", "заявка с таким email уже ожидает рассмотрения", nil
	}
	hash, err := authutils.HashPassword(request.Password)
	if err != nil {
		return "", "", err
	}
	role := request.Role
	if role == "" {
		role = models.EmployeeRole
	}
	id, err = i.store.Create(dbmodels.Registration{
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		Password:     hash,
		PositionID:   request.PositionID,
		DepartmentID: request.DepartmentID,
		BranchID:     request.BranchID,
		Role:         role,
		Status:       models.RegistrationPending,
	})
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка сохранения заявки на регистрацию")
	}
	logger.
		WithField("rec_id", id).
		WithField("role", role).
		Info("получена заявка на регистрацию")
	i.hub.Broadcast(models.PushRegistrationsChanged, id)
	return id, "", nil
}

func (i impl) ListPending() (list []registrationapimodels.RegistrationView, err error) {
	return i.list(models.RegistrationPending)
}

func (i impl) ListProcessed(status models.RegistrationStatus) (list []registrationapimodels.RegistrationView, err error) {
	switch status {
	case models.RegistrationApproved, models.RegistrationRejected:
		return i.list(status)
	default:
		return i.list(models.RegistrationApproved, models.RegistrationRejected)
	}
}

func (i impl) Approve(actorID, id string) (hMsg string, err error) {
	logger := log.
		WithField("rec_id", id).
		WithField("actor_id", actorID)
	rec, hMsg, err := i.getPending(id)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	// за время рассмотрения email мог занять другой сотрудник
	hMsg, err = i.checkEmail(rec.Email)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	now := i.now()
	employeeID, err := i.employeeStore.Create(dbmodels.Employee{
		Name:         rec.Name,
		Email:        rec.Email,
		Password:     rec.Password,
		PositionID:   rec.PositionID,
		DepartmentID: rec.DepartmentID,
		BranchID:     rec.BranchID,
		Role:         rec.Role,
		HireDate:     &now,
		IsActive:     true,
	})
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания сотрудника по заявке")
	}
	err = i.store.Update(id, map[string]interface{}{
		"status":      models.RegistrationApproved,
		"decided_by":  actorID,
		"decided_at":  now,
		"employee_id": employeeID,
	})
	if err != nil {
		return "", errors.Wrap(err, "ошибка обновления заявки на регистрацию")
	}
	logger.
		WithField("employee_id", employeeID).
		Info("заявка на регистрацию одобрена")
	i.notify(*rec, messagetemplate.BuildRegistrationApprovedMsg)
	i.hub.Broadcast(models.PushRegistrationsChanged, id)
	i.hub.Broadcast(models.PushEmployeesChanged, employeeID)
	return "", nil
}

func (i impl) Reject(actorID, id, reason string) (hMsg string, err error) {
	rec, hMsg, err := i.getPending(id)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	reason = strings.TrimSpace(reason)
	err = i.store.Update(id, map[string]interface{}{
		"status":        models.RegistrationRejected,
		"decided_by":    actorID,
		"decided_at":    i.now(),
		"reject_reason": reason,
	})
	if err != nil {
		return "", errors.Wrap(err, "ошибка обновления заявки на регистрацию")
	}
	log.
		WithField("rec_id", id).
		WithField("actor_id", actorID).
		Info("заявка на регистрацию отклонена")
	rec.RejectReason = reason
	i.notify(*rec, messagetemplate.BuildRegistrationRejectedMsg)
	i.hub.Broadcast(models.PushRegistrationsChanged, id)
	return "", nil
}

func (i impl) list(statuses ...models.RegistrationStatus) (list []registrationapimodels.RegistrationView, err error) {
	recList, err := i.store.ListByStatus(statuses...)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения заявок на регистрацию")
	}
	list = make([]registrationapimodels.RegistrationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, registrationapimodels.RegistrationConvert(rec))
	}
	return list, nil
}

func (i impl) getPending(id string) (rec *dbmodels.Registration, hMsg string, err error) {
	rec, err = i.store.GetByID(id)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения заявки на регистрацию")
	}
	if rec == nil {
		return nil, "заявка на регистрацию не найдена", nil
	}
	if rec.Status != models.RegistrationPending {
		return nil, "заявка уже рассмотрена", nil
	}
	return rec, "", nil
}

func (i impl) checkEmail(email string) (hMsg string, err error) {
	exist, err := i.employeeStore.FindByEmail(email)
	if err != nil {
		return "", errors.Wrap(err, "ошибка проверки email")
	}
	if exist != nil {
		return "сотрудник с таким email уже существует", nil
	}
	return "", nil
}

func (i impl) notify(rec dbmodels.Registration, build func(data models.RegistrationTemplateData) (string, string, error)) {
	title, msg, err := build(models.RegistrationTemplateData{
		Name:         rec.Name,
		Email:        rec.Email,
		RoleName:     rec.Role.ToHuman(),
		RejectReason: rec.RejectReason,
	})
	if err != nil {
		log.WithError(err).Error("ошибка формирования письма")
		return
	}
	if err = i.mail.SendEMail(rec.Email, title, msg); err != nil {
		log.WithError(err).WithField("email", rec.Email).Warn("письмо о регистрации не отправлено")
	}
}
