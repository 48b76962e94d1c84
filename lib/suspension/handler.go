package suspensionhandler

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-evaluation-backend/db"
	employeestore "hr-evaluation-backend/lib/employee/store"
	suspensionstore "hr-evaluation-backend/lib/suspension/store"
	initchecker "hr-evaluation-backend/lib/utils/init-checker"
	connectionhub "hr-evaluation-backend/lib/ws/hub/connection-hub"
	"hr-evaluation-backend/models"
	suspensionapimodels "hr-evaluation-backend/models/api/suspension"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Suspend(actorID string, request suspensionapimodels.SuspendRequest) (id string, hMsg string, err error)
	List(filter suspensionapimodels.SuspensionFilter) (list []suspensionapimodels.SuspensionView, rowCount int64, err error)
	Get(id string) (item suspensionapimodels.SuspensionView, hMsg string, err error)
	MarkForReview(id string) (hMsg string, err error)
	Reinstate(actorID, id string) (hMsg string, err error)
	Delete(id string) error
	IsSuspended(employeeID string) (bool, error)
	SuspendedSet() (map[string]bool, error)
	ProcessExpired() (moved int, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:         suspensionstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		hub:           connectionhub.Instance,
		now:           time.Now,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employeeStore", instance.employeeStore,
		"hub", instance.hub,
	)
	Instance = instance
}

type impl struct {
	store         suspensionstore.Provider
	employeeStore employeestore.Provider
	hub           connectionhub.Provider
	now           func() time.Time
}

func (i impl) Suspend(actorID string, request suspensionapimodels.SuspendRequest) (id string, hMsg string, err error) {
	logger := log.
		WithField("employee_id", request.EmployeeID).
		WithField("actor_id", actorID)
	employee, err := i.employeeStore.GetByID(request.EmployeeID, false)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка получения сотрудника")
	}
	if employee == nil {
		return "", "сотрудник не найден", nil
	}
	if employee.ID == actorID {
		return "", "нельзя отстранить самого себя", nil
	}
	openRec, err := i.store.GetOpenByEmployee(request.EmployeeID)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка проверки текущего отстранения")
	}
	if openRec != nil {
		return "", fmt.Sprintf("сотрудник уже в списке отстраненных (%s)", openRec.Status.ToHuman()), nil
	}
	rec := dbmodels.Suspension{
		EmployeeID:   request.EmployeeID,
		Reason:       request.Reason,
		DurationDays: request.DurationDays,
		SuspendedBy:  i.actorName(actorID),
		SuspendedAt:  i.now(),
		Status:       models.SuspensionActive,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания записи об отстранении")
	}
	logger.WithField("rec_id", id).Info("сотрудник отстранен")
	i.push()
	return id, "", nil
}

func (i impl) List(filter suspensionapimodels.SuspensionFilter) (list []suspensionapimodels.SuspensionView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]suspensionapimodels.SuspensionView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, suspensionapimodels.SuspensionConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Get(id string) (item suspensionapimodels.SuspensionView, hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return suspensionapimodels.SuspensionView{}, "", err
	}
	if rec == nil {
		return suspensionapimodels.SuspensionView{}, "запись об отстранении не найдена", nil
	}
	return suspensionapimodels.SuspensionConvert(*rec), "", nil
}

func (i impl) MarkForReview(id string) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "запись об отстранении не найдена", nil
	}
	if rec.Status != models.SuspensionActive {
		return fmt.Sprintf("нельзя передать на рассмотрение запись в статусе «%s»", rec.Status.ToHuman()), nil
	}
	now := i.now()
	err = i.store.Update(id, map[string]interface{}{
		"status":      models.SuspensionPendingReview,
		"reviewed_at": &now,
	})
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("отстранение передано на рассмотрение")
	i.push()
	return "", nil
}

func (i impl) Reinstate(actorID, id string) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "запись об отстранении не найдена", nil
	}
	if !rec.Status.IsOpen() {
		return "сотрудник уже восстановлен", nil
	}
	now := i.now()
	err = i.store.Update(id, map[string]interface{}{
		"status":        models.SuspensionReinstated,
		"reinstated_by": i.actorName(actorID),
		"reinstated_at": &now,
	})
	if err != nil {
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("employee_id", rec.EmployeeID).
		Info("сотрудник восстановлен")
	i.push()
	return "", nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("запись об отстранении удалена")
	i.push()
	return nil
}

func (i impl) IsSuspended(employeeID string) (bool, error) {
	set, err := i.SuspendedSet()
	if err != nil {
		return false, err
	}
	return set[employeeID], nil
}

func (i impl) SuspendedSet() (map[string]bool, error) {
	ids, err := i.store.SuspendedEmployeeIDs()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка отстраненных")
	}
	result := make(map[string]bool, len(ids))
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}

// ProcessExpired переводит отстранения с истекшим сроком на рассмотрение
func (i impl) ProcessExpired() (moved int, err error) {
	list, err := i.store.ListByStatus(models.SuspensionActive)
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения активных отстранений")
	}
	now := i.now()
	for _, rec := range list {
		if !rec.IsExpired(now) {
			continue
		}
		err = i.store.Update(rec.ID, map[string]interface{}{
			"status":      models.SuspensionPendingReview,
			"reviewed_at": &now,
		})
		if err != nil {
			log.
				WithField("rec_id", rec.ID).
				WithError(err).
				Error("ошибка перевода отстранения на рассмотрение")
			continue
		}
		moved++
	}
	if moved != 0 {
		i.push()
	}
	return moved, nil
}

func (i impl) actorName(actorID string) string {
	if actorID == "" {
		return models.SystemUser
	}
	actor, err := i.employeeStore.GetByID(actorID, true)
	if err != nil || actor == nil {
		return actorID
	}
	return actor.Name
}

func (i impl) push() {
	i.hub.Broadcast(models.PushSuspensionsChanged, "")
	i.hub.Broadcast(models.PushEmployeesChanged, "")
}
