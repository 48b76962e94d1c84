package submissionhandler

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"hr-evaluation-backend/config"
	"hr-evaluation-backend/db"
	authhandler "hr-evaluation-backend/lib/auth"
	employeestore "hr-evaluation-backend/lib/employee/store"
	"hr-evaluation-backend/lib/evaluation/approval"
	"hr-evaluation-backend/lib/evaluation/highlight"
	"hr-evaluation-backend/lib/evaluation/scoring"
	pdfexport "hr-evaluation-backend/lib/export/pdf"
	xlsexport "hr-evaluation-backend/lib/export/xls"
	filestorage "hr-evaluation-backend/lib/file-storage"
	messagetemplate "hr-evaluation-backend/lib/message-template"
	"hr-evaluation-backend/lib/smtp"
	historystore "hr-evaluation-backend/lib/submission/history-store"
	seenstore "hr-evaluation-backend/lib/submission/seen-store"
	submissionstore "hr-evaluation-backend/lib/submission/store"
	initchecker "hr-evaluation-backend/lib/utils/init-checker"
	"hr-evaluation-backend/lib/utils/lock"
	connectionhub "hr-evaluation-backend/lib/ws/hub/connection-hub"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

// Viewer пользователь, от имени которого запрашиваются оценки
type Viewer struct {
	UserID string
	Role   models.UserRole
}

type Provider interface {
	Create(evaluatorID string, request evaluationapimodels.SubmissionData) (id string, hMsg string, err error)
	List(viewer Viewer, filter evaluationapimodels.SubmissionFilter) (list []evaluationapimodels.SubmissionView, rowCount int64, err error)
	ListAll(viewer Viewer, filter evaluationapimodels.SubmissionFilter) (list []evaluationapimodels.SubmissionView, err error)
	Get(viewer Viewer, id string) (item evaluationapimodels.SubmissionView, hMsg string, err error)
	Update(viewer Viewer, id string, request evaluationapimodels.SubmissionUpdate) (hMsg string, err error)
	SignAsEmployee(ctx context.Context, employeeID, id, signature string) (hMsg string, err error)
	SignAsEvaluator(ctx context.Context, evaluatorID, id, signature string) (hMsg string, err error)
	Delete(viewer Viewer, id, password string) (hMsg string, err error)
	MarkSeen(userID string, ids []string) error
	History(viewer Viewer, id string) (list []evaluationapimodels.HistoryView, hMsg string, err error)
	ExportXls(viewer Viewer, filter evaluationapimodels.SubmissionFilter) (*bytes.Buffer, error)
	ExportPdf(ctx context.Context, viewer Viewer, id string) (body []byte, hMsg string, err error)
	PolicyFor(role models.UserRole) models.ApprovalPolicy
}

type passwordConfirmer interface {
	ConfirmPassword(userID, password string) (hMsg string, err error)
}

type mailer interface {
	SendEMail(to, subject, message string) error
}

const (
	signLockWait = 5 * time.Second

	actionCreate        = "create"
	actionUpdate        = "update"
	actionEmployeeSign  = "employee_sign"
	actionEvaluatorSign = "evaluator_sign"
)

var Instance Provider

func NewHandler() {
	instance := impl{
		store:           submissionstore.NewInstance(db.DB),
		seenStore:       seenstore.NewInstance(db.DB),
		historyStore:    historystore.NewInstance(db.DB),
		employeeStore:   employeestore.NewInstance(db.DB),
		auth:            authhandler.Instance,
		files:           filestorage.Instance,
		xls:             xlsexport.Instance,
		mail:            smtp.Instance,
		hub:             connectionhub.Instance,
		evaluatorPolicy: models.ParseApprovalPolicy(config.Conf.Evaluation.EvaluatorViewPolicy),
		fontDir:         config.Conf.Export.FontDir,
		now:             time.Now,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"seenStore", instance.seenStore,
		"historyStore", instance.historyStore,
		"employeeStore", instance.employeeStore,
		"auth", instance.auth,
		"files", instance.files,
		"xls", instance.xls,
		"mail", instance.mail,
		"hub", instance.hub,
	)
	Instance = instance
}

type impl struct {
	store           submissionstore.Provider
	seenStore       seenstore.Provider
	historyStore    historystore.Provider
	employeeStore   employeestore.Provider
	auth            passwordConfirmer
	files           filestorage.Provider
	xls             xlsexport.Provider
	mail            mailer
	hub             connectionhub.Provider
	evaluatorPolicy models.ApprovalPolicy
	fontDir         string
	now             func() time.Time
}

// PolicyFor HR и администратор всегда видят статус по двум подписям,
// для оценщика правило задается настройкой
func (i impl) PolicyFor(role models.UserRole) models.ApprovalPolicy {
	if role == models.EvaluatorRole {
		return i.evaluatorPolicy
	}
	return models.PolicyDualSignature
}

func (i impl) Create(evaluatorID string, request evaluationapimodels.SubmissionData) (id string, hMsg string, err error) {
	logger := log.
		WithField("evaluator_id", evaluatorID).
		WithField("employee_id", request.EmployeeID)
	if evaluatorID == request.EmployeeID {
		return "", "нельзя оценивать самого себя", nil
	}
	evaluator, err := i.employeeStore.GetByID(evaluatorID, false)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка получения оценщика")
	}
	if evaluator == nil {
		return "", "оценщик не найден", nil
	}
	employee, err := i.employeeStore.GetByID(request.EmployeeID, false)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка получения сотрудника")
	}
	if employee == nil {
		return "", "сотрудник не найден", nil
	}
	scores := request.EvaluationData
	rec := dbmodels.Submission{
		EmployeeID:     employee.ID,
		EmployeeName:   employee.Name,
		EvaluatorID:    evaluator.ID,
		EvaluatorName:  evaluator.Name,
		ReviewPeriod:   strings.TrimSpace(request.ReviewPeriod),
		EvaluationData: datatypes.NewJSONType(scores),
		OverallRating:  scoring.CalculateOverallRating(scores),
		SubmittedAt:    i.now(),
		Status:         models.ApprovalPending,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка сохранения оценки")
	}
	logger.
		WithField("rec_id", id).
		WithField("overall_rating", rec.OverallRating).
		Info("оценка отправлена")
	i.saveHistory(id, evaluatorID, actionCreate, dbmodels.EntityChanges{Description: "оценка отправлена"})
	i.notify(employee.Email, rec, messagetemplate.BuildEvaluationAwaitingMsg)
	i.hub.Broadcast(models.PushSubmissionsChanged, id)
	return id, "", nil
}

func (i impl) List(viewer Viewer, filter evaluationapimodels.SubmissionFilter) (list []evaluationapimodels.SubmissionView, rowCount int64, err error) {
	filter = restrictFilter(viewer, filter)
	policy := i.PolicyFor(viewer.Role)
	recList, rowCount, err := i.store.List(filter, policy)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка оценок")
	}
	list, err = i.convertList(viewer, recList, policy)
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListAll(viewer Viewer, filter evaluationapimodels.SubmissionFilter) (list []evaluationapimodels.SubmissionView, err error) {
	filter = restrictFilter(viewer, filter)
	policy := i.PolicyFor(viewer.Role)
	recList, err := i.store.ListAll(filter, policy)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка оценок")
	}
	return i.convertList(viewer, recList, policy)
}

func (i impl) Get(viewer Viewer, id string) (item evaluationapimodels.SubmissionView, hMsg string, err error) {
	rec, hMsg, err := i.getAccessible(viewer, id)
	if err != nil || hMsg != "" {
		return evaluationapimodels.SubmissionView{}, hMsg, err
	}
	list, err := i.convertList(viewer, []dbmodels.Submission{*rec}, i.PolicyFor(viewer.Role))
	if err != nil {
		return evaluationapimodels.SubmissionView{}, "", err
	}
	return list[0], "", nil
}

func (i impl) Update(viewer Viewer, id string, request evaluationapimodels.SubmissionUpdate) (hMsg string, err error) {
	rec, hMsg, err := i.getAccessible(viewer, id)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	if !viewer.Role.CanManageStaff() && rec.EvaluatorID != viewer.UserID {
		return "изменять оценку может только ее автор", nil
	}
	if approval.Derive(rec.Signatures()) == models.ApprovalFullyApproved {
		return "согласованную оценку изменить нельзя", nil
	}
	changes := dbmodels.EntityChanges{Description: "оценка изменена, подписи сброшены"}
	oldRating := rec.OverallRating
	scores := request.EvaluationData
	changes.AddChange("review_period", rec.ReviewPeriod, strings.TrimSpace(request.ReviewPeriod))
	rec.ReviewPeriod = strings.TrimSpace(request.ReviewPeriod)
	rec.EvaluationData = datatypes.NewJSONType(scores)
	rec.OverallRating = scoring.CalculateOverallRating(scores)
	changes.AddChange("overall_rating", oldRating, rec.OverallRating)
	// подписи относятся к прежнему содержанию оценки
	rec.EmployeeSignature = ""
	rec.EmployeeApprovedAt = nil
	rec.EvaluatorSignature = ""
	rec.EvaluatorApprovedAt = nil
	rec.Status = models.ApprovalPending
	err = i.store.Save(*rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка обновления оценки")
	}
	log.WithField("rec_id", id).Info("оценка обновлена")
	i.saveHistory(id, viewer.UserID, actionUpdate, changes)
	i.hub.Broadcast(models.PushSubmissionsChanged, id)
	return "", nil
}

func (i impl) SignAsEmployee(ctx context.Context, employeeID, id, signature string) (hMsg string, err error) {
	return i.sign(ctx, id, func(rec *dbmodels.Submission, now time.Time) string {
		if rec.EmployeeID != employeeID {
			return "подписать оценку может только оцениваемый сотрудник"
		}
		if rec.Signatures().EmployeeSigned() {
			return "оценка уже подписана сотрудником"
		}
		rec.EmployeeSignature = strings.TrimSpace(signature)
		rec.EmployeeApprovedAt = &now
		return ""
	}, employeeID, actionEmployeeSign)
}

func (i impl) SignAsEvaluator(ctx context.Context, evaluatorID, id, signature string) (hMsg string, err error) {
	return i.sign(ctx, id, func(rec *dbmodels.Submission, now time.Time) string {
		if rec.EvaluatorID != evaluatorID {
			return "подписать оценку может только ее автор"
		}
		if rec.Signatures().EvaluatorSigned() {
			return "оценка уже подписана оценщиком"
		}
		rec.EvaluatorSignature = strings.TrimSpace(signature)
		rec.EvaluatorApprovedAt = &now
		return ""
	}, evaluatorID, actionEvaluatorSign)
}

// sign подписи одной оценки выполняются последовательно
func (i impl) sign(ctx context.Context, id string, apply func(rec *dbmodels.Submission, now time.Time) string, actorID, action string) (hMsg string, err error) {
	var signed *dbmodels.Submission
	ok, err := lock.WithDelay(ctx, "submission_sign:"+id, signLockWait, func() error {
		rec, err := i.store.GetByID(id)
		if err != nil {
			return errors.Wrap(err, "ошибка получения оценки")
		}
		if rec == nil {
			hMsg = "оценка не найдена"
			return nil
		}
		oldStatus := approval.Derive(rec.Signatures())
		if hMsg = apply(rec, i.now()); hMsg != "" {
			return nil
		}
		rec.Status = approval.Derive(rec.Signatures())
		err = i.store.Save(*rec)
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения подписи")
		}
		changes := dbmodels.EntityChanges{Description: "оценка подписана"}
		changes.AddChange("status", string(oldStatus), string(rec.Status))
		i.saveHistory(id, actorID, action, changes)
		signed = rec
		return nil
	})
	if err != nil {
		return "", err
	}
	if !ok {
		return "оценка сейчас обрабатывается, повторите попытку", nil
	}
	if hMsg != "" || signed == nil {
		return hMsg, nil
	}
	log.
		WithField("rec_id", id).
		WithField("action", action).
		WithField("status", signed.Status).
		Info("оценка подписана")
	if action == actionEmployeeSign {
		if evaluator, err := i.employeeStore.GetByID(signed.EvaluatorID, false); err == nil && evaluator != nil {
			i.notify(evaluator.Email, *signed, messagetemplate.BuildEvaluationSignedMsg)
		}
	}
	i.hub.Broadcast(models.PushSubmissionsChanged, id)
	return "", nil
}

func (i impl) Delete(viewer Viewer, id, password string) (hMsg string, err error) {
	rec, hMsg, err := i.getAccessible(viewer, id)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	if !viewer.Role.CanManageStaff() && rec.EvaluatorID != viewer.UserID {
		return "удалить оценку может только ее автор", nil
	}
	hMsg, err = i.auth.ConfirmPassword(viewer.UserID, password)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	err = i.store.Delete(id)
	if err != nil {
		return "", errors.Wrap(err, "ошибка удаления оценки")
	}
	log.
		WithField("rec_id", id).
		WithField("actor_id", viewer.UserID).
		Info("оценка удалена")
	i.hub.Broadcast(models.PushSubmissionsChanged, id)
	return "", nil
}

func (i impl) MarkSeen(userID string, ids []string) error {
	err := i.seenStore.MarkSeen(userID, ids)
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения просмотренных оценок")
	}
	return nil
}

func (i impl) History(viewer Viewer, id string) (list []evaluationapimodels.HistoryView, hMsg string, err error) {
	_, hMsg, err = i.getAccessible(viewer, id)
	if err != nil || hMsg != "" {
		return nil, hMsg, err
	}
	recList, err := i.historyStore.List(id)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения истории оценки")
	}
	list = make([]evaluationapimodels.HistoryView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, evaluationapimodels.HistoryConvert(rec))
	}
	return list, "", nil
}

func (i impl) ExportXls(viewer Viewer, filter evaluationapimodels.SubmissionFilter) (*bytes.Buffer, error) {
	list, err := i.ListAll(viewer, filter)
	if err != nil {
		return nil, err
	}
	return i.xls.ExportSubmissionList(list)
}

func (i impl) ExportPdf(ctx context.Context, viewer Viewer, id string) (body []byte, hMsg string, err error) {
	item, hMsg, err := i.Get(viewer, id)
	if err != nil || hMsg != "" {
		return nil, hMsg, err
	}
	files := pdfexport.ReportFiles{
		EmployeeSign:  i.signatureImage(ctx, item.EmployeeID),
		EvaluatorSign: i.signatureImage(ctx, item.EvaluatorID),
	}
	body, err = pdfexport.GenerateEvaluationReport(i.fontDir, item, files)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка формирования pdf")
	}
	return body, "", nil
}

func (i impl) signatureImage(ctx context.Context, employeeID string) *models.File {
	rec, err := i.employeeStore.GetByID(employeeID, true)
	if err != nil || rec == nil || rec.Signature == "" {
		return nil
	}
	body, contentType, err := i.files.GetFile(ctx, rec.Signature)
	if err != nil {
		log.WithError(err).WithField("employee_id", employeeID).Warn("не удалось получить изображение подписи")
		return nil
	}
	ext := "png"
	if contentType == "image/jpeg" {
		ext = "jpg"
	}
	return &models.File{
		FileName:    fmt.Sprintf("sign_%s.%s", employeeID, ext),
		ContentType: contentType,
		Body:        body,
	}
}

func (i impl) getAccessible(viewer Viewer, id string) (rec *dbmodels.Submission, hMsg string, err error) {
	rec, err = i.store.GetByID(id)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения оценки")
	}
	if rec == nil {
		return nil, "оценка не найдена", nil
	}
	if !canView(viewer, *rec) {
		return nil, "нет доступа к оценке", nil
	}
	return rec, "", nil
}

func (i impl) convertList(viewer Viewer, recList []dbmodels.Submission, policy models.ApprovalPolicy) ([]evaluationapimodels.SubmissionView, error) {
	seen, err := i.seenStore.SeenSet(viewer.UserID)
	if err != nil {
		log.WithError(err).WithField("user_id", viewer.UserID).Warn("ошибка получения просмотренных оценок")
		seen = map[string]bool{}
	}
	now := i.now()
	list := make([]evaluationapimodels.SubmissionView, 0, len(recList))
	for _, rec := range recList {
		status := approval.DeriveWithPolicy(rec.Signatures(), policy)
		mark := highlight.Classify(highlight.Input{
			ID:          rec.ID,
			SubmittedAt: rec.SubmittedAt,
			Status:      status,
		}, seen, now)
		list = append(list, evaluationapimodels.SubmissionConvert(rec, status, mark))
	}
	return list, nil
}

func (i impl) saveHistory(id, userID, action string, changes dbmodels.EntityChanges) {
	err := i.historyStore.Save(dbmodels.SubmissionHistory{
		SubmissionID: id,
		UserID:       userID,
		Action:       action,
		Changes:      changes,
	})
	if err != nil {
		log.
			WithError(err).
			WithField("rec_id", id).
			Error("ошибка сохранения истории оценки")
	}
}

func (i impl) notify(email string, rec dbmodels.Submission, build func(data models.EvaluationTemplateData) (string, string, error)) {
	if email == "" {
		return
	}
	title, msg, err := build(models.EvaluationTemplateData{
		EmployeeName:  rec.EmployeeName,
		EvaluatorName: rec.EvaluatorName,
		ReviewPeriod:  rec.ReviewPeriod,
		OverallRating: rec.OverallRating,
	})
	if err != nil {
		log.WithError(err).Error("ошибка формирования письма")
		return
	}
	if err = i.mail.SendEMail(email, title, msg); err != nil {
		log.WithError(err).WithField("email", email).Warn("письмо об оценке не отправлено")
	}
}

// restrictFilter сотрудник видит только свои оценки, оценщик только выставленные им
func restrictFilter(viewer Viewer, filter evaluationapimodels.SubmissionFilter) evaluationapimodels.SubmissionFilter {
	switch viewer.Role {
	case models.EvaluatorRole:
		filter.EvaluatorID = viewer.UserID
	case models.EmployeeRole:
		filter.EmployeeID = viewer.UserID
	}
	return filter
}

func canView(viewer Viewer, rec dbmodels.Submission) bool {
	if viewer.Role.CanManageStaff() {
		return true
	}
	return rec.EvaluatorID == viewer.UserID || rec.EmployeeID == viewer.UserID
}
