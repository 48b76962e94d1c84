package authhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-evaluation-backend/config"
	"hr-evaluation-backend/db"
	employeestore "hr-evaluation-backend/lib/employee/store"
	suspensionhandler "hr-evaluation-backend/lib/suspension"
	authutils "hr-evaluation-backend/lib/utils/auth-utils"
	initchecker "hr-evaluation-backend/lib/utils/init-checker"
	authapimodels "hr-evaluation-backend/models/api/auth"
)

var (
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrAccountDisabled    = errors.New("учетная запись отключена")
	ErrAccountSuspended   = errors.New("учетная запись отстранена")
)

type Provider interface {
	Login(email, password string) (response authapimodels.LoginResponse, err error)
	Me(userID string) (user authapimodels.CurrentUser, err error)
	// ConfirmPassword проверка пароля перед необратимым действием
	ConfirmPassword(userID, password string) (hMsg string, err error)
	ChangePassword(userID string, request authapimodels.PasswordChange) (hMsg string, err error)
}

type suspensionChecker interface {
	IsSuspended(employeeID string) (bool, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		employeeStore: employeestore.NewInstance(db.DB),
		suspensions:   suspensionhandler.Instance,
		jwtSecret:     config.Conf.Auth.JWTSecret,
		jwtExpire:     config.Conf.Auth.JWTExpireInSec,
	}
	initchecker.CheckInit(
		"employeeStore", instance.employeeStore,
		"suspensions", instance.suspensions,
	)
	Instance = instance
}

type impl struct {
	employeeStore employeestore.Provider
	suspensions   suspensionChecker
	jwtSecret     string
	jwtExpire     int
}

func (i impl) Login(email, password string) (response authapimodels.LoginResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.employeeStore.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка поиска пользователя по почте")
		return authapimodels.LoginResponse{}, err
	}
	if user == nil || user.IsDeleted() {
		logger.Debug("пользователь с такой почтой не найден")
		return authapimodels.LoginResponse{}, ErrInvalidCredentials
	}
	if !authutils.CheckPassword(user.Password, password) {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.LoginResponse{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return authapimodels.LoginResponse{}, ErrAccountDisabled
	}
	suspended, err := i.suspensions.IsSuspended(user.ID)
	if err != nil {
		return authapimodels.LoginResponse{}, err
	}
	if suspended {
		return authapimodels.LoginResponse{}, ErrAccountSuspended
	}
	tokenString, err := authutils.GetToken(i.jwtSecret, i.jwtExpire, user.ID, user.Name, user.Role)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.LoginResponse{}, err
	}
	now := time.Now()
	err = i.employeeStore.Update(user.ID, map[string]interface{}{"last_login": &now})
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка обновления даты последнего входа")
	}
	return authapimodels.LoginResponse{
		Token: tokenString,
		User:  authapimodels.CurrentUserConvert(*user),
	}, nil
}

func (i impl) Me(userID string) (user authapimodels.CurrentUser, err error) {
	rec, err := i.employeeStore.GetByID(userID, false)
	if err != nil {
		return authapimodels.CurrentUser{}, err
	}
	if rec == nil {
		return authapimodels.CurrentUser{}, errors.New("пользователь не найден")
	}
	return authapimodels.CurrentUserConvert(*rec), nil
}

func (i impl) ConfirmPassword(userID, password string) (hMsg string, err error) {
	rec, err := i.employeeStore.GetByID(userID, false)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения пользователя")
	}
	if rec == nil {
		return "пользователь не найден", nil
	}
	if !authutils.CheckPassword(rec.Password, password) {
		log.WithField("user_id", userID).Warn("неверный пароль при подтверждении действия")
		return "неверный пароль", nil
	}
	return "", nil
}

func (i impl) ChangePassword(userID string, request authapimodels.PasswordChange) (hMsg string, err error) {
	hMsg, err = i.ConfirmPassword(userID, request.CurrentPassword)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	hash, err := authutils.HashPassword(request.NewPassword)
	if err != nil {
		return "", err
	}
	err = i.employeeStore.Update(userID, map[string]interface{}{"password": hash})
	if err != nil {
		return "", errors.Wrap(err, "ошибка смены пароля")
	}
	log.WithField("user_id", userID).Info("пароль изменен")
	return "", nil
}
