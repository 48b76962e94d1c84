package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-evaluation-backend/config"
	s3client "hr-evaluation-backend/s3"
)

type FileKind string

const (
	AvatarFile    FileKind = "avatar"
	SignatureFile FileKind = "signature"
)

const maxImageSize = 5 << 20

var ErrNotConfigured = errors.New("файловое хранилище не настроено")

type Provider interface {
	UploadEmployeeFile(ctx context.Context, employeeID string, kind FileKind, body []byte) (key string, hMsg string, err error)
	GetFile(ctx context.Context, key string) (body []byte, contentType string, err error)
	DeleteFile(ctx context.Context, key string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		client:     s3client.Client,
		bucketName: config.Conf.S3.BucketName,
	}
}

type impl struct {
	client     *minio.Client
	bucketName string
}

func (i impl) UploadEmployeeFile(ctx context.Context, employeeID string, kind FileKind, body []byte) (key string, hMsg string, err error) {
	if i.client == nil {
		return "", "", ErrNotConfigured
	}
	hMsg, contentType := CheckImage(body)
	if hMsg != "" {
		return "", hMsg, nil
	}
	key = ObjectKey(employeeID, kind)
	_, err = i.client.PutObject(ctx, i.bucketName, key, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка загрузки файла в S3")
	}
	log.
		WithField("employee_id", employeeID).
		WithField("file_kind", kind).
		Info("файл сотрудника загружен")
	return key, "", nil
}

func (i impl) GetFile(ctx context.Context, key string) (body []byte, contentType string, err error) {
	if i.client == nil {
		return nil, "", ErrNotConfigured
	}
	obj, err := i.client.GetObject(ctx, i.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения файла из S3")
	}
	defer obj.Close()
	info, err := obj.Stat()
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения информации о файле")
	}
	body, err = io.ReadAll(obj)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка чтения файла")
	}
	return body, info.ContentType, nil
}

func (i impl) DeleteFile(ctx context.Context, key string) error {
	if i.client == nil {
		return ErrNotConfigured
	}
	err := i.client.RemoveObject(ctx, i.bucketName, key, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "ошибка удаления файла из S3")
	}
	return nil
}

func ObjectKey(employeeID string, kind FileKind) string {
	return fmt.Sprintf("employees/%s/%s", employeeID, kind)
}

// CheckImage проверяет размер и тип изображения
func CheckImage(body []byte) (hMsg string, contentType string) {
	if len(body) == 0 {
		return "файл не передан", ""
	}
	if len(body) > maxImageSize {
		return "размер файла превышает 5 МБ", ""
	}
	contentType = http.DetectContentType(body)
	switch contentType {
	case "image/png", "image/jpeg", "image/gif", "image/webp":
		return "", contentType
	}
	return "допустимы только изображения png, jpeg, gif, webp", ""
}
