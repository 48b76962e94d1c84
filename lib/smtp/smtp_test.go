package smtp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSmtp(t *testing.T) {
	t.Run(`not configured client skips sending`, func(t *testing.T) {
		Connect("", "", "", "", false)
		require.False(t, Instance.IsConfigured())
		require.Nil(t, Instance.SendEMail("ivanov@company.ru", "тема", "текст"))
	})

	t.Run(`message headers`, func(t *testing.T) {
		msg := BuildMessage("hr@company.ru", "ivanov@company.ru", "Новая оценка", "текст")
		require.True(t, strings.HasPrefix(msg, "From: hr@company.ru\r\n"))
		require.Contains(t, msg, "Subject: HR Evaluation - Новая оценка\r\n")
		require.True(t, strings.HasSuffix(msg, "\r\n\r\nтекст\r\n"))
	})
}
