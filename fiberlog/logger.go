package fiberlog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// getLogrusFields calls FuncTag functions on matching keys
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		strValue, ok := value.(string)
		if ok {
			if strValue != "" {
				f[k] = strValue
			}
		} else {
			f[k] = value
		}
	}
	return f
}

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	ftm := getFuncTagMap(cfg)
	pid := os.Getpid()
	return func(c *fiber.Ctx) error {
		if skip(cfg.SkipPaths, c.Path()) {
			return c.Next()
		}
		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		message := getMessage(c)
		fields := getLogrusFields(ftm, c, d)
		if err != nil {
			fields[log.ErrorKey] = err.Error()
		}
		var entry *log.Entry
		if cfg.Logger == nil {
			entry = log.WithFields(fields)
		} else {
			entry = cfg.Logger.WithFields(fields)
		}
		switch status := c.Response().StatusCode(); {
		case status >= fiber.StatusInternalServerError:
			entry.Error(message)
		case status >= fiber.StatusMultipleChoices:
			entry.Warn(message)
		default:
			entry.Info(message)
		}
		return err
	}
}

func getMessage(c *fiber.Ctx) string {
	return fmt.Sprintf("запрос api %s %s", c.Method(), c.Path())
}

func skip(paths []string, path string) bool {
	for _, p := range paths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
