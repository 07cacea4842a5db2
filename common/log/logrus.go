// Package log configures the logrus standard logger.
package log

import (
	"strings"

	E "github.com/shaldengeki/crafting-interpreters/common/exceptions"

	"github.com/sirupsen/logrus"
)

func init() {
	logrus.StandardLogger().Formatter.(*logrus.TextFormatter).DisableTimestamp = true
	logrus.AddHook(new(TaggedHook))
}

// NewLogger returns an entry whose messages are prefixed with [tag].
func NewLogger(tag string) *logrus.Entry {
	return logrus.NewEntry(logrus.StandardLogger()).WithField("tag", tag)
}

// SetLevel sets the standard logger level from a logrus level name.
func SetLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return E.Cause(err, "parse log level")
	}
	logrus.SetLevel(level)
	return nil
}

// TaggedHook moves the tag field of an entry into its message.
type TaggedHook struct{}

func (h *TaggedHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *TaggedHook) Fire(entry *logrus.Entry) error {
	if tagObj, loaded := entry.Data["tag"]; loaded {
		tag := tagObj.(string)
		delete(entry.Data, "tag")
		entry.Message = strings.ReplaceAll(entry.Message, tag+": ", "")
		entry.Message = "[" + tag + "]: " + entry.Message
	}
	return nil
}
