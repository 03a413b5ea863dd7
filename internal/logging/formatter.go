package logging

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"qr-generator/internal/constants"
)

// PipeFormatter renders entries as "timestamp | LEVEL | message".
//
// Extra fields are appended to the message as key=value pairs. An error
// attached with WithError is appended after a colon and its wrapped chain
// is written on the following lines, one indented line per layer.
type PipeFormatter struct {
	TimestampFormat string
}

// Format implements logrus.Formatter
func (f *PipeFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = constants.LogTimestampFormat
	}

	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	b.WriteString(entry.Time.Format(layout))
	b.WriteString(constants.LogSeparator)
	b.WriteString(levelName(entry.Level))
	b.WriteString(constants.LogSeparator)
	b.WriteString(entry.Message)

	var errField error
	keys := make([]string, 0, len(entry.Data))
	for k, v := range entry.Data {
		if k == logrus.ErrorKey {
			if err, ok := v.(error); ok {
				errField = err
				continue
			}
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
	}

	if errField != nil {
		b.WriteString(": ")
		b.WriteString(errField.Error())
		writeChain(b, errField)
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func writeChain(b *bytes.Buffer, err error) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		fmt.Fprintf(b, "\n\t%T: %v", e, e)
	}
}

func levelName(level logrus.Level) string {
	return strings.ToUpper(level.String())
}
