// ABOUTME: Tests for logger shape validation
// ABOUTME: Uses fake loggers with subsets of the required methods
package validator_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pomframework/pomutils/internal/validator"
)

type fullLogger struct{ lines []string }

func (l *fullLogger) Log(msg any, keyvals ...any)   { l.lines = append(l.lines, "log") }
func (l *fullLogger) Error(msg any, keyvals ...any) { l.lines = append(l.lines, "error") }
func (l *fullLogger) Info(msg any, keyvals ...any)  { l.lines = append(l.lines, "info") }
func (l *fullLogger) Warn(msg any, keyvals ...any)  { l.lines = append(l.lines, "warn") }

type noWarnLogger struct{}

func (noWarnLogger) Log(msg any, keyvals ...any)   {}
func (noWarnLogger) Error(msg any, keyvals ...any) {}
func (noWarnLogger) Info(msg any, keyvals ...any)  {}

type printfLogger struct{}

func (printfLogger) Log(format string, args ...any) {}
func (printfLogger) Info(msg any, keyvals ...any)   {}

var _ = Describe("InspectLogger", func() {
	newErr := func(msg string) error { return errors.New(msg) }

	It("returns the same logger when every method is present", func() {
		l := &fullLogger{}
		got, err := validator.InspectLogger(l, newErr)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(BeIdenticalTo(l))

		got.Warn("chained")
		Expect(l.lines).To(Equal([]string{"warn"}))
	})

	It("lists only warn when warn is missing", func() {
		_, err := validator.InspectLogger(noWarnLogger{}, newErr)
		Expect(err).To(MatchError("Logger object provided is missing warn methods."))
	})

	It("lists missing methods in check order", func() {
		_, err := validator.InspectLogger(printfLogger{}, newErr)
		Expect(err).To(MatchError("Logger object provided is missing log, error, warn methods."))
	})

	It("reports all methods for nil", func() {
		_, err := validator.InspectLogger(nil, newErr)
		Expect(err).To(MatchError("Logger object provided is missing log, error, info, warn methods."))
	})

	It("rejects values without methods", func() {
		_, err := validator.InspectLogger(map[string]any{"log": func() {}}, newErr)
		Expect(err).To(HaveOccurred())
	})
})
