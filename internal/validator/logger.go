// ABOUTME: Structural check for logger objects handed to the framework
// ABOUTME: Reports every missing logging method in a single error
package validator

import "strings"

// Logger is the logging capability a framework host must provide.
type Logger interface {
	Log(msg any, keyvals ...any)
	Error(msg any, keyvals ...any)
	Info(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
}

type (
	logMethod   interface{ Log(msg any, keyvals ...any) }
	errorMethod interface{ Error(msg any, keyvals ...any) }
	infoMethod  interface{ Info(msg any, keyvals ...any) }
	warnMethod  interface{ Warn(msg any, keyvals ...any) }
)

// loggerMethods lists the required methods in the order they are reported.
var loggerMethods = []struct {
	name string
	has  func(any) bool
}{
	{"log", implements[logMethod]},
	{"error", implements[errorMethod]},
	{"info", implements[infoMethod]},
	{"warn", implements[warnMethod]},
}

func implements[T any](v any) bool {
	_, ok := v.(T)
	return ok
}

// InspectLogger returns candidate as a Logger when it has all four logging
// methods. Otherwise the error names each missing method.
func InspectLogger(candidate any, newErr ErrorFunc) (Logger, error) {
	var missing []string
	for _, m := range loggerMethods {
		if !m.has(candidate) {
			missing = append(missing, m.name)
		}
	}
	if len(missing) > 0 {
		return nil, newErr("Logger object provided is missing " + strings.Join(missing, ", ") + " methods.")
	}
	return candidate.(Logger), nil
}
