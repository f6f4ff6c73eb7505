package core

// Logger logs messages and reports errors.
// args may hold errors, map[string]interface{} extras and a Person identifying the authenticated caller.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

// Person identifies the authenticated caller attached to a log entry.
type Person struct {
	ID    string
	Name  string
	Email string
}
