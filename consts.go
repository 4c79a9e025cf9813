package logmanager

const (
	emptyString = ""

	// logFileName is the rolling file sink inside Config.LogDir. All
	// subsystems share one file; the subsystem tag is a structured field.
	logFileName = "charon.log"
)

const (
	errMsgNilConfig        = "Log manager config is nil."
	errMsgConfigInvalid    = "Log manager configuration is invalid."
	errMsgInvalidLevel     = "Severity level is out of range."
	errMsgInvalidContext   = "Subsystem context is out of range."
	errMsgLoggerNotFound   = "Logger is not registered with this manager."
	errMsgManagerDestroyed = "Logger manager has been destroyed."
)
