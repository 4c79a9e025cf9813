package logmanager

// Context identifies which daemon subsystem a logger speaks for. The set is
// closed: a Context is only ever used as a lookup key, never instantiated or
// destroyed, and values outside the enumeration are programming errors that
// every manager operation rejects.
type Context int

const (
	Parser Context = iota
	Generator
	Session
	SessionManager
	ChildSession
	Message
	ThreadPool
	Worker
	Scheduler
	Sender
	Receiver
	Socket
	Tester
	Daemon
	ConfigurationManager
	EncryptionPayload

	contextCount // sentinel, keep last
)

var contextNames = [contextCount]string{
	Parser:               "parser",
	Generator:            "generator",
	Session:              "session",
	SessionManager:       "session-manager",
	ChildSession:         "child-session",
	Message:              "message",
	ThreadPool:           "thread-pool",
	Worker:               "worker",
	Scheduler:            "scheduler",
	Sender:               "sender",
	Receiver:             "receiver",
	Socket:               "socket",
	Tester:               "tester",
	Daemon:               "daemon",
	ConfigurationManager: "configuration-manager",
	EncryptionPayload:    "encryption-payload",
}

// String returns the display name of the context. It doubles as the default
// logger label when CreateLogger is called with an empty name.
func (c Context) String() string {
	if !c.valid() {
		return "unknown"
	}
	return contextNames[c]
}

func (c Context) valid() bool {
	return c >= 0 && c < contextCount
}

// Contexts returns every valid subsystem context, in declaration order.
func Contexts() []Context {
	all := make([]Context, 0, contextCount)
	for c := Context(0); c < contextCount; c++ {
		all = append(all, c)
	}
	return all
}
