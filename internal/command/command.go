package command

import "fmt"

// Command identifies one supported keeper operation. The zero value is not
// a valid command.
type Command int

const (
	// KeyGet looks up a stored key.
	KeyGet Command = iota + 1
	// Enrol registers a host with the keeper service.
	Enrol
	// Ping checks service liveness.
	Ping
	// GlobalJobs lists jobs across all hosts.
	GlobalJobs
	// ReportStart records the start of a job.
	ReportStart
	// ReportOutput records one line of job output.
	ReportOutput
	// ReportFinish records the end of a job.
	ReportFinish
	// EventsSubscribe follows the live event stream.
	EventsSubscribe
)

// All returns every supported command in declaration order. The slice is
// freshly allocated on each call; callers may mutate it freely.
func All() []Command {
	return []Command{
		KeyGet,
		Enrol,
		Ping,
		GlobalJobs,
		ReportStart,
		ReportOutput,
		ReportFinish,
		EventsSubscribe,
	}
}

// Name returns the sub-command name used on the command line.
func (c Command) Name() string {
	switch c {
	case KeyGet:
		return "key-get"
	case Enrol:
		return "enrol"
	case Ping:
		return "ping"
	case GlobalJobs:
		return "global-jobs"
	case ReportStart:
		return "report-start"
	case ReportOutput:
		return "report-output"
	case ReportFinish:
		return "report-finish"
	case EventsSubscribe:
		return "events-subscribe"
	}
	panic(fmt.Sprintf("command: unknown command %d", int(c)))
}

// String implements fmt.Stringer.
func (c Command) String() string {
	return c.Name()
}
