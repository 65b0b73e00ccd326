package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Schema constructs the argument schema for one command as a bare cobra
// command: name, help text, and flag declarations only. The caller owns the
// returned value and attaches its own run function; a fresh value is built
// on every call.
//
// Every flag is optional. An absent flag means "leave that field to the
// builder's default", never an error.
func Schema(c Command) *cobra.Command {
	switch c {
	case KeyGet:
		return schemaKeyGet()
	case Enrol:
		return schemaEnrol()
	case Ping:
		return schemaPing()
	case GlobalJobs:
		return schemaGlobalJobs()
	case ReportStart:
		return schemaReportStart()
	case ReportOutput:
		return schemaReportOutput()
	case ReportFinish:
		return schemaReportFinish()
	case EventsSubscribe:
		return schemaEventsSubscribe()
	}
	panic(fmt.Sprintf("command: no schema for command %d", int(c)))
}

func schemaKeyGet() *cobra.Command {
	cmd := &cobra.Command{
		Use:   KeyGet.Name(),
		Short: "Look up a stored key",
	}
	// "key" shares its name with the path-level concept of the same
	// operation; "unique-key" is never derived from anywhere else. The
	// overlap is resolved, if at all, by an override hook.
	cmd.Flags().Bool("key", false, "Resolve the key by its path-level name.")
	cmd.Flags().String("unique-key", "", "Resolve the key by its unique identifier.")
	return cmd
}

func schemaEnrol() *cobra.Command {
	cmd := &cobra.Command{
		Use:   Enrol.Name(),
		Short: "Register this host with the keeper service",
	}
	cmd.Flags().String("host", "", "Host name to enrol under. Shadows the global --host; the endpoint then comes from KEEPER_HOST or a profile.")
	cmd.Flags().String("key", "", "Pre-shared enrolment key.")
	return cmd
}

func schemaPing() *cobra.Command {
	return &cobra.Command{
		Use:   Ping.Name(),
		Short: "Check that the keeper service is alive",
	}
}

func schemaGlobalJobs() *cobra.Command {
	cmd := &cobra.Command{
		Use:   GlobalJobs.Name(),
		Short: "List jobs across all hosts",
	}
	cmd.Flags().Int64("limit", 0, "Maximum number of jobs to return.")
	return cmd
}

func schemaReportStart() *cobra.Command {
	cmd := &cobra.Command{
		Use:   ReportStart.Name(),
		Short: "Record the start of a job",
	}
	cmd.Flags().String("job", "", "Job identifier the record belongs to.")
	cmd.Flags().Int64("seq", 0, "Sequence number of the record.")
	return cmd
}

func schemaReportOutput() *cobra.Command {
	cmd := &cobra.Command{
		Use:   ReportOutput.Name(),
		Short: "Record one line of job output",
	}
	cmd.Flags().String("job", "", "Job identifier the record belongs to.")
	cmd.Flags().Int64("seq", 0, "Sequence number of the record.")
	cmd.Flags().String("line", "", "Output line to record.")
	return cmd
}

func schemaReportFinish() *cobra.Command {
	cmd := &cobra.Command{
		Use:   ReportFinish.Name(),
		Short: "Record the end of a job",
	}
	cmd.Flags().String("job", "", "Job identifier the record belongs to.")
	cmd.Flags().Int64("seq", 0, "Sequence number of the record.")
	cmd.Flags().Int64("exit-status", 0, "Exit status of the finished job.")
	cmd.Flags().Int64("duration-ms", 0, "Wall-clock duration of the job in milliseconds.")
	return cmd
}

func schemaEventsSubscribe() *cobra.Command {
	cmd := &cobra.Command{
		Use:   EventsSubscribe.Name(),
		Short: "Follow the live keeper event stream",
	}
	cmd.Flags().String("channel", "", "Event channel to subscribe to.")
	cmd.Flags().Int64("count", 0, "Number of events to collect before returning.")
	return cmd
}
