package dispatch

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/vk/keeperctl/internal/command"
	"github.com/vk/keeperctl/internal/ctxlog"
	"github.com/vk/keeperctl/keeper"
)

// CLI executes keeper commands against one SDK client with one override. It
// holds no per-invocation state; a single CLI may serve any number of
// Execute calls, sequentially or concurrently, as the embedder sees fit.
type CLI struct {
	client *keeper.Client
	over   Override
	out    io.Writer
}

// New creates a CLI bound to the given client and output writer. A nil
// override is replaced with the identity DefaultOverride.
func New(client *keeper.Client, out io.Writer, over Override) *CLI {
	if over == nil {
		over = DefaultOverride{}
	}
	return &CLI{
		client: client,
		over:   over,
		out:    out,
	}
}

// Execute runs one command against the parsed flag set. It always completes
// with a printed outcome rather than returning one; the only abnormal exit
// is a panic when the override reports a failure.
//
// The switch is intentionally exhaustive over command.All(); an identifier
// outside the enumeration is a programmer error, not an input error.
func (c *CLI) Execute(ctx context.Context, cmd command.Command, flags *pflag.FlagSet) {
	ctxlog.FromContext(ctx).Debug("Dispatching command.", "command", cmd.Name())

	switch cmd {
	case command.KeyGet:
		c.executeKeyGet(ctx, flags)
	case command.Enrol:
		c.executeEnrol(ctx, flags)
	case command.Ping:
		c.executePing(ctx, flags)
	case command.GlobalJobs:
		c.executeGlobalJobs(ctx, flags)
	case command.ReportStart:
		c.executeReportStart(ctx, flags)
	case command.ReportOutput:
		c.executeReportOutput(ctx, flags)
	case command.ReportFinish:
		c.executeReportFinish(ctx, flags)
	case command.EventsSubscribe:
		c.executeEventsSubscribe(ctx, flags)
	default:
		panic(fmt.Sprintf("dispatch: no execution routine for command %q", cmd))
	}
}

// overrideFailed escalates an override error. The failure is deliberately a
// panic, not a reported outcome: an override rejecting a request is treated
// as unrecoverable, unlike a request failure, which is printed. The
// asymmetry is inherited behaviour; see DESIGN.md before changing it.
func overrideFailed(cmd command.Command, err error) {
	panic(fmt.Sprintf("dispatch: override for %q failed: %v", cmd, err))
}

// report prints the terminal outcome. Both the success and the error value
// go out under the same "success" label; only the debug-formatted payload
// tells them apart. Inherited behaviour, see DESIGN.md.
func (c *CLI) report(ctx context.Context, cmd command.Command, v any) {
	ctxlog.FromContext(ctx).Debug("Command reported.", "command", cmd.Name())
	fmt.Fprintf(c.out, "success\n%#v\n", v)
}

func (c *CLI) executeKeyGet(ctx context.Context, flags *pflag.FlagSet) {
	req := c.client.KeyGet()
	if flags.Changed("key") {
		v, _ := flags.GetBool("key")
		req.Key(v)
	}
	if flags.Changed("unique-key") {
		v, _ := flags.GetString("unique-key")
		req.UniqueKey(v)
	}
	if err := c.over.ExecuteKeyGet(flags, req); err != nil {
		overrideFailed(command.KeyGet, err)
	}
	res, err := req.Send(ctx)
	if err != nil {
		c.report(ctx, command.KeyGet, err)
		return
	}
	c.report(ctx, command.KeyGet, res)
}

func (c *CLI) executeEnrol(ctx context.Context, flags *pflag.FlagSet) {
	req := c.client.Enrol()
	if flags.Changed("host") {
		v, _ := flags.GetString("host")
		req.Host(v)
	}
	if flags.Changed("key") {
		v, _ := flags.GetString("key")
		req.Key(v)
	}
	if err := c.over.ExecuteEnrol(flags, req); err != nil {
		overrideFailed(command.Enrol, err)
	}
	res, err := req.Send(ctx)
	if err != nil {
		c.report(ctx, command.Enrol, err)
		return
	}
	c.report(ctx, command.Enrol, res)
}

func (c *CLI) executePing(ctx context.Context, flags *pflag.FlagSet) {
	req := c.client.Ping()
	if err := c.over.ExecutePing(flags, req); err != nil {
		overrideFailed(command.Ping, err)
	}
	res, err := req.Send(ctx)
	if err != nil {
		c.report(ctx, command.Ping, err)
		return
	}
	c.report(ctx, command.Ping, res)
}

func (c *CLI) executeGlobalJobs(ctx context.Context, flags *pflag.FlagSet) {
	req := c.client.GlobalJobs()
	if flags.Changed("limit") {
		v, _ := flags.GetInt64("limit")
		req.Limit(v)
	}
	if err := c.over.ExecuteGlobalJobs(flags, req); err != nil {
		overrideFailed(command.GlobalJobs, err)
	}
	res, err := req.Send(ctx)
	if err != nil {
		c.report(ctx, command.GlobalJobs, err)
		return
	}
	c.report(ctx, command.GlobalJobs, res)
}

func (c *CLI) executeReportStart(ctx context.Context, flags *pflag.FlagSet) {
	req := c.client.ReportStart()
	if flags.Changed("job") {
		v, _ := flags.GetString("job")
		req.Job(v)
	}
	if flags.Changed("seq") {
		v, _ := flags.GetInt64("seq")
		req.Seq(v)
	}
	if err := c.over.ExecuteReportStart(flags, req); err != nil {
		overrideFailed(command.ReportStart, err)
	}
	res, err := req.Send(ctx)
	if err != nil {
		c.report(ctx, command.ReportStart, err)
		return
	}
	c.report(ctx, command.ReportStart, res)
}

func (c *CLI) executeReportOutput(ctx context.Context, flags *pflag.FlagSet) {
	req := c.client.ReportOutput()
	if flags.Changed("job") {
		v, _ := flags.GetString("job")
		req.Job(v)
	}
	if flags.Changed("seq") {
		v, _ := flags.GetInt64("seq")
		req.Seq(v)
	}
	if flags.Changed("line") {
		v, _ := flags.GetString("line")
		req.Line(v)
	}
	if err := c.over.ExecuteReportOutput(flags, req); err != nil {
		overrideFailed(command.ReportOutput, err)
	}
	res, err := req.Send(ctx)
	if err != nil {
		c.report(ctx, command.ReportOutput, err)
		return
	}
	c.report(ctx, command.ReportOutput, res)
}

func (c *CLI) executeReportFinish(ctx context.Context, flags *pflag.FlagSet) {
	req := c.client.ReportFinish()
	if flags.Changed("job") {
		v, _ := flags.GetString("job")
		req.Job(v)
	}
	if flags.Changed("seq") {
		v, _ := flags.GetInt64("seq")
		req.Seq(v)
	}
	if flags.Changed("exit-status") {
		v, _ := flags.GetInt64("exit-status")
		req.ExitStatus(v)
	}
	if flags.Changed("duration-ms") {
		v, _ := flags.GetInt64("duration-ms")
		req.DurationMs(v)
	}
	if err := c.over.ExecuteReportFinish(flags, req); err != nil {
		overrideFailed(command.ReportFinish, err)
	}
	res, err := req.Send(ctx)
	if err != nil {
		c.report(ctx, command.ReportFinish, err)
		return
	}
	c.report(ctx, command.ReportFinish, res)
}

func (c *CLI) executeEventsSubscribe(ctx context.Context, flags *pflag.FlagSet) {
	req := c.client.EventsSubscribe()
	if flags.Changed("channel") {
		v, _ := flags.GetString("channel")
		req.Channel(v)
	}
	if flags.Changed("count") {
		v, _ := flags.GetInt64("count")
		req.Count(v)
	}
	if err := c.over.ExecuteEventsSubscribe(flags, req); err != nil {
		overrideFailed(command.EventsSubscribe, err)
	}
	res, err := req.Send(ctx)
	if err != nil {
		c.report(ctx, command.EventsSubscribe, err)
		return
	}
	c.report(ctx, command.EventsSubscribe, res)
}
