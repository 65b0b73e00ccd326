package dispatch

import (
	"github.com/spf13/pflag"

	"github.com/vk/keeperctl/keeper"
)

// Override is the embedder's customisation point. The dispatcher calls the
// method matching the command after the declared flags have been applied to
// the builder and before the request is sent, so an override's setter calls
// win over flag-derived values.
//
// A method may read any flag from the set, including ones not declared in
// the base schema, and may call any builder setter. Returning a non-nil
// error aborts the invocation before the request is sent.
//
// Embed DefaultOverride to implement only the commands you care about.
type Override interface {
	ExecuteKeyGet(flags *pflag.FlagSet, req *keeper.KeyGetRequest) error
	ExecuteEnrol(flags *pflag.FlagSet, req *keeper.EnrolRequest) error
	ExecutePing(flags *pflag.FlagSet, req *keeper.PingRequest) error
	ExecuteGlobalJobs(flags *pflag.FlagSet, req *keeper.GlobalJobsRequest) error
	ExecuteReportStart(flags *pflag.FlagSet, req *keeper.ReportStartRequest) error
	ExecuteReportOutput(flags *pflag.FlagSet, req *keeper.ReportOutputRequest) error
	ExecuteReportFinish(flags *pflag.FlagSet, req *keeper.ReportFinishRequest) error
	ExecuteEventsSubscribe(flags *pflag.FlagSet, req *keeper.EventsSubscribeRequest) error
}

// DefaultOverride implements Override with a no-op success for every
// command. It is the identity override: a dispatcher built with it sends
// requests exactly as the declared flags populated them.
type DefaultOverride struct{}

var _ Override = DefaultOverride{}

// ExecuteKeyGet implements Override.
func (DefaultOverride) ExecuteKeyGet(*pflag.FlagSet, *keeper.KeyGetRequest) error {
	return nil
}

// ExecuteEnrol implements Override.
func (DefaultOverride) ExecuteEnrol(*pflag.FlagSet, *keeper.EnrolRequest) error {
	return nil
}

// ExecutePing implements Override.
func (DefaultOverride) ExecutePing(*pflag.FlagSet, *keeper.PingRequest) error {
	return nil
}

// ExecuteGlobalJobs implements Override.
func (DefaultOverride) ExecuteGlobalJobs(*pflag.FlagSet, *keeper.GlobalJobsRequest) error {
	return nil
}

// ExecuteReportStart implements Override.
func (DefaultOverride) ExecuteReportStart(*pflag.FlagSet, *keeper.ReportStartRequest) error {
	return nil
}

// ExecuteReportOutput implements Override.
func (DefaultOverride) ExecuteReportOutput(*pflag.FlagSet, *keeper.ReportOutputRequest) error {
	return nil
}

// ExecuteReportFinish implements Override.
func (DefaultOverride) ExecuteReportFinish(*pflag.FlagSet, *keeper.ReportFinishRequest) error {
	return nil
}

// ExecuteEventsSubscribe implements Override.
func (DefaultOverride) ExecuteEventsSubscribe(*pflag.FlagSet, *keeper.EventsSubscribeRequest) error {
	return nil
}
