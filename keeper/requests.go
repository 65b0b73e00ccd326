package keeper

import (
	"context"
	"strconv"
)

// KeyGetRequest is the builder for the key lookup operation. The key and
// unique_key query parameters deliberately overlap in meaning; the service
// resolves the pair, the builder just carries whatever was set.
type KeyGetRequest struct {
	client    *Client
	key       *bool
	uniqueKey *string
}

// KeyGet returns a fresh builder for the key lookup operation.
func (c *Client) KeyGet() *KeyGetRequest {
	return &KeyGetRequest{client: c}
}

// Key sets the key query parameter.
func (r *KeyGetRequest) Key(v bool) *KeyGetRequest {
	r.key = &v
	return r
}

// UniqueKey sets the unique_key query parameter.
func (r *KeyGetRequest) UniqueKey(v string) *KeyGetRequest {
	r.uniqueKey = &v
	return r
}

// Send issues the request and blocks until the service replies.
func (r *KeyGetRequest) Send(ctx context.Context) (*KeyInfo, error) {
	req := r.client.newRequest(ctx)
	if r.key != nil {
		req.SetQueryParam("key", strconv.FormatBool(*r.key))
	}
	if r.uniqueKey != nil {
		req.SetQueryParam("unique_key", *r.uniqueKey)
	}
	var out KeyInfo
	res, err := req.SetResult(&out).SetError(&Error{}).Get("/v1/key")
	if err := checkResponse(res, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// EnrolRequest is the builder for the host enrolment operation.
type EnrolRequest struct {
	client *Client
	body   struct {
		Host *string `json:"host,omitempty"`
		Key  *string `json:"key,omitempty"`
	}
}

// Enrol returns a fresh builder for the host enrolment operation.
func (c *Client) Enrol() *EnrolRequest {
	return &EnrolRequest{client: c}
}

// Host sets the host body field.
func (r *EnrolRequest) Host(v string) *EnrolRequest {
	r.body.Host = &v
	return r
}

// Key sets the key body field.
func (r *EnrolRequest) Key(v string) *EnrolRequest {
	r.body.Key = &v
	return r
}

// Send issues the request and blocks until the service replies.
func (r *EnrolRequest) Send(ctx context.Context) (*Enrolment, error) {
	var out Enrolment
	res, err := r.client.newRequest(ctx).
		SetBody(r.body).
		SetResult(&out).
		SetError(&Error{}).
		Post("/v1/enrol")
	if err := checkResponse(res, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// PingRequest is the builder for the liveness operation. It has no fields.
type PingRequest struct {
	client *Client
}

// Ping returns a fresh builder for the liveness operation.
func (c *Client) Ping() *PingRequest {
	return &PingRequest{client: c}
}

// Send issues the request and blocks until the service replies.
func (r *PingRequest) Send(ctx context.Context) (*Pong, error) {
	var out Pong
	res, err := r.client.newRequest(ctx).
		SetResult(&out).
		SetError(&Error{}).
		Get("/v1/ping")
	if err := checkResponse(res, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// GlobalJobsRequest is the builder for the global job listing operation.
type GlobalJobsRequest struct {
	client *Client
	limit  *int64
}

// GlobalJobs returns a fresh builder for the global job listing operation.
func (c *Client) GlobalJobs() *GlobalJobsRequest {
	return &GlobalJobsRequest{client: c}
}

// Limit caps the number of jobs returned.
func (r *GlobalJobsRequest) Limit(v int64) *GlobalJobsRequest {
	r.limit = &v
	return r
}

// Send issues the request and blocks until the service replies.
func (r *GlobalJobsRequest) Send(ctx context.Context) ([]Job, error) {
	req := r.client.newRequest(ctx)
	if r.limit != nil {
		req.SetQueryParam("limit", strconv.FormatInt(*r.limit, 10))
	}
	var out []Job
	res, err := req.SetResult(&out).SetError(&Error{}).Get("/v1/jobs")
	if err := checkResponse(res, err); err != nil {
		return nil, err
	}
	return out, nil
}

// reportBody is shared by the three report ingestion builders; the service
// ignores fields that do not apply to a given record kind.
type reportBody struct {
	Job        *string `json:"job,omitempty"`
	Seq        *int64  `json:"seq,omitempty"`
	Line       *string `json:"line,omitempty"`
	ExitStatus *int64  `json:"exit_status,omitempty"`
	DurationMs *int64  `json:"duration_ms,omitempty"`
}

// ReportStartRequest is the builder for the start-of-job report operation.
type ReportStartRequest struct {
	client *Client
	body   reportBody
}

// ReportStart returns a fresh builder for the start-of-job report operation.
func (c *Client) ReportStart() *ReportStartRequest {
	return &ReportStartRequest{client: c}
}

// Job sets the job body field.
func (r *ReportStartRequest) Job(v string) *ReportStartRequest {
	r.body.Job = &v
	return r
}

// Seq sets the seq body field.
func (r *ReportStartRequest) Seq(v int64) *ReportStartRequest {
	r.body.Seq = &v
	return r
}

// Send issues the request and blocks until the service replies.
func (r *ReportStartRequest) Send(ctx context.Context) (*ReportAck, error) {
	var out ReportAck
	res, err := r.client.newRequest(ctx).
		SetBody(r.body).
		SetResult(&out).
		SetError(&Error{}).
		Post("/v1/report/start")
	if err := checkResponse(res, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReportOutputRequest is the builder for the job output report operation.
type ReportOutputRequest struct {
	client *Client
	body   reportBody
}

// ReportOutput returns a fresh builder for the job output report operation.
func (c *Client) ReportOutput() *ReportOutputRequest {
	return &ReportOutputRequest{client: c}
}

// Job sets the job body field.
func (r *ReportOutputRequest) Job(v string) *ReportOutputRequest {
	r.body.Job = &v
	return r
}

// Seq sets the seq body field.
func (r *ReportOutputRequest) Seq(v int64) *ReportOutputRequest {
	r.body.Seq = &v
	return r
}

// Line sets the line body field.
func (r *ReportOutputRequest) Line(v string) *ReportOutputRequest {
	r.body.Line = &v
	return r
}

// Send issues the request and blocks until the service replies.
func (r *ReportOutputRequest) Send(ctx context.Context) (*ReportAck, error) {
	var out ReportAck
	res, err := r.client.newRequest(ctx).
		SetBody(r.body).
		SetResult(&out).
		SetError(&Error{}).
		Post("/v1/report/output")
	if err := checkResponse(res, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReportFinishRequest is the builder for the end-of-job report operation.
type ReportFinishRequest struct {
	client *Client
	body   reportBody
}

// ReportFinish returns a fresh builder for the end-of-job report operation.
func (c *Client) ReportFinish() *ReportFinishRequest {
	return &ReportFinishRequest{client: c}
}

// Job sets the job body field.
func (r *ReportFinishRequest) Job(v string) *ReportFinishRequest {
	r.body.Job = &v
	return r
}

// Seq sets the seq body field.
func (r *ReportFinishRequest) Seq(v int64) *ReportFinishRequest {
	r.body.Seq = &v
	return r
}

// ExitStatus sets the exit_status body field.
func (r *ReportFinishRequest) ExitStatus(v int64) *ReportFinishRequest {
	r.body.ExitStatus = &v
	return r
}

// DurationMs sets the duration_ms body field.
func (r *ReportFinishRequest) DurationMs(v int64) *ReportFinishRequest {
	r.body.DurationMs = &v
	return r
}

// Send issues the request and blocks until the service replies.
func (r *ReportFinishRequest) Send(ctx context.Context) (*ReportAck, error) {
	var out ReportAck
	res, err := r.client.newRequest(ctx).
		SetBody(r.body).
		SetResult(&out).
		SetError(&Error{}).
		Post("/v1/report/finish")
	if err := checkResponse(res, err); err != nil {
		return nil, err
	}
	return &out, nil
}
