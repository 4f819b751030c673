package frontend

import (
	"net/http"

	rpc "github.com/alpacahq/rpc/rpc2"
	"github.com/alpacahq/rpc/rpc2/json2"
	"github.com/pkg/errors"

	"github.com/datejp/dateinfo/resolver"
)

// QueryRequest is the JSON-RPC request of DateService.Query.
type QueryRequest struct {
	Date string `json:"date"`
}

// QueryReply is the full date context of one query. The holiday fields
// mirror resolver.Result; BusinessDay is meaningful only when
// HolidayStatus is not "error".
type QueryReply struct {
	DateContext
	HolidayStatus  string `json:"holiday_status"`
	HolidayName    string `json:"holiday_name,omitempty"`
	HolidayType    string `json:"holiday_type,omitempty"`
	HolidayMessage string `json:"holiday_message,omitempty"`
	BusinessDay    bool   `json:"business_day"`
}

// Query computes the synchronous fields and runs the holiday lookup inline,
// bounded by the per-call API timeout. It is the JSON-RPC entrypoint of the
// presentation surface; the in-process listener path in service.go serves
// embedded consumers instead.
func (s *DateService) Query(r *http.Request, req *QueryRequest, reply *QueryReply) error {
	dc, err := s.buildContext(req.Date)
	if err != nil {
		return err
	}

	result := s.resolver.Resolve(r.Context(), req.Date)

	reply.DateContext = *dc
	reply.HolidayStatus = result.Status.String()
	reply.HolidayName = result.Name
	reply.HolidayType = result.Type
	reply.HolidayMessage = result.Message
	if result.Status != resolver.StatusError {
		reply.BusinessDayPending = false
		reply.BusinessDay = !dc.Weekend && result.Status == resolver.StatusNotHoliday
	}
	return nil
}

// RpcServer serves the DateService over JSON-RPC 2.0.
type RpcServer struct {
	*rpc.Server
}

func (s *RpcServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("dateinfo-version", Version)
	s.Server.ServeHTTP(w, r)
}

// Version is stamped at build time.
var Version = "dev"

// NewServer registers the DateService on a JSON-RPC server.
func NewServer(service *DateService) (*RpcServer, error) {
	s := &RpcServer{
		Server: rpc.NewServer(),
	}
	s.RegisterCodec(json2.NewCodec(), "application/json")
	s.RegisterCodec(json2.NewCodec(), "application/json;charset=UTF-8")
	if err := s.RegisterService(service, ""); err != nil {
		return nil, errors.Wrap(err, "failed to register the date service")
	}
	return s, nil
}
