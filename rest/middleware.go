package rest

import (
	"craftscape-character/account"
	"net/http"
	"strconv"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/sirupsen/logrus"
)

const (
	ID    = "ACCOUNT_ID"
	Name  = "ACCOUNT_NAME"
	Staff = "ACCOUNT_STAFF"
)

type SpanHandler func(l logrus.FieldLogger, span opentracing.Span) http.HandlerFunc

func RetrieveSpan(l logrus.FieldLogger, name string, next SpanHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sctx, _ := opentracing.GlobalTracer().Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(r.Header))
		span := opentracing.StartSpan(name, ext.RPCServerOption(sctx))
		defer span.Finish()
		next(l, span)(w, r)
	}
}

type AccountHandler func(a account.Model) http.HandlerFunc

// ParseAccount resolves the caller identity the gateway attached to the
// request. Requests without an account id are rejected outright.
func ParseAccount(l logrus.FieldLogger, next AccountHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.Header.Get(ID))
		if err != nil {
			l.WithError(err).Errorf("Unable to properly parse account id from header.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		staff, err := strconv.ParseBool(r.Header.Get(Staff))
		if err != nil {
			staff = false
		}
		a := account.Model{
			Id:    uint32(id),
			Name:  r.Header.Get(Name),
			Staff: staff,
		}
		next(a)(w, r)
	}
}
