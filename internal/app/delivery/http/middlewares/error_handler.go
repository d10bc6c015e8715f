package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"scheduling-service/internal/pkg/constvars"
	"scheduling-service/internal/pkg/exceptions"
	"scheduling-service/internal/pkg/utils"

	"go.uber.org/zap"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("%v", x)
				}

				m.Log.Error(constvars.ErrDevServerPanicRecovered,
					zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
					zap.Error(err),
					zap.Stack("stack"),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
