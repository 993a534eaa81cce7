package http

import (
	"net/http"

	"github.com/fwojciec/pagescrape"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	pagescrape.EINVALID:  http.StatusBadRequest,
	pagescrape.ENOTFOUND: http.StatusNotFound,
	pagescrape.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// Error renders the error page for err with the status mapped from its code.
// Application errors show their message, including EINTERNAL ones such as a
// failed URL file read. Other errors are shown as "Internal error.".
// EINTERNAL errors are logged.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, url string, err error) {
	code, message := pagescrape.ErrorCode(err), pagescrape.ErrorMessage(err)

	if code == pagescrape.EINTERNAL {
		s.logger().Error("http error",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
			"err", err,
		)
	}

	s.render(w, r, ErrorStatusCode(code), pageError, errorData{URL: url, Message: message})
}
