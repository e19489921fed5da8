package definitions

import (
	"io"
	"net/http"

	"github.com/matzehuels/cleardef/pkg/errors"
)

// HandleResponse turns an HTTP response from the definitions endpoint into
// decoded definitions. A success status decodes the body as a batch
// response; any other status becomes an HTTP_STATUS error without touching
// the body, because the service does not emit structured error payloads.
//
// The response body is consumed but not closed; closing stays with whoever
// issued the request.
func HandleResponse(resp *http.Response) ([]Definition, error) {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Status(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTransport, err, "reading definitions response")
	}
	return DecodeBatch(body)
}
