package catalog

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"validation passes detail through", &Error{Kind: KindValidation, Detail: "name too short"}, "name too short"},
		{"server message verbatim", &Error{Kind: KindServerMessage, Detail: "duplicate name", Status: 409}, "duplicate name"},
		{"server without message names the status", &Error{Kind: KindServerMessage, Status: 500}, "server rejected the request (status 500)"},
		{"timeout", &Error{Kind: KindTimeout}, "request timed out - the server did not respond in time"},
		{"payload too large", &Error{Kind: KindPayloadTooLarge, Status: 413}, "upload too large - the server rejected the request body"},
		{"network", &Error{Kind: KindNetwork, Detail: "dial tcp: refused"}, "could not reach the catalog server - check your connection and API URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestClassifyTransport(t *testing.T) {
	assert.Equal(t, KindTimeout, classifyTransport(context.DeadlineExceeded).Kind)
	assert.Equal(t, KindNetwork, classifyTransport(errors.New("dial tcp: connection refused")).Kind)
}

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, KindPayloadTooLarge, classifyStatus(http.StatusRequestEntityTooLarge, "").Kind)
	assert.Equal(t, KindServerMessage, classifyStatus(http.StatusBadRequest, "bad").Kind)
	assert.Equal(t, "bad", classifyStatus(http.StatusBadRequest, "bad").Detail)
	assert.Equal(t, 400, classifyStatus(http.StatusBadRequest, "bad").Status)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "timeout", KindTimeout.String())
	assert.Equal(t, "payload-too-large", KindPayloadTooLarge.String())
	assert.Equal(t, "server", KindServerMessage.String())
	assert.Equal(t, "network", KindNetwork.String())
}
