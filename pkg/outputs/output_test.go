package outputs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingOutput struct {
	requests, responses, closes int
	closeErr                    error
}

func (o *countingOutput) Request(req *http.Request) error {
	o.requests++
	return nil
}

func (o *countingOutput) Response(req *http.Request, res *http.Response) error {
	o.responses++
	return nil
}

func (o *countingOutput) Close() error {
	o.closes++
	return o.closeErr
}

func TestMulti(t *testing.T) {
	failing := errors.New("disk full")
	a := &countingOutput{closeErr: failing}
	b := &countingOutput{}
	multi := Multi{a, b}

	require.NoError(t, multi.Request(&http.Request{}))
	require.NoError(t, multi.Response(&http.Request{}, &http.Response{}))
	assert.ErrorIs(t, multi.Close(), failing)

	for _, o := range []*countingOutput{a, b} {
		assert.Equal(t, 1, o.requests)
		assert.Equal(t, 1, o.responses)
		assert.Equal(t, 1, o.closes)
	}

	assert.NoError(t, Multi{}.Close())
}
