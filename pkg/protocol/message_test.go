package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		wantKind Kind
		wantErr  bool
	}{
		{
			name:     "request",
			raw:      `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`,
			wantKind: KindRequest,
		},
		{
			name:     "request with string id",
			raw:      `{"jsonrpc":"2.0","id":"i_haz_configuration","method":"workspace/configuration"}`,
			wantKind: KindRequest,
		},
		{
			name:     "notification",
			raw:      `{"jsonrpc":"2.0","method":"initialized","params":{}}`,
			wantKind: KindNotification,
		},
		{
			name:     "response with result",
			raw:      `{"jsonrpc":"2.0","id":2,"result":null}`,
			wantKind: KindResponse,
		},
		{
			name:     "response with error",
			raw:      `{"jsonrpc":"2.0","id":2,"error":{"code":-32601,"message":"MethodNotFound"}}`,
			wantKind: KindResponse,
		},
		{
			name:    "response with both result and error",
			raw:     `{"jsonrpc":"2.0","id":2,"result":{},"error":{"code":-32601,"message":"x"}}`,
			wantErr: true,
		},
		{
			name:    "neither id nor method",
			raw:     `{"jsonrpc":"2.0"}`,
			wantErr: true,
		},
		{
			name:    "id of wrong type",
			raw:     `{"jsonrpc":"2.0","id":true,"method":"initialize"}`,
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := Decode([]byte(tc.raw))
			if tc.wantErr {
				require.Error(t, err)
				var te TaxonomyError
				require.ErrorAs(t, err, &te)
				assert.Equal(t, ParseError, te.Code())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantKind, msg.Kind)
		})
	}
}

func TestRequestIdRoundTrip(t *testing.T) {
	for _, id := range []RequestId{NewIntID(42), NewStrID("apply_edit")} {
		data, err := id.MarshalJSON()
		require.NoError(t, err)

		var decoded RequestId
		require.NoError(t, decoded.UnmarshalJSON(data))
		assert.True(t, id.Equal(decoded))
	}
}

func TestToResponseError(t *testing.T) {
	err := NewTaxonomyErr(MethodNotFound, nil)
	respErr := ToResponseError(err)
	require.NotNil(t, respErr)
	assert.Equal(t, MethodNotFound, respErr.Code)

	respErr = ToResponseError(assertErr{})
	require.NotNil(t, respErr)
	assert.Equal(t, InternalError, respErr.Code)
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }
