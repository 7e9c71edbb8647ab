package token

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/test"
	"github/chapool/humtoken/internal/token"
	"github/chapool/humtoken/internal/token/chain"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })

	return &buf
}

func TestPrintRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRows(&buf, [][2]string{{"Name", "HUMToken"}, {"Max tx amount", "5000000"}}))

	assert.Equal(t, "Name           HUMToken\nMax tx amount  5000000\n", buf.String())
}

func TestRunTransferRejectsInputBeforeAskingForKey(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		buf := captureStdout(t)
		mock := test.MockChain(t, s)

		err := runTransfer(t.Context(), s, test.Account0, "0x1234", "1")
		assert.True(t, errors.Is(err, token.ErrInvalidAddress))

		err = runTransfer(t.Context(), s, test.Account0, test.Account1, "1.5.0")
		assert.True(t, errors.Is(err, token.ErrInvalidAmount))

		assert.Zero(t, mock.Calls(chain.MethodFeeBasisPoints))
		assert.Empty(t, buf.String())
	})
}

func TestRunTransferFeeReadFails(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		captureStdout(t)
		mock := test.MockChain(t, s)
		mock.Errors[chain.MethodFeeBasisPoints] = errors.New("connection refused")

		err := runTransfer(t.Context(), s, test.Account0, test.Account1, "1")

		var readErr *token.ReadError
		require.True(t, errors.As(err, &readErr))
		assert.Equal(t, chain.MethodFeeBasisPoints, readErr.Field)
		assert.Zero(t, mock.Calls(chain.MethodBalanceOf))
	})
}
