package token

import (
	"context"
	"fmt"
	"math/big"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/token"
	"github/chapool/humtoken/internal/token/address"
	"github/chapool/humtoken/internal/token/amount"
	"github/chapool/humtoken/internal/token/chain"
)

func newTransfer() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <from> <to> <amount>",
		Short: "Transfers tokens and waits for confirmation",
		Long: `Transfers <amount> tokens from <from> to <to>.

Prints the expected fee first, then reads the private key controlling <from>
from the terminal without echoing it. Waits for one confirmation.

If the confirmation wait times out the transfer may still confirm. Check the
printed hash with 'token status' before transferring again.`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(ctx context.Context, s *api.Server) error {
				return runTransfer(ctx, s, args[0], args[1], args[2])
			})
		},
	}
}

func runTransfer(ctx context.Context, s *api.Server, from string, to string, value string) error {
	decimals := s.Config.Chain.Decimals

	// fail on bad input before asking for the key
	if _, err := address.Validate("from", from); err != nil {
		return err
	}
	toAddress, err := address.Validate("to", to)
	if err != nil {
		return err
	}
	units, err := amount.ToBaseUnits(value, decimals)
	if err != nil {
		return err
	}

	feeBasisPoints, err := s.Chain.FeeBasisPoints(ctx)
	if err != nil {
		return &token.ReadError{Field: chain.MethodFeeBasisPoints, Err: err}
	}
	fee := token.ExpectedFee(units, feeBasisPoints)

	if err := printRows(stdout, [][2]string{
		{"To", toAddress.Hex()},
		{"Amount", amount.ToDecimalString(units, decimals)},
		{"Fee", fmt.Sprintf("%s (%s%%)", amount.ToDecimalString(fee, decimals), amount.FeePercent(feeBasisPoints))},
		{"Recipient receives", amount.ToDecimalString(new(big.Int).Sub(units, fee), decimals)},
	}); err != nil {
		return err
	}

	key, err := promptSigningKey("Private key for " + from + ": ")
	if err != nil {
		return err
	}

	stop := startSpinner("Waiting for confirmation")
	result, err := s.Transfer.Transfer(ctx, token.TransferRequest{
		From:       from,
		To:         to,
		Amount:     value,
		SigningKey: key,
	})
	stop()

	if err != nil {
		var submissionErr *token.SubmissionError
		if errors.As(err, &submissionErr) && submissionErr.TxHash != "" {
			fmt.Fprintf(os.Stderr, "Transaction: %s\n", submissionErr.TxHash)
			if submissionErr.Kind == token.SubmissionTimeout {
				fmt.Fprintf(os.Stderr, "Outcome unknown, run 'token status %s' before retrying.\n", submissionErr.TxHash)
			}
		}
		return err
	}

	return printRows(stdout, [][2]string{
		{"Transaction", result.TransactionHash},
		{"Block", fmt.Sprint(result.BlockNumber)},
		{"Gas used", fmt.Sprint(result.GasUsed)},
		{"Status", "Transfer completed successfully!"},
	})
}
