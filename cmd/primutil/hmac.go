package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/brendoncarroll/go-cryptoprim/crypto/digest"
	"github.com/brendoncarroll/go-cryptoprim/crypto/mac/mac_hmac"
)

var errTagMismatch = errors.New("tag does not match")

type hmacFlags struct {
	alg    string
	keyHex string
	in     string
	tagHex string
}

func newHMACCmd(bf *backendFlags) *cobra.Command {
	hf := &hmacFlags{}
	hmacCmd := &cobra.Command{
		Use:   "hmac",
		Short: "Compute and verify HMAC tags",
	}
	hmacCmd.PersistentFlags().StringVar(&hf.alg, "alg", "sha256", "digest algorithm")
	hmacCmd.PersistentFlags().StringVar(&hf.keyHex, "key", "", "key as hex")
	hmacCmd.PersistentFlags().StringVar(&hf.in, "in", "-", "message file, - for stdin")

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "Print the tag of the message as hex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, closer, err := hf.newHMAC(bf)
			if err != nil {
				return err
			}
			defer closer.Close()
			msg, err := hf.readMessage(cmd.InOrStdin())
			if err != nil {
				return err
			}
			tag, err := h.Compute(msg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(tag))
			return nil
		},
	}
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a hex tag against the message, exiting non-zero on mismatch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := hex.DecodeString(hf.tagHex)
			if err != nil {
				return errors.Wrap(err, "decoding tag")
			}
			h, closer, err := hf.newHMAC(bf)
			if err != nil {
				return err
			}
			defer closer.Close()
			msg, err := hf.readMessage(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if !h.Verify(tag, msg) {
				return errTagMismatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
	verifyCmd.Flags().StringVar(&hf.tagHex, "tag", "", "expected tag as hex")

	hmacCmd.AddCommand(computeCmd)
	hmacCmd.AddCommand(verifyCmd)
	return hmacCmd
}

func (hf *hmacFlags) newHMAC(bf *backendFlags) (*mac_hmac.HMAC, io.Closer, error) {
	alg, err := digest.ParseAlgorithm(hf.alg)
	if err != nil {
		return nil, nil, err
	}
	key, err := hex.DecodeString(hf.keyHex)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decoding key")
	}
	p, closer, err := bf.digestProvider()
	if err != nil {
		return nil, nil, err
	}
	h, err := mac_hmac.New(p, alg, key)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return h, closer, nil
}

func (hf *hmacFlags) readMessage(stdin io.Reader) ([]byte, error) {
	if hf.in == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(hf.in)
}
