package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/brendoncarroll/go-cryptoprim/crypto/dhke"
	"github.com/brendoncarroll/go-cryptoprim/crypto/dhke/dhke_x25519"
)

func newX25519Cmd(bf *backendFlags) *cobra.Command {
	var privHex, peerHex string
	scheme := func() (dhke.Scheme, error) {
		p, err := bf.curveProvider()
		if err != nil {
			return nil, err
		}
		return dhke_x25519.New(p), nil
	}
	decode := func(name, x string) ([]byte, error) {
		data, err := hex.DecodeString(x)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding %s", name)
		}
		return data, nil
	}

	x25519Cmd := &cobra.Command{
		Use:   "x25519",
		Short: "X25519 key generation and agreement",
	}
	keygenCmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a clamped private key and its public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scheme()
			if err != nil {
				return err
			}
			kp, err := s.GenerateKeyPair(rand.Reader)
			if err != nil {
				return err
			}
			defer dhke.Wipe(&kp)
			fmt.Fprintln(cmd.OutOrStdout(), "private:", hex.EncodeToString(kp.Private))
			fmt.Fprintln(cmd.OutOrStdout(), "public: ", hex.EncodeToString(kp.Public))
			return nil
		},
	}
	publicCmd := &cobra.Command{
		Use:   "public",
		Short: "Derive the public key for --priv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scheme()
			if err != nil {
				return err
			}
			priv, err := decode("private key", privHex)
			if err != nil {
				return err
			}
			kp, err := s.DeriveKeyPair(priv)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(kp.Public))
			return nil
		},
	}
	publicCmd.Flags().StringVar(&privHex, "priv", "", "private key as hex")

	sharedCmd := &cobra.Command{
		Use:   "shared",
		Short: "Compute the raw shared secret between --priv and --peer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scheme()
			if err != nil {
				return err
			}
			priv, err := decode("private key", privHex)
			if err != nil {
				return err
			}
			peer, err := decode("peer public key", peerHex)
			if err != nil {
				return err
			}
			shared, err := s.ComputeShared(priv, peer)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(shared))
			return nil
		},
	}
	sharedCmd.Flags().StringVar(&privHex, "priv", "", "private key as hex")
	sharedCmd.Flags().StringVar(&peerHex, "peer", "", "peer public key as hex")

	x25519Cmd.AddCommand(keygenCmd, publicCmd, sharedCmd)
	return x25519Cmd
}
