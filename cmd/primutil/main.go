package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/brendoncarroll/go-cryptoprim"
	"github.com/brendoncarroll/go-cryptoprim/crypto/digest"
)

var log = cryptoprim.Logger

func main() {
	// .env is optional, it is only needed to configure the pkcs11 backend
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn(err)
	}
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

type backendFlags struct {
	digest string
	curve  string
}

func newRootCmd() *cobra.Command {
	bf := &backendFlags{}
	rootCmd := &cobra.Command{
		Use:           "primutil",
		Short:         "HMAC and X25519 from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&bf.digest, "digest-backend", "std", "digest backend: "+joinKeys(digestBackends))
	rootCmd.PersistentFlags().StringVar(&bf.curve, "curve-backend", "xcrypto", "scalar multiplication backend: "+joinKeys(curveBackends))

	rootCmd.AddCommand(newAlgorithmsCmd())
	rootCmd.AddCommand(newHMACCmd(bf))
	rootCmd.AddCommand(newX25519Cmd(bf))
	return rootCmd
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List digest algorithms with their block and output sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes := map[digest.Algorithm][2]int{}
			for _, alg := range digest.Algorithms {
				sizes[alg] = [2]int{alg.BlockSize(), alg.OutputSize()}
			}
			algs := maps.Keys(sizes)
			slices.Sort(algs)
			for _, alg := range algs {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s block=%-4d output=%d\n", alg, sizes[alg][0], sizes[alg][1])
			}
			return nil
		},
	}
}
