package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/halvard/bignum"
)

func main() {
	var maxLiteral int
	var file string

	rootCmd := &cobra.Command{
		Use:   "bigcalc",
		Short: "Arbitrary-precision integer calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := os.Stdin
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			bignum.SetMaxLiteralLen(maxLiteral)
			return run(in, os.Stdout, os.Stderr, maxLiteral)
		},
	}

	rootCmd.Flags().IntVar(&maxLiteral, "max-literal", defaultLiteralBuffer, "maximum length in bytes of a single numeric literal")
	rootCmd.Flags().StringVar(&file, "file", "", "read expressions from a file instead of standard input")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
