package main

import (
	"strconv"
	"strings"

	"github.com/filecoin-project/go-fixedbytes/fixedgen"
	"github.com/spf13/cobra"
	xerrors "golang.org/x/xerrors"
)

func newRootCmd() *cobra.Command {
	var (
		pkg   string
		out   string
		types []string
	)

	cmd := &cobra.Command{
		Use:           "fixedgen",
		Short:         "Generate fixed-length array types",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs := make([]fixedgen.Spec, 0, len(types))
			for _, t := range types {
				s, err := parseTypeFlag(t)
				if err != nil {
					return err
				}
				specs = append(specs, s)
			}
			if out == "" {
				return fixedgen.Generate(cmd.OutOrStdout(), pkg, specs...)
			}
			return fixedgen.WriteFile(out, pkg, specs...)
		},
	}

	cmd.Flags().StringVar(&pkg, "package", "", "package name of the generated file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringArrayVarP(&types, "type", "t", nil, "type to generate as Name:elem:len, repeatable")
	_ = cmd.MarkFlagRequired("package")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

// parseTypeFlag parses Name:elem:len.
func parseTypeFlag(v string) (fixedgen.Spec, error) {
	parts := strings.Split(v, ":")
	if len(parts) != 3 {
		return fixedgen.Spec{}, xerrors.Errorf("type %q: expected Name:elem:len", v)
	}
	elem, err := fixedgen.ElemByName(parts[1])
	if err != nil {
		return fixedgen.Spec{}, xerrors.Errorf("type %q: %w", v, err)
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil {
		return fixedgen.Spec{}, xerrors.Errorf("type %q: bad length: %w", v, err)
	}
	return fixedgen.Spec{Name: parts[0], Elem: elem, Len: n}, nil
}
