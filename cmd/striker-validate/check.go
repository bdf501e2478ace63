package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ClusterLabs/striker-testinput/modules/forms"
	"github.com/ClusterLabs/striker-testinput/pkg/testinput"
	"github.com/ClusterLabs/striker-testinput/pkg/validator"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a YAML file of form inputs",
		Long: `Validates every form in FILE against the striker rules. FILE maps form
ids to field values; "-" reads standard input. Exits non-zero when any
form fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runCheck(in, cmd.OutOrStdout(), forms.Default())
		},
	}
}

func runCheck(in io.Reader, out io.Writer, registry *forms.Registry) error {
	docs, err := forms.DecodeInputs(in)
	if err != nil {
		return err
	}

	failed := 0
	for _, formID := range slices.Sorted(maps.Keys(docs)) {
		hooks := testinput.Hooks{
			OnFailure: func(f testinput.Failure) {
				if f.Optional {
					fmt.Fprintf(out, "  %s: %s (hint)\n", f.BatchID, f.Message)
					return
				}
				fmt.Fprintf(out, "  %s: %s\n", f.BatchID, f.Message)
			},
		}

		fmt.Fprintf(out, "%s\n", formID)
		res, err := registry.Validate(formID, docs[formID], testinput.WithHooks(hooks))
		if err != nil {
			return err
		}
		if res.OK {
			fmt.Fprintln(out, "  ok")
			continue
		}
		failed++
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d forms", validator.ErrValidationFailed, failed, len(docs))
	}
	return nil
}

func newFormsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forms",
		Short: "List the known forms and their fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, f := range forms.Default().List() {
				fmt.Fprintf(out, "%s\t%s\n", f.ID, f.Title)
				for _, field := range f.Fields() {
					req := "optional"
					if field.Required {
						req = "required"
					}
					fmt.Fprintf(out, "  %s\t%s\t%s\n", field.ID, field.Label, req)
				}
			}
			return nil
		},
	}
}
