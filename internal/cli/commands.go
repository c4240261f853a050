package cli

import (
	"fmt"
	"strings"

	"github.com/AbdouB/clipper/internal/dispatch"
	"github.com/spf13/cobra"
)

// searchCmd answers a search request
var searchCmd = &cobra.Command{
	Use:   "search [text...]",
	Short: "List results for a search string",
	Long: `List results for the launcher's search text.

An optional leading keyword selects the mode:
  e, edit     open an edit form for matching clips
  d, delete   delete matching clips
Without text the "Add text" and "Add image" entries are returned.

Example:
  clipper search ""
  clipper search "e robot notes"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := dispatch.Request{
			Kind:       dispatch.KindSearch,
			SearchText: strings.Join(args, " "),
		}
		return serve(cmd, req)
	},
}

// runCmd executes a command sent back by the host
var runCmd = &cobra.Command{
	Use:   "run <command> [args...]",
	Short: "Run a clip command",
	Long: `Run one of the commands referenced by search results:
  add-text, add-image, edit-text-clip, delete-text-clip,
  edit-image-clip, delete-image-clip, copy-image

Form values are given with --field or as a JSON object with --form.

Example:
  clipper run add-image --field name=Cat --field path=/home/me/cat.png
  clipper run edit-text-clip 3 --form - < form.json
  clipper run delete-image-clip 0`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, _ := cmd.Flags().GetStringArray("field")
		formInput, _ := cmd.Flags().GetString("form")

		form := dispatch.Form{}
		if formInput != "" {
			if err := readInputJSON(formInput, &form); err != nil {
				return err
			}
		}
		for _, field := range fields {
			key, value, ok := strings.Cut(field, "=")
			if !ok {
				return fmt.Errorf("%w: --field %q is not name=value", dispatch.ErrMalformedArgument, field)
			}
			form[key] = value
		}

		req := dispatch.Request{
			Kind:    dispatch.KindCommand,
			Command: args[0],
			Args:    args[1:],
			Form:    form,
		}
		return serve(cmd, req)
	},
}

// requestCmd reads a complete host request as JSON
var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Handle a JSON request from the host",
	Long: `Handle a request encoded as JSON, read from stdin by default.

Example:
  echo '{"kind":"search","search_text":"d cat"}' | clipper request
  echo '{"kind":"command","command":"add-text","form":{"name":"a","text":"b"}}' | clipper request`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")

		var req dispatch.Request
		if err := readInputJSON(input, &req); err != nil {
			return err
		}
		return serve(cmd, req)
	},
}

// serve hands req to the dispatcher and prints search results
func serve(cmd *cobra.Command, req dispatch.Request) error {
	resp, err := service.Handle(cmd.Context(), req)
	if err != nil {
		return err
	}
	if req.Kind == dispatch.KindSearch {
		outputResult(resp.Results)
	}
	return nil
}

func init() {
	runCmd.Flags().StringArrayP("field", "f", nil, "Form value as name=value (repeatable)")
	runCmd.Flags().String("form", "", "Form values as a JSON object from a file, or - for stdin")

	requestCmd.Flags().StringP("input", "i", "-", "Request JSON file, or - for stdin")

	rootCmd.AddCommand(
		searchCmd,
		runCmd,
		requestCmd,
	)
}
