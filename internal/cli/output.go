package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// render writes v in the selected --format. text is used for the text
// format; when nil, text output falls back to JSON.
func render(cmd *cobra.Command, v any, text func(w io.Writer)) {
	w := cmd.OutOrStdout()
	switch formatFlag {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			exitErr("encode yaml", err)
		}
		enc.Close()
	case "text":
		if text != nil {
			text(w)
			return
		}
		fallthrough
	case "json":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			exitErr("encode json", err)
		}
		fmt.Fprintln(w, string(b))
	default:
		exitErr("output", fmt.Errorf("unknown format %q (valid: text, json, yaml)", formatFlag))
	}
}
