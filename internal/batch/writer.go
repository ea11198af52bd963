package batch

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Write renders items in the given format.
func Write(w io.Writer, items []Item, format string) error {
	switch format {
	case FormatText, "":
		return writeText(w, items)
	case FormatJSON:
		return writeJSON(w, items)
	case FormatYAML:
		return writeYAML(w, items)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeText(w io.Writer, items []Item) error {
	for _, item := range items {
		var err error
		if item.Failed() {
			_, err = fmt.Fprintf(w, "line %d: error: %s\n", item.Line, item.Error)
		} else {
			_, err = fmt.Fprintln(w, item.Postfix)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, items []Item) error {
	data, err := sonic.MarshalIndent(Report{Results: items, Summary: Summarize(items)}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func writeYAML(w io.Writer, items []Item) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Report{Results: items, Summary: Summarize(items)}); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
